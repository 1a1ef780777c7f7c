package domain

import (
	"github.com/shopspring/decimal"
)

// FinanceTotals summarises membership dues of a tenant for the dashboard.
type FinanceTotals struct {
	Expected    decimal.Decimal `json:"expected"`    // open proformas + closed invoices
	Paid        decimal.Decimal `json:"paid"`        // closed invoices
	Outstanding decimal.Decimal `json:"outstanding"` // expected - paid
}

// ContributionsReport lists the computed dues of every active membership.
type ContributionsReport struct {
	Rows             []MembershipBilling `json:"rows"`
	Total            decimal.Decimal     `json:"total"`
	FullPeriodMonths int                 `json:"fullPeriodMonths"`
}

// SaleStatus is a sale charge with its payment state derived from incoming payments.
type SaleStatus struct {
	Entry FinanceEntry `json:"entry"`
	Paid  bool         `json:"paid"`
}

// ChildStatement is the per-child finance overview.
type ChildStatement struct {
	Child    Child           `json:"child"`
	Entries  []FinanceEntry  `json:"entries"`
	DueTotal decimal.Decimal `json:"dueTotal"` // sum of open debits
	Sales    []SaleStatus    `json:"sales"`
}
