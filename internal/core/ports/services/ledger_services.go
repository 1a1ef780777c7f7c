package services

import (
	"context"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
	"github.com/SscSPs/club_billing_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read operations for ledger entries
type LedgerReaderSvc interface {
	// GetEntry retrieves a single ledger entry.
	GetEntry(ctx context.Context, tenantID string, entryID int64) (*domain.FinanceEntry, error)

	// ListEntries retrieves a page of entries filtered by child, status and type.
	ListEntries(ctx context.Context, tenantID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// DuesSvc defines the membership due lifecycle
type DuesSvc interface {
	// IssueProforma bills a membership. It returns nil, nil when nothing is due and the
	// existing entry when an open proforma is already there.
	IssueProforma(ctx context.Context, tenantID, membershipID, createdBy string) (*domain.FinanceEntry, error)

	// CloseAndInvoice settles an open proforma with a payment and an invoice entry.
	CloseAndInvoice(ctx context.Context, tenantID string, proformaID int64, paymentNote, createdBy string) (*domain.Settlement, error)

	// CancelOpenProforma cancels the open proforma of a membership and returns the info
	// entry explaining it, or nil, nil when nothing was open.
	CancelOpenProforma(ctx context.Context, tenantID, membershipID, reason, createdBy string) (*domain.FinanceEntry, error)

	// ReissueProforma replaces the open proforma with one computed from the current terms.
	ReissueProforma(ctx context.Context, tenantID, membershipID, reason, createdBy string) (*domain.FinanceEntry, error)

	// EndMembership cancels any open due, posts a refund or an end marker and deactivates
	// the membership.
	EndMembership(ctx context.Context, tenantID, membershipID string, refundAmount decimal.Decimal, createdBy string) (*domain.FinanceEntry, error)
}

// SalesSvc defines one-off charges
type SalesSvc interface {
	RecordSale(ctx context.Context, tenantID, childID, title string, amount decimal.Decimal, createdBy string) (*domain.FinanceEntry, error)

	// MarkSalePaid closes the oldest open sale of the child with the same title and amount.
	MarkSalePaid(ctx context.Context, tenantID, childID, title string, amount decimal.Decimal, createdBy string) (*domain.SaleSettlement, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	DuesSvc
	SalesSvc
}
