package repositories

import (
	"context"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryTotalFilter selects the entries SumEntryAmounts adds up.
type EntryTotalFilter struct {
	EventType domain.EventType
	Direction domain.Direction
	Status    domain.EntryStatus
}

// ReportingRepository defines aggregate queries for dashboards
type ReportingRepository interface {
	// SumEntryAmounts totals the amounts of the entries matching filter. No rows sum to zero.
	SumEntryAmounts(ctx context.Context, tenantID string, filter EntryTotalFilter) (decimal.Decimal, error)
}
