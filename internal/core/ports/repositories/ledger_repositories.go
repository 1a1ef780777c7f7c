package repositories

import (
	"context"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FinanceEntryReader defines read operations for ledger entries
type FinanceEntryReader interface {
	// FindEntryByID retrieves a single entry of a tenant.
	FindEntryByID(ctx context.Context, tenantID string, entryID int64) (*domain.FinanceEntry, error)

	// FindOpenProforma returns the open proforma of a membership, or apperrors.ErrNotFound.
	FindOpenProforma(ctx context.Context, tenantID, membershipID string) (*domain.FinanceEntry, error)

	// FindOpenProformasByKey returns open proformas with the given reference identifier
	// and amount, lowest entry_id first.
	FindOpenProformasByKey(ctx context.Context, tenantID, identifier string, amount decimal.Decimal) ([]domain.FinanceEntry, error)

	// FindOldestOpenSale returns the open sale of a child with the given title and amount
	// that has the lowest entry_id, or apperrors.ErrNotFound.
	FindOldestOpenSale(ctx context.Context, tenantID, childID, title string, amount decimal.Decimal) (*domain.FinanceEntry, error)

	// ListEntries retrieves a page of entries ordered by (created_at DESC, entry_id DESC).
	// It returns the entries, a token for the next page, and an error.
	ListEntries(ctx context.Context, tenantID string, filter domain.EntryFilter, limit int, nextToken *string) ([]domain.FinanceEntry, *string, error)

	// ListEntriesByChild retrieves every entry of a child, newest first.
	ListEntriesByChild(ctx context.Context, tenantID, childID string) ([]domain.FinanceEntry, error)
}

// LedgerWriter defines the single write path of the ledger
type LedgerWriter interface {
	// ApplyPosting writes a posting atomically. A transition whose entry is no longer in
	// its From status yields apperrors.ErrConflict; a second open proforma for a
	// membership yields apperrors.ErrOpenProformaExists; a reference code already used
	// in the tenant yields apperrors.ErrReferenceCodeTaken.
	ApplyPosting(ctx context.Context, posting domain.LedgerPosting) (*domain.PostingResult, error)
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	FinanceEntryReader
	LedgerWriter
}
