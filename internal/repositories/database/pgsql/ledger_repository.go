package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/club_billing_app/internal/apperrors"
	"github.com/SscSPs/club_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/club_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/club_billing_app/internal/models"
	"github.com/SscSPs/club_billing_app/internal/utils/mapping"
	"github.com/SscSPs/club_billing_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for finance entries.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const entrySelect = `
	SELECT
		entry_id, tenant_id, child_id, membership_id, event_type, direction, status,
		title, amount, reference_identifier, reference_code, note, occurred_on,
		created_at, created_by
	FROM finance_entries
`

func (r *PgxLedgerRepository) getEntries(ctx context.Context, filterQuery string, args ...any) ([]domain.FinanceEntry, error) {
	rows, err := r.Pool.Query(ctx, entrySelect+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query finance entries", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.FinanceEntry])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect finance entry rows", err)
	}
	return mapping.ToDomainFinanceEntrySlice(ms), nil
}

func (r *PgxLedgerRepository) getEntry(ctx context.Context, filterQuery string, args ...any) (*domain.FinanceEntry, error) {
	entries, err := r.getEntries(ctx, filterQuery, args...)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &entries[0], nil
}

func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, tenantID string, entryID int64) (*domain.FinanceEntry, error) {
	return r.getEntry(ctx, `WHERE tenant_id = $1 AND entry_id = $2;`, tenantID, entryID)
}

func (r *PgxLedgerRepository) FindOpenProforma(ctx context.Context, tenantID, membershipID string) (*domain.FinanceEntry, error) {
	return r.getEntry(ctx, `
		WHERE tenant_id = $1 AND membership_id = $2 AND event_type = 'PROFORMA' AND status = 'OPEN';
	`, tenantID, membershipID)
}

// FindOpenProformasByKey returns open proformas with the given identifier and amount,
// lowest entry ID first.
func (r *PgxLedgerRepository) FindOpenProformasByKey(ctx context.Context, tenantID, identifier string, amount decimal.Decimal) ([]domain.FinanceEntry, error) {
	return r.getEntries(ctx, `
		WHERE tenant_id = $1 AND reference_identifier = $2 AND amount = $3
		  AND event_type = 'PROFORMA' AND status = 'OPEN'
		ORDER BY entry_id;
	`, tenantID, identifier, amount.Round(2))
}

func (r *PgxLedgerRepository) FindOldestOpenSale(ctx context.Context, tenantID, childID, title string, amount decimal.Decimal) (*domain.FinanceEntry, error) {
	return r.getEntry(ctx, `
		WHERE tenant_id = $1 AND child_id = $2 AND title = $3 AND amount = $4
		  AND event_type = 'SALE' AND status = 'OPEN'
		ORDER BY entry_id
		LIMIT 1;
	`, tenantID, childID, title, amount.Round(2))
}

func (r *PgxLedgerRepository) ListEntriesByChild(ctx context.Context, tenantID, childID string) ([]domain.FinanceEntry, error) {
	return r.getEntries(ctx, `
		WHERE tenant_id = $1 AND child_id = $2
		ORDER BY entry_id DESC;
	`, tenantID, childID)
}

// ListEntries returns a page of entries, newest first. The token points at the last
// entry of the previous page.
func (r *PgxLedgerRepository) ListEntries(ctx context.Context, tenantID string, filter domain.EntryFilter, limit int, nextToken *string) ([]domain.FinanceEntry, *string, error) {
	limit = pagination.NormalizeLimit(limit)

	clauses := []string{"tenant_id = $1"}
	args := []any{tenantID}
	addClause := func(column string, value any) {
		args = append(args, value)
		clauses = append(clauses, column+" = $"+strconv.Itoa(len(args)))
	}
	if filter.ChildID != "" {
		addClause("child_id", filter.ChildID)
	}
	if filter.Status != "" {
		addClause("status", string(filter.Status))
	}
	if filter.EventType != "" {
		addClause("event_type", string(filter.EventType))
	}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		args = append(args, cursor.At, cursor.ID)
		clauses = append(clauses, fmt.Sprintf("(created_at, entry_id) < ($%d, $%d)", len(args)-1, len(args)))
	}
	args = append(args, limit+1)
	query := "WHERE " + strings.Join(clauses, " AND ") +
		" ORDER BY created_at DESC, entry_id DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	entries, err := r.getEntries(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(entries) > limit {
		last := entries[limit-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.EntryID)
		nextTokenVal = &token
		entries = entries[:limit]
	}
	return entries, nextTokenVal, nil
}

// ApplyPosting writes a posting in one transaction: the raw payment, the guarded status
// transitions, the new entries and the membership deactivation. A transition whose
// entry is no longer in its From status fails the whole posting with ErrConflict; a
// second open proforma for a membership fails it with ErrOpenProformaExists and a taken
// reference code with ErrReferenceCodeTaken.
func (r *PgxLedgerRepository) ApplyPosting(ctx context.Context, posting domain.LedgerPosting) (*domain.PostingResult, error) {
	if err := posting.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	result := &domain.PostingResult{}

	if posting.Payment != nil {
		payment, err := insertPayment(ctx, tx, *posting.Payment)
		if err != nil {
			return nil, err
		}
		result.Payment = payment
	}

	for _, t := range posting.Transitions {
		tag, err := tx.Exec(ctx, `
			UPDATE finance_entries SET status = $4
			WHERE tenant_id = $1 AND entry_id = $2 AND status = $3;
		`, posting.TenantID, t.EntryID, string(t.From), string(t.To))
		if err != nil {
			return nil, mapWriteError(err, "status of entry "+strconv.FormatInt(t.EntryID, 10))
		}
		if tag.RowsAffected() == 0 {
			return nil, fmt.Errorf("%w: entry %d is no longer %s", apperrors.ErrConflict, t.EntryID, t.From)
		}
	}

	for _, e := range posting.Entries {
		entry, err := insertEntry(ctx, tx, e)
		if err != nil {
			return nil, err
		}
		result.Entries = append(result.Entries, *entry)
	}

	if posting.DeactivateMembershipID != nil {
		tag, err := tx.Exec(ctx, `
			UPDATE memberships SET active = FALSE
			WHERE tenant_id = $1 AND membership_id = $2 AND active;
		`, posting.TenantID, *posting.DeactivateMembershipID)
		if err != nil {
			return nil, mapWriteError(err, "membership "+*posting.DeactivateMembershipID)
		}
		if tag.RowsAffected() == 0 {
			return nil, fmt.Errorf("%w: membership %s is no longer active", apperrors.ErrConflict, *posting.DeactivateMembershipID)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return result, nil
}

func insertEntry(ctx context.Context, tx pgx.Tx, e domain.FinanceEntry) (*domain.FinanceEntry, error) {
	m := mapping.ToModelFinanceEntry(e)
	err := tx.QueryRow(ctx, `
		INSERT INTO finance_entries (
			tenant_id, child_id, membership_id, event_type, direction, status,
			title, amount, reference_identifier, reference_code, note, occurred_on,
			created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING entry_id;
	`,
		m.TenantID, m.ChildID, m.MembershipID, m.EventType, m.Direction, m.Status,
		m.Title, m.Amount, m.ReferenceIdentifier, m.ReferenceCode, m.Note, m.OccurredOn,
		m.CreatedAt, m.CreatedBy,
	).Scan(&m.EntryID)
	if err != nil {
		return nil, mapWriteError(err, string(e.EventType)+" entry "+e.ReferenceCode)
	}
	entry := mapping.ToDomainFinanceEntry(m)
	return &entry, nil
}

func insertPayment(ctx context.Context, tx pgx.Tx, p domain.IncomingPayment) (*domain.IncomingPayment, error) {
	m := mapping.ToModelIncomingPayment(p)
	err := tx.QueryRow(ctx, `
		INSERT INTO incoming_payments (
			tenant_id, received_date, reference_identifier, amount, sender_name, note,
			created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING payment_id;
	`,
		m.TenantID, m.ReceivedDate, m.ReferenceIdentifier, m.Amount, m.SenderName, m.Note,
		m.CreatedAt, m.CreatedBy,
	).Scan(&m.PaymentID)
	if err != nil {
		return nil, mapWriteError(err, "incoming payment")
	}
	payment := mapping.ToDomainIncomingPayment(m)
	return &payment, nil
}
