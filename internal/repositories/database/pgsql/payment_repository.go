package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/club_billing_app/internal/apperrors"
	"github.com/SscSPs/club_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/club_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/club_billing_app/internal/models"
	"github.com/SscSPs/club_billing_app/internal/utils/mapping"
	"github.com/SscSPs/club_billing_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPaymentRepository reads the incoming payment log. Payments are written by the
// ledger repository as part of a posting.
type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentReader {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentReader
var _ portsrepo.PaymentReader = (*PgxPaymentRepository)(nil)

const paymentSelect = `
	SELECT
		payment_id, tenant_id, received_date, reference_identifier, amount, sender_name, note,
		created_at, created_by
	FROM incoming_payments
`

func (r *PgxPaymentRepository) getPayments(ctx context.Context, filterQuery string, args ...any) ([]domain.IncomingPayment, error) {
	rows, err := r.Pool.Query(ctx, paymentSelect+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query incoming payments", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.IncomingPayment])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect incoming payment rows", err)
	}
	payments := make([]domain.IncomingPayment, len(ms))
	for i, m := range ms {
		payments[i] = mapping.ToDomainIncomingPayment(m)
	}
	return payments, nil
}

func (r *PgxPaymentRepository) ListAllPayments(ctx context.Context, tenantID string) ([]domain.IncomingPayment, error) {
	return r.getPayments(ctx, `WHERE tenant_id = $1 ORDER BY payment_id;`, tenantID)
}

func (r *PgxPaymentRepository) ListPayments(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.IncomingPayment, *string, error) {
	limit = pagination.NormalizeLimit(limit)

	var (
		payments []domain.IncomingPayment
		err      error
	)
	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, decodeErr)
		}
		payments, err = r.getPayments(ctx, `
			WHERE tenant_id = $1 AND (received_date, payment_id) < ($2, $3)
			ORDER BY received_date DESC, payment_id DESC
			LIMIT $4;
		`, tenantID, cursor.At, cursor.ID, limit+1)
	} else {
		payments, err = r.getPayments(ctx, `
			WHERE tenant_id = $1
			ORDER BY received_date DESC, payment_id DESC
			LIMIT $2;
		`, tenantID, limit+1)
	}
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(payments) > limit {
		last := payments[limit-1]
		token := pagination.EncodeCursor(last.ReceivedDate, last.PaymentID)
		nextTokenVal = &token
		payments = payments[:limit]
	}
	return payments, nextTokenVal, nil
}
