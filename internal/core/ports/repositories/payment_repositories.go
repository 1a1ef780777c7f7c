package repositories

import (
	"context"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
)

// PaymentReader defines read operations on the incoming payment log. Payments are
// written only as part of a ledger posting.
type PaymentReader interface {
	// ListAllPayments returns every payment of a tenant ordered by payment_id.
	ListAllPayments(ctx context.Context, tenantID string) ([]domain.IncomingPayment, error)

	// ListPayments returns a page of payments ordered by (received_date DESC, payment_id DESC).
	ListPayments(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.IncomingPayment, *string, error)
}
