package services

import (
	"context"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
	"github.com/SscSPs/club_billing_app/internal/dto"
)

// ReconciliationSvcFacade defines recording and matching of bank payments
type ReconciliationSvcFacade interface {
	// RecordIncomingPayment logs a payment and matches it against open proformas.
	RecordIncomingPayment(ctx context.Context, tenantID string, payment domain.IncomingPayment, createdBy string) (*domain.MatchResult, error)

	// ListIncomingPayments retrieves the payment audit trail, newest first.
	ListIncomingPayments(ctx context.Context, tenantID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error)
}
