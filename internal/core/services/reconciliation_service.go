package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/club_billing_app/internal/apperrors"
	"github.com/SscSPs/club_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/club_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/club_billing_app/internal/core/ports/services"
	"github.com/SscSPs/club_billing_app/internal/dto"
	"github.com/SscSPs/club_billing_app/internal/utils/pagination"
)

// reconciliationService implements the ReconciliationSvcFacade interface
type reconciliationService struct {
	BaseService
	ledgerRepo     portsrepo.LedgerRepositoryFacade
	paymentRepo    portsrepo.PaymentReader
	enrollmentRepo portsrepo.EnrollmentReader
}

// ReconciliationServiceOption is a functional option for configuring the reconciliation service
type ReconciliationServiceOption func(*reconciliationService)

// WithReconciliationTenantGuard makes the service reject unknown or disabled tenants.
func WithReconciliationTenantGuard(guard portsrepo.TenantReader) ReconciliationServiceOption {
	return func(s *reconciliationService) {
		s.TenantGuard = guard
	}
}

// WithReconciliationClock overrides the clock used for timestamps.
func WithReconciliationClock(clock func() time.Time) ReconciliationServiceOption {
	return func(s *reconciliationService) {
		s.Clock = clock
	}
}

// NewReconciliationService creates a new reconciliation service with the provided options
func NewReconciliationService(
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	paymentRepo portsrepo.PaymentReader,
	enrollmentRepo portsrepo.EnrollmentReader,
	options ...ReconciliationServiceOption,
) portssvc.ReconciliationSvcFacade {
	svc := &reconciliationService{
		ledgerRepo:     ledgerRepo,
		paymentRepo:    paymentRepo,
		enrollmentRepo: enrollmentRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure reconciliationService implements the ReconciliationSvcFacade interface
var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// RecordIncomingPayment logs a bank payment and reconciles it in the same posting. The
// open proforma with the lowest id and an equal (identifier, amount) is settled. Without
// one, the payment is credited to the child owning the identifier, and without such a
// child it stays in the payment log only.
func (s *reconciliationService) RecordIncomingPayment(ctx context.Context, tenantID string, payment domain.IncomingPayment, createdBy string) (*domain.MatchResult, error) {
	payment.TenantID = tenantID
	payment.ReferenceIdentifier = strings.TrimSpace(payment.ReferenceIdentifier)
	if !payment.Amount.Equal(payment.Amount.Round(2)) {
		return nil, fmt.Errorf("%w: payment amount has more than 2 decimal places", apperrors.ErrValidation)
	}
	payment.CreatedAt = s.Now()
	payment.CreatedBy = createdBy
	if err := payment.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := s.AuthorizeTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	logger := s.GetLogger(ctx).With(
		slog.String("tenant_id", tenantID),
		slog.String("reference_identifier", payment.ReferenceIdentifier),
		slog.String("amount", payment.Amount.StringFixed(2)))

	var match *domain.MatchResult
	err := retryOnConflict(ctx, func() error {
		var err error
		match, err = s.reconcile(ctx, payment, createdBy)
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Proforma settled concurrently, rescanning")
		}
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record incoming payment", slog.String("tenant_id", tenantID))
		return nil, err
	}

	logger.Info("Incoming payment recorded",
		slog.Int64("payment_id", match.Payment.PaymentID),
		slog.String("outcome", string(match.Outcome)))
	return match, nil
}

func (s *reconciliationService) reconcile(ctx context.Context, payment domain.IncomingPayment, createdBy string) (*domain.MatchResult, error) {
	candidates, err := s.ledgerRepo.FindOpenProformasByKey(ctx, payment.TenantID, payment.ReferenceIdentifier, payment.Amount)
	if err != nil {
		return nil, err
	}
	if len(candidates) > 0 {
		return s.settle(ctx, candidates[0], payment, createdBy)
	}

	posting := domain.LedgerPosting{TenantID: payment.TenantID, Payment: &payment}
	outcome := domain.OutcomeUnmatched

	child, err := s.enrollmentRepo.FindChildByReferenceIdentifier(ctx, payment.TenantID, payment.ReferenceIdentifier)
	switch {
	case err == nil:
		credit, err := newEntry(payment.TenantID, entryFields{
			childID:    child.ChildID,
			eventType:  domain.EventPayment,
			direction:  domain.Credit,
			status:     domain.StatusClosed,
			title:      titlePayment,
			amount:     payment.Amount,
			identifier: payment.ReferenceIdentifier,
			note:       paymentNote(payment, "No matching due"),
		}, payment.CreatedAt, createdBy)
		if err != nil {
			return nil, err
		}
		credit.OccurredOn = payment.ReceivedDate
		posting.Entries = []domain.FinanceEntry{credit}
		outcome = domain.OutcomeUnattributed
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, err
	}

	result, err := s.ledgerRepo.ApplyPosting(ctx, posting)
	if err != nil {
		return nil, err
	}
	return &domain.MatchResult{
		Outcome: outcome,
		Payment: *result.Payment,
		Entries: nonNilEntries(result.Entries),
	}, nil
}

func (s *reconciliationService) settle(ctx context.Context, proforma domain.FinanceEntry, payment domain.IncomingPayment, createdBy string) (*domain.MatchResult, error) {
	posting, err := settlementPosting(proforma, paymentNote(payment, ""), payment.CreatedAt, createdBy)
	if err != nil {
		return nil, err
	}
	for i := range posting.Entries {
		posting.Entries[i].OccurredOn = payment.ReceivedDate
	}
	posting.Payment = &payment

	result, err := s.ledgerRepo.ApplyPosting(ctx, posting)
	if err != nil {
		return nil, err
	}
	settlement, err := settlementFromResult(proforma, result, 0)
	if err != nil {
		return nil, err
	}
	return &domain.MatchResult{
		Outcome:  domain.OutcomeMatched,
		Payment:  *result.Payment,
		Proforma: &settlement.Proforma,
		Entries:  []domain.FinanceEntry{settlement.Payment, settlement.Invoice},
	}, nil
}

// ListIncomingPayments retrieves the payment audit trail, newest first.
func (s *reconciliationService) ListIncomingPayments(ctx context.Context, tenantID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	payments, nextToken, err := s.paymentRepo.ListPayments(ctx, tenantID, pagination.NormalizeLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list incoming payments", slog.String("tenant_id", tenantID))
		return nil, err
	}
	if payments == nil {
		payments = []domain.IncomingPayment{}
	}
	return &dto.ListPaymentsResponse{Payments: payments, NextToken: nextToken}, nil
}

func paymentNote(p domain.IncomingPayment, prefix string) string {
	parts := make([]string, 0, 4)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	parts = append(parts, "received "+p.ReceivedDate.Format(dto.DateLayout))
	if p.SenderName != "" {
		parts = append(parts, "from "+p.SenderName)
	}
	if p.Note != "" {
		parts = append(parts, p.Note)
	}
	return strings.Join(parts, ", ")
}

func nonNilEntries(entries []domain.FinanceEntry) []domain.FinanceEntry {
	if entries == nil {
		return []domain.FinanceEntry{}
	}
	return entries
}
