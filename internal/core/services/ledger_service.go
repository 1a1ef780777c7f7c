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
	"github.com/SscSPs/club_billing_app/internal/utils/billing"
	"github.com/SscSPs/club_billing_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	ledgerRepo     portsrepo.LedgerRepositoryFacade
	enrollmentRepo portsrepo.EnrollmentReader
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerTenantGuard makes the ledger service reject unknown or disabled tenants.
func WithLedgerTenantGuard(guard portsrepo.TenantReader) LedgerServiceOption {
	return func(s *ledgerService) {
		s.TenantGuard = guard
	}
}

// WithLedgerClock overrides the clock used for dates and timestamps.
func WithLedgerClock(clock func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.Clock = clock
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, enrollmentRepo portsrepo.EnrollmentReader, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		ledgerRepo:     ledgerRepo,
		enrollmentRepo: enrollmentRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// GetEntry retrieves a single ledger entry.
func (s *ledgerService) GetEntry(ctx context.Context, tenantID string, entryID int64) (*domain.FinanceEntry, error) {
	entry, err := s.ledgerRepo.FindEntryByID(ctx, tenantID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get ledger entry", slog.Int64("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

// ListEntries retrieves a page of ledger entries, newest first.
func (s *ledgerService) ListEntries(ctx context.Context, tenantID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	limit := pagination.NormalizeLimit(params.Limit)
	entries, nextToken, err := s.ledgerRepo.ListEntries(ctx, tenantID, params.ToEntryFilter(), limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries", slog.String("tenant_id", tenantID))
		return nil, err
	}
	if entries == nil {
		entries = []domain.FinanceEntry{}
	}
	return &dto.ListEntriesResponse{Entries: entries, NextToken: nextToken}, nil
}

// IssueProforma bills a membership for its prorated due.
func (s *ledgerService) IssueProforma(ctx context.Context, tenantID, membershipID, createdBy string) (*domain.FinanceEntry, error) {
	if err := s.AuthorizeTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	view, err := s.enrollmentRepo.FindMembershipView(ctx, tenantID, membershipID)
	if err != nil {
		return nil, err
	}
	if !view.Membership.Active {
		return nil, fmt.Errorf("%w: membership %s is not active", apperrors.ErrValidation, membershipID)
	}

	existing, err := s.findOpenProforma(ctx, tenantID, membershipID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.LogDebug(ctx, "Open proforma already exists", slog.Int64("entry_id", existing.EntryID))
		return existing, nil
	}

	var issued *domain.FinanceEntry
	err = retryOnConflict(ctx, func() error {
		issued = nil
		entry, err := s.buildProforma(ctx, *view, createdBy)
		if err != nil || entry == nil {
			return err
		}
		result, err := s.ledgerRepo.ApplyPosting(ctx, domain.LedgerPosting{
			TenantID: tenantID,
			Entries:  []domain.FinanceEntry{*entry},
		})
		if err != nil {
			return err
		}
		issued = &result.Entries[0]
		return nil
	})
	if errors.Is(err, apperrors.ErrOpenProformaExists) {
		// A concurrent request issued it first; the winner's entry is the answer.
		return s.ledgerRepo.FindOpenProforma(ctx, tenantID, membershipID)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to issue proforma", slog.String("membership_id", membershipID))
		return nil, err
	}
	if issued == nil {
		return nil, nil
	}

	s.LogInfo(ctx, "Proforma issued",
		slog.String("membership_id", membershipID),
		slog.Int64("entry_id", issued.EntryID),
		slog.String("amount", issued.Amount.StringFixed(2)))
	return issued, nil
}

// CloseAndInvoice settles an open proforma by hand.
func (s *ledgerService) CloseAndInvoice(ctx context.Context, tenantID string, proformaID int64, paymentNote, createdBy string) (*domain.Settlement, error) {
	if err := s.AuthorizeTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	proforma, err := s.ledgerRepo.FindEntryByID(ctx, tenantID, proformaID)
	if err != nil {
		return nil, err
	}
	var result *domain.PostingResult
	err = retryOnReferenceClash(ctx, func() error {
		posting, err := settlementPosting(*proforma, paymentNote, s.Now(), createdBy)
		if err != nil {
			return err
		}
		result, err = s.ledgerRepo.ApplyPosting(ctx, posting)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to settle proforma", slog.Int64("entry_id", proformaID))
		return nil, err
	}

	s.LogInfo(ctx, "Proforma settled", slog.Int64("entry_id", proformaID))
	return settlementFromResult(*proforma, result, 0)
}

// CancelOpenProforma cancels the open proforma of a membership.
func (s *ledgerService) CancelOpenProforma(ctx context.Context, tenantID, membershipID, reason, createdBy string) (*domain.FinanceEntry, error) {
	if err := s.AuthorizeTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	var info *domain.FinanceEntry
	err := retryOnConflict(ctx, func() error {
		info = nil
		open, err := s.findOpenProforma(ctx, tenantID, membershipID)
		if err != nil || open == nil {
			return err
		}
		posting, err := cancellationPosting(*open, reason, s.Now(), createdBy)
		if err != nil {
			return err
		}
		result, err := s.ledgerRepo.ApplyPosting(ctx, posting)
		if err != nil {
			return err
		}
		info = &result.Entries[0]
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to cancel proforma", slog.String("membership_id", membershipID))
		return nil, err
	}
	if info != nil {
		s.LogInfo(ctx, "Proforma cancelled", slog.String("membership_id", membershipID))
	}
	return info, nil
}

// ReissueProforma replaces the open proforma of a membership with one for its current
// terms, in one posting.
func (s *ledgerService) ReissueProforma(ctx context.Context, tenantID, membershipID, reason, createdBy string) (*domain.FinanceEntry, error) {
	if err := s.AuthorizeTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	var issued *domain.FinanceEntry
	err := retryOnConflict(ctx, func() error {
		issued = nil
		view, err := s.enrollmentRepo.FindMembershipView(ctx, tenantID, membershipID)
		if err != nil {
			return err
		}
		if !view.Membership.Active {
			return fmt.Errorf("%w: membership %s is not active", apperrors.ErrValidation, membershipID)
		}

		posting := domain.LedgerPosting{TenantID: tenantID}
		open, err := s.findOpenProforma(ctx, tenantID, membershipID)
		if err != nil {
			return err
		}
		if open != nil {
			posting, err = cancellationPosting(*open, reason, s.Now(), createdBy)
			if err != nil {
				return err
			}
		}

		next, err := s.buildProforma(ctx, *view, createdBy)
		if err != nil {
			return err
		}
		if next != nil {
			if open != nil && open.Amount.Equal(next.Amount) {
				// Same terms: keep the proforma that may already be on its way to the bank.
				issued = open
				return nil
			}
			posting.Entries = append(posting.Entries, *next)
		}
		if posting.IsEmpty() {
			return nil
		}

		result, err := s.ledgerRepo.ApplyPosting(ctx, posting)
		if errors.Is(err, apperrors.ErrOpenProformaExists) {
			return fmt.Errorf("%w: proforma issued concurrently", apperrors.ErrConflict)
		}
		if err != nil {
			return err
		}
		if next != nil {
			issued = &result.Entries[len(result.Entries)-1]
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to reissue proforma", slog.String("membership_id", membershipID))
		return nil, err
	}
	s.LogInfo(ctx, "Proforma reissued", slog.String("membership_id", membershipID), slog.Bool("issued", issued != nil))
	return issued, nil
}

// EndMembership terminates a membership: any open due is cancelled and exactly one of a
// refund or a zero-amount end marker is posted.
func (s *ledgerService) EndMembership(ctx context.Context, tenantID, membershipID string, refundAmount decimal.Decimal, createdBy string) (*domain.FinanceEntry, error) {
	if refundAmount.IsNegative() {
		return nil, fmt.Errorf("%w: refund amount must not be negative", apperrors.ErrValidation)
	}
	if !refundAmount.Equal(refundAmount.Round(2)) {
		return nil, fmt.Errorf("%w: refund amount has more than 2 decimal places", apperrors.ErrValidation)
	}
	if err := s.AuthorizeTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	var closing *domain.FinanceEntry
	err := retryOnConflict(ctx, func() error {
		view, err := s.enrollmentRepo.FindMembershipView(ctx, tenantID, membershipID)
		if err != nil {
			return err
		}
		if !view.Membership.Active {
			return fmt.Errorf("%w: membership %s has already ended", apperrors.ErrValidation, membershipID)
		}

		now := s.Now()
		posting := domain.LedgerPosting{TenantID: tenantID}
		open, err := s.findOpenProforma(ctx, tenantID, membershipID)
		if err != nil {
			return err
		}
		if open != nil {
			posting, err = cancellationPosting(*open, titleMembershipEnd, now, createdBy)
			if err != nil {
				return err
			}
		}

		fields := entryFields{
			childID:      view.Child.ChildID,
			membershipID: &view.Membership.MembershipID,
			eventType:    domain.EventMembershipEnd,
			direction:    domain.Credit,
			status:       domain.StatusClosed,
			title:        titleMembershipEnd,
			amount:       decimal.Zero,
			identifier:   view.Child.ReferenceIdentifier,
			note:         view.Group.Name,
		}
		if refundAmount.IsPositive() {
			fields.eventType = domain.EventRefund
			fields.title = titleRefund
			fields.amount = refundAmount
		}
		entry, err := newEntry(tenantID, fields, now, createdBy)
		if err != nil {
			return err
		}
		posting.Entries = append(posting.Entries, entry)
		posting.DeactivateMembershipID = &view.Membership.MembershipID

		result, err := s.ledgerRepo.ApplyPosting(ctx, posting)
		if err != nil {
			return err
		}
		closing = &result.Entries[len(result.Entries)-1]
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to end membership", slog.String("membership_id", membershipID))
		return nil, err
	}

	s.LogInfo(ctx, "Membership ended",
		slog.String("membership_id", membershipID),
		slog.String("event_type", string(closing.EventType)),
		slog.String("amount", closing.Amount.StringFixed(2)))
	return closing, nil
}

// RecordSale posts an open one-off charge for a child.
func (s *ledgerService) RecordSale(ctx context.Context, tenantID, childID, title string, amount decimal.Decimal, createdBy string) (*domain.FinanceEntry, error) {
	title = strings.TrimSpace(title)
	if err := validateSale(title, amount); err != nil {
		return nil, err
	}
	if err := s.AuthorizeTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	child, err := s.enrollmentRepo.FindChildByID(ctx, tenantID, childID)
	if err != nil {
		return nil, err
	}
	var result *domain.PostingResult
	err = retryOnReferenceClash(ctx, func() error {
		sale, err := newEntry(tenantID, entryFields{
			childID:    child.ChildID,
			eventType:  domain.EventSale,
			direction:  domain.Debit,
			status:     domain.StatusOpen,
			title:      title,
			amount:     amount,
			identifier: child.ReferenceIdentifier,
		}, s.Now(), createdBy)
		if err != nil {
			return err
		}
		result, err = s.ledgerRepo.ApplyPosting(ctx, domain.LedgerPosting{TenantID: tenantID, Entries: []domain.FinanceEntry{sale}})
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record sale", slog.String("child_id", childID))
		return nil, err
	}
	recorded := result.Entries[0]
	s.LogInfo(ctx, "Sale recorded", slog.String("child_id", childID), slog.Int64("entry_id", recorded.EntryID))
	return &recorded, nil
}

// MarkSalePaid closes the oldest open sale of the child matching title and amount. Sales
// carry no link to their payment, so two identical sales are indistinguishable here.
func (s *ledgerService) MarkSalePaid(ctx context.Context, tenantID, childID, title string, amount decimal.Decimal, createdBy string) (*domain.SaleSettlement, error) {
	title = strings.TrimSpace(title)
	if err := validateSale(title, amount); err != nil {
		return nil, err
	}
	if err := s.AuthorizeTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	var settled *domain.SaleSettlement
	err := retryOnConflict(ctx, func() error {
		sale, err := s.ledgerRepo.FindOldestOpenSale(ctx, tenantID, childID, title, amount)
		if err != nil {
			return err
		}
		payment, err := newEntry(tenantID, entryFields{
			childID:    sale.ChildID,
			eventType:  domain.EventPayment,
			direction:  domain.Credit,
			status:     domain.StatusClosed,
			title:      titlePayment,
			amount:     sale.Amount,
			identifier: sale.ReferenceIdentifier,
			note:       "Settles " + sale.ReferenceCode,
		}, s.Now(), createdBy)
		if err != nil {
			return err
		}
		result, err := s.ledgerRepo.ApplyPosting(ctx, domain.LedgerPosting{
			TenantID: tenantID,
			Transitions: []domain.EntryTransition{
				{EntryID: sale.EntryID, From: domain.StatusOpen, To: domain.StatusClosed},
			},
			Entries: []domain.FinanceEntry{payment},
		})
		if err != nil {
			return err
		}
		closed := *sale
		closed.Status = domain.StatusClosed
		settled = &domain.SaleSettlement{Sale: closed, Payment: result.Entries[0]}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to mark sale paid", slog.String("child_id", childID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Sale marked paid", slog.String("child_id", childID), slog.Int64("entry_id", settled.Sale.EntryID))
	return settled, nil
}

// findOpenProforma returns nil, nil when the membership has no open proforma.
func (s *ledgerService) findOpenProforma(ctx context.Context, tenantID, membershipID string) (*domain.FinanceEntry, error) {
	open, err := s.ledgerRepo.FindOpenProforma(ctx, tenantID, membershipID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	return open, err
}

// buildProforma computes the due of a membership and returns the entry to post, or nil
// when nothing is due.
func (s *ledgerService) buildProforma(ctx context.Context, view domain.MembershipView, createdBy string) (*domain.FinanceEntry, error) {
	due := billing.ComputeDue(view, s.Today())
	if !due.DueAmount.IsPositive() {
		s.LogDebug(ctx, "Nothing to bill", slog.String("membership_id", view.Membership.MembershipID))
		return nil, nil
	}

	entry, err := newEntry(view.Membership.TenantID, entryFields{
		childID:      view.Child.ChildID,
		membershipID: &view.Membership.MembershipID,
		eventType:    domain.EventProforma,
		direction:    domain.Debit,
		status:       domain.StatusOpen,
		title:        titleMembership + " " + view.Group.Name,
		amount:       due.DueAmount,
		identifier:   view.Child.ReferenceIdentifier,
		note: fmt.Sprintf("%d/%d months from %s", due.PayableMonths, billing.FullPeriodMonths,
			due.EffectiveStartMonth.Format("2006-01")),
	}, s.Now(), createdBy)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func validateSale(title string, amount decimal.Decimal) error {
	if title == "" {
		return fmt.Errorf("%w: sale title is required", apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: sale amount must be greater than zero", apperrors.ErrValidation)
	}
	if !amount.Equal(amount.Round(2)) {
		return fmt.Errorf("%w: sale amount has more than 2 decimal places", apperrors.ErrValidation)
	}
	return nil
}
