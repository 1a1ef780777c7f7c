package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/club_billing_app/internal/apperrors"
	"github.com/SscSPs/club_billing_app/internal/core/domain"
	"github.com/SscSPs/club_billing_app/internal/utils"
	"github.com/shopspring/decimal"
)

const (
	titleMembership    = "Membership"
	titlePayment       = "Payment"
	titleRefund        = "Refund"
	titleMembershipEnd = "Membership ended"
	titleCancellation  = "Proforma cancelled"
)

// entryFields is what varies between the entries the ledger posts.
type entryFields struct {
	childID      string
	membershipID *string
	eventType    domain.EventType
	direction    domain.Direction
	status       domain.EntryStatus
	title        string
	amount       decimal.Decimal
	identifier   string
	note         string
}

func newEntry(tenantID string, fields entryFields, now time.Time, createdBy string) (domain.FinanceEntry, error) {
	code, err := utils.GenerateReferenceCode(utils.ReferencePrefix(fields.eventType))
	if err != nil {
		return domain.FinanceEntry{}, fmt.Errorf("failed to generate reference code: %w", err)
	}
	return domain.FinanceEntry{
		TenantID:            tenantID,
		ChildID:             fields.childID,
		MembershipID:        fields.membershipID,
		EventType:           fields.eventType,
		Direction:           fields.direction,
		Status:              fields.status,
		Title:               fields.title,
		Amount:              fields.amount.Round(2),
		ReferenceIdentifier: strings.TrimSpace(fields.identifier),
		ReferenceCode:       code,
		Note:                fields.note,
		OccurredOn:          dateOf(now),
		CreatedAt:           now,
		CreatedBy:           createdBy,
	}, nil
}

// settlementPosting closes an open proforma and records the payment and invoice that
// settle it. Both new entries point back to the proforma's reference code.
func settlementPosting(proforma domain.FinanceEntry, paymentNote string, now time.Time, createdBy string) (domain.LedgerPosting, error) {
	if proforma.EventType != domain.EventProforma {
		return domain.LedgerPosting{}, fmt.Errorf("%w: entry %d is a %s, not a proforma", apperrors.ErrValidation, proforma.EntryID, proforma.EventType)
	}
	if proforma.Status != domain.StatusOpen {
		return domain.LedgerPosting{}, fmt.Errorf("%w: proforma %d is %s", apperrors.ErrConflict, proforma.EntryID, proforma.Status)
	}

	note := "Settles " + proforma.ReferenceCode
	if paymentNote = strings.TrimSpace(paymentNote); paymentNote != "" {
		note = note + ": " + paymentNote
	}

	payment, err := newEntry(proforma.TenantID, entryFields{
		childID:      proforma.ChildID,
		membershipID: proforma.MembershipID,
		eventType:    domain.EventPayment,
		direction:    domain.Credit,
		status:       domain.StatusClosed,
		title:        titlePayment,
		amount:       proforma.Amount,
		identifier:   proforma.ReferenceIdentifier,
		note:         note,
	}, now, createdBy)
	if err != nil {
		return domain.LedgerPosting{}, err
	}
	invoice, err := newEntry(proforma.TenantID, entryFields{
		childID:      proforma.ChildID,
		membershipID: proforma.MembershipID,
		eventType:    domain.EventInvoice,
		direction:    domain.Debit,
		status:       domain.StatusClosed,
		title:        proforma.Title,
		amount:       proforma.Amount,
		identifier:   proforma.ReferenceIdentifier,
		note:         "Invoice for " + proforma.ReferenceCode,
	}, now, createdBy)
	if err != nil {
		return domain.LedgerPosting{}, err
	}

	return domain.LedgerPosting{
		TenantID: proforma.TenantID,
		Transitions: []domain.EntryTransition{
			{EntryID: proforma.EntryID, From: domain.StatusOpen, To: domain.StatusClosed},
		},
		Entries: []domain.FinanceEntry{payment, invoice},
	}, nil
}

// settlementFromResult assembles a Settlement from a posting built by settlementPosting.
// offset is the index of the payment entry within the result.
func settlementFromResult(proforma domain.FinanceEntry, result *domain.PostingResult, offset int) (*domain.Settlement, error) {
	if result == nil || len(result.Entries) < offset+2 {
		return nil, fmt.Errorf("%w: settlement posting returned no payment and invoice", apperrors.ErrInvariant)
	}
	proforma.Status = domain.StatusClosed
	return &domain.Settlement{
		Proforma: proforma,
		Payment:  result.Entries[offset],
		Invoice:  result.Entries[offset+1],
	}, nil
}

// cancellationPosting cancels an open proforma and adds the info note explaining why.
func cancellationPosting(proforma domain.FinanceEntry, reason string, now time.Time, createdBy string) (domain.LedgerPosting, error) {
	note := "Cancelled " + proforma.ReferenceCode
	if reason = strings.TrimSpace(reason); reason != "" {
		note = note + ": " + reason
	}
	info, err := newEntry(proforma.TenantID, entryFields{
		childID:      proforma.ChildID,
		membershipID: proforma.MembershipID,
		eventType:    domain.EventInfo,
		direction:    domain.Credit,
		status:       domain.StatusClosed,
		title:        titleCancellation,
		amount:       decimal.Zero,
		identifier:   proforma.ReferenceIdentifier,
		note:         note,
	}, now, createdBy)
	if err != nil {
		return domain.LedgerPosting{}, err
	}
	return domain.LedgerPosting{
		TenantID: proforma.TenantID,
		Transitions: []domain.EntryTransition{
			{EntryID: proforma.EntryID, From: domain.StatusOpen, To: domain.StatusCancelled},
		},
		Entries: []domain.FinanceEntry{info},
	}, nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// maxPostingAttempts bounds how often an operation re-reads and re-posts after losing
// a race on an entry's status or drawing a reference code that is already taken.
const maxPostingAttempts = 3

// retryOnConflict runs fn until it stops failing with apperrors.ErrConflict or
// apperrors.ErrReferenceCodeTaken. fn must build its entries afresh on every call so a
// retry draws new reference codes.
func retryOnConflict(ctx context.Context, fn func() error) error {
	return retryPosting(ctx, fn, apperrors.ErrConflict, apperrors.ErrReferenceCodeTaken)
}

// retryOnReferenceClash runs fn again only when its reference code was already taken.
func retryOnReferenceClash(ctx context.Context, fn func() error) error {
	return retryPosting(ctx, fn, apperrors.ErrReferenceCodeTaken)
}

func retryPosting(ctx context.Context, fn func() error, retryable ...error) error {
	var err error
	for attempt := 0; attempt < maxPostingAttempts; attempt++ {
		err = fn()
		if !slices.ContainsFunc(retryable, func(target error) bool { return errors.Is(err, target) }) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return err
}
