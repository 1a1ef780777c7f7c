package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func stringPtr(s string) *string {
	return &s
}

func validProforma() domain.FinanceEntry {
	return domain.FinanceEntry{
		TenantID:     "tenant-1",
		ChildID:      "child-1",
		MembershipID: stringPtr("membership-1"),
		EventType:    domain.EventProforma,
		Direction:    domain.Debit,
		Status:       domain.StatusOpen,
		Amount:       decimal.RequireFromString("900.00"),
	}
}

func TestEntryStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to domain.EntryStatus
		want     bool
	}{
		{domain.StatusOpen, domain.StatusClosed, true},
		{domain.StatusOpen, domain.StatusCancelled, true},
		{domain.StatusOpen, domain.StatusOpen, false},
		{domain.StatusClosed, domain.StatusCancelled, false},
		{domain.StatusClosed, domain.StatusOpen, false},
		{domain.StatusCancelled, domain.StatusClosed, false},
		{domain.StatusCancelled, domain.StatusOpen, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestFinanceEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *domain.FinanceEntry)
		wantErr bool
	}{
		{name: "valid proforma", mutate: func(e *domain.FinanceEntry) {}},
		{name: "missing tenant", mutate: func(e *domain.FinanceEntry) { e.TenantID = "" }, wantErr: true},
		{name: "missing child", mutate: func(e *domain.FinanceEntry) { e.ChildID = "" }, wantErr: true},
		{name: "unknown event type", mutate: func(e *domain.FinanceEntry) { e.EventType = "DISCOUNT" }, wantErr: true},
		{name: "negative amount", mutate: func(e *domain.FinanceEntry) { e.Amount = decimal.NewFromInt(-1) }, wantErr: true},
		{name: "three decimals", mutate: func(e *domain.FinanceEntry) { e.Amount = decimal.RequireFromString("10.005") }, wantErr: true},
		{name: "credit proforma", mutate: func(e *domain.FinanceEntry) { e.Direction = domain.Credit }, wantErr: true},
		{name: "proforma without membership", mutate: func(e *domain.FinanceEntry) { e.MembershipID = nil }, wantErr: true},
		{
			name: "sale without membership",
			mutate: func(e *domain.FinanceEntry) {
				e.EventType = domain.EventSale
				e.MembershipID = nil
			},
		},
		{
			name: "zero amount marker",
			mutate: func(e *domain.FinanceEntry) {
				e.EventType = domain.EventMembershipEnd
				e.Amount = decimal.Zero
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validProforma()
			tt.mutate(&e)
			err := e.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidEntry)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLedgerPosting_Validate(t *testing.T) {
	payment := &domain.IncomingPayment{
		TenantID:            "tenant-1",
		ReceivedDate:        time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC),
		ReferenceIdentifier: "0042",
		Amount:              decimal.RequireFromString("900.00"),
	}

	t.Run("valid settlement", func(t *testing.T) {
		p := domain.LedgerPosting{
			TenantID:    "tenant-1",
			Payment:     payment,
			Transitions: []domain.EntryTransition{{EntryID: 1, From: domain.StatusOpen, To: domain.StatusClosed}},
			Entries:     []domain.FinanceEntry{validProforma()},
		}
		assert.NoError(t, p.Validate())
		assert.False(t, p.IsEmpty())
	})

	t.Run("closed entry cannot move", func(t *testing.T) {
		p := domain.LedgerPosting{
			TenantID:    "tenant-1",
			Transitions: []domain.EntryTransition{{EntryID: 1, From: domain.StatusClosed, To: domain.StatusCancelled}},
		}
		assert.ErrorIs(t, p.Validate(), domain.ErrInvalidTransition)
	})

	t.Run("entry transitioned twice", func(t *testing.T) {
		p := domain.LedgerPosting{
			TenantID: "tenant-1",
			Transitions: []domain.EntryTransition{
				{EntryID: 1, From: domain.StatusOpen, To: domain.StatusClosed},
				{EntryID: 1, From: domain.StatusOpen, To: domain.StatusCancelled},
			},
		}
		assert.ErrorIs(t, p.Validate(), domain.ErrInvalidTransition)
	})

	t.Run("entry of another tenant", func(t *testing.T) {
		e := validProforma()
		e.TenantID = "tenant-2"
		p := domain.LedgerPosting{TenantID: "tenant-1", Entries: []domain.FinanceEntry{e}}
		assert.ErrorIs(t, p.Validate(), domain.ErrInvalidEntry)
	})

	t.Run("payment without amount", func(t *testing.T) {
		bad := *payment
		bad.Amount = decimal.Zero
		p := domain.LedgerPosting{TenantID: "tenant-1", Payment: &bad}
		assert.ErrorIs(t, p.Validate(), domain.ErrInvalidEntry)
	})

	t.Run("empty", func(t *testing.T) {
		assert.True(t, domain.LedgerPosting{TenantID: "tenant-1"}.IsEmpty())
	})
}
