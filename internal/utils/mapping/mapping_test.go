package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
	"github.com/SscSPs/club_billing_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembershipMapping_Nullables(t *testing.T) {
	optionID := "opt-1"
	start := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	d := domain.Membership{
		MembershipID:       "m-1",
		TenantID:           "t-1",
		ChildID:            "c-1",
		GroupID:            "g-1",
		AttendanceOptionID: &optionID,
		BillingStartMonth:  &start,
		RegisteredAt:       start,
		Active:             true,
	}

	m := ToModelMembership(d)
	assert.True(t, m.AttendanceOptionID.Valid)
	assert.True(t, m.BillingStartMonth.Valid)
	assert.Equal(t, d, ToDomainMembership(m))

	d.AttendanceOptionID = nil
	d.BillingStartMonth = nil
	m = ToModelMembership(d)
	assert.False(t, m.AttendanceOptionID.Valid)
	assert.False(t, m.BillingStartMonth.Valid)
	back := ToDomainMembership(m)
	assert.Nil(t, back.AttendanceOptionID)
	assert.Nil(t, back.BillingStartMonth)
}

func TestGroupMapping_OpenCalendar(t *testing.T) {
	start := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	g := ToDomainGroup(ToModelGroup(domain.Group{GroupID: "g-1", StartDate: &start}))
	require.NotNil(t, g.StartDate)
	assert.Equal(t, start, *g.StartDate)
	assert.Nil(t, g.EndDate)
	assert.Nil(t, g.BillingPeriod().End)
}

func TestFinanceEntryMapping(t *testing.T) {
	membershipID := "m-1"
	d := domain.FinanceEntry{
		EntryID:      7,
		TenantID:     "t-1",
		ChildID:      "c-1",
		MembershipID: &membershipID,
		EventType:    domain.EventProforma,
		Direction:    domain.Debit,
		Status:       domain.StatusOpen,
		Amount:       decimal.RequireFromString("900.00"),
	}

	m := ToModelFinanceEntry(d)
	assert.Equal(t, "PROFORMA", m.EventType)
	assert.Equal(t, "DEBIT", m.Direction)
	assert.Equal(t, "OPEN", m.Status)

	entries := ToDomainFinanceEntrySlice([]models.FinanceEntry{m})
	require.Len(t, entries, 1)
	assert.Equal(t, d, entries[0])
}
