package billing

import (
	"testing"
	"time"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPayableMonths(t *testing.T) {
	spring := period(date(2026, time.February, 1), date(2026, time.June, 30))
	longYear := period(date(2026, time.September, 1), date(2027, time.June, 30))
	today := date(2026, time.October, 17)

	tests := []struct {
		name   string
		period domain.BillingPeriod
		start  *time.Time
		want   int
	}{
		{"no calendar", domain.BillingPeriod{}, ptr(date(2026, time.April, 1)), FullPeriodMonths},
		{"from april", spring, ptr(date(2026, time.April, 1)), 3},
		{"from calendar start", spring, ptr(date(2026, time.February, 1)), 5},
		{"before calendar", spring, ptr(date(2026, time.January, 1)), 5},
		{"last month owes one", spring, ptr(date(2026, time.June, 1)), 1},
		{"after calendar owes one", spring, ptr(date(2026, time.December, 1)), 1},
		{"long calendar capped", longYear, ptr(date(2026, time.September, 1)), FullPeriodMonths},
		{"long calendar late start", longYear, ptr(date(2027, time.March, 1)), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PayableMonths(tt.period, tt.start, today))
		})
	}
}

func TestPayableMonths_AlwaysInRange(t *testing.T) {
	p := period(date(2026, time.September, 1), date(2027, time.August, 31))
	for offset := -24; offset <= 24; offset++ {
		start := AddMonths(date(2026, time.September, 1), offset)
		got := PayableMonths(p, &start, start)
		assert.GreaterOrEqual(t, got, 1)
		assert.LessOrEqual(t, got, FullPeriodMonths)
	}
}

func TestProratedAmount(t *testing.T) {
	tests := []struct {
		name   string
		price  string
		months int
		want   string
	}{
		{"zero price", "0", 3, "0.00"},
		{"zero price full period", "0.00", FullPeriodMonths, "0.00"},
		{"full period is full price", "1500", FullPeriodMonths, "1500.00"},
		{"three of five", "1500", 3, "900.00"},
		{"one of five", "1499", 1, "299.80"},
		{"sub-cent rounds up", "0.03", 1, "0.01"},
		{"round half up", "1234.56", 3, "740.74"},
		{"odd price", "999.99", 2, "400.00"},
		{"no double rounding", "0.004999999999", FullPeriodMonths, "0.00"},
		{"no double rounding partial", "0.5249999995", 1, "0.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProratedAmount(decimal.RequireFromString(tt.price), tt.months)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestProratedAmount_FullPeriodEqualsRoundedPrice(t *testing.T) {
	for _, price := range []string{"1", "10.5", "1500", "2750.25", "0.01", "0.004999999999", "1234.5649999"} {
		p := decimal.RequireFromString(price)
		assert.True(t, p.Round(2).Equal(ProratedAmount(p, FullPeriodMonths)), price)
	}
}

func TestEffectiveStart(t *testing.T) {
	registered := time.Date(2026, time.January, 20, 15, 4, 5, 0, time.UTC)

	m := domain.Membership{RegisteredAt: registered}
	assert.Equal(t, date(2026, time.January, 1), *EffectiveStart(m))

	m.BillingStartMonth = ptr(date(2026, time.April, 12))
	assert.Equal(t, date(2026, time.April, 1), *EffectiveStart(m))

	assert.Nil(t, EffectiveStart(domain.Membership{}))
}

func TestComputeDue(t *testing.T) {
	start := date(2026, time.February, 1)
	end := date(2026, time.June, 30)
	view := domain.MembershipView{
		Membership: domain.Membership{
			MembershipID:      "m-1",
			BillingStartMonth: ptr(date(2026, time.April, 1)),
			RegisteredAt:      date(2026, time.March, 28),
		},
		Child:  domain.Child{ChildID: "c-1", ReferenceIdentifier: "42"},
		Group:  domain.Group{GroupID: "g-1", StartDate: &start, EndDate: &end},
		Option: &domain.AttendanceOption{FullPrice: decimal.NewFromInt(1500)},
	}
	today := date(2026, time.October, 17)

	t.Run("chosen start month", func(t *testing.T) {
		got := ComputeDue(view, today)
		assert.Equal(t, date(2026, time.April, 1), got.EffectiveStartMonth)
		assert.Equal(t, 3, got.PayableMonths)
		assert.Equal(t, "900.00", got.DueAmount.StringFixed(2))
		assert.Equal(t, "42", got.ReferenceIdentifier)
		assert.False(t, got.Paid)
	})

	t.Run("registered before calendar", func(t *testing.T) {
		v := view
		v.Membership.BillingStartMonth = nil
		v.Membership.RegisteredAt = date(2026, time.January, 14)
		got := ComputeDue(v, today)
		assert.Equal(t, date(2026, time.February, 1), got.EffectiveStartMonth)
		assert.Equal(t, 5, got.PayableMonths)
		assert.Equal(t, "1500.00", got.DueAmount.StringFixed(2))
	})

	t.Run("no option selected", func(t *testing.T) {
		v := view
		v.Option = nil
		got := ComputeDue(v, today)
		assert.True(t, got.DueAmount.IsZero())
		assert.True(t, got.BasePrice.IsZero())
	})
}
