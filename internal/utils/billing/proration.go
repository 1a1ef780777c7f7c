package billing

import (
	"time"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FullPeriodMonths is the length of a full billing period in months. Prices are quoted
// per full period regardless of how long a group's calendar actually is.
const FullPeriodMonths = 5

var fullPeriod = decimal.NewFromInt(FullPeriodMonths)

// PayableMonths counts the calendar months from the normalized start onwards, clamped to
// [1, FullPeriodMonths]. Groups without a calendar pay the full period.
func PayableMonths(p domain.BillingPeriod, start *time.Time, fallback time.Time) int {
	months := MonthStarts(p)
	if len(months) == 0 {
		return FullPeriodMonths
	}

	effective := NormalizeStartMonth(p, start, fallback)
	count := 0
	for _, m := range months {
		if !m.Before(effective) {
			count++
		}
	}
	return min(max(count, 1), FullPeriodMonths)
}

// ProratedAmount returns fullPrice * payableMonths / FullPeriodMonths rounded half-up to
// two decimal places.
func ProratedAmount(fullPrice decimal.Decimal, payableMonths int) decimal.Decimal {
	if fullPrice.IsZero() {
		return decimal.Zero.Round(2)
	}
	// Amounts are never negative, so DivRound (half away from zero) is round-half-up here.
	return fullPrice.Mul(decimal.NewFromInt(int64(payableMonths))).DivRound(fullPeriod, 2)
}

// EffectiveStart is the start a membership asked for: its billing start month, or the
// month it registered in when none was chosen.
func EffectiveStart(m domain.Membership) *time.Time {
	if m.BillingStartMonth != nil {
		start := MonthStart(*m.BillingStartMonth)
		return &start
	}
	if m.RegisteredAt.IsZero() {
		return nil
	}
	start := MonthStart(m.RegisteredAt)
	return &start
}

// ComputeDue builds the billing view of a membership. Paid is left false; deciding it
// needs the payment history.
func ComputeDue(v domain.MembershipView, today time.Time) domain.MembershipBilling {
	period := v.Group.BillingPeriod()
	effective := NormalizeStartMonth(period, EffectiveStart(v.Membership), today)
	payable := PayableMonths(period, &effective, today)
	base := v.FullPrice()

	return domain.MembershipBilling{
		MembershipID:        v.Membership.MembershipID,
		ChildID:             v.Child.ChildID,
		ReferenceIdentifier: v.Child.ReferenceIdentifier,
		GroupID:             v.Group.GroupID,
		EffectiveStartMonth: effective,
		PayableMonths:       payable,
		BasePrice:           base,
		DueAmount:           ProratedAmount(base, payable),
	}
}
