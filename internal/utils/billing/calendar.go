// Package billing computes the billing calendar of a group and the prorated dues of a
// membership within it.
package billing

import (
	"time"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
)

// MonthStart returns the canonical month of t: the first day of its month at UTC midnight.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths moves a canonical month by n months. December + 1 rolls into January.
func AddMonths(month time.Time, n int) time.Time {
	index := month.Year()*12 + int(month.Month()) - 1 + n
	return time.Date(index/12, time.Month(index%12+1), 1, 0, 0, 0, 0, time.UTC)
}

// MonthStarts returns every canonical month from month(start) to month(end) inclusive.
// The result is empty when a bound is missing or start is after end.
func MonthStarts(p domain.BillingPeriod) []time.Time {
	if p.Start == nil || p.End == nil {
		return []time.Time{}
	}
	if p.Start.After(*p.End) {
		return []time.Time{}
	}

	last := MonthStart(*p.End)
	months := []time.Time{}
	for current := MonthStart(*p.Start); !current.After(last); current = AddMonths(current, 1) {
		months = append(months, current)
	}
	return months
}

// NormalizeStartMonth turns a requested start (or the fallback when nothing was
// requested) into a canonical month of the calendar. Out-of-range values snap to the
// nearest end of the calendar. Groups without a calendar accept any month.
func NormalizeStartMonth(p domain.BillingPeriod, requested *time.Time, fallback time.Time) time.Time {
	base := fallback
	if requested != nil {
		base = *requested
	}

	months := MonthStarts(p)
	if len(months) == 0 {
		return MonthStart(base)
	}

	return clampMonth(MonthStart(base), months[0], months[len(months)-1])
}

func clampMonth(month, first, last time.Time) time.Time {
	if month.Before(first) {
		return first
	}
	if month.After(last) {
		return last
	}
	return month
}
