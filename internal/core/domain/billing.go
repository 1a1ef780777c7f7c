package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingPeriod is the date range a group trains in. Either bound may be missing,
// in which case the group has no calendar and is billed at full price.
type BillingPeriod struct {
	Start *time.Time
	End   *time.Time
}

// MembershipBilling is the computed billing view of one membership.
type MembershipBilling struct {
	MembershipID        string          `json:"membershipID"`
	ChildID             string          `json:"childID"`
	ReferenceIdentifier string          `json:"referenceIdentifier"`
	GroupID             string          `json:"groupID"`
	EffectiveStartMonth time.Time       `json:"effectiveStartMonth"`
	PayableMonths       int             `json:"payableMonths"`
	BasePrice           decimal.Decimal `json:"basePrice"`
	DueAmount           decimal.Decimal `json:"dueAmount"`
	Paid                bool            `json:"paid"`
}
