package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Group is a training group of a sport. Its start/end dates form the billing calendar.
type Group struct {
	GroupID   string     `json:"groupID"`
	TenantID  string     `json:"tenantID"`
	Name      string     `json:"name"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	AuditFields
}

// BillingPeriod returns the calendar bounds used for proration.
func (g Group) BillingPeriod() BillingPeriod {
	return BillingPeriod{Start: g.StartDate, End: g.EndDate}
}

// AttendanceOption is a priced attendance plan of a group (e.g. "2x per week").
type AttendanceOption struct {
	OptionID         string          `json:"optionID"`
	GroupID          string          `json:"groupID"`
	Name             string          `json:"name"`
	FrequencyPerWeek int             `json:"frequencyPerWeek"`
	FullPrice        decimal.Decimal `json:"fullPrice"` // price of a full billing period
}

// Child is an enrolled member. ReferenceIdentifier is what parents put on bank transfers.
type Child struct {
	ChildID             string    `json:"childID"`
	TenantID            string    `json:"tenantID"`
	ReferenceIdentifier string    `json:"referenceIdentifier"`
	FirstName           string    `json:"firstName"`
	LastName            string    `json:"lastName"`
	CreatedAt           time.Time `json:"createdAt"`
}

// Membership is a child's enrollment in a group.
type Membership struct {
	MembershipID       string     `json:"membershipID"`
	TenantID           string     `json:"tenantID"`
	ChildID            string     `json:"childID"`
	GroupID            string     `json:"groupID"`
	AttendanceOptionID *string    `json:"attendanceOptionID,omitempty"`
	BillingStartMonth  *time.Time `json:"billingStartMonth,omitempty"` // first day of a month when set
	RegisteredAt       time.Time  `json:"registeredAt"`
	Active             bool       `json:"active"`
}

// MembershipView is the read-only projection billing consumes.
type MembershipView struct {
	Membership Membership
	Child      Child
	Group      Group
	Option     *AttendanceOption // nil when no option has been selected
}

// FullPrice is the option price, or zero when no option is selected.
func (v MembershipView) FullPrice() decimal.Decimal {
	if v.Option == nil {
		return decimal.Zero
	}
	return v.Option.FullPrice
}
