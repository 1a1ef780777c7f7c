package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Group represents a training group. Start and end dates are nullable.
type Group struct {
	GroupID   string       `db:"group_id"`
	TenantID  string       `db:"tenant_id"`
	Name      string       `db:"name"`
	StartDate sql.NullTime `db:"start_date"`
	EndDate   sql.NullTime `db:"end_date"`
	AuditFields
}

// AttendanceOption is a priced plan of a group.
type AttendanceOption struct {
	OptionID         string          `db:"option_id"`
	GroupID          string          `db:"group_id"`
	Name             string          `db:"name"`
	FrequencyPerWeek int             `db:"frequency_per_week"`
	FullPrice        decimal.Decimal `db:"full_price"`
}

// Child represents an enrolled child.
type Child struct {
	ChildID             string    `db:"child_id"`
	TenantID            string    `db:"tenant_id"`
	ReferenceIdentifier string    `db:"reference_identifier"`
	FirstName           string    `db:"first_name"`
	LastName            string    `db:"last_name"`
	CreatedAt           time.Time `db:"created_at"`
}

// Membership links a child to a group.
type Membership struct {
	MembershipID       string         `db:"membership_id"`
	TenantID           string         `db:"tenant_id"`
	ChildID            string         `db:"child_id"`
	GroupID            string         `db:"group_id"`
	AttendanceOptionID sql.NullString `db:"attendance_option_id"`
	BillingStartMonth  sql.NullTime   `db:"billing_start_month"`
	RegisteredAt       time.Time      `db:"registered_at"`
	Active             bool           `db:"active"`
}
