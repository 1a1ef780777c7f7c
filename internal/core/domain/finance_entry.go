package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EventType classifies a ledger entry.
type EventType string

const (
	EventProforma      EventType = "PROFORMA"       // open due for a membership
	EventInvoice       EventType = "INVOICE"        // settled record of a due
	EventPayment       EventType = "PAYMENT"        // money received
	EventSale          EventType = "SALE"           // one-off charge (kit, camp, ...)
	EventRefund        EventType = "REFUND"         // money returned on membership end
	EventMembershipEnd EventType = "MEMBERSHIP_END" // zero-amount termination marker
	EventInfo          EventType = "INFO"           // note, e.g. why a proforma was cancelled
)

// Direction says who owes whom.
type Direction string

const (
	Debit  Direction = "DEBIT"  // owed by the child
	Credit Direction = "CREDIT" // owed to the child, or received
)

// EntryStatus is the lifecycle state of a ledger entry.
type EntryStatus string

const (
	StatusOpen      EntryStatus = "OPEN"
	StatusClosed    EntryStatus = "CLOSED"
	StatusCancelled EntryStatus = "CANCELLED"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidEntry      = errors.New("invalid finance entry")
)

// IsValid reports whether t is a known event type.
func (t EventType) IsValid() bool {
	switch t {
	case EventProforma, EventInvoice, EventPayment, EventSale, EventRefund, EventMembershipEnd, EventInfo:
		return true
	}
	return false
}

// IsValid reports whether d is a known direction.
func (d Direction) IsValid() bool {
	return d == Debit || d == Credit
}

// IsValid reports whether s is a known status.
func (s EntryStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusClosed, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible from s.
func (s EntryStatus) IsTerminal() bool {
	return s == StatusClosed || s == StatusCancelled
}

// CanTransitionTo reports whether s -> next is allowed. Only open entries move.
func (s EntryStatus) CanTransitionTo(next EntryStatus) bool {
	return s == StatusOpen && (next == StatusClosed || next == StatusCancelled)
}

// FinanceEntry is the unit of record of the ledger. Apart from Status it never changes
// after it has been written.
type FinanceEntry struct {
	EntryID             int64           `json:"entryID"`
	TenantID            string          `json:"tenantID"`
	ChildID             string          `json:"childID"`
	MembershipID        *string         `json:"membershipID,omitempty"`
	EventType           EventType       `json:"eventType"`
	Direction           Direction       `json:"direction"`
	Status              EntryStatus     `json:"status"`
	Title               string          `json:"title"`
	Amount              decimal.Decimal `json:"amount"`
	ReferenceIdentifier string          `json:"referenceIdentifier"`
	ReferenceCode       string          `json:"referenceCode"`
	Note                string          `json:"note"`
	OccurredOn          time.Time       `json:"occurredOn"`
	CreatedAt           time.Time       `json:"createdAt"`
	CreatedBy           string          `json:"createdBy"`
}

// IsOpenDebit reports whether the entry is money still owed by the child.
func (e FinanceEntry) IsOpenDebit() bool {
	return e.Direction == Debit && e.Status == StatusOpen
}

// Validate checks the structural invariants of an entry before it is written.
func (e FinanceEntry) Validate() error {
	if e.TenantID == "" {
		return fmt.Errorf("%w: tenant ID is required", ErrInvalidEntry)
	}
	if e.ChildID == "" {
		return fmt.Errorf("%w: child ID is required", ErrInvalidEntry)
	}
	if !e.EventType.IsValid() {
		return fmt.Errorf("%w: unknown event type %q", ErrInvalidEntry, e.EventType)
	}
	if !e.Direction.IsValid() {
		return fmt.Errorf("%w: unknown direction %q", ErrInvalidEntry, e.Direction)
	}
	if !e.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidEntry, e.Status)
	}
	if e.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidEntry)
	}
	if !e.Amount.Equal(e.Amount.Round(2)) {
		return fmt.Errorf("%w: amount %s has more than 2 decimal places", ErrInvalidEntry, e.Amount.String())
	}
	if e.EventType == EventProforma {
		if e.Direction != Debit {
			return fmt.Errorf("%w: proforma must be a debit", ErrInvalidEntry)
		}
		if e.MembershipID == nil || *e.MembershipID == "" {
			return fmt.Errorf("%w: proforma requires a membership", ErrInvalidEntry)
		}
	}
	return nil
}

// EntryFilter narrows a ledger listing. Empty fields do not filter.
type EntryFilter struct {
	ChildID   string
	Status    EntryStatus
	EventType EventType
}
