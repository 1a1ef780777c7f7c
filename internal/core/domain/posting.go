package domain

import (
	"fmt"
)

// EntryTransition moves one existing entry from From to To. The write is guarded on
// From, so a transition applied to an entry that has meanwhile changed fails.
type EntryTransition struct {
	EntryID int64
	From    EntryStatus
	To      EntryStatus
}

// LedgerPosting is everything one logical ledger operation writes. It is applied in a
// single database transaction: either all of it becomes visible or none of it.
type LedgerPosting struct {
	TenantID               string
	Payment                *IncomingPayment // raw bank payment to log, if any
	Transitions            []EntryTransition
	Entries                []FinanceEntry
	DeactivateMembershipID *string
}

// PostingResult holds the rows written by a posting, with database IDs filled in.
type PostingResult struct {
	Payment *IncomingPayment
	Entries []FinanceEntry
}

// IsEmpty reports whether applying the posting would write nothing.
func (p LedgerPosting) IsEmpty() bool {
	return p.Payment == nil && len(p.Transitions) == 0 && len(p.Entries) == 0 && p.DeactivateMembershipID == nil
}

// Validate checks every transition and entry of the posting.
func (p LedgerPosting) Validate() error {
	if p.TenantID == "" {
		return fmt.Errorf("%w: posting without tenant", ErrInvalidEntry)
	}
	seen := make(map[int64]bool, len(p.Transitions))
	for _, t := range p.Transitions {
		if !t.From.CanTransitionTo(t.To) {
			return fmt.Errorf("%w: entry %d %s -> %s", ErrInvalidTransition, t.EntryID, t.From, t.To)
		}
		if seen[t.EntryID] {
			return fmt.Errorf("%w: entry %d transitioned twice", ErrInvalidTransition, t.EntryID)
		}
		seen[t.EntryID] = true
	}
	for i, e := range p.Entries {
		if e.TenantID != p.TenantID {
			return fmt.Errorf("%w: entry %d belongs to another tenant", ErrInvalidEntry, i)
		}
		if err := e.Validate(); err != nil {
			return err
		}
	}
	if p.Payment != nil {
		if p.Payment.TenantID != p.TenantID {
			return fmt.Errorf("%w: payment belongs to another tenant", ErrInvalidEntry)
		}
		if err := p.Payment.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidEntry, err)
		}
	}
	return nil
}

// Settlement is the result of closing a proforma: the closed due plus the payment and
// invoice entries posted alongside it.
type Settlement struct {
	Proforma FinanceEntry `json:"proforma"`
	Payment  FinanceEntry `json:"payment"`
	Invoice  FinanceEntry `json:"invoice"`
}

// SaleSettlement is a sale closed by a payment.
type SaleSettlement struct {
	Sale    FinanceEntry `json:"sale"`
	Payment FinanceEntry `json:"payment"`
}
