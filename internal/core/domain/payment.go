package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// IncomingPayment is a bank receipt as reported by an admin or a bank feed.
// It is append-only and serves as the reconciliation audit trail.
type IncomingPayment struct {
	PaymentID           int64           `json:"paymentID"`
	TenantID            string          `json:"tenantID"`
	ReceivedDate        time.Time       `json:"receivedDate"`
	ReferenceIdentifier string          `json:"referenceIdentifier"`
	Amount              decimal.Decimal `json:"amount"`
	SenderName          string          `json:"senderName"`
	Note                string          `json:"note"`
	CreatedAt           time.Time       `json:"createdAt"`
	CreatedBy           string          `json:"createdBy"`
}

// Validate checks an incoming payment before it is recorded.
func (p IncomingPayment) Validate() error {
	if p.TenantID == "" {
		return fmt.Errorf("tenant ID is required")
	}
	if strings.TrimSpace(p.ReferenceIdentifier) == "" {
		return fmt.Errorf("reference identifier is required")
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("payment amount must be positive")
	}
	if p.ReceivedDate.IsZero() {
		return fmt.Errorf("received date is required")
	}
	return nil
}

// MatchOutcome describes what reconciliation did with an incoming payment.
type MatchOutcome string

const (
	OutcomeMatched      MatchOutcome = "MATCHED"      // closed an open proforma
	OutcomeUnattributed MatchOutcome = "UNATTRIBUTED" // credited to the child, no due matched
	OutcomeUnmatched    MatchOutcome = "UNMATCHED"    // no child either, raw log only
)

// MatchResult is returned after an incoming payment has been recorded and reconciled.
type MatchResult struct {
	Outcome  MatchOutcome    `json:"outcome"`
	Payment  IncomingPayment `json:"payment"`
	Proforma *FinanceEntry   `json:"proforma,omitempty"`
	Entries  []FinanceEntry  `json:"entries"`
}
