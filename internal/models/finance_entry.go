package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// FinanceEntry represents a row of finance_entries. entry_id is a BIGSERIAL.
type FinanceEntry struct {
	EntryID             int64           `db:"entry_id"`
	TenantID            string          `db:"tenant_id"`
	ChildID             string          `db:"child_id"`
	MembershipID        sql.NullString  `db:"membership_id"`
	EventType           string          `db:"event_type"`
	Direction           string          `db:"direction"`
	Status              string          `db:"status"`
	Title               string          `db:"title"`
	Amount              decimal.Decimal `db:"amount"`
	ReferenceIdentifier string          `db:"reference_identifier"`
	ReferenceCode       string          `db:"reference_code"`
	Note                string          `db:"note"`
	OccurredOn          time.Time       `db:"occurred_on"`
	CreatedAt           time.Time       `db:"created_at"`
	CreatedBy           string          `db:"created_by"`
}

// IncomingPayment represents a row of incoming_payments.
type IncomingPayment struct {
	PaymentID           int64           `db:"payment_id"`
	TenantID            string          `db:"tenant_id"`
	ReceivedDate        time.Time       `db:"received_date"`
	ReferenceIdentifier string          `db:"reference_identifier"`
	Amount              decimal.Decimal `db:"amount"`
	SenderName          string          `db:"sender_name"`
	Note                string          `db:"note"`
	CreatedAt           time.Time       `db:"created_at"`
	CreatedBy           string          `db:"created_by"`
}
