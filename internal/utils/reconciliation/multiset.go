// Package reconciliation matches recorded bank payments against dues by their
// (reference identifier, amount) pair, counting duplicates.
package reconciliation

import (
	"strings"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentKey is the normalized join key between a payment and a due.
type PaymentKey struct {
	Identifier string
	Amount     string
}

// NormalizeIdentifier trims surrounding whitespace from a reference identifier.
func NormalizeIdentifier(identifier string) string {
	return strings.TrimSpace(identifier)
}

// NormalizeAmount renders an amount rounded half-up to two decimals, e.g. "900.00".
func NormalizeAmount(amount decimal.Decimal) string {
	return amount.Round(2).StringFixed(2)
}

// NewPaymentKey builds the normalized key for an identifier and amount.
func NewPaymentKey(identifier string, amount decimal.Decimal) PaymentKey {
	return PaymentKey{Identifier: NormalizeIdentifier(identifier), Amount: NormalizeAmount(amount)}
}

// PaymentMultiset counts payments per key. TryConsume is destructive, so a multiset
// must be built fresh for every independent scan and never shared between them.
type PaymentMultiset struct {
	counts map[PaymentKey]int
}

// BuildPaymentMultiset counts the given payments by normalized key.
func BuildPaymentMultiset(payments []domain.IncomingPayment) *PaymentMultiset {
	m := &PaymentMultiset{counts: make(map[PaymentKey]int, len(payments))}
	for _, p := range payments {
		m.counts[NewPaymentKey(p.ReferenceIdentifier, p.Amount)]++
	}
	return m
}

// TryConsume removes one payment matching identifier and amount. It reports false and
// leaves the multiset untouched when none remain.
func (m *PaymentMultiset) TryConsume(identifier string, amount decimal.Decimal) bool {
	key := NewPaymentKey(identifier, amount)
	if m.counts[key] <= 0 {
		return false
	}
	m.counts[key]--
	return true
}

// Remaining returns how many payments are left under the key of identifier and amount.
func (m *PaymentMultiset) Remaining(identifier string, amount decimal.Decimal) int {
	return m.counts[NewPaymentKey(identifier, amount)]
}

// Len is the total number of unconsumed payments.
func (m *PaymentMultiset) Len() int {
	total := 0
	for _, n := range m.counts {
		total += n
	}
	return total
}
