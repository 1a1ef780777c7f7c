package utils

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/teris-io/shortid"
)

// Reference code prefixes per ledger event type.
const (
	RefPrefixProforma      = "PF-"
	RefPrefixInvoice       = "FV-"
	RefPrefixPayment       = "PM-"
	RefPrefixSale          = "SL-"
	RefPrefixRefund        = "RF-"
	RefPrefixMembershipEnd = "ME-"
	RefPrefixInfo          = "IN-"

	referenceCodeLength = 32
)

var (
	sidGenerator *shortid.Shortid
	sidOnce      sync.Once
	sidErr       error
)

// initShortID seeds the generator per process so that replicas do not walk the same
// sequence. shortid accepts worker ids 0-31.
func initShortID() {
	seed := uuid.New()
	sidGenerator, sidErr = shortid.New(seed[0]%32, shortid.DefaultABC, binary.BigEndian.Uint64(seed[8:]))
}

// GenerateReferenceCode returns a human-traceable code such as "PF-4kN9ZqW-x". The id
// is case-sensitive and never truncated; the total length is capped at 32 characters.
func GenerateReferenceCode(prefix string) (string, error) {
	sidOnce.Do(initShortID)
	if sidErr != nil {
		return "", fmt.Errorf("init short id generator: %w", sidErr)
	}

	availableLen := referenceCodeLength - len(prefix)
	if availableLen <= 0 {
		return "", fmt.Errorf("reference code prefix %q too long", prefix)
	}

	id, err := sidGenerator.Generate()
	if err != nil {
		return "", fmt.Errorf("generate short id: %w", err)
	}
	if len(id) > availableLen {
		return "", fmt.Errorf("short id %q does not fit after prefix %q", id, prefix)
	}
	return prefix + id, nil
}

// ReferencePrefix maps an event type to its reference code prefix.
func ReferencePrefix(eventType domain.EventType) string {
	switch eventType {
	case domain.EventProforma:
		return RefPrefixProforma
	case domain.EventInvoice:
		return RefPrefixInvoice
	case domain.EventPayment:
		return RefPrefixPayment
	case domain.EventSale:
		return RefPrefixSale
	case domain.EventRefund:
		return RefPrefixRefund
	case domain.EventMembershipEnd:
		return RefPrefixMembershipEnd
	default:
		return RefPrefixInfo
	}
}
