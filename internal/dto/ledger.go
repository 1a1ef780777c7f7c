package dto

import (
	"github.com/SscSPs/club_billing_app/internal/core/domain"
)

// ProformaResponse is returned by proforma issuance. Issued is false when there was
// nothing to bill.
type ProformaResponse struct {
	Issued bool                 `json:"issued"`
	Entry  *domain.FinanceEntry `json:"entry,omitempty"`
}

// CancelProformaRequest carries the reason recorded in the info entry.
type CancelProformaRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// SettleProformaRequest closes a proforma by hand.
type SettleProformaRequest struct {
	PaymentNote string `json:"paymentNote" binding:"max=500"`
}

// EndMembershipRequest terminates a membership. An empty refund means no refund.
type EndMembershipRequest struct {
	RefundAmount string `json:"refundAmount" binding:"omitempty,numeric"`
}

// SaleRequest identifies a one-off charge of a child.
type SaleRequest struct {
	ChildID string `json:"childID" binding:"required,uuid"`
	Title   string `json:"title" binding:"required,max=200"`
	Amount  string `json:"amount" binding:"required,numeric"`
}

// ListEntriesParams defines the query parameters for listing ledger entries.
type ListEntriesParams struct {
	ChildID   string  `form:"childID" binding:"omitempty,uuid"`
	Status    string  `form:"status" binding:"omitempty,oneof=OPEN CLOSED CANCELLED"`
	EventType string  `form:"eventType" binding:"omitempty,oneof=PROFORMA INVOICE PAYMENT SALE REFUND MEMBERSHIP_END INFO"`
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// ToEntryFilter converts the query parameters to a repository filter.
func (p ListEntriesParams) ToEntryFilter() domain.EntryFilter {
	return domain.EntryFilter{
		ChildID:   p.ChildID,
		Status:    domain.EntryStatus(p.Status),
		EventType: domain.EventType(p.EventType),
	}
}

// ListEntriesResponse is one page of ledger entries.
type ListEntriesResponse struct {
	Entries   []domain.FinanceEntry `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}
