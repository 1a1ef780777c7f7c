package dto

import (
	"strings"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
)

// RecordPaymentRequest is a bank receipt entered by an admin.
type RecordPaymentRequest struct {
	ReceivedDate        string `json:"receivedDate" binding:"required,datetime=2006-01-02"`
	ReferenceIdentifier string `json:"referenceIdentifier" binding:"required,max=32"`
	Amount              string `json:"amount" binding:"required,numeric"`
	SenderName          string `json:"senderName" binding:"max=200"`
	Note                string `json:"note" binding:"max=1000"`
}

// ToIncomingPayment parses the request into a payment of tenantID.
func (r RecordPaymentRequest) ToIncomingPayment(tenantID string) (domain.IncomingPayment, error) {
	received, err := ParseDate(r.ReceivedDate)
	if err != nil {
		return domain.IncomingPayment{}, err
	}
	amount, err := ParsePositiveAmount(r.Amount)
	if err != nil {
		return domain.IncomingPayment{}, err
	}
	return domain.IncomingPayment{
		TenantID:            tenantID,
		ReceivedDate:        received,
		ReferenceIdentifier: strings.TrimSpace(r.ReferenceIdentifier),
		Amount:              amount,
		SenderName:          strings.TrimSpace(r.SenderName),
		Note:                strings.TrimSpace(r.Note),
	}, nil
}

// ListPaymentsParams defines the query parameters for the payment audit trail.
type ListPaymentsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// ListPaymentsResponse is one page of incoming payments, newest first.
type ListPaymentsResponse struct {
	Payments  []domain.IncomingPayment `json:"payments"`
	NextToken *string                  `json:"nextToken,omitempty"`
}
