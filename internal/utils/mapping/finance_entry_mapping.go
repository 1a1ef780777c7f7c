package mapping

import (
	"github.com/SscSPs/club_billing_app/internal/core/domain"
	"github.com/SscSPs/club_billing_app/internal/models"
)

// ToModelFinanceEntry converts a domain FinanceEntry to a model FinanceEntry
func ToModelFinanceEntry(d domain.FinanceEntry) models.FinanceEntry {
	return models.FinanceEntry{
		EntryID:             d.EntryID,
		TenantID:            d.TenantID,
		ChildID:             d.ChildID,
		MembershipID:        toNullString(d.MembershipID),
		EventType:           string(d.EventType),
		Direction:           string(d.Direction),
		Status:              string(d.Status),
		Title:               d.Title,
		Amount:              d.Amount,
		ReferenceIdentifier: d.ReferenceIdentifier,
		ReferenceCode:       d.ReferenceCode,
		Note:                d.Note,
		OccurredOn:          d.OccurredOn,
		CreatedAt:           d.CreatedAt,
		CreatedBy:           d.CreatedBy,
	}
}

// ToDomainFinanceEntry converts a model FinanceEntry to a domain FinanceEntry
func ToDomainFinanceEntry(m models.FinanceEntry) domain.FinanceEntry {
	return domain.FinanceEntry{
		EntryID:             m.EntryID,
		TenantID:            m.TenantID,
		ChildID:             m.ChildID,
		MembershipID:        fromNullString(m.MembershipID),
		EventType:           domain.EventType(m.EventType),
		Direction:           domain.Direction(m.Direction),
		Status:              domain.EntryStatus(m.Status),
		Title:               m.Title,
		Amount:              m.Amount,
		ReferenceIdentifier: m.ReferenceIdentifier,
		ReferenceCode:       m.ReferenceCode,
		Note:                m.Note,
		OccurredOn:          m.OccurredOn,
		CreatedAt:           m.CreatedAt,
		CreatedBy:           m.CreatedBy,
	}
}

// ToDomainFinanceEntrySlice converts a slice of model FinanceEntries to domain FinanceEntries
func ToDomainFinanceEntrySlice(ms []models.FinanceEntry) []domain.FinanceEntry {
	ds := make([]domain.FinanceEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFinanceEntry(m)
	}
	return ds
}

// ToModelIncomingPayment converts a domain IncomingPayment to a model IncomingPayment
func ToModelIncomingPayment(d domain.IncomingPayment) models.IncomingPayment {
	return models.IncomingPayment{
		PaymentID:           d.PaymentID,
		TenantID:            d.TenantID,
		ReceivedDate:        d.ReceivedDate,
		ReferenceIdentifier: d.ReferenceIdentifier,
		Amount:              d.Amount,
		SenderName:          d.SenderName,
		Note:                d.Note,
		CreatedAt:           d.CreatedAt,
		CreatedBy:           d.CreatedBy,
	}
}

// ToDomainIncomingPayment converts a model IncomingPayment to a domain IncomingPayment
func ToDomainIncomingPayment(m models.IncomingPayment) domain.IncomingPayment {
	return domain.IncomingPayment{
		PaymentID:           m.PaymentID,
		TenantID:            m.TenantID,
		ReceivedDate:        m.ReceivedDate,
		ReferenceIdentifier: m.ReferenceIdentifier,
		Amount:              m.Amount,
		SenderName:          m.SenderName,
		Note:                m.Note,
		CreatedAt:           m.CreatedAt,
		CreatedBy:           m.CreatedBy,
	}
}
