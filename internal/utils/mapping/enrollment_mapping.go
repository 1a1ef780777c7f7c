package mapping

import (
	"github.com/SscSPs/club_billing_app/internal/core/domain"
	"github.com/SscSPs/club_billing_app/internal/models"
)

// ToModelTenant converts a domain Tenant to a model Tenant
func ToModelTenant(d domain.Tenant) models.Tenant {
	return models.Tenant{
		TenantID:         d.TenantID,
		Slug:             d.Slug,
		Name:             d.Name,
		IsActive:         d.IsActive,
		NextReferenceSeq: d.NextReferenceSeq,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTenant converts a model Tenant to a domain Tenant
func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		TenantID:         m.TenantID,
		Slug:             m.Slug,
		Name:             m.Name,
		IsActive:         m.IsActive,
		NextReferenceSeq: m.NextReferenceSeq,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelGroup converts a domain Group to a model Group
func ToModelGroup(d domain.Group) models.Group {
	return models.Group{
		GroupID:     d.GroupID,
		TenantID:    d.TenantID,
		Name:        d.Name,
		StartDate:   toNullTime(d.StartDate),
		EndDate:     toNullTime(d.EndDate),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGroup converts a model Group to a domain Group
func ToDomainGroup(m models.Group) domain.Group {
	return domain.Group{
		GroupID:     m.GroupID,
		TenantID:    m.TenantID,
		Name:        m.Name,
		StartDate:   fromNullTime(m.StartDate),
		EndDate:     fromNullTime(m.EndDate),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAttendanceOption converts a model AttendanceOption to a domain AttendanceOption
func ToDomainAttendanceOption(m models.AttendanceOption) domain.AttendanceOption {
	return domain.AttendanceOption{
		OptionID:         m.OptionID,
		GroupID:          m.GroupID,
		Name:             m.Name,
		FrequencyPerWeek: m.FrequencyPerWeek,
		FullPrice:        m.FullPrice,
	}
}

// ToModelAttendanceOption converts a domain AttendanceOption to a model AttendanceOption
func ToModelAttendanceOption(d domain.AttendanceOption) models.AttendanceOption {
	return models.AttendanceOption{
		OptionID:         d.OptionID,
		GroupID:          d.GroupID,
		Name:             d.Name,
		FrequencyPerWeek: d.FrequencyPerWeek,
		FullPrice:        d.FullPrice,
	}
}

// ToDomainChild converts a model Child to a domain Child
func ToDomainChild(m models.Child) domain.Child {
	return domain.Child{
		ChildID:             m.ChildID,
		TenantID:            m.TenantID,
		ReferenceIdentifier: m.ReferenceIdentifier,
		FirstName:           m.FirstName,
		LastName:            m.LastName,
		CreatedAt:           m.CreatedAt,
	}
}

// ToModelChild converts a domain Child to a model Child
func ToModelChild(d domain.Child) models.Child {
	return models.Child{
		ChildID:             d.ChildID,
		TenantID:            d.TenantID,
		ReferenceIdentifier: d.ReferenceIdentifier,
		FirstName:           d.FirstName,
		LastName:            d.LastName,
		CreatedAt:           d.CreatedAt,
	}
}

// ToModelMembership converts a domain Membership to a model Membership
func ToModelMembership(d domain.Membership) models.Membership {
	return models.Membership{
		MembershipID:       d.MembershipID,
		TenantID:           d.TenantID,
		ChildID:            d.ChildID,
		GroupID:            d.GroupID,
		AttendanceOptionID: toNullString(d.AttendanceOptionID),
		BillingStartMonth:  toNullTime(d.BillingStartMonth),
		RegisteredAt:       d.RegisteredAt,
		Active:             d.Active,
	}
}

// ToDomainMembership converts a model Membership to a domain Membership
func ToDomainMembership(m models.Membership) domain.Membership {
	return domain.Membership{
		MembershipID:       m.MembershipID,
		TenantID:           m.TenantID,
		ChildID:            m.ChildID,
		GroupID:            m.GroupID,
		AttendanceOptionID: fromNullString(m.AttendanceOptionID),
		BillingStartMonth:  fromNullTime(m.BillingStartMonth),
		RegisteredAt:       m.RegisteredAt,
		Active:             m.Active,
	}
}
