package dto

import (
	"time"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGroupRequest defines data for creating a training group. Dates are YYYY-MM-DD.
type CreateGroupRequest struct {
	Name      string  `json:"name" binding:"required,max=200"`
	StartDate *string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// AddAttendanceOptionRequest defines a priced attendance plan of a group.
type AddAttendanceOptionRequest struct {
	Name             string `json:"name" binding:"required,max=100"`
	FrequencyPerWeek int    `json:"frequencyPerWeek" binding:"required,min=1,max=7"`
	FullPrice        string `json:"fullPrice" binding:"required,numeric"`
}

// RegisterChildRequest defines data for registering a child.
type RegisterChildRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
}

// CreateMembershipRequest enrolls a child in a group. BillingStartMonth is YYYY-MM.
type CreateMembershipRequest struct {
	ChildID            string  `json:"childID" binding:"required,uuid"`
	GroupID            string  `json:"groupID" binding:"required,uuid"`
	AttendanceOptionID *string `json:"attendanceOptionID" binding:"omitempty,uuid"`
	BillingStartMonth  *string `json:"billingStartMonth" binding:"omitempty,yearmonth"`
}

// ChangePlanRequest changes the option or start month of a membership. The open
// proforma is replaced by one for the new terms.
type ChangePlanRequest struct {
	AttendanceOptionID *string `json:"attendanceOptionID" binding:"omitempty,uuid"`
	BillingStartMonth  *string `json:"billingStartMonth" binding:"omitempty,yearmonth"`
	Reason             string  `json:"reason" binding:"max=500"`
}

// MembershipResponse is a membership with its group, option and child summary.
type MembershipResponse struct {
	MembershipID        string           `json:"membershipID"`
	ChildID             string           `json:"childID"`
	ChildName           string           `json:"childName"`
	ReferenceIdentifier string           `json:"referenceIdentifier"`
	GroupID             string           `json:"groupID"`
	GroupName           string           `json:"groupName"`
	AttendanceOptionID  *string          `json:"attendanceOptionID,omitempty"`
	OptionName          string           `json:"optionName,omitempty"`
	FullPrice           decimal.Decimal  `json:"fullPrice"`
	BillingStartMonth   *time.Time       `json:"billingStartMonth,omitempty"`
	RegisteredAt        time.Time        `json:"registeredAt"`
	Active              bool             `json:"active"`
	Proforma            *ProformaSummary `json:"proforma,omitempty"`
}

// ProformaSummary is the due issued alongside a membership write.
type ProformaSummary struct {
	EntryID       int64           `json:"entryID"`
	ReferenceCode string          `json:"referenceCode"`
	Amount        decimal.Decimal `json:"amount"`
}

// ToMembershipResponse converts a domain.MembershipView to DTO.
func ToMembershipResponse(v *domain.MembershipView) MembershipResponse {
	resp := MembershipResponse{
		MembershipID:        v.Membership.MembershipID,
		ChildID:             v.Child.ChildID,
		ChildName:           v.Child.FirstName + " " + v.Child.LastName,
		ReferenceIdentifier: v.Child.ReferenceIdentifier,
		GroupID:             v.Group.GroupID,
		GroupName:           v.Group.Name,
		AttendanceOptionID:  v.Membership.AttendanceOptionID,
		FullPrice:           v.FullPrice(),
		BillingStartMonth:   v.Membership.BillingStartMonth,
		RegisteredAt:        v.Membership.RegisteredAt,
		Active:              v.Membership.Active,
	}
	if v.Option != nil {
		resp.OptionName = v.Option.Name
	}
	return resp
}

// ToProformaSummary converts an issued proforma; nil stays nil.
func ToProformaSummary(e *domain.FinanceEntry) *ProformaSummary {
	if e == nil {
		return nil
	}
	return &ProformaSummary{EntryID: e.EntryID, ReferenceCode: e.ReferenceCode, Amount: e.Amount}
}
