package services

import (
	"context"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
	"github.com/SscSPs/club_billing_app/internal/dto"
)

// EnrollmentWriterSvc defines write operations for groups, children and memberships
type EnrollmentWriterSvc interface {
	CreateGroup(ctx context.Context, tenantID string, req dto.CreateGroupRequest, userID string) (*domain.Group, error)
	AddAttendanceOption(ctx context.Context, tenantID, groupID string, req dto.AddAttendanceOptionRequest, userID string) (*domain.AttendanceOption, error)

	// RegisterChild creates a child with a freshly allocated reference identifier.
	RegisterChild(ctx context.Context, tenantID string, req dto.RegisterChildRequest, userID string) (*domain.Child, error)

	CreateMembership(ctx context.Context, tenantID string, req dto.CreateMembershipRequest, userID string) (*domain.MembershipView, error)

	// ChangeMembershipPlan replaces the option and billing start month of a membership.
	ChangeMembershipPlan(ctx context.Context, tenantID, membershipID string, req dto.ChangePlanRequest, userID string) (*domain.MembershipView, error)
}

// EnrollmentReaderSvc defines read operations for memberships
type EnrollmentReaderSvc interface {
	GetMembership(ctx context.Context, tenantID, membershipID string) (*domain.MembershipView, error)
}

// EnrollmentSvcFacade combines all enrollment-related service interfaces
type EnrollmentSvcFacade interface {
	EnrollmentWriterSvc
	EnrollmentReaderSvc
}
