package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
)

// EnrollmentReader defines read operations on groups, children and memberships.
// All lookups are scoped to a tenant and return apperrors.ErrNotFound on a miss.
type EnrollmentReader interface {
	FindGroupByID(ctx context.Context, tenantID, groupID string) (*domain.Group, error)
	FindAttendanceOptionByID(ctx context.Context, tenantID, optionID string) (*domain.AttendanceOption, error)
	FindChildByID(ctx context.Context, tenantID, childID string) (*domain.Child, error)
	FindChildByReferenceIdentifier(ctx context.Context, tenantID, identifier string) (*domain.Child, error)

	// FindMembershipView loads a membership joined with its child, group and option.
	FindMembershipView(ctx context.Context, tenantID, membershipID string) (*domain.MembershipView, error)

	// ListActiveMembershipViews returns active memberships ordered by (registered_at, membership_id).
	ListActiveMembershipViews(ctx context.Context, tenantID string) ([]domain.MembershipView, error)
}

// EnrollmentWriter defines write operations on groups, children and memberships.
type EnrollmentWriter interface {
	SaveGroup(ctx context.Context, group domain.Group) error
	SaveAttendanceOption(ctx context.Context, option domain.AttendanceOption) error

	// CreateChild allocates the next reference identifier of the tenant and inserts the
	// child in one transaction. Exhausted identifiers yield apperrors.ErrValidation.
	CreateChild(ctx context.Context, child domain.Child) (*domain.Child, error)

	SaveMembership(ctx context.Context, membership domain.Membership) error

	// UpdateMembershipPlan replaces the option and billing start month of a membership.
	UpdateMembershipPlan(ctx context.Context, tenantID, membershipID string, optionID *string, billingStartMonth *time.Time) error
}

// EnrollmentRepositoryFacade combines all enrollment-related repository interfaces
type EnrollmentRepositoryFacade interface {
	EnrollmentReader
	EnrollmentWriter
}
