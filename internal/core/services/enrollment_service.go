package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/club_billing_app/internal/apperrors"
	"github.com/SscSPs/club_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/club_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/club_billing_app/internal/core/ports/services"
	"github.com/SscSPs/club_billing_app/internal/dto"
	"github.com/SscSPs/club_billing_app/internal/utils/billing"
	"github.com/google/uuid"
)

// enrollmentService implements the EnrollmentSvcFacade interface
type enrollmentService struct {
	BaseService
	enrollmentRepo portsrepo.EnrollmentRepositoryFacade
}

// EnrollmentServiceOption is a functional option for configuring the enrollment service
type EnrollmentServiceOption func(*enrollmentService)

// WithEnrollmentTenantGuard makes the service reject unknown or disabled tenants.
func WithEnrollmentTenantGuard(guard portsrepo.TenantReader) EnrollmentServiceOption {
	return func(s *enrollmentService) {
		s.TenantGuard = guard
	}
}

// WithEnrollmentClock overrides the clock used for registration timestamps.
func WithEnrollmentClock(clock func() time.Time) EnrollmentServiceOption {
	return func(s *enrollmentService) {
		s.Clock = clock
	}
}

// NewEnrollmentService creates a new enrollment service with the provided options
func NewEnrollmentService(enrollmentRepo portsrepo.EnrollmentRepositoryFacade, options ...EnrollmentServiceOption) portssvc.EnrollmentSvcFacade {
	svc := &enrollmentService{enrollmentRepo: enrollmentRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure enrollmentService implements the EnrollmentSvcFacade interface
var _ portssvc.EnrollmentSvcFacade = (*enrollmentService)(nil)

// CreateGroup creates a training group with an optional calendar.
func (s *enrollmentService) CreateGroup(ctx context.Context, tenantID string, req dto.CreateGroupRequest, userID string) (*domain.Group, error) {
	if err := s.AuthorizeTenant(ctx, tenantID); err != nil {
		return nil, err
	}
	start, err := dto.ParseOptionalDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := dto.ParseOptionalDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, fmt.Errorf("%w: group start date is after its end date", apperrors.ErrValidation)
	}

	now := s.Now()
	group := domain.Group{
		GroupID:   uuid.NewString(),
		TenantID:  tenantID,
		Name:      strings.TrimSpace(req.Name),
		StartDate: start,
		EndDate:   end,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.enrollmentRepo.SaveGroup(ctx, group); err != nil {
		s.LogError(ctx, err, "Failed to save group", slog.String("tenant_id", tenantID))
		return nil, err
	}

	s.LogInfo(ctx, "Group created",
		slog.String("group_id", group.GroupID),
		slog.Int("calendar_months", len(billing.MonthStarts(group.BillingPeriod()))))
	return &group, nil
}

// AddAttendanceOption adds a priced plan to a group. Zero-priced options are allowed and
// never produce a due.
func (s *enrollmentService) AddAttendanceOption(ctx context.Context, tenantID, groupID string, req dto.AddAttendanceOptionRequest, userID string) (*domain.AttendanceOption, error) {
	if err := s.AuthorizeTenant(ctx, tenantID); err != nil {
		return nil, err
	}
	price, err := dto.ParseAmount(req.FullPrice)
	if err != nil {
		return nil, err
	}
	if _, err := s.enrollmentRepo.FindGroupByID(ctx, tenantID, groupID); err != nil {
		return nil, err
	}

	option := domain.AttendanceOption{
		OptionID:         uuid.NewString(),
		GroupID:          groupID,
		Name:             strings.TrimSpace(req.Name),
		FrequencyPerWeek: req.FrequencyPerWeek,
		FullPrice:        price,
	}
	if err := s.enrollmentRepo.SaveAttendanceOption(ctx, option); err != nil {
		s.LogError(ctx, err, "Failed to save attendance option", slog.String("group_id", groupID))
		return nil, err
	}
	return &option, nil
}

// RegisterChild creates a child with the next free reference identifier of the tenant.
func (s *enrollmentService) RegisterChild(ctx context.Context, tenantID string, req dto.RegisterChildRequest, userID string) (*domain.Child, error) {
	if err := s.AuthorizeTenant(ctx, tenantID); err != nil {
		return nil, err
	}
	child, err := s.enrollmentRepo.CreateChild(ctx, domain.Child{
		ChildID:   uuid.NewString(),
		TenantID:  tenantID,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		CreatedAt: s.Now(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to register child", slog.String("tenant_id", tenantID))
		return nil, err
	}

	s.LogInfo(ctx, "Child registered",
		slog.String("child_id", child.ChildID),
		slog.String("reference_identifier", child.ReferenceIdentifier),
		slog.String("registered_by", userID))
	return child, nil
}

// CreateMembership enrolls a child in a group. A requested billing start month is
// clamped into the group's calendar before it is stored.
func (s *enrollmentService) CreateMembership(ctx context.Context, tenantID string, req dto.CreateMembershipRequest, userID string) (*domain.MembershipView, error) {
	if err := s.AuthorizeTenant(ctx, tenantID); err != nil {
		return nil, err
	}
	requestedStart, err := dto.ParseOptionalYearMonth(req.BillingStartMonth)
	if err != nil {
		return nil, err
	}
	if _, err := s.enrollmentRepo.FindChildByID(ctx, tenantID, req.ChildID); err != nil {
		return nil, err
	}
	group, err := s.enrollmentRepo.FindGroupByID(ctx, tenantID, req.GroupID)
	if err != nil {
		return nil, err
	}
	if err := s.checkOption(ctx, tenantID, group.GroupID, req.AttendanceOptionID); err != nil {
		return nil, err
	}

	now := s.Now()
	membership := domain.Membership{
		MembershipID:       uuid.NewString(),
		TenantID:           tenantID,
		ChildID:            req.ChildID,
		GroupID:            group.GroupID,
		AttendanceOptionID: req.AttendanceOptionID,
		BillingStartMonth:  normalizeRequestedStart(group.BillingPeriod(), requestedStart, now),
		RegisteredAt:       now,
		Active:             true,
	}
	if err := s.enrollmentRepo.SaveMembership(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to save membership", slog.String("child_id", req.ChildID))
		return nil, err
	}

	s.LogInfo(ctx, "Membership created",
		slog.String("membership_id", membership.MembershipID),
		slog.String("group_id", group.GroupID),
		slog.String("created_by", userID))
	return s.enrollmentRepo.FindMembershipView(ctx, tenantID, membership.MembershipID)
}

// ChangeMembershipPlan replaces the option and billing start month of an active membership.
func (s *enrollmentService) ChangeMembershipPlan(ctx context.Context, tenantID, membershipID string, req dto.ChangePlanRequest, userID string) (*domain.MembershipView, error) {
	if err := s.AuthorizeTenant(ctx, tenantID); err != nil {
		return nil, err
	}
	requestedStart, err := dto.ParseOptionalYearMonth(req.BillingStartMonth)
	if err != nil {
		return nil, err
	}
	view, err := s.enrollmentRepo.FindMembershipView(ctx, tenantID, membershipID)
	if err != nil {
		return nil, err
	}
	if !view.Membership.Active {
		return nil, fmt.Errorf("%w: membership %s is not active", apperrors.ErrValidation, membershipID)
	}
	if err := s.checkOption(ctx, tenantID, view.Group.GroupID, req.AttendanceOptionID); err != nil {
		return nil, err
	}

	start := normalizeRequestedStart(view.Group.BillingPeriod(), requestedStart, s.Now())
	if err := s.enrollmentRepo.UpdateMembershipPlan(ctx, tenantID, membershipID, req.AttendanceOptionID, start); err != nil {
		s.LogError(ctx, err, "Failed to update membership plan", slog.String("membership_id", membershipID))
		return nil, err
	}

	s.LogInfo(ctx, "Membership plan changed", slog.String("membership_id", membershipID), slog.String("changed_by", userID))
	return s.enrollmentRepo.FindMembershipView(ctx, tenantID, membershipID)
}

// GetMembership retrieves a membership with its child, group and option.
func (s *enrollmentService) GetMembership(ctx context.Context, tenantID, membershipID string) (*domain.MembershipView, error) {
	return s.enrollmentRepo.FindMembershipView(ctx, tenantID, membershipID)
}

func (s *enrollmentService) checkOption(ctx context.Context, tenantID, groupID string, optionID *string) error {
	if optionID == nil {
		return nil
	}
	option, err := s.enrollmentRepo.FindAttendanceOptionByID(ctx, tenantID, *optionID)
	if err != nil {
		return err
	}
	if option.GroupID != groupID {
		return fmt.Errorf("%w: attendance option %s belongs to another group", apperrors.ErrValidation, *optionID)
	}
	return nil
}

// normalizeRequestedStart clamps an explicitly requested start month into the calendar.
// Nothing requested stays nil so billing falls back to the registration month.
func normalizeRequestedStart(period domain.BillingPeriod, requested *time.Time, now time.Time) *time.Time {
	if requested == nil {
		return nil
	}
	start := billing.NormalizeStartMonth(period, requested, now)
	return &start
}
