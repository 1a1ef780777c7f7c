package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
	portssvc "github.com/SscSPs/club_billing_app/internal/core/ports/services"
	"github.com/SscSPs/club_billing_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TenantService ---
type MockTenantService struct {
	mock.Mock
}

func (m *MockTenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) GetTenant(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

var _ portssvc.TenantSvcFacade = (*MockTenantService)(nil)

// --- Mock EnrollmentService ---
type MockEnrollmentService struct {
	mock.Mock
}

func (m *MockEnrollmentService) CreateGroup(ctx context.Context, tenantID string, req dto.CreateGroupRequest, userID string) (*domain.Group, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockEnrollmentService) AddAttendanceOption(ctx context.Context, tenantID, groupID string, req dto.AddAttendanceOptionRequest, userID string) (*domain.AttendanceOption, error) {
	args := m.Called(ctx, tenantID, groupID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceOption), args.Error(1)
}

func (m *MockEnrollmentService) RegisterChild(ctx context.Context, tenantID string, req dto.RegisterChildRequest, userID string) (*domain.Child, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Child), args.Error(1)
}

func (m *MockEnrollmentService) CreateMembership(ctx context.Context, tenantID string, req dto.CreateMembershipRequest, userID string) (*domain.MembershipView, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MembershipView), args.Error(1)
}

func (m *MockEnrollmentService) ChangeMembershipPlan(ctx context.Context, tenantID, membershipID string, req dto.ChangePlanRequest, userID string) (*domain.MembershipView, error) {
	args := m.Called(ctx, tenantID, membershipID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MembershipView), args.Error(1)
}

func (m *MockEnrollmentService) GetMembership(ctx context.Context, tenantID, membershipID string) (*domain.MembershipView, error) {
	args := m.Called(ctx, tenantID, membershipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MembershipView), args.Error(1)
}

var _ portssvc.EnrollmentSvcFacade = (*MockEnrollmentService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) entry(args mock.Arguments) (*domain.FinanceEntry, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinanceEntry), args.Error(1)
}

func (m *MockLedgerService) GetEntry(ctx context.Context, tenantID string, entryID int64) (*domain.FinanceEntry, error) {
	return m.entry(m.Called(ctx, tenantID, entryID))
}

func (m *MockLedgerService) ListEntries(ctx context.Context, tenantID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, tenantID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}

func (m *MockLedgerService) IssueProforma(ctx context.Context, tenantID, membershipID, createdBy string) (*domain.FinanceEntry, error) {
	return m.entry(m.Called(ctx, tenantID, membershipID, createdBy))
}

func (m *MockLedgerService) CloseAndInvoice(ctx context.Context, tenantID string, proformaID int64, paymentNote, createdBy string) (*domain.Settlement, error) {
	args := m.Called(ctx, tenantID, proformaID, paymentNote, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settlement), args.Error(1)
}

func (m *MockLedgerService) CancelOpenProforma(ctx context.Context, tenantID, membershipID, reason, createdBy string) (*domain.FinanceEntry, error) {
	return m.entry(m.Called(ctx, tenantID, membershipID, reason, createdBy))
}

func (m *MockLedgerService) ReissueProforma(ctx context.Context, tenantID, membershipID, reason, createdBy string) (*domain.FinanceEntry, error) {
	return m.entry(m.Called(ctx, tenantID, membershipID, reason, createdBy))
}

func (m *MockLedgerService) EndMembership(ctx context.Context, tenantID, membershipID string, refundAmount decimal.Decimal, createdBy string) (*domain.FinanceEntry, error) {
	return m.entry(m.Called(ctx, tenantID, membershipID, refundAmount, createdBy))
}

func (m *MockLedgerService) RecordSale(ctx context.Context, tenantID, childID, title string, amount decimal.Decimal, createdBy string) (*domain.FinanceEntry, error) {
	return m.entry(m.Called(ctx, tenantID, childID, title, amount, createdBy))
}

func (m *MockLedgerService) MarkSalePaid(ctx context.Context, tenantID, childID, title string, amount decimal.Decimal, createdBy string) (*domain.SaleSettlement, error) {
	args := m.Called(ctx, tenantID, childID, title, amount, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleSettlement), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock ReconciliationService ---
type MockReconciliationService struct {
	mock.Mock
}

func (m *MockReconciliationService) RecordIncomingPayment(ctx context.Context, tenantID string, payment domain.IncomingPayment, createdBy string) (*domain.MatchResult, error) {
	args := m.Called(ctx, tenantID, payment, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchResult), args.Error(1)
}

func (m *MockReconciliationService) ListIncomingPayments(ctx context.Context, tenantID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	args := m.Called(ctx, tenantID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPaymentsResponse), args.Error(1)
}

var _ portssvc.ReconciliationSvcFacade = (*MockReconciliationService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GetMembershipBilling(ctx context.Context, tenantID, membershipID string, today time.Time) (*domain.MembershipBilling, error) {
	args := m.Called(ctx, tenantID, membershipID, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MembershipBilling), args.Error(1)
}

func (m *MockReportingService) ContributionsReport(ctx context.Context, tenantID string, today time.Time, query string) (*domain.ContributionsReport, error) {
	args := m.Called(ctx, tenantID, today, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContributionsReport), args.Error(1)
}

func (m *MockReportingService) FinanceSummary(ctx context.Context, tenantID string) (*domain.FinanceTotals, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinanceTotals), args.Error(1)
}

func (m *MockReportingService) ChildStatement(ctx context.Context, tenantID, childID string) (*domain.ChildStatement, error) {
	args := m.Called(ctx, tenantID, childID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChildStatement), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)
