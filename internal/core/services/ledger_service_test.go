package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/club_billing_app/internal/apperrors"
	"github.com/SscSPs/club_billing_app/internal/core/domain"
	portssvc "github.com/SscSPs/club_billing_app/internal/core/ports/services"
	"github.com/SscSPs/club_billing_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	ledger         *memLedger
	mockEnrollment *MockEnrollmentRepository
	mockTenants    *MockTenantRepository
	service        portssvc.LedgerSvcFacade
	ctx            context.Context
	userID         string
	view           domain.MembershipView
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ledger = newMemLedger()
	suite.mockEnrollment = new(MockEnrollmentRepository)
	suite.mockTenants = new(MockTenantRepository)
	suite.service = services.NewLedgerService(suite.ledger, suite.mockEnrollment,
		services.WithLedgerTenantGuard(suite.mockTenants),
		services.WithLedgerClock(fixedClock))
	suite.ctx = context.Background()
	suite.userID = "user-1"
	suite.view = springView("membership-1", "child-1", "42")

	suite.mockTenants.On("FindTenantByID", mock.Anything, testTenantID).
		Return(&domain.Tenant{TenantID: testTenantID, IsActive: true}, nil).Maybe()
	suite.mockEnrollment.On("FindMembershipView", mock.Anything, testTenantID, "membership-1").
		Return(&suite.view, nil).Maybe()
	suite.mockEnrollment.On("FindChildByID", mock.Anything, testTenantID, "child-1").
		Return(&suite.view.Child, nil).Maybe()
}

func (suite *LedgerServiceTestSuite) issue() *domain.FinanceEntry {
	entry, err := suite.service.IssueProforma(suite.ctx, testTenantID, "membership-1", suite.userID)
	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	return entry
}

func (suite *LedgerServiceTestSuite) TestIssueProforma_Success() {
	entry := suite.issue()

	suite.Equal(domain.EventProforma, entry.EventType)
	suite.Equal(domain.Debit, entry.Direction)
	suite.Equal(domain.StatusOpen, entry.Status)
	suite.Equal("900.00", entry.Amount.StringFixed(2))
	suite.Equal("42", entry.ReferenceIdentifier)
	suite.Equal("Membership Juniors", entry.Title)
	suite.Equal("3/5 months from 2026-04", entry.Note)
	suite.True(strings.HasPrefix(entry.ReferenceCode, "PF-"))
	suite.Equal(utcDate(2026, time.March, 10), entry.OccurredOn)
	suite.Equal(suite.userID, entry.CreatedBy)
	suite.Len(suite.ledger.all(), 1)
}

func (suite *LedgerServiceTestSuite) TestIssueProforma_Idempotent() {
	first := suite.issue()
	second := suite.issue()

	suite.Equal(first.EntryID, second.EntryID)
	suite.Len(suite.ledger.byType(domain.EventProforma), 1)
}

func (suite *LedgerServiceTestSuite) TestIssueProforma_ZeroDue() {
	suite.view.Option = &domain.AttendanceOption{OptionID: "free", GroupID: "group-spring", FullPrice: decimal.Zero}

	entry, err := suite.service.IssueProforma(suite.ctx, testTenantID, "membership-1", suite.userID)

	suite.NoError(err)
	suite.Nil(entry)
	suite.Empty(suite.ledger.all())
}

func (suite *LedgerServiceTestSuite) TestIssueProforma_NoOption() {
	suite.view.Option = nil
	suite.view.Membership.AttendanceOptionID = nil

	entry, err := suite.service.IssueProforma(suite.ctx, testTenantID, "membership-1", suite.userID)

	suite.NoError(err)
	suite.Nil(entry)
}

func (suite *LedgerServiceTestSuite) TestIssueProforma_InactiveMembership() {
	suite.view.Membership.Active = false

	_, err := suite.service.IssueProforma(suite.ctx, testTenantID, "membership-1", suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Empty(suite.ledger.all())
}

func (suite *LedgerServiceTestSuite) TestIssueProforma_DisabledTenant() {
	suite.mockTenants.On("FindTenantByID", mock.Anything, "tenant-off").
		Return(&domain.Tenant{TenantID: "tenant-off", IsActive: false}, nil)

	_, err := suite.service.IssueProforma(suite.ctx, "tenant-off", "membership-1", suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestIssueProforma_ConcurrentWinner() {
	var winner domain.FinanceEntry
	suite.ledger.beforeApply = func(call int, _ domain.LedgerPosting) {
		if call == 1 {
			winner = suite.ledger.seed(openProforma("membership-1", "child-1", "42", "900.00"))
		}
	}

	entry, err := suite.service.IssueProforma(suite.ctx, testTenantID, "membership-1", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(winner.EntryID, entry.EntryID)
	suite.Len(suite.ledger.byType(domain.EventProforma), 1)
}

func (suite *LedgerServiceTestSuite) TestIssueProforma_RetriesTakenReferenceCode() {
	var codes []string
	suite.ledger.beforeApply = func(_ int, posting domain.LedgerPosting) {
		codes = append(codes, posting.Entries[0].ReferenceCode)
	}
	suite.ledger.failApply = func(call int) error {
		if call == 1 {
			return fmt.Errorf("%w: PF-taken", apperrors.ErrReferenceCodeTaken)
		}
		return nil
	}

	entry, err := suite.service.IssueProforma(suite.ctx, testTenantID, "membership-1", suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(codes, 2)
	suite.NotEqual(codes[0], codes[1])
	suite.Equal(codes[1], entry.ReferenceCode)
	suite.Len(suite.ledger.byType(domain.EventProforma), 1)
}

func (suite *LedgerServiceTestSuite) TestIssueProforma_ReferenceCodeNeverFreeIsNotAWinner() {
	suite.ledger.failApply = func(int) error {
		return fmt.Errorf("%w: PF-taken", apperrors.ErrReferenceCodeTaken)
	}

	entry, err := suite.service.IssueProforma(suite.ctx, testTenantID, "membership-1", suite.userID)

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrReferenceCodeTaken)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
	suite.NotErrorIs(err, apperrors.ErrDuplicate)
	suite.Equal(3, suite.ledger.applyCalls)
	suite.Empty(suite.ledger.all())
}

func (suite *LedgerServiceTestSuite) TestRecordSale_RetriesTakenReferenceCode() {
	suite.ledger.failApply = func(call int) error {
		if call == 1 {
			return fmt.Errorf("%w: SL-taken", apperrors.ErrReferenceCodeTaken)
		}
		return nil
	}

	sale, err := suite.service.RecordSale(suite.ctx, testTenantID, "child-1", "Kit", decimal.NewFromInt(35), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.EventSale, sale.EventType)
	suite.Equal(2, suite.ledger.applyCalls)
}

func (suite *LedgerServiceTestSuite) TestCloseAndInvoice_RetriesTakenReferenceCode() {
	proforma := suite.issue()
	suite.ledger.failApply = func(call int) error {
		if call == 2 {
			return fmt.Errorf("%w: PM-taken", apperrors.ErrReferenceCodeTaken)
		}
		return nil
	}

	settlement, err := suite.service.CloseAndInvoice(suite.ctx, testTenantID, proforma.EntryID, "", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusClosed, suite.ledger.entry(proforma.EntryID).Status)
	suite.Equal(domain.EventInvoice, settlement.Invoice.EventType)
	suite.Len(suite.ledger.byType(domain.EventInvoice), 1)
}

func (suite *LedgerServiceTestSuite) TestCloseAndInvoice_Success() {
	proforma := suite.issue()

	settlement, err := suite.service.CloseAndInvoice(suite.ctx, testTenantID, proforma.EntryID, "cash at training", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusClosed, settlement.Proforma.Status)
	suite.Equal(domain.StatusClosed, suite.ledger.entry(proforma.EntryID).Status)

	suite.Equal(domain.EventPayment, settlement.Payment.EventType)
	suite.Equal(domain.Credit, settlement.Payment.Direction)
	suite.Equal(domain.StatusClosed, settlement.Payment.Status)
	suite.Equal("Settles "+proforma.ReferenceCode+": cash at training", settlement.Payment.Note)

	suite.Equal(domain.EventInvoice, settlement.Invoice.EventType)
	suite.Equal(domain.Debit, settlement.Invoice.Direction)
	suite.Equal(domain.StatusClosed, settlement.Invoice.Status)
	suite.Equal("Invoice for "+proforma.ReferenceCode, settlement.Invoice.Note)
	suite.True(settlement.Invoice.Amount.Equal(proforma.Amount))
	suite.True(settlement.Payment.Amount.Equal(proforma.Amount))
}

func (suite *LedgerServiceTestSuite) TestCloseAndInvoice_AlreadyClosed() {
	proforma := suite.issue()
	_, err := suite.service.CloseAndInvoice(suite.ctx, testTenantID, proforma.EntryID, "", suite.userID)
	suite.Require().NoError(err)

	_, err = suite.service.CloseAndInvoice(suite.ctx, testTenantID, proforma.EntryID, "", suite.userID)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Len(suite.ledger.byType(domain.EventInvoice), 1)
}

func (suite *LedgerServiceTestSuite) TestCloseAndInvoice_NotAProforma() {
	sale, err := suite.service.RecordSale(suite.ctx, testTenantID, "child-1", "Kit", decimal.NewFromInt(35), suite.userID)
	suite.Require().NoError(err)

	_, err = suite.service.CloseAndInvoice(suite.ctx, testTenantID, sale.EntryID, "", suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestCloseAndInvoice_UnknownEntry() {
	_, err := suite.service.CloseAndInvoice(suite.ctx, testTenantID, 999, "", suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestCancelOpenProforma() {
	proforma := suite.issue()

	info, err := suite.service.CancelOpenProforma(suite.ctx, testTenantID, "membership-1", "moved to another club", suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(info)
	suite.Equal(domain.EventInfo, info.EventType)
	suite.True(info.Amount.IsZero())
	suite.Equal("Cancelled "+proforma.ReferenceCode+": moved to another club", info.Note)
	suite.Equal(domain.StatusCancelled, suite.ledger.entry(proforma.EntryID).Status)
}

func (suite *LedgerServiceTestSuite) TestCancelOpenProforma_NothingOpen() {
	info, err := suite.service.CancelOpenProforma(suite.ctx, testTenantID, "membership-1", "", suite.userID)

	suite.NoError(err)
	suite.Nil(info)
	suite.Empty(suite.ledger.all())
}

func (suite *LedgerServiceTestSuite) TestReissueProforma_NewTerms() {
	old := suite.issue()
	suite.view.Option = &domain.AttendanceOption{OptionID: "option-3x", GroupID: "group-spring", FullPrice: decimal.NewFromInt(2000)}

	next, err := suite.service.ReissueProforma(suite.ctx, testTenantID, "membership-1", "plan change", suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(next)
	suite.NotEqual(old.EntryID, next.EntryID)
	suite.Equal("1200.00", next.Amount.StringFixed(2))
	suite.Equal(domain.StatusCancelled, suite.ledger.entry(old.EntryID).Status)
	suite.Len(suite.ledger.byType(domain.EventInfo), 1)

	open, err := suite.ledger.FindOpenProforma(suite.ctx, testTenantID, "membership-1")
	suite.Require().NoError(err)
	suite.Equal(next.EntryID, open.EntryID)
}

func (suite *LedgerServiceTestSuite) TestReissueProforma_SameTermsKeepsProforma() {
	old := suite.issue()

	next, err := suite.service.ReissueProforma(suite.ctx, testTenantID, "membership-1", "", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(old.EntryID, next.EntryID)
	suite.Len(suite.ledger.all(), 1)
}

func (suite *LedgerServiceTestSuite) TestReissueProforma_NothingDueCancelsOnly() {
	old := suite.issue()
	suite.view.Option = nil

	next, err := suite.service.ReissueProforma(suite.ctx, testTenantID, "membership-1", "option removed", suite.userID)

	suite.Require().NoError(err)
	suite.Nil(next)
	suite.Equal(domain.StatusCancelled, suite.ledger.entry(old.EntryID).Status)
}

func (suite *LedgerServiceTestSuite) TestEndMembership_WithRefund() {
	proforma := suite.issue()

	closing, err := suite.service.EndMembership(suite.ctx, testTenantID, "membership-1", decimal.RequireFromString("150.50"), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.EventRefund, closing.EventType)
	suite.Equal(domain.Credit, closing.Direction)
	suite.Equal("150.50", closing.Amount.StringFixed(2))
	suite.Equal(domain.StatusCancelled, suite.ledger.entry(proforma.EntryID).Status)
	suite.Empty(suite.ledger.byType(domain.EventMembershipEnd))
	suite.Equal([]string{"membership-1"}, suite.ledger.deactivated)
}

func (suite *LedgerServiceTestSuite) TestEndMembership_WithoutRefund() {
	closing, err := suite.service.EndMembership(suite.ctx, testTenantID, "membership-1", decimal.Zero, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.EventMembershipEnd, closing.EventType)
	suite.True(closing.Amount.IsZero())
	suite.Empty(suite.ledger.byType(domain.EventRefund))
	suite.Empty(suite.ledger.byType(domain.EventInfo))
	suite.Equal([]string{"membership-1"}, suite.ledger.deactivated)
}

func (suite *LedgerServiceTestSuite) TestEndMembership_InvalidRefund() {
	for _, amount := range []string{"-1", "10.005"} {
		_, err := suite.service.EndMembership(suite.ctx, testTenantID, "membership-1", decimal.RequireFromString(amount), suite.userID)
		suite.ErrorIs(err, apperrors.ErrValidation, amount)
	}
	suite.Empty(suite.ledger.all())
}

func (suite *LedgerServiceTestSuite) TestEndMembership_AlreadyEnded() {
	suite.view.Membership.Active = false

	_, err := suite.service.EndMembership(suite.ctx, testTenantID, "membership-1", decimal.Zero, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestMarkSalePaid_ClosesOldestMatch() {
	first, err := suite.service.RecordSale(suite.ctx, testTenantID, "child-1", "Jersey", decimal.NewFromInt(35), suite.userID)
	suite.Require().NoError(err)
	second, err := suite.service.RecordSale(suite.ctx, testTenantID, "child-1", "Jersey", decimal.NewFromInt(35), suite.userID)
	suite.Require().NoError(err)
	suite.Equal(domain.Debit, first.Direction)
	suite.Equal(domain.StatusOpen, first.Status)

	settled, err := suite.service.MarkSalePaid(suite.ctx, testTenantID, "child-1", " Jersey ", decimal.NewFromInt(35), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(first.EntryID, settled.Sale.EntryID)
	suite.Equal(domain.StatusClosed, settled.Sale.Status)
	suite.Equal(domain.EventPayment, settled.Payment.EventType)
	suite.Equal("Settles "+first.ReferenceCode, settled.Payment.Note)
	suite.Equal(domain.StatusOpen, suite.ledger.entry(second.EntryID).Status)
}

func (suite *LedgerServiceTestSuite) TestMarkSalePaid_NoOpenSale() {
	_, err := suite.service.MarkSalePaid(suite.ctx, testTenantID, "child-1", "Jersey", decimal.NewFromInt(35), suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestMarkSalePaid_RetriesAfterConflict() {
	first, err := suite.service.RecordSale(suite.ctx, testTenantID, "child-1", "Camp", decimal.NewFromInt(120), suite.userID)
	suite.Require().NoError(err)
	second, err := suite.service.RecordSale(suite.ctx, testTenantID, "child-1", "Camp", decimal.NewFromInt(120), suite.userID)
	suite.Require().NoError(err)

	// Another request closes the first sale between our read and our write.
	calls := suite.ledger.applyCalls
	suite.ledger.beforeApply = func(call int, _ domain.LedgerPosting) {
		if call == calls+1 {
			suite.ledger.setStatus(first.EntryID, domain.StatusClosed)
		}
	}

	settled, err := suite.service.MarkSalePaid(suite.ctx, testTenantID, "child-1", "Camp", decimal.NewFromInt(120), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(second.EntryID, settled.Sale.EntryID)
	suite.Len(suite.ledger.byType(domain.EventPayment), 1)
}

func (suite *LedgerServiceTestSuite) TestRecordSale_Validation() {
	cases := []struct {
		title  string
		amount string
	}{
		{"", "10"},
		{"Kit", "0"},
		{"Kit", "-5"},
		{"Kit", "9.999"},
	}
	for _, tc := range cases {
		_, err := suite.service.RecordSale(suite.ctx, testTenantID, "child-1", tc.title, decimal.RequireFromString(tc.amount), suite.userID)
		suite.ErrorIs(err, apperrors.ErrValidation, "%q %s", tc.title, tc.amount)
	}
	suite.Empty(suite.ledger.all())
}

// Every closed proforma has exactly one payment and one invoice pointing at its code.
func (suite *LedgerServiceTestSuite) TestClosedProformasAreSettledOnce() {
	proforma := suite.issue()
	_, err := suite.service.CloseAndInvoice(suite.ctx, testTenantID, proforma.EntryID, "", suite.userID)
	suite.Require().NoError(err)
	_, _ = suite.service.CloseAndInvoice(suite.ctx, testTenantID, proforma.EntryID, "", suite.userID)

	for _, p := range suite.ledger.byType(domain.EventProforma) {
		if p.Status != domain.StatusClosed {
			continue
		}
		var payments, invoices int
		for _, e := range suite.ledger.all() {
			if !strings.Contains(e.Note, p.ReferenceCode) {
				continue
			}
			switch e.EventType {
			case domain.EventPayment:
				payments++
			case domain.EventInvoice:
				invoices++
			}
		}
		suite.Equal(1, payments, "payments for %s", p.ReferenceCode)
		suite.Equal(1, invoices, "invoices for %s", p.ReferenceCode)
	}
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
