package services

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/club_billing_app/internal/apperrors"
	"github.com/SscSPs/club_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/club_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/club_billing_app/internal/core/ports/services"
	"github.com/SscSPs/club_billing_app/internal/utils/billing"
	"github.com/SscSPs/club_billing_app/internal/utils/reconciliation"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	reportingRepo  portsrepo.ReportingRepository
	enrollmentRepo portsrepo.EnrollmentReader
	ledgerRepo     portsrepo.FinanceEntryReader
	paymentRepo    portsrepo.PaymentReader
}

// NewReportingService creates a new reporting service
func NewReportingService(
	reportingRepo portsrepo.ReportingRepository,
	enrollmentRepo portsrepo.EnrollmentReader,
	ledgerRepo portsrepo.FinanceEntryReader,
	paymentRepo portsrepo.PaymentReader,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo:  reportingRepo,
		enrollmentRepo: enrollmentRepo,
		ledgerRepo:     ledgerRepo,
		paymentRepo:    paymentRepo,
	}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetMembershipBilling computes the dues view of one membership. Paid comes from the
// same scan the contributions report does: payments are consumed membership by
// membership in report order up to this one.
func (s *reportingService) GetMembershipBilling(ctx context.Context, tenantID, membershipID string, today time.Time) (*domain.MembershipBilling, error) {
	var (
		target   *domain.MembershipView
		views    []domain.MembershipView
		payments []domain.IncomingPayment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		target, err = s.enrollmentRepo.FindMembershipView(gctx, tenantID, membershipID)
		return err
	})
	g.Go(func() (err error) {
		views, err = s.enrollmentRepo.ListActiveMembershipViews(gctx, tenantID)
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.paymentRepo.ListAllPayments(gctx, tenantID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load membership billing", slog.String("membership_id", membershipID))
		return nil, err
	}

	// Ended memberships are not in the report; they are scanned after every active one.
	if !lo.ContainsBy(views, func(v domain.MembershipView) bool { return v.Membership.MembershipID == membershipID }) {
		views = append(views, *target)
	}

	payable := reconciliation.BuildPaymentMultiset(payments)
	for _, v := range views {
		row := billing.ComputeDue(v, today)
		row.Paid = payable.TryConsume(row.ReferenceIdentifier, row.DueAmount)
		if v.Membership.MembershipID == membershipID {
			return &row, nil
		}
	}
	return nil, fmt.Errorf("%w: membership %s missing from billing scan", apperrors.ErrInvariant, membershipID)
}

// ContributionsReport computes the dues of every active membership in
// (registered_at, membership_id) order with one fresh payment multiset.
func (s *reportingService) ContributionsReport(ctx context.Context, tenantID string, today time.Time, query string) (*domain.ContributionsReport, error) {
	var (
		views    []domain.MembershipView
		payments []domain.IncomingPayment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		views, err = s.enrollmentRepo.ListActiveMembershipViews(gctx, tenantID)
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.paymentRepo.ListAllPayments(gctx, tenantID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load contributions report data", slog.String("tenant_id", tenantID))
		return nil, err
	}

	if query = strings.ToLower(strings.TrimSpace(query)); query != "" {
		views = lo.Filter(views, func(v domain.MembershipView, _ int) bool {
			return strings.Contains(strings.ToLower(v.Child.FirstName), query) ||
				strings.Contains(strings.ToLower(v.Child.LastName), query) ||
				strings.Contains(v.Child.ReferenceIdentifier, query)
		})
	}

	payable := reconciliation.BuildPaymentMultiset(payments)
	rows := lo.Map(views, func(v domain.MembershipView, _ int) domain.MembershipBilling {
		row := billing.ComputeDue(v, today)
		row.Paid = payable.TryConsume(row.ReferenceIdentifier, row.DueAmount)
		return row
	})
	total := lo.Reduce(rows, func(sum decimal.Decimal, row domain.MembershipBilling, _ int) decimal.Decimal {
		return sum.Add(row.DueAmount)
	}, decimal.Zero)

	s.LogInfo(ctx, "Contributions report generated",
		slog.String("tenant_id", tenantID),
		slog.Int("row_count", len(rows)),
		slog.Int("payment_count", len(payments)))
	return &domain.ContributionsReport{
		Rows:             rows,
		Total:            total.Round(2),
		FullPeriodMonths: billing.FullPeriodMonths,
	}, nil
}

// FinanceSummary totals membership dues: expected is what is open plus what was
// invoiced, paid is what was invoiced.
func (s *reportingService) FinanceSummary(ctx context.Context, tenantID string) (*domain.FinanceTotals, error) {
	var open, invoiced decimal.Decimal
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		open, err = s.reportingRepo.SumEntryAmounts(gctx, tenantID, portsrepo.EntryTotalFilter{
			EventType: domain.EventProforma,
			Direction: domain.Debit,
			Status:    domain.StatusOpen,
		})
		return err
	})
	g.Go(func() (err error) {
		invoiced, err = s.reportingRepo.SumEntryAmounts(gctx, tenantID, portsrepo.EntryTotalFilter{
			EventType: domain.EventInvoice,
			Direction: domain.Debit,
			Status:    domain.StatusClosed,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to compute finance summary", slog.String("tenant_id", tenantID))
		return nil, err
	}

	expected := open.Add(invoiced)
	return &domain.FinanceTotals{
		Expected:    expected,
		Paid:        invoiced,
		Outstanding: expected.Sub(invoiced),
	}, nil
}

// ChildStatement lists a child's ledger. A sale counts as paid when it was closed or
// when a matching bank payment is left after the sales before it took theirs.
func (s *reportingService) ChildStatement(ctx context.Context, tenantID, childID string) (*domain.ChildStatement, error) {
	var (
		child    *domain.Child
		entries  []domain.FinanceEntry
		payments []domain.IncomingPayment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		child, err = s.enrollmentRepo.FindChildByID(gctx, tenantID, childID)
		return err
	})
	g.Go(func() (err error) {
		entries, err = s.ledgerRepo.ListEntriesByChild(gctx, tenantID, childID)
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.paymentRepo.ListAllPayments(gctx, tenantID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load child statement", slog.String("child_id", childID))
		return nil, err
	}

	dueTotal := lo.Reduce(entries, func(sum decimal.Decimal, e domain.FinanceEntry, _ int) decimal.Decimal {
		if e.IsOpenDebit() {
			return sum.Add(e.Amount)
		}
		return sum
	}, decimal.Zero)

	sales := lo.Filter(entries, func(e domain.FinanceEntry, _ int) bool {
		return e.EventType == domain.EventSale && e.Status != domain.StatusCancelled
	})
	slices.SortFunc(sales, func(a, b domain.FinanceEntry) int {
		return cmp.Compare(a.EntryID, b.EntryID)
	})
	payable := reconciliation.BuildPaymentMultiset(payments)
	saleStatuses := lo.Map(sales, func(e domain.FinanceEntry, _ int) domain.SaleStatus {
		consumed := payable.TryConsume(child.ReferenceIdentifier, e.Amount)
		return domain.SaleStatus{Entry: e, Paid: consumed || e.Status == domain.StatusClosed}
	})

	if entries == nil {
		entries = []domain.FinanceEntry{}
	}
	return &domain.ChildStatement{
		Child:    *child,
		Entries:  entries,
		DueTotal: dueTotal.Round(2),
		Sales:    saleStatuses,
	}, nil
}
