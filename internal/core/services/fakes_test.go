package services_test

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/club_billing_app/internal/apperrors"
	"github.com/SscSPs/club_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/club_billing_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// memLedger is an in-memory ledger that enforces what the database enforces: guarded
// status transitions, one open proforma per membership and all-or-nothing postings.
type memLedger struct {
	mu          sync.Mutex
	entries     []domain.FinanceEntry
	payments    []domain.IncomingPayment
	deactivated []string
	nextEntryID int64
	nextPayID   int64
	applyCalls  int

	// beforeApply runs before a posting is applied, outside the lock.
	beforeApply func(call int, posting domain.LedgerPosting)
	// failApply, when it returns an error, fails the posting before anything is written.
	failApply func(call int) error
}

var (
	_ portsrepo.LedgerRepositoryFacade = (*memLedger)(nil)
	_ portsrepo.PaymentReader          = (*memLedger)(nil)
	_ portsrepo.ReportingRepository    = (*memLedger)(nil)
)

func newMemLedger() *memLedger {
	return &memLedger{nextEntryID: 1, nextPayID: 1}
}

// seed inserts an entry directly, bypassing posting validation.
func (m *memLedger) seed(e domain.FinanceEntry) domain.FinanceEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.EntryID = m.nextEntryID
	m.nextEntryID++
	m.entries = append(m.entries, e)
	return e
}

func (m *memLedger) seedPayment(p domain.IncomingPayment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.PaymentID = m.nextPayID
	m.nextPayID++
	m.payments = append(m.payments, p)
}

func (m *memLedger) setStatus(entryID int64, status domain.EntryStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.entries {
		if m.entries[i].EntryID == entryID {
			m.entries[i].Status = status
		}
	}
}

func (m *memLedger) all() []domain.FinanceEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.entries)
}

func (m *memLedger) byType(t domain.EventType) []domain.FinanceEntry {
	var out []domain.FinanceEntry
	for _, e := range m.all() {
		if e.EventType == t {
			out = append(out, e)
		}
	}
	return out
}

func (m *memLedger) entry(id int64) domain.FinanceEntry {
	for _, e := range m.all() {
		if e.EntryID == id {
			return e
		}
	}
	panic(fmt.Sprintf("entry %d not found", id))
}

func (m *memLedger) FindEntryByID(_ context.Context, tenantID string, entryID int64) (*domain.FinanceEntry, error) {
	for _, e := range m.all() {
		if e.TenantID == tenantID && e.EntryID == entryID {
			return &e, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memLedger) FindOpenProforma(_ context.Context, tenantID, membershipID string) (*domain.FinanceEntry, error) {
	for _, e := range m.all() {
		if e.TenantID == tenantID && isOpenProformaOf(e, membershipID) {
			return &e, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memLedger) FindOpenProformasByKey(_ context.Context, tenantID, identifier string, amount decimal.Decimal) ([]domain.FinanceEntry, error) {
	var out []domain.FinanceEntry
	for _, e := range m.all() {
		if e.TenantID == tenantID && e.EventType == domain.EventProforma && e.Status == domain.StatusOpen &&
			e.ReferenceIdentifier == identifier && e.Amount.Equal(amount) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memLedger) FindOldestOpenSale(_ context.Context, tenantID, childID, title string, amount decimal.Decimal) (*domain.FinanceEntry, error) {
	for _, e := range m.all() {
		if e.TenantID == tenantID && e.ChildID == childID && e.EventType == domain.EventSale &&
			e.Status == domain.StatusOpen && e.Title == title && e.Amount.Equal(amount) {
			return &e, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memLedger) ListEntries(_ context.Context, tenantID string, filter domain.EntryFilter, limit int, _ *string) ([]domain.FinanceEntry, *string, error) {
	var out []domain.FinanceEntry
	entries := m.all()
	slices.Reverse(entries)
	for _, e := range entries {
		if e.TenantID != tenantID ||
			(filter.ChildID != "" && e.ChildID != filter.ChildID) ||
			(filter.Status != "" && e.Status != filter.Status) ||
			(filter.EventType != "" && e.EventType != filter.EventType) {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out, nil, nil
}

func (m *memLedger) ListEntriesByChild(_ context.Context, tenantID, childID string) ([]domain.FinanceEntry, error) {
	var out []domain.FinanceEntry
	entries := m.all()
	slices.Reverse(entries)
	for _, e := range entries {
		if e.TenantID == tenantID && e.ChildID == childID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memLedger) ApplyPosting(_ context.Context, posting domain.LedgerPosting) (*domain.PostingResult, error) {
	m.mu.Lock()
	m.applyCalls++
	call := m.applyCalls
	hook := m.beforeApply
	fail := m.failApply
	m.mu.Unlock()
	if hook != nil {
		hook(call, posting)
	}
	if fail != nil {
		if err := fail(call); err != nil {
			return nil, err
		}
	}

	if err := posting.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entries := slices.Clone(m.entries)
	result := &domain.PostingResult{}
	nextPayID := m.nextPayID
	if posting.Payment != nil {
		p := *posting.Payment
		p.PaymentID = nextPayID
		nextPayID++
		result.Payment = &p
	}
	for _, t := range posting.Transitions {
		idx := slices.IndexFunc(entries, func(e domain.FinanceEntry) bool {
			return e.EntryID == t.EntryID && e.TenantID == posting.TenantID
		})
		if idx < 0 || entries[idx].Status != t.From {
			return nil, fmt.Errorf("%w: entry %d is no longer %s", apperrors.ErrConflict, t.EntryID, t.From)
		}
		entries[idx].Status = t.To
	}
	nextEntryID := m.nextEntryID
	for _, e := range posting.Entries {
		for _, existing := range entries {
			if existing.TenantID == e.TenantID && existing.ReferenceCode == e.ReferenceCode {
				return nil, fmt.Errorf("%w: %s", apperrors.ErrReferenceCodeTaken, e.ReferenceCode)
			}
			if e.EventType == domain.EventProforma && e.Status == domain.StatusOpen && isOpenProformaOf(existing, *e.MembershipID) {
				return nil, fmt.Errorf("%w: membership %s", apperrors.ErrOpenProformaExists, *e.MembershipID)
			}
		}
		e.EntryID = nextEntryID
		nextEntryID++
		entries = append(entries, e)
		result.Entries = append(result.Entries, e)
	}

	m.entries = entries
	m.nextEntryID = nextEntryID
	m.nextPayID = nextPayID
	if result.Payment != nil {
		m.payments = append(m.payments, *result.Payment)
	}
	if posting.DeactivateMembershipID != nil {
		m.deactivated = append(m.deactivated, *posting.DeactivateMembershipID)
	}
	return result, nil
}

func (m *memLedger) ListAllPayments(_ context.Context, tenantID string) ([]domain.IncomingPayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.IncomingPayment
	for _, p := range m.payments {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memLedger) ListPayments(ctx context.Context, tenantID string, limit int, _ *string) ([]domain.IncomingPayment, *string, error) {
	all, _ := m.ListAllPayments(ctx, tenantID)
	slices.Reverse(all)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil, nil
}

func (m *memLedger) SumEntryAmounts(_ context.Context, tenantID string, filter portsrepo.EntryTotalFilter) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, e := range m.all() {
		if e.TenantID == tenantID && e.EventType == filter.EventType && e.Direction == filter.Direction && e.Status == filter.Status {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}

func isOpenProformaOf(e domain.FinanceEntry, membershipID string) bool {
	return e.EventType == domain.EventProforma && e.Status == domain.StatusOpen &&
		e.MembershipID != nil && *e.MembershipID == membershipID
}

// --- Mock EnrollmentRepository ---

type MockEnrollmentRepository struct {
	mock.Mock
}

var _ portsrepo.EnrollmentRepositoryFacade = (*MockEnrollmentRepository)(nil)

func (m *MockEnrollmentRepository) FindGroupByID(ctx context.Context, tenantID, groupID string) (*domain.Group, error) {
	args := m.Called(ctx, tenantID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockEnrollmentRepository) FindAttendanceOptionByID(ctx context.Context, tenantID, optionID string) (*domain.AttendanceOption, error) {
	args := m.Called(ctx, tenantID, optionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceOption), args.Error(1)
}

func (m *MockEnrollmentRepository) FindChildByID(ctx context.Context, tenantID, childID string) (*domain.Child, error) {
	args := m.Called(ctx, tenantID, childID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Child), args.Error(1)
}

func (m *MockEnrollmentRepository) FindChildByReferenceIdentifier(ctx context.Context, tenantID, identifier string) (*domain.Child, error) {
	args := m.Called(ctx, tenantID, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Child), args.Error(1)
}

func (m *MockEnrollmentRepository) FindMembershipView(ctx context.Context, tenantID, membershipID string) (*domain.MembershipView, error) {
	args := m.Called(ctx, tenantID, membershipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MembershipView), args.Error(1)
}

func (m *MockEnrollmentRepository) ListActiveMembershipViews(ctx context.Context, tenantID string) ([]domain.MembershipView, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MembershipView), args.Error(1)
}

func (m *MockEnrollmentRepository) SaveGroup(ctx context.Context, group domain.Group) error {
	return m.Called(ctx, group).Error(0)
}

func (m *MockEnrollmentRepository) SaveAttendanceOption(ctx context.Context, option domain.AttendanceOption) error {
	return m.Called(ctx, option).Error(0)
}

func (m *MockEnrollmentRepository) CreateChild(ctx context.Context, child domain.Child) (*domain.Child, error) {
	args := m.Called(ctx, child)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Child), args.Error(1)
}

func (m *MockEnrollmentRepository) SaveMembership(ctx context.Context, membership domain.Membership) error {
	return m.Called(ctx, membership).Error(0)
}

func (m *MockEnrollmentRepository) UpdateMembershipPlan(ctx context.Context, tenantID, membershipID string, optionID *string, billingStartMonth *time.Time) error {
	return m.Called(ctx, tenantID, membershipID, optionID, billingStartMonth).Error(0)
}

// --- Mock TenantRepository ---

type MockTenantRepository struct {
	mock.Mock
}

var _ portsrepo.TenantRepositoryFacade = (*MockTenantRepository)(nil)

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	return m.Called(ctx, tenant).Error(0)
}

// --- Fixtures ---

const testTenantID = "tenant-1"

var fixedNow = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

// springView is the spring term group (Feb-Jun 2026) with a 1500 option. The
// membership asked to be billed from April.
func springView(membershipID, childID, identifier string) domain.MembershipView {
	return domain.MembershipView{
		Membership: domain.Membership{
			MembershipID:       membershipID,
			TenantID:           testTenantID,
			ChildID:            childID,
			GroupID:            "group-spring",
			AttendanceOptionID: ptr("option-2x"),
			BillingStartMonth:  ptr(utcDate(2026, time.April, 1)),
			RegisteredAt:       utcDate(2026, time.March, 28),
			Active:             true,
		},
		Child: domain.Child{
			ChildID:             childID,
			TenantID:            testTenantID,
			ReferenceIdentifier: identifier,
			FirstName:           "Ema",
			LastName:            strings.ToUpper(childID[:1]) + childID[1:],
		},
		Group: domain.Group{
			GroupID:   "group-spring",
			TenantID:  testTenantID,
			Name:      "Juniors",
			StartDate: ptr(utcDate(2026, time.February, 1)),
			EndDate:   ptr(utcDate(2026, time.June, 30)),
		},
		Option: &domain.AttendanceOption{
			OptionID:  "option-2x",
			GroupID:   "group-spring",
			Name:      "2x per week",
			FullPrice: decimal.NewFromInt(1500),
		},
	}
}

// openProforma is a proforma as IssueProforma would have posted it.
func openProforma(membershipID, childID, identifier, amount string) domain.FinanceEntry {
	return domain.FinanceEntry{
		TenantID:            testTenantID,
		ChildID:             childID,
		MembershipID:        ptr(membershipID),
		EventType:           domain.EventProforma,
		Direction:           domain.Debit,
		Status:              domain.StatusOpen,
		Title:               "Membership Juniors",
		Amount:              decimal.RequireFromString(amount),
		ReferenceIdentifier: identifier,
		ReferenceCode:       "PF-" + membershipID,
		OccurredOn:          utcDate(2026, time.March, 1),
	}
}
