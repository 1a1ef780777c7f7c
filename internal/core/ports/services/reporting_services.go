package services

import (
	"context"
	"time"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
)

// ReportingSvcFacade defines the computed billing views
type ReportingSvcFacade interface {
	// GetMembershipBilling computes the dues view of one membership as of today.
	GetMembershipBilling(ctx context.Context, tenantID, membershipID string, today time.Time) (*domain.MembershipBilling, error)

	// ContributionsReport computes dues of every active membership. query narrows the
	// rows by child name or reference identifier.
	ContributionsReport(ctx context.Context, tenantID string, today time.Time, query string) (*domain.ContributionsReport, error)

	// FinanceSummary totals expected and paid membership dues.
	FinanceSummary(ctx context.Context, tenantID string) (*domain.FinanceTotals, error)

	// ChildStatement lists a child's entries, open dues and sale payment state.
	ChildStatement(ctx context.Context, tenantID, childID string) (*domain.ChildStatement, error)
}
