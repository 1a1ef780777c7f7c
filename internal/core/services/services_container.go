package services

import (
	portsrepo "github.com/SscSPs/club_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/club_billing_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Tenant: NewTenantService(repos.TenantRepo),
		Enrollment: NewEnrollmentService(
			repos.EnrollmentRepo,
			WithEnrollmentTenantGuard(repos.TenantRepo),
		),
		Ledger: NewLedgerService(
			repos.LedgerRepo,
			repos.EnrollmentRepo,
			WithLedgerTenantGuard(repos.TenantRepo),
		),
		Reconciliation: NewReconciliationService(
			repos.LedgerRepo,
			repos.PaymentRepo,
			repos.EnrollmentRepo,
			WithReconciliationTenantGuard(repos.TenantRepo),
		),
		Reporting: NewReportingService(
			repos.ReportingRepo,
			repos.EnrollmentRepo,
			repos.LedgerRepo,
			repos.PaymentRepo,
		),
	}
}
