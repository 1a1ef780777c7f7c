package pgsql

import (
	portsrepo "github.com/SscSPs/club_billing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TenantRepo:     newPgxTenantRepository(dbPool),
		EnrollmentRepo: newPgxEnrollmentRepository(dbPool),
		LedgerRepo:     newPgxLedgerRepository(dbPool),
		PaymentRepo:    newPgxPaymentRepository(dbPool),
		ReportingRepo:  newReportingRepository(dbPool),
	}
}
