package pgsql

import (
	"context"

	"github.com/SscSPs/club_billing_app/internal/apperrors"
	portsrepo "github.com/SscSPs/club_billing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure reportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

func (r *reportingRepository) SumEntryAmounts(ctx context.Context, tenantID string, filter portsrepo.EntryTotalFilter) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM finance_entries
		WHERE tenant_id = $1 AND event_type = $2 AND direction = $3 AND status = $4;
	`
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, tenantID, string(filter.EventType), string(filter.Direction), string(filter.Status)).Scan(&total)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum finance entries", err)
	}
	return total.Round(2), nil
}
