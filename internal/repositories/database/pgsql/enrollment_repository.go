package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/club_billing_app/internal/apperrors"
	"github.com/SscSPs/club_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/club_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/club_billing_app/internal/models"
	"github.com/SscSPs/club_billing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxEnrollmentRepository struct {
	BaseRepository
}

// newPgxEnrollmentRepository creates a new repository for groups, children and memberships.
func newPgxEnrollmentRepository(pool *pgxpool.Pool) portsrepo.EnrollmentRepositoryFacade {
	return &PgxEnrollmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxEnrollmentRepository implements portsrepo.EnrollmentRepositoryFacade
var _ portsrepo.EnrollmentRepositoryFacade = (*PgxEnrollmentRepository)(nil)

// ReferenceIdentifierFormat renders a tenant sequence number as a child's payment identifier.
const ReferenceIdentifierFormat = "%04d"

func (r *PgxEnrollmentRepository) SaveGroup(ctx context.Context, group domain.Group) error {
	m := mapping.ToModelGroup(group)
	query := `
		INSERT INTO groups (
			group_id, tenant_id, name, start_date, end_date,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.GroupID, m.TenantID, m.Name, m.StartDate, m.EndDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "group "+m.GroupID)
	}
	return nil
}

func (r *PgxEnrollmentRepository) FindGroupByID(ctx context.Context, tenantID, groupID string) (*domain.Group, error) {
	query := `
		SELECT group_id, tenant_id, name, start_date, end_date,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM groups
		WHERE tenant_id = $1 AND group_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, groupID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query group "+groupID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Group])
	if err != nil {
		return nil, notFoundOr(err, "group "+groupID)
	}
	group := mapping.ToDomainGroup(m)
	return &group, nil
}

func (r *PgxEnrollmentRepository) SaveAttendanceOption(ctx context.Context, option domain.AttendanceOption) error {
	m := mapping.ToModelAttendanceOption(option)
	query := `
		INSERT INTO attendance_options (option_id, group_id, name, frequency_per_week, full_price)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, m.OptionID, m.GroupID, m.Name, m.FrequencyPerWeek, m.FullPrice)
	if err != nil {
		return mapWriteError(err, "attendance option "+m.OptionID)
	}
	return nil
}

func (r *PgxEnrollmentRepository) FindAttendanceOptionByID(ctx context.Context, tenantID, optionID string) (*domain.AttendanceOption, error) {
	query := `
		SELECT o.option_id, o.group_id, o.name, o.frequency_per_week, o.full_price
		FROM attendance_options o
		JOIN groups g ON g.group_id = o.group_id
		WHERE g.tenant_id = $1 AND o.option_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, optionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query attendance option "+optionID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.AttendanceOption])
	if err != nil {
		return nil, notFoundOr(err, "attendance option "+optionID)
	}
	option := mapping.ToDomainAttendanceOption(m)
	return &option, nil
}

// CreateChild allocates the tenant's next reference identifier and inserts the child in
// one transaction. The tenant row lock serialises concurrent registrations.
func (r *PgxEnrollmentRepository) CreateChild(ctx context.Context, child domain.Child) (*domain.Child, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var seq int
	err = tx.QueryRow(ctx,
		`SELECT next_reference_seq FROM tenants WHERE tenant_id = $1 FOR UPDATE;`,
		child.TenantID,
	).Scan(&seq)
	if err != nil {
		return nil, notFoundOr(err, "tenant "+child.TenantID)
	}
	if seq > domain.MaxReferenceSeq {
		return nil, fmt.Errorf("%w: tenant %s has no reference identifiers left", apperrors.ErrValidation, child.TenantID)
	}
	child.ReferenceIdentifier = fmt.Sprintf(ReferenceIdentifierFormat, seq)

	m := mapping.ToModelChild(child)
	_, err = tx.Exec(ctx, `
		INSERT INTO children (child_id, tenant_id, reference_identifier, first_name, last_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, m.ChildID, m.TenantID, m.ReferenceIdentifier, m.FirstName, m.LastName, m.CreatedAt)
	if err != nil {
		return nil, mapWriteError(err, "child "+m.ChildID)
	}

	_, err = tx.Exec(ctx,
		`UPDATE tenants SET next_reference_seq = $2, last_updated_at = $3 WHERE tenant_id = $1;`,
		child.TenantID, seq+1, m.CreatedAt,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to advance reference sequence of tenant "+child.TenantID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &child, nil
}

const childSelect = `
	SELECT child_id, tenant_id, reference_identifier, first_name, last_name, created_at
	FROM children
`

func (r *PgxEnrollmentRepository) findChild(ctx context.Context, filter string, args ...any) (*domain.Child, error) {
	rows, err := r.Pool.Query(ctx, childSelect+filter, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query child", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Child])
	if err != nil {
		return nil, notFoundOr(err, "child")
	}
	child := mapping.ToDomainChild(m)
	return &child, nil
}

func (r *PgxEnrollmentRepository) FindChildByID(ctx context.Context, tenantID, childID string) (*domain.Child, error) {
	return r.findChild(ctx, `WHERE tenant_id = $1 AND child_id = $2;`, tenantID, childID)
}

func (r *PgxEnrollmentRepository) FindChildByReferenceIdentifier(ctx context.Context, tenantID, identifier string) (*domain.Child, error) {
	return r.findChild(ctx, `WHERE tenant_id = $1 AND reference_identifier = $2;`, tenantID, identifier)
}

func (r *PgxEnrollmentRepository) SaveMembership(ctx context.Context, membership domain.Membership) error {
	m := mapping.ToModelMembership(membership)
	query := `
		INSERT INTO memberships (
			membership_id, tenant_id, child_id, group_id, attendance_option_id,
			billing_start_month, registered_at, active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.MembershipID, m.TenantID, m.ChildID, m.GroupID, m.AttendanceOptionID,
		m.BillingStartMonth, m.RegisteredAt, m.Active,
	)
	if err != nil {
		return mapWriteError(err, "membership "+m.MembershipID)
	}
	return nil
}

func (r *PgxEnrollmentRepository) UpdateMembershipPlan(ctx context.Context, tenantID, membershipID string, optionID *string, billingStartMonth *time.Time) error {
	var start sql.NullTime
	if billingStartMonth != nil {
		start = sql.NullTime{Time: *billingStartMonth, Valid: true}
	}
	var option sql.NullString
	if optionID != nil {
		option = sql.NullString{String: *optionID, Valid: true}
	}
	tag, err := r.Pool.Exec(ctx, `
		UPDATE memberships
		SET attendance_option_id = $3, billing_start_month = $4
		WHERE tenant_id = $1 AND membership_id = $2 AND active;
	`, tenantID, membershipID, option, start)
	if err != nil {
		return mapWriteError(err, "membership "+membershipID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const membershipViewSelect = `
	SELECT
		m.membership_id, m.tenant_id, m.child_id, m.group_id, m.attendance_option_id,
		m.billing_start_month, m.registered_at, m.active,
		c.reference_identifier, c.first_name, c.last_name, c.created_at,
		g.name, g.start_date, g.end_date,
		g.created_at, g.created_by, g.last_updated_at, g.last_updated_by,
		o.name, o.frequency_per_week, o.full_price
	FROM memberships m
	JOIN children c ON c.child_id = m.child_id
	JOIN groups g ON g.group_id = m.group_id
	LEFT JOIN attendance_options o ON o.option_id = m.attendance_option_id
`

func scanMembershipView(row pgx.CollectableRow) (domain.MembershipView, error) {
	var (
		m        models.Membership
		c        models.Child
		g        models.Group
		optName  sql.NullString
		optFreq  sql.NullInt32
		optPrice decimal.NullDecimal
	)
	err := row.Scan(
		&m.MembershipID, &m.TenantID, &m.ChildID, &m.GroupID, &m.AttendanceOptionID,
		&m.BillingStartMonth, &m.RegisteredAt, &m.Active,
		&c.ReferenceIdentifier, &c.FirstName, &c.LastName, &c.CreatedAt,
		&g.Name, &g.StartDate, &g.EndDate,
		&g.CreatedAt, &g.CreatedBy, &g.LastUpdatedAt, &g.LastUpdatedBy,
		&optName, &optFreq, &optPrice,
	)
	if err != nil {
		return domain.MembershipView{}, err
	}
	c.ChildID, c.TenantID = m.ChildID, m.TenantID
	g.GroupID, g.TenantID = m.GroupID, m.TenantID

	view := domain.MembershipView{
		Membership: mapping.ToDomainMembership(m),
		Child:      mapping.ToDomainChild(c),
		Group:      mapping.ToDomainGroup(g),
	}
	if m.AttendanceOptionID.Valid && optPrice.Valid {
		option := mapping.ToDomainAttendanceOption(models.AttendanceOption{
			OptionID:         m.AttendanceOptionID.String,
			GroupID:          m.GroupID,
			Name:             optName.String,
			FrequencyPerWeek: int(optFreq.Int32),
			FullPrice:        optPrice.Decimal,
		})
		view.Option = &option
	}
	return view, nil
}

func (r *PgxEnrollmentRepository) FindMembershipView(ctx context.Context, tenantID, membershipID string) (*domain.MembershipView, error) {
	rows, err := r.Pool.Query(ctx, membershipViewSelect+`WHERE m.tenant_id = $1 AND m.membership_id = $2;`, tenantID, membershipID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query membership "+membershipID, err)
	}
	view, err := pgx.CollectExactlyOneRow(rows, scanMembershipView)
	if err != nil {
		return nil, notFoundOr(err, "membership "+membershipID)
	}
	return &view, nil
}

// ListActiveMembershipViews returns active memberships in report order: registration
// time, then membership ID.
func (r *PgxEnrollmentRepository) ListActiveMembershipViews(ctx context.Context, tenantID string) ([]domain.MembershipView, error) {
	rows, err := r.Pool.Query(ctx, membershipViewSelect+`
		WHERE m.tenant_id = $1 AND m.active
		ORDER BY m.registered_at, m.membership_id;
	`, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query memberships of tenant "+tenantID, err)
	}
	views, err := pgx.CollectRows(rows, scanMembershipView)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect membership rows", err)
	}
	return views, nil
}

// notFoundOr maps pgx.ErrNoRows to apperrors.ErrNotFound and wraps anything else.
func notFoundOr(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return apperrors.NewAppError(500, "failed to read "+what, err)
}
