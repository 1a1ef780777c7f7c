package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/club_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/club_billing_app/internal/core/ports/services"
	"github.com/SscSPs/club_billing_app/internal/dto"
	"github.com/google/uuid"
)

// tenantService implements the TenantSvcFacade interface
type tenantService struct {
	BaseService
	tenantRepo portsrepo.TenantRepositoryFacade
}

// NewTenantService creates a new tenant service
func NewTenantService(tenantRepo portsrepo.TenantRepositoryFacade) portssvc.TenantSvcFacade {
	return &tenantService{tenantRepo: tenantRepo}
}

// Ensure tenantService implements the TenantSvcFacade interface
var _ portssvc.TenantSvcFacade = (*tenantService)(nil)

// CreateTenant registers a new club. Reference identifiers start at 1.
func (s *tenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error) {
	now := s.Now()
	tenant := domain.Tenant{
		TenantID:         uuid.NewString(),
		Slug:             strings.ToLower(strings.TrimSpace(req.Slug)),
		Name:             strings.TrimSpace(req.Name),
		IsActive:         true,
		NextReferenceSeq: 1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		s.LogError(ctx, err, "Failed to save tenant", slog.String("slug", tenant.Slug))
		return nil, err
	}

	s.LogInfo(ctx, "Tenant created", slog.String("tenant_id", tenant.TenantID), slog.String("slug", tenant.Slug))
	return &tenant, nil
}

// GetTenant retrieves a club by ID.
func (s *tenantService) GetTenant(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	return s.tenantRepo.FindTenantByID(ctx, tenantID)
}
