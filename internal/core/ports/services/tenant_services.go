package services

import (
	"context"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
	"github.com/SscSPs/club_billing_app/internal/dto"
)

// TenantSvcFacade defines operations on clubs
type TenantSvcFacade interface {
	// CreateTenant registers a new club.
	CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error)

	// GetTenant retrieves a club by ID.
	GetTenant(ctx context.Context, tenantID string) (*domain.Tenant, error)
}
