package repositories

import (
	"context"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
)

// TenantReader defines read operations for tenants
type TenantReader interface {
	// FindTenantByID retrieves a tenant. Returns apperrors.ErrNotFound if it does not exist.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
}

// TenantWriter defines write operations for tenants
type TenantWriter interface {
	// SaveTenant inserts a new tenant. A taken slug yields apperrors.ErrDuplicate.
	SaveTenant(ctx context.Context, tenant domain.Tenant) error
}

// TenantRepositoryFacade combines all tenant-related repository interfaces
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
}
