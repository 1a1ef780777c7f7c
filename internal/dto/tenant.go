package dto

import (
	"time"

	"github.com/SscSPs/club_billing_app/internal/core/domain"
)

// CreateTenantRequest defines data for creating a new club.
type CreateTenantRequest struct {
	Slug string `json:"slug" binding:"required,min=2,max=64,slug"`
	Name string `json:"name" binding:"required,max=200"`
}

// TenantResponse defines data returned for a club.
type TenantResponse struct {
	TenantID  string    `json:"tenantID"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// ToTenantResponse converts domain.Tenant to DTO.
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:  t.TenantID,
		Slug:      t.Slug,
		Name:      t.Name,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		CreatedBy: t.CreatedBy,
	}
}
