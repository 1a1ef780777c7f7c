package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/club_billing_app/internal/core/ports/services"
	"github.com/SscSPs/club_billing_app/internal/dto"
	"github.com/SscSPs/club_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tenantHandler handles HTTP requests related to clubs.
type tenantHandler struct {
	tenantService portssvc.TenantSvcFacade
}

func newTenantHandler(ts portssvc.TenantSvcFacade) *tenantHandler {
	return &tenantHandler{tenantService: ts}
}

// registerTenantRoutes registers the tenant routes. Returns the per-tenant group that the
// other handlers hang off.
func registerTenantRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade) *gin.RouterGroup {
	h := newTenantHandler(tenantService)

	tenants := rg.Group("/tenants")
	tenants.POST("", h.createTenant)
	tenants.GET("/:tenantID", h.getTenant)

	return tenants.Group("/:tenantID")
}

// createTenant godoc
// @Summary Create a club
// @Description Creates a new club (tenant). The slug is stored lowercased.
// @Tags tenants
// @Accept  json
// @Produce  json
// @Param   tenant body dto.CreateTenantRequest true "Club details"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Slug already taken"
// @Failure 500 {object} map[string]string "Failed to create tenant"
// @Security BearerAuth
// @Router /tenants [post]
func (h *tenantHandler) createTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTenantRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	tenant, err := h.tenantService.CreateTenant(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "create tenant")
		return
	}

	logger.Info("Tenant created", slog.String("tenant_id", tenant.TenantID))
	c.JSON(http.StatusCreated, dto.ToTenantResponse(tenant))
}

// getTenant godoc
// @Summary Get a club
// @Tags tenants
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tenant not found"
// @Security BearerAuth
// @Router /tenants/{tenantID} [get]
func (h *tenantHandler) getTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	tenant, err := h.tenantService.GetTenant(c.Request.Context(), c.Param("tenantID"))
	if err != nil {
		respondWithError(c, logger, err, "get tenant")
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}
