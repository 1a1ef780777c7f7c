package handlers

import (
	"github.com/SscSPs/club_billing_app/cmd/docs"
	portssvc "github.com/SscSPs/club_billing_app/internal/core/ports/services"
	"github.com/SscSPs/club_billing_app/internal/middleware"
	"github.com/SscSPs/club_billing_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (non-production only)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// API keys first: a valid key authenticates, anything else falls through to JWT
	v1 := r.Group("/api/v1",
		middleware.APIKeyAuth(cfg.APIKeys),
		middleware.AuthMiddleware(cfg.JWTSecret),
	)

	tenant := registerTenantRoutes(v1, service.Tenant)
	registerEnrollmentRoutes(tenant, service.Enrollment, service.Ledger, service.Reporting)
	registerLedgerRoutes(tenant, service.Ledger)
	registerPaymentRoutes(tenant, service.Reconciliation)
	registerReportingRoutes(tenant, service.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
