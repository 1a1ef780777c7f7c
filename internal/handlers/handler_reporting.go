package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/club_billing_app/internal/core/ports/services"
	"github.com/SscSPs/club_billing_app/internal/dto"
	"github.com/SscSPs/club_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the read-only dashboards.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

func registerReportingRoutes(tenant *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := newReportingHandler(rs)

	reports := tenant.Group("/reports")
	{
		reports.GET("/contributions", h.getContributions)
		reports.GET("/summary", h.getSummary)
	}
	tenant.GET("/children/:childID/statement", h.getChildStatement)
}

// getContributions godoc
// @Summary Contributions report
// @Description Billing rows of all active memberships with their total, as of today or asOf.
// @Tags reports
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   asOf query string false "Evaluation day (YYYY-MM-DD)"
// @Param   q query string false "Filter by child name or reference identifier"
// @Success 200 {object} domain.ContributionsReport
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /tenants/{tenantID}/reports/contributions [get]
func (h *reportingHandler) getContributions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	today, err := params.Today(time.Now().UTC())
	if err != nil {
		respondWithError(c, logger, err, "build contributions report")
		return
	}

	report, err := h.reportingService.ContributionsReport(c.Request.Context(), c.Param("tenantID"), today, params.Query)
	if err != nil {
		respondWithError(c, logger, err, "build contributions report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getSummary godoc
// @Summary Finance summary
// @Description Expected, paid and outstanding totals of the club.
// @Tags reports
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Success 200 {object} domain.FinanceTotals
// @Security BearerAuth
// @Router /tenants/{tenantID}/reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	totals, err := h.reportingService.FinanceSummary(c.Request.Context(), c.Param("tenantID"))
	if err != nil {
		respondWithError(c, logger, err, "build finance summary")
		return
	}
	c.JSON(http.StatusOK, totals)
}

// getChildStatement godoc
// @Summary Child statement
// @Description All ledger entries of a child, its open due total and the paid state of its sales.
// @Tags reports
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   childID path string true "Child ID"
// @Success 200 {object} domain.ChildStatement
// @Failure 404 {object} map[string]string "Child not found"
// @Security BearerAuth
// @Router /tenants/{tenantID}/children/{childID}/statement [get]
func (h *reportingHandler) getChildStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	statement, err := h.reportingService.ChildStatement(c.Request.Context(), c.Param("tenantID"), c.Param("childID"))
	if err != nil {
		respondWithError(c, logger, err, "build child statement")
		return
	}
	c.JSON(http.StatusOK, statement)
}
