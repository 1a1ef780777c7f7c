package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/club_billing_app/internal/core/ports/services"
	"github.com/SscSPs/club_billing_app/internal/dto"
	"github.com/SscSPs/club_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// enrollmentHandler handles groups, options, children and memberships. Membership writes
// drive the ledger: a new membership gets its proforma, a plan change a reissue.
type enrollmentHandler struct {
	enrollmentService portssvc.EnrollmentSvcFacade
	ledgerService     portssvc.LedgerSvcFacade
	reportingService  portssvc.ReportingSvcFacade
}

func newEnrollmentHandler(es portssvc.EnrollmentSvcFacade, ls portssvc.LedgerSvcFacade, rs portssvc.ReportingSvcFacade) *enrollmentHandler {
	return &enrollmentHandler{
		enrollmentService: es,
		ledgerService:     ls,
		reportingService:  rs,
	}
}

func registerEnrollmentRoutes(tenant *gin.RouterGroup, es portssvc.EnrollmentSvcFacade, ls portssvc.LedgerSvcFacade, rs portssvc.ReportingSvcFacade) {
	h := newEnrollmentHandler(es, ls, rs)

	groups := tenant.Group("/groups")
	{
		groups.POST("", h.createGroup)
		groups.POST("/:groupID/options", h.addAttendanceOption)
	}

	tenant.POST("/children", h.registerChild)

	memberships := tenant.Group("/memberships")
	{
		memberships.POST("", h.createMembership)
		memberships.GET("/:membershipID", h.getMembership)
		memberships.PUT("/:membershipID/plan", h.changePlan)
		memberships.GET("/:membershipID/billing", h.getMembershipBilling)
	}
}

// createGroup godoc
// @Summary Create a training group
// @Description Creates a group. Its start and end dates define the billing calendar.
// @Tags enrollment
// @Accept  json
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   group body dto.CreateGroupRequest true "Group details"
// @Success 201 {object} domain.Group
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Tenant not found"
// @Security BearerAuth
// @Router /tenants/{tenantID}/groups [post]
func (h *enrollmentHandler) createGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGroupRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	group, err := h.enrollmentService.CreateGroup(c.Request.Context(), c.Param("tenantID"), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "create group")
		return
	}
	c.JSON(http.StatusCreated, group)
}

// addAttendanceOption godoc
// @Summary Add an attendance option
// @Tags enrollment
// @Accept  json
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   groupID path string true "Group ID"
// @Param   option body dto.AddAttendanceOptionRequest true "Option details"
// @Success 201 {object} domain.AttendanceOption
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Group not found"
// @Security BearerAuth
// @Router /tenants/{tenantID}/groups/{groupID}/options [post]
func (h *enrollmentHandler) addAttendanceOption(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddAttendanceOptionRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	option, err := h.enrollmentService.AddAttendanceOption(c.Request.Context(), c.Param("tenantID"), c.Param("groupID"), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "add attendance option")
		return
	}
	c.JSON(http.StatusCreated, option)
}

// registerChild godoc
// @Summary Register a child
// @Description Registers a child and allocates its payment reference identifier.
// @Tags enrollment
// @Accept  json
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   child body dto.RegisterChildRequest true "Child details"
// @Success 201 {object} domain.Child
// @Failure 400 {object} map[string]string "Invalid input or identifiers exhausted"
// @Security BearerAuth
// @Router /tenants/{tenantID}/children [post]
func (h *enrollmentHandler) registerChild(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterChildRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	child, err := h.enrollmentService.RegisterChild(c.Request.Context(), c.Param("tenantID"), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "register child")
		return
	}
	logger.Info("Child registered", slog.String("child_id", child.ChildID), slog.String("reference_identifier", child.ReferenceIdentifier))
	c.JSON(http.StatusCreated, child)
}

// createMembership godoc
// @Summary Enroll a child in a group
// @Description Creates the membership and issues its proforma when anything is due.
// @Tags enrollment
// @Accept  json
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   membership body dto.CreateMembershipRequest true "Membership details"
// @Success 201 {object} dto.MembershipResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Child, group or option not found"
// @Security BearerAuth
// @Router /tenants/{tenantID}/memberships [post]
func (h *enrollmentHandler) createMembership(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMembershipRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	tenantID := c.Param("tenantID")

	view, err := h.enrollmentService.CreateMembership(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "create membership")
		return
	}

	resp := dto.ToMembershipResponse(view)
	proforma, err := h.ledgerService.IssueProforma(c.Request.Context(), tenantID, view.Membership.MembershipID, userID)
	if err != nil {
		// Membership is kept; the proforma route retries the issue.
		logger.Error("Failed to issue proforma for new membership",
			slog.String("membership_id", view.Membership.MembershipID),
			slog.String("error", err.Error()))
	}
	resp.Proforma = dto.ToProformaSummary(proforma)

	c.JSON(http.StatusCreated, resp)
}

// getMembership godoc
// @Summary Get a membership
// @Tags enrollment
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   membershipID path string true "Membership ID"
// @Success 200 {object} dto.MembershipResponse
// @Failure 404 {object} map[string]string "Membership not found"
// @Security BearerAuth
// @Router /tenants/{tenantID}/memberships/{membershipID} [get]
func (h *enrollmentHandler) getMembership(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	view, err := h.enrollmentService.GetMembership(c.Request.Context(), c.Param("tenantID"), c.Param("membershipID"))
	if err != nil {
		respondWithError(c, logger, err, "get membership")
		return
	}
	c.JSON(http.StatusOK, dto.ToMembershipResponse(view))
}

// changePlan godoc
// @Summary Change a membership's option or billing start
// @Description Updates the membership and replaces its open proforma with one for the new terms.
// @Tags enrollment
// @Accept  json
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   membershipID path string true "Membership ID"
// @Param   plan body dto.ChangePlanRequest true "New terms"
// @Success 200 {object} dto.MembershipResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Membership not found or ended"
// @Failure 409 {object} map[string]string "Concurrent ledger change"
// @Security BearerAuth
// @Router /tenants/{tenantID}/memberships/{membershipID}/plan [put]
func (h *enrollmentHandler) changePlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ChangePlanRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	tenantID, membershipID := c.Param("tenantID"), c.Param("membershipID")

	view, err := h.enrollmentService.ChangeMembershipPlan(c.Request.Context(), tenantID, membershipID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "change membership plan")
		return
	}

	proforma, err := h.ledgerService.ReissueProforma(c.Request.Context(), tenantID, membershipID, req.Reason, userID)
	if err != nil {
		respondWithError(c, logger, err, "reissue proforma")
		return
	}

	resp := dto.ToMembershipResponse(view)
	resp.Proforma = dto.ToProformaSummary(proforma)
	c.JSON(http.StatusOK, resp)
}

// getMembershipBilling godoc
// @Summary Billing state of a membership
// @Description Payable months, base price, due amount and paid flag, evaluated as of today or asOf.
// @Tags enrollment
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   membershipID path string true "Membership ID"
// @Param   asOf query string false "Evaluation day (YYYY-MM-DD)"
// @Success 200 {object} domain.MembershipBilling
// @Failure 404 {object} map[string]string "Membership not found"
// @Security BearerAuth
// @Router /tenants/{tenantID}/memberships/{membershipID}/billing [get]
func (h *enrollmentHandler) getMembershipBilling(c *gin.Context) {
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
		respondWithError(c, logger, err, "get membership billing")
		return
	}

	billing, err := h.reportingService.GetMembershipBilling(c.Request.Context(), c.Param("tenantID"), c.Param("membershipID"), today)
	if err != nil {
		respondWithError(c, logger, err, "get membership billing")
		return
	}
	c.JSON(http.StatusOK, billing)
}
