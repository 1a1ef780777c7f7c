package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/club_billing_app/internal/core/ports/services"
	"github.com/SscSPs/club_billing_app/internal/dto"
	"github.com/SscSPs/club_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type paymentHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newPaymentHandler(rs portssvc.ReconciliationSvcFacade) *paymentHandler {
	return &paymentHandler{reconciliationService: rs}
}

func registerPaymentRoutes(tenant *gin.RouterGroup, rs portssvc.ReconciliationSvcFacade) {
	h := newPaymentHandler(rs)

	payments := tenant.Group("/payments")
	{
		payments.POST("", h.recordPayment)
		payments.GET("", h.listPayments)
	}
}

// recordPayment godoc
// @Summary Record an incoming bank payment
// @Description Stores the payment and reconciles it against open proformas by reference identifier and amount.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   payment body dto.RecordPaymentRequest true "Bank receipt"
// @Success 201 {object} domain.MatchResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Concurrent ledger change"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /tenants/{tenantID}/payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordPaymentRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	tenantID := c.Param("tenantID")

	payment, err := req.ToIncomingPayment(tenantID)
	if err != nil {
		respondWithError(c, logger, err, "record payment")
		return
	}

	result, err := h.reconciliationService.RecordIncomingPayment(c.Request.Context(), tenantID, payment, userID)
	if err != nil {
		respondWithError(c, logger, err, "record payment")
		return
	}

	logger.Info("Payment recorded",
		slog.Int64("payment_id", result.Payment.PaymentID),
		slog.String("outcome", string(result.Outcome)))
	c.JSON(http.StatusCreated, result)
}

// listPayments godoc
// @Summary List incoming payments
// @Description Newest first. Token paginated.
// @Tags payments
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   limit query int false "Page size (default 50, max 500)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /tenants/{tenantID}/payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.reconciliationService.ListIncomingPayments(c.Request.Context(), c.Param("tenantID"), params)
	if err != nil {
		respondWithError(c, logger, err, "list payments")
		return
	}
	c.JSON(http.StatusOK, resp)
}
