package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/club_billing_app/internal/apperrors"
	portssvc "github.com/SscSPs/club_billing_app/internal/core/ports/services"
	"github.com/SscSPs/club_billing_app/internal/dto"
	"github.com/SscSPs/club_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ledgerHandler exposes the finance ledger: proforma lifecycle, sales and entry listing.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

func registerLedgerRoutes(tenant *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	membership := tenant.Group("/memberships/:membershipID")
	{
		membership.POST("/proforma", h.issueProforma)
		membership.POST("/proforma/cancel", h.cancelProforma)
		membership.POST("/end", h.endMembership)
	}

	entries := tenant.Group("/ledger/entries")
	{
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.POST("/:entryID/settle", h.settleProforma)
	}

	sales := tenant.Group("/sales")
	{
		sales.POST("", h.recordSale)
		sales.POST("/paid", h.markSalePaid)
	}
}

func parseEntryID(c *gin.Context) (int64, error) {
	raw := c.Param("entryID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid entry id %q", apperrors.ErrValidation, raw)
	}
	return id, nil
}

// issueProforma godoc
// @Summary Issue the proforma of a membership
// @Description Idempotent. Returns the open proforma if one exists; issued is false when nothing is due.
// @Tags ledger
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   membershipID path string true "Membership ID"
// @Success 200 {object} dto.ProformaResponse
// @Failure 400 {object} map[string]string "Membership inactive"
// @Failure 404 {object} map[string]string "Membership not found"
// @Security BearerAuth
// @Router /tenants/{tenantID}/memberships/{membershipID}/proforma [post]
func (h *ledgerHandler) issueProforma(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entry, err := h.ledgerService.IssueProforma(c.Request.Context(), c.Param("tenantID"), c.Param("membershipID"), userID)
	if err != nil {
		respondWithError(c, logger, err, "issue proforma")
		return
	}
	c.JSON(http.StatusOK, dto.ProformaResponse{Issued: entry != nil, Entry: entry})
}

// cancelProforma godoc
// @Summary Cancel the open proforma of a membership
// @Description Marks the open proforma cancelled and records an info entry. A no-op when none is open.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   membershipID path string true "Membership ID"
// @Param   request body dto.CancelProformaRequest false "Reason"
// @Success 200 {object} domain.FinanceEntry
// @Success 204 "Nothing to cancel"
// @Failure 409 {object} map[string]string "Concurrent ledger change"
// @Security BearerAuth
// @Router /tenants/{tenantID}/memberships/{membershipID}/proforma/cancel [post]
func (h *ledgerHandler) cancelProforma(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CancelProformaRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	info, err := h.ledgerService.CancelOpenProforma(c.Request.Context(), c.Param("tenantID"), c.Param("membershipID"), req.Reason, userID)
	if err != nil {
		respondWithError(c, logger, err, "cancel proforma")
		return
	}
	if info == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, info)
}

// endMembership godoc
// @Summary End a membership
// @Description Deactivates the membership, cancels its open proforma and records an optional refund.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   membershipID path string true "Membership ID"
// @Param   request body dto.EndMembershipRequest false "Refund"
// @Success 200 {object} domain.FinanceEntry
// @Failure 400 {object} map[string]string "Invalid refund"
// @Failure 404 {object} map[string]string "Membership not found"
// @Failure 409 {object} map[string]string "Membership already ended"
// @Security BearerAuth
// @Router /tenants/{tenantID}/memberships/{membershipID}/end [post]
func (h *ledgerHandler) endMembership(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EndMembershipRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	refund := decimal.Zero
	if req.RefundAmount != "" {
		var err error
		if refund, err = dto.ParseAmount(req.RefundAmount); err != nil {
			respondWithError(c, logger, err, "end membership")
			return
		}
	}

	marker, err := h.ledgerService.EndMembership(c.Request.Context(), c.Param("tenantID"), c.Param("membershipID"), refund, userID)
	if err != nil {
		respondWithError(c, logger, err, "end membership")
		return
	}
	logger.Info("Membership ended", slog.String("membership_id", c.Param("membershipID")), slog.String("refund", refund.StringFixed(2)))
	c.JSON(http.StatusOK, marker)
}

// settleProforma godoc
// @Summary Close a proforma and invoice it
// @Description Settles an open proforma by hand, posting payment and invoice entries.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   entryID path int true "Proforma entry ID"
// @Param   request body dto.SettleProformaRequest false "Payment note"
// @Success 200 {object} domain.Settlement
// @Failure 400 {object} map[string]string "Entry is not a proforma"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Proforma is not open"
// @Security BearerAuth
// @Router /tenants/{tenantID}/ledger/entries/{entryID}/settle [post]
func (h *ledgerHandler) settleProforma(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, err := parseEntryID(c)
	if err != nil {
		respondWithError(c, logger, err, "settle proforma")
		return
	}
	var req dto.SettleProformaRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	settlement, err := h.ledgerService.CloseAndInvoice(c.Request.Context(), c.Param("tenantID"), entryID, req.PaymentNote, userID)
	if err != nil {
		respondWithError(c, logger, err, "settle proforma")
		return
	}
	c.JSON(http.StatusOK, settlement)
}

// listEntries godoc
// @Summary List ledger entries
// @Description Newest first, optionally filtered by child, status and event type. Token paginated.
// @Tags ledger
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   childID query string false "Child ID"
// @Param   status query string false "OPEN, CLOSED or CANCELLED"
// @Param   eventType query string false "Event type"
// @Param   limit query int false "Page size (default 50, max 500)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /tenants/{tenantID}/ledger/entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.ListEntries(c.Request.Context(), c.Param("tenantID"), params)
	if err != nil {
		respondWithError(c, logger, err, "list ledger entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getEntry godoc
// @Summary Get a ledger entry
// @Tags ledger
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   entryID path int true "Entry ID"
// @Success 200 {object} domain.FinanceEntry
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /tenants/{tenantID}/ledger/entries/{entryID} [get]
func (h *ledgerHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}
	entryID, err := parseEntryID(c)
	if err != nil {
		respondWithError(c, logger, err, "get ledger entry")
		return
	}

	entry, err := h.ledgerService.GetEntry(c.Request.Context(), c.Param("tenantID"), entryID)
	if err != nil {
		respondWithError(c, logger, err, "get ledger entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// recordSale godoc
// @Summary Record a one-off sale
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   sale body dto.SaleRequest true "Sale"
// @Success 201 {object} domain.FinanceEntry
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Child not found"
// @Security BearerAuth
// @Router /tenants/{tenantID}/sales [post]
func (h *ledgerHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaleRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	amount, err := dto.ParsePositiveAmount(req.Amount)
	if err != nil {
		respondWithError(c, logger, err, "record sale")
		return
	}

	sale, err := h.ledgerService.RecordSale(c.Request.Context(), c.Param("tenantID"), req.ChildID, req.Title, amount, userID)
	if err != nil {
		respondWithError(c, logger, err, "record sale")
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// markSalePaid godoc
// @Summary Mark a sale paid
// @Description Closes the oldest open sale of the child with this title and amount.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   sale body dto.SaleRequest true "Sale to settle"
// @Success 200 {object} domain.SaleSettlement
// @Failure 404 {object} map[string]string "No open sale matches"
// @Security BearerAuth
// @Router /tenants/{tenantID}/sales/paid [post]
func (h *ledgerHandler) markSalePaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaleRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	amount, err := dto.ParsePositiveAmount(req.Amount)
	if err != nil {
		respondWithError(c, logger, err, "mark sale paid")
		return
	}

	settled, err := h.ledgerService.MarkSalePaid(c.Request.Context(), c.Param("tenantID"), req.ChildID, req.Title, amount, userID)
	if err != nil {
		respondWithError(c, logger, err, "mark sale paid")
		return
	}
	c.JSON(http.StatusOK, settled)
}
