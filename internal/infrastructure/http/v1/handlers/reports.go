package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ledgerbook/internal/domain/reports"
	"ledgerbook/internal/infrastructure/http/v1/dto"
)

// ReportsHandler handles HTTP requests for business reports.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{BaseHandler: base, service: service}
}

// parseRange binds and parses the date range query. Errors are already
// written to the context when ok is false.
func (h *ReportsHandler) parseRange(c *gin.Context) (reports.DateRange, bool) {
	var req dto.ReportRangeRequest
	if !h.BindQuery(c, &req) {
		return reports.DateRange{}, false
	}

	rng, err := req.ToDateRange()
	if err != nil {
		h.Error(c, err)
		return reports.DateRange{}, false
	}
	return rng, true
}

// ItemsByParty handles GET /reports/items-by-party
func (h *ReportsHandler) ItemsByParty(c *gin.Context) {
	rng, ok := h.parseRange(c)
	if !ok {
		return
	}

	rows, err := h.service.ItemReportByParty(c.Request.Context(), rng)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReportResponse(rows, len(rows), rng))
}

// ItemSummary handles GET /reports/item-summary
func (h *ReportsHandler) ItemSummary(c *gin.Context) {
	rng, ok := h.parseRange(c)
	if !ok {
		return
	}

	rows, err := h.service.ItemSaleSummary(c.Request.Context(), rng)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReportResponse(rows, len(rows), rng))
}

// MonthlySummary handles GET /reports/monthly-summary
func (h *ReportsHandler) MonthlySummary(c *gin.Context) {
	rng, ok := h.parseRange(c)
	if !ok {
		return
	}

	rows, err := h.service.MonthlyBusinessSummary(c.Request.Context(), rng)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReportResponse(rows, len(rows), rng))
}

// CustomerSummary handles GET /reports/customer-summary
func (h *ReportsHandler) CustomerSummary(c *gin.Context) {
	rng, ok := h.parseRange(c)
	if !ok {
		return
	}

	rows, err := h.service.CustomerWiseSummary(c.Request.Context(), rng)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReportResponse(rows, len(rows), rng))
}

// AccountBalances handles GET /reports/account-balances
func (h *ReportsHandler) AccountBalances(c *gin.Context) {
	rng, ok := h.parseRange(c)
	if !ok {
		return
	}

	rows, err := h.service.AccountBalanceSummary(c.Request.Context(), rng)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReportResponse(rows, len(rows), rng))
}

// Transactions handles GET /reports/transactions
func (h *ReportsHandler) Transactions(c *gin.Context) {
	rng, ok := h.parseRange(c)
	if !ok {
		return
	}

	rows, err := h.service.TransactionReport(c.Request.Context(), rng)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReportResponse(rows, len(rows), rng))
}

// CustomerActivity handles GET /reports/customer-activity
//
// Activity is measured against the current clock, so no range applies.
func (h *ReportsHandler) CustomerActivity(c *gin.Context) {
	rows, err := h.service.CustomerActivityData(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReportResponse(rows, len(rows), reports.DateRange{}))
}

// ProfitLoss handles GET /reports/profit-loss
func (h *ReportsHandler) ProfitLoss(c *gin.Context) {
	rng, ok := h.parseRange(c)
	if !ok {
		return
	}

	result, err := h.service.ProfitLossData(c.Request.Context(), rng)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RegisterRoutes registers report routes.
func (h *ReportsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/item-by-party", h.ItemsByParty)
	rg.GET("/item-sale-summary", h.ItemSummary)
	rg.GET("/monthly-summary", h.MonthlySummary)
	rg.GET("/customer-wise", h.CustomerSummary)
	rg.GET("/account-balances", h.AccountBalances)
	rg.GET("/transactions", h.Transactions)
	rg.GET("/customer-activity", h.CustomerActivity)
	rg.GET("/profit-loss", h.ProfitLoss)
}
