package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ledgerbook/internal/core/apperror"
	"ledgerbook/internal/core/id"
	"ledgerbook/internal/domain/registers/funds"
	"ledgerbook/internal/infrastructure/http/v1/dto"
)

// FundsHandler handles HTTP requests for the funds movement register.
type FundsHandler struct {
	*BaseHandler
	service *funds.Service
}

// NewFundsHandler creates a new funds handler.
func NewFundsHandler(base *BaseHandler, service *funds.Service) *FundsHandler {
	return &FundsHandler{BaseHandler: base, service: service}
}

// Record handles POST /registers/funds
func (h *FundsHandler) Record(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateFundsEntryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	t, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Record(ctx, t); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromFundsEntry(t))
}

// Transfer handles POST /registers/funds/transfer
//
// Both rows of the pair are written in one transaction; the response carries
// both so clients never see a half-transfer.
func (h *FundsHandler) Transfer(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.TransferRequest
	if !h.BindJSON(c, &req) {
		return
	}

	from, to, date, err := req.Parse()
	if err != nil {
		h.Error(c, err)
		return
	}

	out, in, err := h.service.Transfer(ctx, from, to, req.Amount, date, req.Notes)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TransferResponse{
		Out: dto.FromFundsEntry(out),
		In:  dto.FromFundsEntry(in),
	})
}

// List handles GET /registers/funds
func (h *FundsHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var rng dto.RangeQuery
	if !h.BindQuery(c, &rng) {
		return
	}
	from, to, err := rng.Parse()
	if err != nil {
		h.Error(c, err)
		return
	}

	filter := funds.ListFilter{
		From:   from,
		To:     to,
		Limit:  h.ParseIntQuery(c, "limit", 100),
		Offset: h.ParseIntQuery(c, "offset", 0),
	}

	if accountID := c.Query("accountId"); accountID != "" {
		parsed, err := id.Parse(accountID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid accountId format"))
			return
		}
		filter.AccountID = &parsed
	}

	for _, t := range c.QueryArray("type") {
		filter.Types = append(filter.Types, funds.EntryType(t))
	}

	items, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	responses := make([]*dto.FundsEntryResponse, len(items))
	for i, t := range items {
		responses[i] = dto.FromFundsEntry(t)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      responses,
		TotalCount: int64(len(responses)),
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
}

// Delete handles DELETE /registers/funds/:id
func (h *FundsHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	txID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, txID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterRoutes registers funds register routes.
func (h *FundsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Record)
	rg.POST("/transfer", h.Transfer)
	rg.DELETE("/:id", h.Delete)
}
