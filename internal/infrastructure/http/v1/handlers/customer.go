package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ledgerbook/internal/core/apperror"
	"ledgerbook/internal/core/id"
	"ledgerbook/internal/domain/catalogs/customer"
	"ledgerbook/internal/domain/ledger"
	"ledgerbook/internal/infrastructure/http/v1/dto"
	"ledgerbook/internal/infrastructure/pdf"
)

// CustomerHandler handles HTTP requests for the Customer catalog plus the
// customer-scoped ledger sub-resources: transactions and statements.
type CustomerHandler struct {
	*CatalogHandler[*customer.Customer, dto.CreateCustomerRequest, dto.UpdateCustomerRequest]
	service       *customer.Service
	ledgerService *ledger.Service
	renderer      *pdf.StatementRenderer
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(
	base *BaseHandler,
	service *customer.Service,
	ledgerService *ledger.Service,
	renderer *pdf.StatementRenderer,
) *CustomerHandler {
	cfg := CatalogHandlerConfig[*customer.Customer, dto.CreateCustomerRequest, dto.UpdateCustomerRequest]{
		Service:    service.CatalogService,
		EntityName: "customer",
		MapCreateDTO: func(req dto.CreateCustomerRequest) *customer.Customer {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateCustomerRequest, existing *customer.Customer) *customer.Customer {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(entity *customer.Customer) any {
			return dto.FromCustomer(entity)
		},
	}

	return &CustomerHandler{
		CatalogHandler: NewCatalogHandler(base, cfg),
		service:        service,
		ledgerService:  ledgerService,
		renderer:       renderer,
	}
}

// FindByPhone handles GET /catalog/customers/by-phone/:phone
func (h *CustomerHandler) FindByPhone(c *gin.Context) {
	ctx := c.Request.Context()

	found, err := h.service.FindByPhone(ctx, c.Param("phone"))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromCustomer(found))
}

// Transactions handles GET /catalog/customers/:id/transactions
func (h *CustomerHandler) Transactions(c *gin.Context) {
	ctx := c.Request.Context()

	customerID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var rng dto.RangeQuery
	if !h.BindQuery(c, &rng) {
		return
	}
	from, to, err := rng.Parse()
	if err != nil {
		h.Error(c, err)
		return
	}

	filter := ledger.ListFilter{
		CustomerID: &customerID,
		From:       from,
		To:         to,
		Limit:      h.ParseIntQuery(c, "limit", 100),
		Offset:     h.ParseIntQuery(c, "offset", 0),
	}

	items, err := h.ledgerService.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	responses := make([]*dto.TransactionResponse, len(items))
	for i, t := range items {
		responses[i] = dto.FromTransaction(t)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      responses,
		TotalCount: int64(len(responses)),
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
}

// CreateTransaction handles POST /catalog/customers/:id/transactions
func (h *CustomerHandler) CreateTransaction(c *gin.Context) {
	ctx := c.Request.Context()

	customerID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.CreateCustomerTransactionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	t, err := req.ToEntity(customerID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.ledgerService.Record(ctx, t); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromTransaction(t))
}

// Statement handles GET /catalog/customers/:id/statement
func (h *CustomerHandler) Statement(c *gin.Context) {
	stmt, _, ok := h.buildStatement(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, stmt)
}

// StatementPDF handles GET /catalog/customers/:id/statement.pdf
func (h *CustomerHandler) StatementPDF(c *gin.Context) {
	stmt, cust, ok := h.buildStatement(c)
	if !ok {
		return
	}

	data, err := h.renderer.Render(cust.Name, stmt)
	if err != nil {
		h.Error(c, apperror.NewInternal(fmt.Errorf("render statement: %w", err)))
		return
	}

	filename := fmt.Sprintf("statement-%s.pdf", cust.ID.String())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// buildStatement parses the statement request and computes the statement.
// Errors are already written to the context when ok is false.
func (h *CustomerHandler) buildStatement(c *gin.Context) (*ledger.Statement, *customer.Customer, bool) {
	ctx := c.Request.Context()

	customerID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return nil, nil, false
	}

	var rng dto.RangeQuery
	if !h.BindQuery(c, &rng) {
		return nil, nil, false
	}
	from, to, err := rng.Parse()
	if err != nil {
		h.Error(c, err)
		return nil, nil, false
	}

	cust, err := h.service.GetByID(ctx, customerID)
	if err != nil {
		h.Error(c, err)
		return nil, nil, false
	}

	stmt, err := h.ledgerService.Statement(ctx, customerID, ledger.StatementOptions{From: from, To: to})
	if err != nil {
		h.Error(c, err)
		return nil, nil, false
	}

	return stmt, cust, true
}

// RegisterRoutes registers customer routes.
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	h.CatalogHandler.RegisterRoutes(rg)
	rg.GET("/by-phone/:phone", h.FindByPhone)
	rg.GET("/:id/transactions", h.Transactions)
	rg.POST("/:id/transactions", h.CreateTransaction)
	rg.GET("/:id/statement", h.Statement)
	rg.GET("/:id/statement.pdf", h.StatementPDF)
}
