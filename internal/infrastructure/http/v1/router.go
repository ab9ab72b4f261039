// Package v1 provides HTTP API version 1.
package v1

import (
	"context"

	"github.com/gin-gonic/gin"

	"ledgerbook/internal/domain/auth"
	"ledgerbook/internal/domain/catalogs/account"
	"ledgerbook/internal/domain/catalogs/customer"
	"ledgerbook/internal/domain/documents/purchase"
	"ledgerbook/internal/domain/documents/sale"
	"ledgerbook/internal/domain/ledger"
	"ledgerbook/internal/domain/registers/funds"
	"ledgerbook/internal/domain/reports"
	"ledgerbook/internal/infrastructure/http/v1/handlers"
	"ledgerbook/internal/infrastructure/http/v1/middleware"
	"ledgerbook/internal/infrastructure/pdf"
	"ledgerbook/internal/infrastructure/storage/postgres"
	"ledgerbook/internal/infrastructure/storage/postgres/catalog_repo"
	"ledgerbook/internal/infrastructure/storage/postgres/document_repo"
	"ledgerbook/internal/infrastructure/storage/postgres/ledger_repo"
	"ledgerbook/internal/infrastructure/storage/postgres/register_repo"
	"ledgerbook/internal/infrastructure/storage/postgres/report_repo"
	"ledgerbook/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// TxManager runs repository operations in transactions
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuthService for authentication endpoints
	AuthService *auth.Service

	// BusinessName appears on rendered statements
	BusinessName string
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, cfg)

		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		registerCatalogRoutes(protected, cfg)
		registerDocumentRoutes(protected, cfg)
		registerRegisterRoutes(protected, cfg)
		registerReportRoutes(protected, cfg)
	}

	return router
}

// registerAuthRoutes registers authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	baseHandler := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)

	public := rg.Group("/auth")
	{
		public.POST("/login", authHandler.Login)
		public.POST("/refresh", authHandler.Refresh)
	}

	protected := rg.Group("/auth")
	protected.Use(middleware.Auth(cfg.JWTValidator))
	{
		protected.GET("/me", authHandler.Me)
		protected.POST("/logout", authHandler.Logout)
		protected.POST("/change-password", authHandler.ChangePassword)
		protected.POST("/register", middleware.RequireAdmin(), authHandler.Register)
	}
}

// registerCatalogRoutes registers customer and account catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")
	baseHandler := handlers.NewBaseHandler()

	auditService, err := postgres.NewAuditService(cfg.TxManager)
	if err != nil {
		// zstd setup only fails on bad options; catalogs still work unaudited.
		logger.Error(context.Background(), "audit service unavailable", "error", err)
	}

	// --- CUSTOMERS ---
	// The customer handler also serves the ledger sub-resources: the per
	// customer transaction listing and the account statement (JSON and PDF).
	{
		repo := catalog_repo.NewCustomerRepo(cfg.TxManager)
		service := customer.NewService(repo, cfg.TxManager)

		if auditService != nil {
			service.Hooks().OnAfterCreate(func(ctx context.Context, c *customer.Customer) error {
				return auditService.LogChange(ctx, "customer", c.ID, postgres.AuditActionCreate, postgres.StructToMap(c))
			})
			service.Hooks().OnAfterUpdate(func(ctx context.Context, c *customer.Customer) error {
				return auditService.LogChange(ctx, "customer", c.ID, postgres.AuditActionUpdate, postgres.StructToMap(c))
			})
		}

		ledgerRepo := ledger_repo.NewTransactionRepo(cfg.TxManager)
		ledgerService := ledger.NewService(ledgerRepo, cfg.TxManager)

		renderer := pdf.NewStatementRenderer(cfg.BusinessName)

		handler := handlers.NewCustomerHandler(baseHandler, service, ledgerService, renderer)
		handler.RegisterRoutes(catalogs.Group("/customers"))
	}

	// --- ACCOUNTS ---
	{
		repo := catalog_repo.NewAccountRepo(cfg.TxManager)
		service := account.NewService(repo, cfg.TxManager)

		if auditService != nil {
			service.Hooks().OnAfterCreate(func(ctx context.Context, a *account.Account) error {
				return auditService.LogChange(ctx, "account", a.ID, postgres.AuditActionCreate, postgres.StructToMap(a))
			})
			service.Hooks().OnAfterUpdate(func(ctx context.Context, a *account.Account) error {
				return auditService.LogChange(ctx, "account", a.ID, postgres.AuditActionUpdate, postgres.StructToMap(a))
			})
		}

		handler := handlers.NewAccountHandler(baseHandler, service)
		handler.RegisterRoutes(catalogs.Group("/accounts"))
	}
}

// registerDocumentRoutes registers document endpoints.
func registerDocumentRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	docsGroup := rg.Group("/document")
	baseHandler := handlers.NewBaseHandler()

	// --- SALES ---
	{
		repo := document_repo.NewSaleRepo(cfg.TxManager)
		service := sale.NewService(repo, cfg.TxManager)
		handler := handlers.NewSaleHandler(baseHandler, service)
		handler.RegisterRoutes(docsGroup.Group("/sales"))
	}

	// --- PURCHASES ---
	{
		repo := document_repo.NewPurchaseRepo(cfg.TxManager)
		service := purchase.NewService(repo, cfg.TxManager)
		handler := handlers.NewPurchaseHandler(baseHandler, service)
		handler.RegisterRoutes(docsGroup.Group("/purchases"))
	}
}

// registerRegisterRoutes registers the ledger and funds register endpoints.
func registerRegisterRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	registers := rg.Group("/registers")
	baseHandler := handlers.NewBaseHandler()

	// Customer ledger
	{
		repo := ledger_repo.NewTransactionRepo(cfg.TxManager)
		service := ledger.NewService(repo, cfg.TxManager)
		handler := handlers.NewLedgerHandler(baseHandler, service)
		handler.RegisterRoutes(registers.Group("/ledger"))
	}

	// Funds movements
	{
		repo := register_repo.NewFundsRepo(cfg.TxManager)
		accountRepo := catalog_repo.NewAccountRepo(cfg.TxManager)
		service := funds.NewService(repo, accountRepo, cfg.TxManager)
		handler := handlers.NewFundsHandler(baseHandler, service)
		handler.RegisterRoutes(registers.Group("/funds"))
	}
}

// registerReportRoutes registers report endpoints.
func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	reportsGroup := rg.Group("/reports")
	baseHandler := handlers.NewBaseHandler()

	repo := report_repo.NewReportRepo(cfg.TxManager)
	service := reports.NewService(repo)
	handler := handlers.NewReportsHandler(baseHandler, service)
	handler.RegisterRoutes(reportsGroup)
}
