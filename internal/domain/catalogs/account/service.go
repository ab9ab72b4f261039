package account

import (
	"ledgerbook/internal/core/tx"
	"ledgerbook/internal/domain"
)

// Service provides business logic for the Account catalog.
type Service struct {
	*domain.CatalogService[*Account]
	repo Repository
}

// NewService creates a new Account service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Account]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "account",
	})

	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}
