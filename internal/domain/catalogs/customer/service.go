package customer

import (
	"context"

	"ledgerbook/internal/core/apperror"
	"ledgerbook/internal/core/tx"
	"ledgerbook/internal/domain"
)

// Service provides business logic for the Customer catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Customer]
	repo Repository
}

// NewService creates a new Customer service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Customer]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "customer",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.checkPhoneUnique)
	base.Hooks().OnBeforeUpdate(svc.checkPhoneUnique)

	return svc
}

// FindByPhone retrieves a customer by phone number.
func (s *Service) FindByPhone(ctx context.Context, phone string) (*Customer, error) {
	return s.repo.FindByPhone(ctx, phone)
}

// checkPhoneUnique rejects a second customer with the same phone number.
func (s *Service) checkPhoneUnique(ctx context.Context, c *Customer) error {
	if c.Phone == nil || *c.Phone == "" {
		return nil
	}

	existing, err := s.repo.FindByPhone(ctx, *c.Phone)
	if err != nil {
		// Not found is OK; other errors must be propagated.
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}

	if existing.ID != c.ID {
		return apperror.NewDuplicate("customer", "phone", *c.Phone)
	}
	return nil
}
