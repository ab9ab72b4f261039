package customer

import (
	"context"

	"ledgerbook/internal/domain"
)

// Repository defines the interface for Customer persistence.
type Repository interface {
	domain.CatalogRepository[*Customer]

	// FindByPhone retrieves a customer by phone number.
	FindByPhone(ctx context.Context, phone string) (*Customer, error)
}
