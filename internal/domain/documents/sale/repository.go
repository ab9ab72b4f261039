package sale

import (
	"context"
	"time"

	"ledgerbook/internal/core/id"
)

// ListFilter bounds a sale listing.
type ListFilter struct {
	CustomerID *id.ID
	Product    string

	// From/To bound the sale date, inclusive (zero = unbounded)
	From time.Time
	To   time.Time

	Limit  int
	Offset int
}

// Repository defines persistence operations for Sale documents.
type Repository interface {
	Create(ctx context.Context, s *Sale) error
	Update(ctx context.Context, s *Sale) error
	GetByID(ctx context.Context, saleID id.ID) (*Sale, error)
	List(ctx context.Context, filter ListFilter) ([]*Sale, error)
	Delete(ctx context.Context, saleID id.ID) error
}
