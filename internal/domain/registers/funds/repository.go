package funds

import (
	"context"
	"time"

	"ledgerbook/internal/core/id"
)

// ListFilter bounds a funds movement listing.
type ListFilter struct {
	AccountID *id.ID
	Types     []EntryType

	// From/To bound the entry date, inclusive (zero = unbounded)
	From time.Time
	To   time.Time

	Limit  int
	Offset int
}

// Repository defines persistence operations for funds movements.
type Repository interface {
	Create(ctx context.Context, t *AccountTransaction) error
	GetByID(ctx context.Context, txID id.ID) (*AccountTransaction, error)
	List(ctx context.Context, filter ListFilter) ([]*AccountTransaction, error)
	Delete(ctx context.Context, txID id.ID) error
}
