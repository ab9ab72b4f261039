package ledger

import (
	"context"
	"time"

	"ledgerbook/internal/core/id"
)

// ListFilter bounds a transaction listing.
type ListFilter struct {
	// CustomerID limits to one customer (required for statements)
	CustomerID *id.ID

	// Types limits to specific entry kinds (empty = all)
	Types []TransactionType

	// From/To bound the entry date, inclusive (zero = unbounded)
	From time.Time
	To   time.Time

	Limit  int
	Offset int
}

// Repository defines persistence operations for ledger transactions.
// Balance maintenance on the customer row happens in-database; the repository
// only inserts and selects.
type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	GetByID(ctx context.Context, txID id.ID) (*Transaction, error)
	List(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	Delete(ctx context.Context, txID id.ID) error
}
