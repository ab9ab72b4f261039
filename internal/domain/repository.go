// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"

	"ledgerbook/internal/core/entity"
	"ledgerbook/internal/core/id"
)

// --- Filter & Pagination ---

// ListFilter contains common filtering options for list operations.
type ListFilter struct {
	// Search performs a substring match on searchable fields
	Search string

	// IDs filters by specific IDs
	IDs []id.ID

	// IncludeDeleted includes soft-deleted records
	IncludeDeleted bool

	// OrderBy is a column name, optionally prefixed with "-" for DESC
	OrderBy string

	Limit  int
	Offset int
}

// ListResult wraps a page of items with the total count.
type ListResult[T any] struct {
	Items      []T
	TotalCount int64
	Limit      int
	Offset     int
}

// --- Repositories ---

// CatalogRepository defines common persistence operations for catalog entities.
type CatalogRepository[T entity.Validatable] interface {
	Create(ctx context.Context, entity T) error
	Update(ctx context.Context, entity T) error
	GetByID(ctx context.Context, entityID id.ID) (T, error)
	List(ctx context.Context, filter ListFilter) (ListResult[T], error)
	Exists(ctx context.Context, entityID id.ID) (bool, error)
	SetDeletionMark(ctx context.Context, entityID id.ID, marked bool) error
}
