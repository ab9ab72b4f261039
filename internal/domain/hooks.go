package domain

import (
	"context"
)

// Hook is a callback invoked around catalog service operations.
type Hook[T any] func(ctx context.Context, entity T) error

// HookRegistry holds lifecycle hooks for a catalog service.
// Entity-specific services register hooks instead of overriding CRUD methods;
// the audit trail is wired the same way.
type HookRegistry[T any] struct {
	beforeCreate []Hook[T]
	afterCreate  []Hook[T]
	beforeUpdate []Hook[T]
	afterUpdate  []Hook[T]
	beforeDelete []Hook[T]
}

// NewHookRegistry creates an empty registry.
func NewHookRegistry[T any]() *HookRegistry[T] {
	return &HookRegistry[T]{}
}

func (r *HookRegistry[T]) OnBeforeCreate(h Hook[T]) { r.beforeCreate = append(r.beforeCreate, h) }
func (r *HookRegistry[T]) OnAfterCreate(h Hook[T])  { r.afterCreate = append(r.afterCreate, h) }
func (r *HookRegistry[T]) OnBeforeUpdate(h Hook[T]) { r.beforeUpdate = append(r.beforeUpdate, h) }
func (r *HookRegistry[T]) OnAfterUpdate(h Hook[T])  { r.afterUpdate = append(r.afterUpdate, h) }
func (r *HookRegistry[T]) OnBeforeDelete(h Hook[T]) { r.beforeDelete = append(r.beforeDelete, h) }

func runHooks[T any](ctx context.Context, hooks []Hook[T], entity T) error {
	for _, h := range hooks {
		if err := h(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}

func (r *HookRegistry[T]) RunBeforeCreate(ctx context.Context, e T) error {
	return runHooks(ctx, r.beforeCreate, e)
}

func (r *HookRegistry[T]) RunAfterCreate(ctx context.Context, e T) error {
	return runHooks(ctx, r.afterCreate, e)
}

func (r *HookRegistry[T]) RunBeforeUpdate(ctx context.Context, e T) error {
	return runHooks(ctx, r.beforeUpdate, e)
}

func (r *HookRegistry[T]) RunAfterUpdate(ctx context.Context, e T) error {
	return runHooks(ctx, r.afterUpdate, e)
}

func (r *HookRegistry[T]) RunBeforeDelete(ctx context.Context, e T) error {
	return runHooks(ctx, r.beforeDelete, e)
}
