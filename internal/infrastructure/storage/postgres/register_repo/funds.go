// Package register_repo provides the PostgreSQL implementation of the
// funds register repository.
package register_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"ledgerbook/internal/core/apperror"
	"ledgerbook/internal/core/id"
	"ledgerbook/internal/domain/registers/funds"
	"ledgerbook/internal/infrastructure/storage/postgres"
)

const fundsTable = "reg_account_transactions"

// FundsRepo implements funds.Repository. Account balance updates run in
// database triggers on insert and delete.
type FundsRepo struct {
	txManager  *postgres.TxManager
	selectCols []string
}

// NewFundsRepo creates a new funds repository.
func NewFundsRepo(txManager *postgres.TxManager) *FundsRepo {
	return &FundsRepo{
		txManager:  txManager,
		selectCols: postgres.ExtractDBColumns[funds.AccountTransaction](),
	}
}

func (r *FundsRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a funds movement.
func (r *FundsRepo) Create(ctx context.Context, t *funds.AccountTransaction) error {
	data := postgres.StructToMap(t)

	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := r.builder().
		Insert(fundsTable).
		SetMap(filteredData)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	_, err = r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("insert funds movement: %w", err)
	}

	return nil
}

// GetByID retrieves a funds movement.
func (r *FundsRepo) GetByID(ctx context.Context, txID id.ID) (*funds.AccountTransaction, error) {
	q := r.builder().
		Select(r.selectCols...).
		From(fundsTable).
		Where(squirrel.Eq{"id": txID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	t := &funds.AccountTransaction{}
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), t, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("account transaction", txID.String())
		}
		return nil, fmt.Errorf("get funds movement: %w", err)
	}

	return t, nil
}

// List retrieves funds movements matching the filter, ordered by entry date
// then ID.
func (r *FundsRepo) List(ctx context.Context, filter funds.ListFilter) ([]*funds.AccountTransaction, error) {
	q := r.builder().
		Select(r.selectCols...).
		From(fundsTable).
		Where(squirrel.Eq{"deletion_mark": false})

	if filter.AccountID != nil {
		q = q.Where(squirrel.Eq{"account_id": *filter.AccountID})
	}
	if len(filter.Types) > 0 {
		q = q.Where(squirrel.Eq{"type": filter.Types})
	}
	if !filter.From.IsZero() {
		q = q.Where(squirrel.GtOrEq{"entry_date": filter.From})
	}
	if !filter.To.IsZero() {
		q = q.Where(squirrel.LtOrEq{"entry_date": filter.To})
	}

	q = q.OrderBy("entry_date ASC", "id ASC")

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*funds.AccountTransaction
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list funds movements: %w", err)
	}

	return items, nil
}

// Delete physically removes a funds movement. The delete trigger reverses
// its effect on the account balance.
func (r *FundsRepo) Delete(ctx context.Context, txID id.ID) error {
	q := r.builder().
		Delete(fundsTable).
		Where(squirrel.Eq{"id": txID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete funds movement: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("account transaction", txID.String())
	}

	return nil
}
