// Package ledger_repo provides the PostgreSQL implementation of the
// customer ledger repository.
package ledger_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"ledgerbook/internal/core/apperror"
	"ledgerbook/internal/core/id"
	"ledgerbook/internal/domain/ledger"
	"ledgerbook/internal/infrastructure/storage/postgres"
)

const transactionsTable = "ledger_transactions"

// TransactionRepo implements ledger.Repository. Customer balance updates
// run in database triggers on insert and delete, so the repository never
// touches the customer row.
type TransactionRepo struct {
	txManager  *postgres.TxManager
	selectCols []string
}

// NewTransactionRepo creates a new transaction repository.
func NewTransactionRepo(txManager *postgres.TxManager) *TransactionRepo {
	return &TransactionRepo{
		txManager:  txManager,
		selectCols: postgres.ExtractDBColumns[ledger.Transaction](),
	}
}

func (r *TransactionRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a ledger entry.
func (r *TransactionRepo) Create(ctx context.Context, t *ledger.Transaction) error {
	data := postgres.StructToMap(t)

	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := r.builder().
		Insert(transactionsTable).
		SetMap(filteredData)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	_, err = r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a ledger entry.
func (r *TransactionRepo) GetByID(ctx context.Context, txID id.ID) (*ledger.Transaction, error) {
	q := r.builder().
		Select(r.selectCols...).
		From(transactionsTable).
		Where(squirrel.Eq{"id": txID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	t := &ledger.Transaction{}
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), t, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("transaction", txID.String())
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	return t, nil
}

// List retrieves ledger entries matching the filter, ordered by entry date
// then ID so same-day entries keep creation order.
func (r *TransactionRepo) List(ctx context.Context, filter ledger.ListFilter) ([]*ledger.Transaction, error) {
	q := r.builder().
		Select(r.selectCols...).
		From(transactionsTable).
		Where(squirrel.Eq{"deletion_mark": false})

	if filter.CustomerID != nil {
		q = q.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
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

	var items []*ledger.Transaction
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return items, nil
}

// Delete physically removes a ledger entry. The delete trigger reverses its
// effect on the customer balance.
func (r *TransactionRepo) Delete(ctx context.Context, txID id.ID) error {
	q := r.builder().
		Delete(transactionsTable).
		Where(squirrel.Eq{"id": txID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("transaction", txID.String())
	}

	return nil
}
