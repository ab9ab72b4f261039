// Package report_repo provides the PostgreSQL implementation of the report
// corpus repository.
package report_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"ledgerbook/internal/core/id"
	"ledgerbook/internal/domain/documents/purchase"
	"ledgerbook/internal/domain/documents/sale"
	"ledgerbook/internal/domain/ledger"
	"ledgerbook/internal/domain/registers/funds"
	"ledgerbook/internal/domain/reports"
	"ledgerbook/internal/infrastructure/storage/postgres"
)

// ReportRepo implements reports.Repository. It fetches complete per-entity
// ledgers; all filtering and grouping happens in the aggregators.
type ReportRepo struct {
	txManager *postgres.TxManager
	builder   squirrel.StatementBuilderType
}

// NewReportRepo creates a new report repository.
func NewReportRepo(txManager *postgres.TxManager) *ReportRepo {
	return &ReportRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

type namedRow struct {
	ID   id.ID  `db:"id"`
	Name string `db:"name"`
}

// CustomerLedgers returns every non-deleted customer with their full
// transaction list. Customers without transactions are included with an
// empty list so activity reports can surface them.
func (r *ReportRepo) CustomerLedgers(ctx context.Context) ([]*reports.CustomerLedger, error) {
	querier := r.txManager.GetQuerier(ctx)

	customersSQL, args, err := r.builder.
		Select("id", "name").
		From("cat_customers").
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build customers query: %w", err)
	}

	var customers []namedRow
	if err := pgxscan.Select(ctx, querier, &customers, customersSQL, args...); err != nil {
		return nil, fmt.Errorf("select customers: %w", err)
	}

	txSQL, args, err := r.builder.
		Select(postgres.ExtractDBColumns[ledger.Transaction]()...).
		From("ledger_transactions").
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("entry_date ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build transactions query: %w", err)
	}

	var txs []*ledger.Transaction
	if err := pgxscan.Select(ctx, querier, &txs, txSQL, args...); err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}

	byCustomer := make(map[id.ID][]*ledger.Transaction, len(customers))
	for _, t := range txs {
		byCustomer[t.CustomerID] = append(byCustomer[t.CustomerID], t)
	}

	ledgers := make([]*reports.CustomerLedger, 0, len(customers))
	for _, c := range customers {
		ledgers = append(ledgers, &reports.CustomerLedger{
			CustomerID:   c.ID,
			CustomerName: c.Name,
			Transactions: byCustomer[c.ID],
		})
	}

	return ledgers, nil
}

// AccountLedgers returns every non-deleted funds account with its full
// movement list.
func (r *ReportRepo) AccountLedgers(ctx context.Context) ([]*reports.AccountLedger, error) {
	querier := r.txManager.GetQuerier(ctx)

	accountsSQL, args, err := r.builder.
		Select("id", "name").
		From("cat_accounts").
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build accounts query: %w", err)
	}

	var accounts []namedRow
	if err := pgxscan.Select(ctx, querier, &accounts, accountsSQL, args...); err != nil {
		return nil, fmt.Errorf("select accounts: %w", err)
	}

	txSQL, args, err := r.builder.
		Select(postgres.ExtractDBColumns[funds.AccountTransaction]()...).
		From("reg_account_transactions").
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("entry_date ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build movements query: %w", err)
	}

	var txs []*funds.AccountTransaction
	if err := pgxscan.Select(ctx, querier, &txs, txSQL, args...); err != nil {
		return nil, fmt.Errorf("select movements: %w", err)
	}

	byAccount := make(map[id.ID][]*funds.AccountTransaction, len(accounts))
	for _, t := range txs {
		byAccount[t.AccountID] = append(byAccount[t.AccountID], t)
	}

	ledgers := make([]*reports.AccountLedger, 0, len(accounts))
	for _, a := range accounts {
		ledgers = append(ledgers, &reports.AccountLedger{
			AccountID:    a.ID,
			AccountName:  a.Name,
			Transactions: byAccount[a.ID],
		})
	}

	return ledgers, nil
}

// Sales returns all sale documents.
func (r *ReportRepo) Sales(ctx context.Context) ([]*sale.Sale, error) {
	sql, args, err := r.builder.
		Select(postgres.ExtractDBColumns[sale.Sale]()...).
		From("doc_sales").
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("sale_date ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sales query: %w", err)
	}

	var items []*sale.Sale
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("select sales: %w", err)
	}

	return items, nil
}

// Purchases returns all purchase documents.
func (r *ReportRepo) Purchases(ctx context.Context) ([]*purchase.Purchase, error) {
	sql, args, err := r.builder.
		Select(postgres.ExtractDBColumns[purchase.Purchase]()...).
		From("doc_purchases").
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("purchase_date ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build purchases query: %w", err)
	}

	var items []*purchase.Purchase
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("select purchases: %w", err)
	}

	return items, nil
}
