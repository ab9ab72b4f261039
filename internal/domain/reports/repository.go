package reports

import (
	"context"

	"ledgerbook/internal/domain/documents/purchase"
	"ledgerbook/internal/domain/documents/sale"
)

// Repository loads the report corpora. Implementations fetch complete
// ledgers per entity; row filtering stays in the pure aggregators so a
// report is reproducible from the fetched snapshot.
type Repository interface {
	// CustomerLedgers returns every non-deleted customer with their full
	// transaction list, including customers with no transactions.
	CustomerLedgers(ctx context.Context) ([]*CustomerLedger, error)

	// AccountLedgers returns every non-deleted funds account with its
	// full movement list.
	AccountLedgers(ctx context.Context) ([]*AccountLedger, error)

	// Sales returns all sale documents.
	Sales(ctx context.Context) ([]*sale.Sale, error)

	// Purchases returns all purchase documents.
	Purchases(ctx context.Context) ([]*purchase.Purchase, error)
}
