package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"ledgerbook/internal/domain/documents/purchase"
	"ledgerbook/internal/infrastructure/storage/postgres"
)

const purchasesTable = "doc_purchases"

// PurchaseRepo implements purchase.Repository.
type PurchaseRepo struct {
	*BaseDocumentRepo[*purchase.Purchase]
}

// NewPurchaseRepo creates a new purchase repository.
func NewPurchaseRepo(txManager *postgres.TxManager) *PurchaseRepo {
	return &PurchaseRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*purchase.Purchase](
			txManager,
			purchasesTable,
			postgres.ExtractDBColumns[purchase.Purchase](),
			func() *purchase.Purchase { return &purchase.Purchase{} },
		),
	}
}

// List retrieves purchases matching the filter, newest first.
func (r *PurchaseRepo) List(ctx context.Context, filter purchase.ListFilter) ([]*purchase.Purchase, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"deletion_mark": false})

	if filter.Product != "" {
		q = q.Where(squirrel.ILike{"product": "%" + filter.Product + "%"})
	}
	if filter.Supplier != "" {
		q = q.Where(squirrel.ILike{"supplier_name": "%" + filter.Supplier + "%"})
	}
	if !filter.From.IsZero() {
		q = q.Where(squirrel.GtOrEq{"purchase_date": filter.From})
	}
	if !filter.To.IsZero() {
		q = q.Where(squirrel.LtOrEq{"purchase_date": filter.To})
	}

	q = q.OrderBy("purchase_date DESC", "id DESC")

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	return selectList(ctx, r.BaseDocumentRepo, q)
}
