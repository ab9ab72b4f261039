package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"ledgerbook/internal/domain/documents/sale"
	"ledgerbook/internal/infrastructure/storage/postgres"
)

const salesTable = "doc_sales"

// SaleRepo implements sale.Repository.
type SaleRepo struct {
	*BaseDocumentRepo[*sale.Sale]
}

// NewSaleRepo creates a new sale repository.
func NewSaleRepo(txManager *postgres.TxManager) *SaleRepo {
	return &SaleRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*sale.Sale](
			txManager,
			salesTable,
			postgres.ExtractDBColumns[sale.Sale](),
			func() *sale.Sale { return &sale.Sale{} },
		),
	}
}

// List retrieves sales matching the filter, newest first.
func (r *SaleRepo) List(ctx context.Context, filter sale.ListFilter) ([]*sale.Sale, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"deletion_mark": false})

	if filter.CustomerID != nil {
		q = q.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Product != "" {
		q = q.Where(squirrel.ILike{"product": "%" + filter.Product + "%"})
	}
	if !filter.From.IsZero() {
		q = q.Where(squirrel.GtOrEq{"sale_date": filter.From})
	}
	if !filter.To.IsZero() {
		q = q.Where(squirrel.LtOrEq{"sale_date": filter.To})
	}

	q = q.OrderBy("sale_date DESC", "id DESC")

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	return selectList(ctx, r.BaseDocumentRepo, q)
}
