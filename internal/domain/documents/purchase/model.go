// Package purchase provides the Purchase document: a recorded incoming trade.
package purchase

import (
	"context"
	"time"

	"ledgerbook/internal/core/apperror"
	"ledgerbook/internal/core/entity"
	"ledgerbook/internal/core/id"
	"ledgerbook/internal/core/types"
)

// Purchase represents an incoming trade of goods.
type Purchase struct {
	entity.BaseDocument

	// SupplierName is the selling party (free-form, suppliers are not cataloged)
	SupplierName string `db:"supplier_name" json:"supplierName"`

	// Product is the traded item name/category
	Product string `db:"product" json:"product"`

	// Quantity of units traded (bags)
	Quantity float64 `db:"quantity" json:"quantity"`

	// Unit is the trade unit label
	Unit string `db:"unit" json:"unit"`

	// PricePerUnit in whole rupees (the booked price)
	PricePerUnit types.MinorUnits `db:"price_per_unit" json:"pricePerUnit"`

	// OriginalPrice, when present, is the true per-unit cost basis and
	// overrides PricePerUnit in profit computations.
	OriginalPrice *types.MinorUnits `db:"original_price" json:"originalPrice,omitempty"`

	// TotalAmount = Quantity * PricePerUnit, recalculated on save
	TotalAmount types.MinorUnits `db:"total_amount" json:"totalAmount"`

	// PurchaseDate is the business date of the trade
	PurchaseDate time.Time `db:"purchase_date" json:"purchaseDate"`

	// Notes is a free-form remark
	Notes *string `db:"notes" json:"notes,omitempty"`
}

// NewPurchase creates a purchase record with the total derived from quantity
// and price.
func NewPurchase(supplier, product string, quantity float64, pricePerUnit types.MinorUnits, purchaseDate time.Time) *Purchase {
	p := &Purchase{
		BaseDocument: entity.NewBaseDocument(),
		SupplierName: supplier,
		Product:      product,
		Quantity:     quantity,
		Unit:         "bag",
		PricePerUnit: pricePerUnit,
		PurchaseDate: purchaseDate,
	}
	p.RecalculateTotal()
	return p
}

// RecalculateTotal derives TotalAmount from quantity and unit price.
func (p *Purchase) RecalculateTotal() {
	p.TotalAmount = types.MinorUnits(p.Quantity * float64(p.PricePerUnit))
}

// CostBasis returns the per-unit cost used in profit computations:
// OriginalPrice when present, otherwise PricePerUnit.
func (p *Purchase) CostBasis() types.MinorUnits {
	if p.OriginalPrice != nil {
		return *p.OriginalPrice
	}
	return p.PricePerUnit
}

// Validate implements entity.Validatable.
func (p *Purchase) Validate(ctx context.Context) error {
	if p.Product == "" {
		return apperror.NewValidation("product is required").
			WithDetail("field", "product")
	}
	if p.Quantity <= 0 {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity")
	}
	if p.PricePerUnit.IsNegative() {
		return apperror.NewValidation("price must not be negative").
			WithDetail("field", "pricePerUnit")
	}
	if p.PurchaseDate.IsZero() {
		return apperror.NewValidation("purchase date is required").
			WithDetail("field", "purchaseDate")
	}
	return nil
}

// ListFilter bounds a purchase listing.
type ListFilter struct {
	Product  string
	Supplier string

	// From/To bound the purchase date, inclusive (zero = unbounded)
	From time.Time
	To   time.Time

	Limit  int
	Offset int
}

// Repository defines persistence operations for Purchase documents.
type Repository interface {
	Create(ctx context.Context, p *Purchase) error
	Update(ctx context.Context, p *Purchase) error
	GetByID(ctx context.Context, purchaseID id.ID) (*Purchase, error)
	List(ctx context.Context, filter ListFilter) ([]*Purchase, error)
	Delete(ctx context.Context, purchaseID id.ID) error
}
