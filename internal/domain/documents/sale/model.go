// Package sale provides the Sale document: a recorded outgoing trade.
package sale

import (
	"context"
	"time"

	"ledgerbook/internal/core/apperror"
	"ledgerbook/internal/core/entity"
	"ledgerbook/internal/core/id"
	"ledgerbook/internal/core/types"
)

// Sale represents an outgoing trade of goods.
type Sale struct {
	entity.BaseDocument

	// CustomerID references the buying party (nil for walk-in cash sales)
	CustomerID *id.ID `db:"customer_id" json:"customerId,omitempty"`

	// Product is the traded item name/category
	Product string `db:"product" json:"product"`

	// Quantity of units traded (bags)
	Quantity float64 `db:"quantity" json:"quantity"`

	// Unit is the trade unit label ("bag", "quintal")
	Unit string `db:"unit" json:"unit"`

	// PricePerUnit in whole rupees
	PricePerUnit types.MinorUnits `db:"price_per_unit" json:"pricePerUnit"`

	// TotalAmount = Quantity * PricePerUnit, recalculated on save
	TotalAmount types.MinorUnits `db:"total_amount" json:"totalAmount"`

	// SaleDate is the business date of the trade
	SaleDate time.Time `db:"sale_date" json:"saleDate"`

	// Notes is a free-form remark
	Notes *string `db:"notes" json:"notes,omitempty"`
}

// NewSale creates a sale record with the total derived from quantity and price.
func NewSale(product string, quantity float64, pricePerUnit types.MinorUnits, saleDate time.Time) *Sale {
	s := &Sale{
		BaseDocument: entity.NewBaseDocument(),
		Product:      product,
		Quantity:     quantity,
		Unit:         "bag",
		PricePerUnit: pricePerUnit,
		SaleDate:     saleDate,
	}
	s.RecalculateTotal()
	return s
}

// RecalculateTotal derives TotalAmount from quantity and unit price.
func (s *Sale) RecalculateTotal() {
	s.TotalAmount = types.MinorUnits(s.Quantity * float64(s.PricePerUnit))
}

// Validate implements entity.Validatable.
func (s *Sale) Validate(ctx context.Context) error {
	if s.Product == "" {
		return apperror.NewValidation("product is required").
			WithDetail("field", "product")
	}
	if s.Quantity <= 0 {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity")
	}
	if s.PricePerUnit.IsNegative() {
		return apperror.NewValidation("price must not be negative").
			WithDetail("field", "pricePerUnit")
	}
	if s.SaleDate.IsZero() {
		return apperror.NewValidation("sale date is required").
			WithDetail("field", "saleDate")
	}
	return nil
}
