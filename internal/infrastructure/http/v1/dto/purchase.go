package dto

import (
	"time"

	"ledgerbook/internal/core/types"
	"ledgerbook/internal/domain/documents/purchase"
)

// CreatePurchaseRequest is the request body for recording a purchase.
type CreatePurchaseRequest struct {
	SupplierName  string            `json:"supplierName" binding:"required"`
	Product       string            `json:"product" binding:"required"`
	Quantity      float64           `json:"quantity" binding:"required,gt=0"`
	Unit          string            `json:"unit"`
	PricePerUnit  types.MinorUnits  `json:"pricePerUnit"`
	OriginalPrice *types.MinorUnits `json:"originalPrice"`
	PurchaseDate  string            `json:"purchaseDate" binding:"required"`
	Notes         *string           `json:"notes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreatePurchaseRequest) ToEntity() (*purchase.Purchase, error) {
	date, err := ParseDate("purchaseDate", r.PurchaseDate)
	if err != nil {
		return nil, err
	}

	p := purchase.NewPurchase(r.SupplierName, r.Product, r.Quantity, r.PricePerUnit, date)
	if r.Unit != "" {
		p.Unit = r.Unit
	}
	p.OriginalPrice = r.OriginalPrice
	p.Notes = r.Notes
	return p, nil
}

// UpdatePurchaseRequest is the request body for updating a purchase.
type UpdatePurchaseRequest struct {
	SupplierName  string            `json:"supplierName" binding:"required"`
	Product       string            `json:"product" binding:"required"`
	Quantity      float64           `json:"quantity" binding:"required,gt=0"`
	Unit          string            `json:"unit"`
	PricePerUnit  types.MinorUnits  `json:"pricePerUnit"`
	OriginalPrice *types.MinorUnits `json:"originalPrice"`
	PurchaseDate  string            `json:"purchaseDate" binding:"required"`
	Notes         *string           `json:"notes"`
	Version       int               `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdatePurchaseRequest) ApplyTo(p *purchase.Purchase) error {
	date, err := ParseDate("purchaseDate", r.PurchaseDate)
	if err != nil {
		return err
	}

	p.SupplierName = r.SupplierName
	p.Product = r.Product
	p.Quantity = r.Quantity
	if r.Unit != "" {
		p.Unit = r.Unit
	}
	p.PricePerUnit = r.PricePerUnit
	p.OriginalPrice = r.OriginalPrice
	p.PurchaseDate = date
	p.Notes = r.Notes
	p.Version = r.Version
	p.RecalculateTotal()
	return nil
}

// PurchaseResponse is the response body for a purchase.
type PurchaseResponse struct {
	ID            string            `json:"id"`
	SupplierName  string            `json:"supplierName"`
	Product       string            `json:"product"`
	Quantity      float64           `json:"quantity"`
	Unit          string            `json:"unit"`
	PricePerUnit  types.MinorUnits  `json:"pricePerUnit"`
	OriginalPrice *types.MinorUnits `json:"originalPrice,omitempty"`
	TotalAmount   types.MinorUnits  `json:"totalAmount"`
	PurchaseDate  string            `json:"purchaseDate"`
	Notes         *string           `json:"notes,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
	Version       int               `json:"version"`
}

// FromPurchase creates response DTO from domain entity.
func FromPurchase(p *purchase.Purchase) *PurchaseResponse {
	return &PurchaseResponse{
		ID:            p.ID.String(),
		SupplierName:  p.SupplierName,
		Product:       p.Product,
		Quantity:      p.Quantity,
		Unit:          p.Unit,
		PricePerUnit:  p.PricePerUnit,
		OriginalPrice: p.OriginalPrice,
		TotalAmount:   p.TotalAmount,
		PurchaseDate:  p.PurchaseDate.Format(dateLayout),
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Version:       p.Version,
	}
}
