package dto

import (
	"time"

	"ledgerbook/internal/core/apperror"
	"ledgerbook/internal/core/id"
	"ledgerbook/internal/core/types"
	"ledgerbook/internal/domain/documents/sale"
)

// CreateSaleRequest is the request body for recording a sale.
type CreateSaleRequest struct {
	CustomerID   *string          `json:"customerId"`
	Product      string           `json:"product" binding:"required"`
	Quantity     float64          `json:"quantity" binding:"required,gt=0"`
	Unit         string           `json:"unit"`
	PricePerUnit types.MinorUnits `json:"pricePerUnit"`
	SaleDate     string           `json:"saleDate" binding:"required"`
	Notes        *string          `json:"notes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateSaleRequest) ToEntity() (*sale.Sale, error) {
	date, err := ParseDate("saleDate", r.SaleDate)
	if err != nil {
		return nil, err
	}

	s := sale.NewSale(r.Product, r.Quantity, r.PricePerUnit, date)
	if r.Unit != "" {
		s.Unit = r.Unit
	}
	s.Notes = r.Notes

	if r.CustomerID != nil && *r.CustomerID != "" {
		customerID, err := id.Parse(*r.CustomerID)
		if err != nil {
			return nil, apperror.NewValidation("invalid customerId format")
		}
		s.CustomerID = &customerID
	}

	return s, nil
}

// UpdateSaleRequest is the request body for updating a sale.
type UpdateSaleRequest struct {
	CustomerID   *string          `json:"customerId"`
	Product      string           `json:"product" binding:"required"`
	Quantity     float64          `json:"quantity" binding:"required,gt=0"`
	Unit         string           `json:"unit"`
	PricePerUnit types.MinorUnits `json:"pricePerUnit"`
	SaleDate     string           `json:"saleDate" binding:"required"`
	Notes        *string          `json:"notes"`
	Version      int              `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity. The total is rederived from
// quantity and price; clients never send it.
func (r *UpdateSaleRequest) ApplyTo(s *sale.Sale) error {
	date, err := ParseDate("saleDate", r.SaleDate)
	if err != nil {
		return err
	}

	s.CustomerID = nil
	if r.CustomerID != nil && *r.CustomerID != "" {
		customerID, err := id.Parse(*r.CustomerID)
		if err != nil {
			return apperror.NewValidation("invalid customerId format")
		}
		s.CustomerID = &customerID
	}

	s.Product = r.Product
	s.Quantity = r.Quantity
	if r.Unit != "" {
		s.Unit = r.Unit
	}
	s.PricePerUnit = r.PricePerUnit
	s.SaleDate = date
	s.Notes = r.Notes
	s.Version = r.Version
	s.RecalculateTotal()
	return nil
}

// SaleResponse is the response body for a sale.
type SaleResponse struct {
	ID           string           `json:"id"`
	CustomerID   *string          `json:"customerId,omitempty"`
	Product      string           `json:"product"`
	Quantity     float64          `json:"quantity"`
	Unit         string           `json:"unit"`
	PricePerUnit types.MinorUnits `json:"pricePerUnit"`
	TotalAmount  types.MinorUnits `json:"totalAmount"`
	SaleDate     string           `json:"saleDate"`
	Notes        *string          `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
	Version      int              `json:"version"`
}

// FromSale creates response DTO from domain entity.
func FromSale(s *sale.Sale) *SaleResponse {
	resp := &SaleResponse{
		ID:           s.ID.String(),
		Product:      s.Product,
		Quantity:     s.Quantity,
		Unit:         s.Unit,
		PricePerUnit: s.PricePerUnit,
		TotalAmount:  s.TotalAmount,
		SaleDate:     s.SaleDate.Format(dateLayout),
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
		Version:      s.Version,
	}
	if s.CustomerID != nil {
		customerID := s.CustomerID.String()
		resp.CustomerID = &customerID
	}
	return resp
}
