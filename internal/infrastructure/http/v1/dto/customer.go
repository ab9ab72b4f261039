package dto

import (
	"ledgerbook/internal/core/types"
	"ledgerbook/internal/domain/catalogs/customer"
)

// --- Request DTOs ---

// CreateCustomerRequest is the request body for creating a customer.
type CreateCustomerRequest struct {
	Name     string            `json:"name" binding:"required"`
	Category customer.Category `json:"category" binding:"required"`
	Phone    *string           `json:"phone"`
	Village  *string           `json:"village"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateCustomerRequest) ToEntity() *customer.Customer {
	c := customer.NewCustomer(r.Name, r.Category)
	c.Phone = r.Phone
	c.Village = r.Village
	return c
}

// UpdateCustomerRequest is the request body for updating a customer.
type UpdateCustomerRequest struct {
	Name     string            `json:"name" binding:"required"`
	Category customer.Category `json:"category" binding:"required"`
	Phone    *string           `json:"phone"`
	Village  *string           `json:"village"`
	Version  int               `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity. Balance is never writable
// through the API; it belongs to the database triggers.
func (r *UpdateCustomerRequest) ApplyTo(c *customer.Customer) {
	c.Name = r.Name
	c.Category = r.Category
	c.Phone = r.Phone
	c.Village = r.Village
	c.Version = r.Version
}

// --- Response DTOs ---

// CustomerResponse is the response body for a customer.
type CustomerResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Category     customer.Category `json:"category"`
	Phone        *string           `json:"phone,omitempty"`
	Village      *string           `json:"village,omitempty"`
	Balance      types.MinorUnits  `json:"balance"`
	BalanceSign  types.BalanceSign `json:"balanceSign"`
	DeletionMark bool              `json:"deletionMark"`
	Version      int               `json:"version"`
}

// FromCustomer creates response DTO from domain entity.
func FromCustomer(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		Category:     c.Category,
		Phone:        c.Phone,
		Village:      c.Village,
		Balance:      c.Balance,
		BalanceSign:  types.SignOf(c.Balance),
		DeletionMark: c.DeletionMark,
		Version:      c.Version,
	}
}
