package dto

import (
	"ledgerbook/internal/core/types"
	"ledgerbook/internal/domain/catalogs/account"
)

// CreateAccountRequest is the request body for creating a funds account.
type CreateAccountRequest struct {
	Name    string       `json:"name" binding:"required"`
	Kind    account.Kind `json:"kind" binding:"required"`
	Details *string      `json:"details"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateAccountRequest) ToEntity() *account.Account {
	a := account.NewAccount(r.Name, r.Kind)
	a.Details = r.Details
	return a
}

// UpdateAccountRequest is the request body for updating a funds account.
type UpdateAccountRequest struct {
	Name    string       `json:"name" binding:"required"`
	Kind    account.Kind `json:"kind" binding:"required"`
	Details *string      `json:"details"`
	Version int          `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateAccountRequest) ApplyTo(a *account.Account) {
	a.Name = r.Name
	a.Kind = r.Kind
	a.Details = r.Details
	a.Version = r.Version
}

// AccountResponse is the response body for a funds account.
type AccountResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Kind         account.Kind     `json:"kind"`
	Details      *string          `json:"details,omitempty"`
	Balance      types.MinorUnits `json:"balance"`
	DeletionMark bool             `json:"deletionMark"`
	Version      int              `json:"version"`
}

// FromAccount creates response DTO from domain entity.
func FromAccount(a *account.Account) *AccountResponse {
	return &AccountResponse{
		ID:           a.ID.String(),
		Name:         a.Name,
		Kind:         a.Kind,
		Details:      a.Details,
		Balance:      a.Balance,
		DeletionMark: a.DeletionMark,
		Version:      a.Version,
	}
}
