package dto

import (
	"time"

	"ledgerbook/internal/core/apperror"
	"ledgerbook/internal/core/id"
	"ledgerbook/internal/core/types"
	"ledgerbook/internal/domain/ledger"
)

// CreateCustomerTransactionRequest is the request body for recording a ledger
// entry under a customer sub-resource; the customer comes from the URL path.
// The amount may arrive with either sign; the stored sign follows the entry
// type, not the client.
type CreateCustomerTransactionRequest struct {
	Type        ledger.TransactionType `json:"type" binding:"required"`
	EntryDate   string                 `json:"entryDate" binding:"required"`
	Amount      types.MinorUnits       `json:"amount" binding:"required"`
	Bags        *float64               `json:"bags"`
	Location    *string                `json:"location"`
	SubCategory *string                `json:"subCategory"`
	Notes       *string                `json:"notes"`
	AccountID   *string                `json:"accountId"`
}

// ToEntity converts DTO to domain entity for the given customer.
func (r *CreateCustomerTransactionRequest) ToEntity(customerID id.ID) (*ledger.Transaction, error) {
	date, err := ParseDate("entryDate", r.EntryDate)
	if err != nil {
		return nil, err
	}

	t := ledger.NewTransaction(customerID, r.Type, date, r.Amount)
	t.Bags = r.Bags
	t.Location = r.Location
	t.SubCategory = r.SubCategory
	t.Notes = r.Notes

	if r.AccountID != nil && *r.AccountID != "" {
		accountID, err := id.Parse(*r.AccountID)
		if err != nil {
			return nil, apperror.NewValidation("invalid accountId format")
		}
		t.AccountID = &accountID
	}

	return t, nil
}

// CreateTransactionRequest is the request body for recording a ledger entry
// on the register endpoint, which names the customer in the body.
type CreateTransactionRequest struct {
	CreateCustomerTransactionRequest

	CustomerID string `json:"customerId" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateTransactionRequest) ToEntity() (*ledger.Transaction, error) {
	customerID, err := id.Parse(r.CustomerID)
	if err != nil {
		return nil, apperror.NewValidation("invalid customerId format")
	}

	return r.CreateCustomerTransactionRequest.ToEntity(customerID)
}

// TransactionResponse is the response body for a ledger entry.
type TransactionResponse struct {
	ID          string                 `json:"id"`
	CustomerID  string                 `json:"customerId"`
	Type        ledger.TransactionType `json:"type"`
	EntryDate   string                 `json:"entryDate"`
	Amount      types.MinorUnits       `json:"amount"`
	Debit       types.MinorUnits       `json:"debit"`
	Credit      types.MinorUnits       `json:"credit"`
	Bags        *float64               `json:"bags,omitempty"`
	Location    *string                `json:"location,omitempty"`
	SubCategory *string                `json:"subCategory,omitempty"`
	Notes       *string                `json:"notes,omitempty"`
	AccountID   *string                `json:"accountId,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
}

// FromTransaction creates response DTO from domain entity.
func FromTransaction(t *ledger.Transaction) *TransactionResponse {
	resp := &TransactionResponse{
		ID:          t.ID.String(),
		CustomerID:  t.CustomerID.String(),
		Type:        t.Type,
		EntryDate:   t.EntryDate.Format(dateLayout),
		Amount:      t.Amount,
		Debit:       t.Debit(),
		Credit:      t.Credit(),
		Bags:        t.Bags,
		Location:    t.Location,
		SubCategory: t.SubCategory,
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
	}
	if t.AccountID != nil {
		accountID := t.AccountID.String()
		resp.AccountID = &accountID
	}
	return resp
}
