package dto

import (
	"time"

	"ledgerbook/internal/core/apperror"
	"ledgerbook/internal/core/id"
	"ledgerbook/internal/core/types"
	"ledgerbook/internal/domain/registers/funds"
)

// CreateFundsEntryRequest is the request body for recording a funds movement.
type CreateFundsEntryRequest struct {
	AccountID string           `json:"accountId" binding:"required"`
	Type      funds.EntryType  `json:"type" binding:"required"`
	EntryDate string           `json:"entryDate" binding:"required"`
	Amount    types.MinorUnits `json:"amount" binding:"required"`
	Notes     *string          `json:"notes"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateFundsEntryRequest) ToEntity() (*funds.AccountTransaction, error) {
	accountID, err := id.Parse(r.AccountID)
	if err != nil {
		return nil, apperror.NewValidation("invalid accountId format")
	}

	date, err := ParseDate("entryDate", r.EntryDate)
	if err != nil {
		return nil, err
	}

	t := funds.NewAccountTransaction(accountID, r.Type, date, r.Amount)
	t.Notes = r.Notes
	return t, nil
}

// TransferRequest is the request body for moving funds between two accounts.
type TransferRequest struct {
	FromAccountID string           `json:"fromAccountId" binding:"required"`
	ToAccountID   string           `json:"toAccountId" binding:"required"`
	Amount        types.MinorUnits `json:"amount" binding:"required"`
	EntryDate     string           `json:"entryDate" binding:"required"`
	Notes         *string          `json:"notes"`
}

// Parse resolves the transfer endpoints and date.
func (r *TransferRequest) Parse() (from, to id.ID, date time.Time, err error) {
	if from, err = id.Parse(r.FromAccountID); err != nil {
		err = apperror.NewValidation("invalid fromAccountId format")
		return
	}
	if to, err = id.Parse(r.ToAccountID); err != nil {
		err = apperror.NewValidation("invalid toAccountId format")
		return
	}
	date, err = ParseDate("entryDate", r.EntryDate)
	return
}

// FundsEntryResponse is the response body for a funds movement.
type FundsEntryResponse struct {
	ID               string           `json:"id"`
	AccountID        string           `json:"accountId"`
	Type             funds.EntryType  `json:"type"`
	EntryDate        string           `json:"entryDate"`
	Amount           types.MinorUnits `json:"amount"`
	RelatedAccountID *string          `json:"relatedAccountId,omitempty"`
	Notes            *string          `json:"notes,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// FromFundsEntry creates response DTO from domain entity.
func FromFundsEntry(t *funds.AccountTransaction) *FundsEntryResponse {
	resp := &FundsEntryResponse{
		ID:        t.ID.String(),
		AccountID: t.AccountID.String(),
		Type:      t.Type,
		EntryDate: t.EntryDate.Format(dateLayout),
		Amount:    t.Amount,
		Notes:     t.Notes,
		CreatedAt: t.CreatedAt,
	}
	if t.RelatedAccountID != nil {
		related := t.RelatedAccountID.String()
		resp.RelatedAccountID = &related
	}
	return resp
}

// TransferResponse returns both rows of a completed transfer pair.
type TransferResponse struct {
	Out *FundsEntryResponse `json:"out"`
	In  *FundsEntryResponse `json:"in"`
}
