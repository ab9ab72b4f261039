// Package funds provides the funds movement register: every rupee entering or
// leaving an account is one row here. Transfers between accounts are modeled
// as a matched pair of rows sharing a related-account back-reference.
package funds

import (
	"context"
	"time"

	"ledgerbook/internal/core/apperror"
	"ledgerbook/internal/core/entity"
	"ledgerbook/internal/core/id"
	"ledgerbook/internal/core/types"
)

// EntryType defines the kind of funds movement.
type EntryType string

const (
	TypeAddFunds    EntryType = "add-funds"
	TypeRemoveFunds EntryType = "remove-funds"
	TypeTransferIn  EntryType = "transfer-in"
	TypeTransferOut EntryType = "transfer-out"
	TypeExpense     EntryType = "expense"
	TypePayment     EntryType = "payment"
)

// AccountTransaction represents one funds movement on an account.
//
// Outflows (remove-funds, transfer-out, expense) are stored negative,
// inflows positive. Transfer pairs carry each other's account in
// RelatedAccountID; this is a lookup link, not an ownership relation.
type AccountTransaction struct {
	entity.BaseDocument

	// AccountID references the account this movement belongs to
	AccountID id.ID `db:"account_id" json:"accountId"`

	// Type is the movement kind
	Type EntryType `db:"type" json:"type"`

	// EntryDate is the business date of the movement
	EntryDate time.Time `db:"entry_date" json:"entryDate"`

	// Amount in whole rupees; negative for outflows
	Amount types.MinorUnits `db:"amount" json:"amount"`

	// RelatedAccountID links the counterpart row of a transfer pair
	RelatedAccountID *id.ID `db:"related_account_id" json:"relatedAccountId,omitempty"`

	// Notes is a free-form remark
	Notes *string `db:"notes" json:"notes,omitempty"`
}

// isOutflow reports whether the entry type reduces the account balance.
func (t EntryType) isOutflow() bool {
	switch t {
	case TypeRemoveFunds, TypeTransferOut, TypeExpense:
		return true
	}
	return false
}

// NewAccountTransaction creates a funds movement with the stored sign
// normalized for its type.
func NewAccountTransaction(accountID id.ID, entryType EntryType, entryDate time.Time, amount types.MinorUnits) *AccountTransaction {
	t := &AccountTransaction{
		BaseDocument: entity.NewBaseDocument(),
		AccountID:    accountID,
		Type:         entryType,
		EntryDate:    entryDate,
		Amount:       amount,
	}
	t.NormalizeSign()
	return t
}

// NormalizeSign enforces the stored-sign convention for the entry type.
func (t *AccountTransaction) NormalizeSign() {
	if t.Type.isOutflow() {
		t.Amount = t.Amount.Abs().Neg()
	} else {
		t.Amount = t.Amount.Abs()
	}
}

// Validate implements entity.Validatable.
func (t *AccountTransaction) Validate(ctx context.Context) error {
	if id.IsNil(t.AccountID) {
		return apperror.NewValidation("account is required").
			WithDetail("field", "accountId")
	}

	switch t.Type {
	case TypeAddFunds, TypeRemoveFunds, TypeTransferIn, TypeTransferOut, TypeExpense, TypePayment:
	default:
		return apperror.NewValidation("invalid entry type").
			WithDetail("field", "type").
			WithDetail("value", string(t.Type))
	}

	if t.EntryDate.IsZero() {
		return apperror.NewValidation("entry date is required").
			WithDetail("field", "entryDate")
	}

	if t.Amount.IsZero() {
		return apperror.NewValidation("amount must be non-zero").
			WithDetail("field", "amount")
	}

	return nil
}
