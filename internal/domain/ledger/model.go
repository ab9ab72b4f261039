// Package ledger provides the customer ledger: transaction entries and the
// account statement computation.
package ledger

import (
	"bytes"
	"context"
	"time"

	"ledgerbook/internal/core/apperror"
	"ledgerbook/internal/core/entity"
	"ledgerbook/internal/core/id"
	"ledgerbook/internal/core/types"
)

// TransactionType defines the kind of ledger entry.
type TransactionType string

const (
	TypeSale     TransactionType = "sale"
	TypePayment  TransactionType = "payment"
	TypeDiscount TransactionType = "discount"
)

// Transaction represents a single customer ledger entry.
//
// Sign convention: sale amounts are stored positive (debit, increases owing),
// payment and discount amounts are stored negative (a reduction). The stored
// sign is an insertion-time invariant; consumers should derive debit/credit
// through Debit()/Credit() instead of inspecting the raw sign.
type Transaction struct {
	entity.BaseDocument

	// CustomerID references the customer this entry belongs to
	CustomerID id.ID `db:"customer_id" json:"customerId"`

	// Type is the entry kind: sale, payment, discount
	Type TransactionType `db:"type" json:"type"`

	// EntryDate is the business date of the entry (not the insert time)
	EntryDate time.Time `db:"entry_date" json:"entryDate"`

	// Amount in whole rupees; negative for payment/discount
	Amount types.MinorUnits `db:"amount" json:"amount"`

	// Bags is the traded quantity for sale entries (nil when not applicable)
	Bags *float64 `db:"bags" json:"bags,omitempty"`

	// Location is a free-form delivery/pickup note
	Location *string `db:"location" json:"location,omitempty"`

	// SubCategory is the product category for sale entries
	SubCategory *string `db:"sub_category" json:"subCategory,omitempty"`

	// Notes is a free-form description shown on statements
	Notes *string `db:"notes" json:"notes,omitempty"`

	// AccountID references the funds account a payment was received into
	AccountID *id.ID `db:"account_id" json:"accountId,omitempty"`
}

// NewTransaction creates a ledger entry and normalizes the stored sign.
func NewTransaction(customerID id.ID, txType TransactionType, entryDate time.Time, amount types.MinorUnits) *Transaction {
	t := &Transaction{
		BaseDocument: entity.NewBaseDocument(),
		CustomerID:   customerID,
		Type:         txType,
		EntryDate:    entryDate,
		Amount:       amount,
	}
	t.NormalizeSign()
	return t
}

// NormalizeSign enforces the stored-sign convention regardless of input sign:
// sales positive, payments and discounts negative.
func (t *Transaction) NormalizeSign() {
	if t.Type == TypeSale {
		t.Amount = t.Amount.Abs()
	} else {
		t.Amount = t.Amount.Abs().Neg()
	}
}

// IsSale reports whether the entry increases the customer's owing.
func (t *Transaction) IsSale() bool {
	return t.Type == TypeSale
}

// Debit returns the debit contribution of this entry (sales only).
func (t *Transaction) Debit() types.MinorUnits {
	if t.IsSale() {
		return t.Amount.Abs()
	}
	return 0
}

// Credit returns the credit contribution of this entry (payments, discounts).
func (t *Transaction) Credit() types.MinorUnits {
	if t.IsSale() {
		return 0
	}
	return t.Amount.Abs()
}

// Quantity returns the bag count, defaulting to 1 when absent.
// Used by item reports where every sale counts at least one unit.
func (t *Transaction) Quantity() float64 {
	if t.Bags == nil {
		return 1
	}
	return *t.Bags
}

// Product returns the product category, empty when unset.
func (t *Transaction) Product() string {
	if t.SubCategory == nil {
		return ""
	}
	return *t.SubCategory
}

// Validate implements entity.Validatable.
func (t *Transaction) Validate(ctx context.Context) error {
	if id.IsNil(t.CustomerID) {
		return apperror.NewValidation("customer is required").
			WithDetail("field", "customerId")
	}

	switch t.Type {
	case TypeSale, TypePayment, TypeDiscount:
	default:
		return apperror.NewValidation("invalid transaction type").
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

// Less orders transactions by entry date, using the time-ordered UUID as a
// deterministic tiebreak for entries sharing the same date.
func (t *Transaction) Less(other *Transaction) bool {
	if !t.EntryDate.Equal(other.EntryDate) {
		return t.EntryDate.Before(other.EntryDate)
	}
	return bytes.Compare(t.ID[:], other.ID[:]) < 0
}
