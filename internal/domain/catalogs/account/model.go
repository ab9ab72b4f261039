// Package account provides the funds Account catalog.
// Accounts are the places money sits: cash box, bank accounts, UPI wallets.
package account

import (
	"context"

	"ledgerbook/internal/core/apperror"
	"ledgerbook/internal/core/entity"
	"ledgerbook/internal/core/types"
)

// Kind defines the account medium.
type Kind string

const (
	KindCash Kind = "cash"
	KindBank Kind = "bank"
	KindUPI  Kind = "upi"
)

// Account represents a funds account.
type Account struct {
	entity.Catalog

	// Kind is the account medium: cash, bank, upi
	Kind Kind `db:"kind" json:"kind"`

	// Balance in whole rupees; maintained by a database trigger on funds
	// transaction insert, never recomputed here.
	Balance types.MinorUnits `db:"balance" json:"balance"`

	// Details is a free-form note (bank branch, UPI handle)
	Details *string `db:"details" json:"details,omitempty"`
}

// NewAccount creates a new Account.
func NewAccount(name string, kind Kind) *Account {
	return &Account{
		Catalog: entity.NewCatalog(name),
		Kind:    kind,
	}
}

// Validate implements entity.Validatable.
func (a *Account) Validate(ctx context.Context) error {
	if err := a.Catalog.Validate(ctx); err != nil {
		return err
	}

	switch a.Kind {
	case KindCash, KindBank, KindUPI:
	default:
		return apperror.NewValidation("invalid account kind").
			WithDetail("field", "kind").
			WithDetail("value", string(a.Kind))
	}

	return nil
}
