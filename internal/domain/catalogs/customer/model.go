// Package customer provides the Customer catalog.
// Customers are the parties whose ledgers, sales and statements this
// application manages.
package customer

import (
	"context"
	"regexp"

	"ledgerbook/internal/core/apperror"
	"ledgerbook/internal/core/entity"
	"ledgerbook/internal/core/types"
)

// phoneRE accepts 10-digit Indian mobile numbers, optionally prefixed +91.
var phoneRE = regexp.MustCompile(`^(\+91)?[6-9]\d{9}$`)

// Category groups customers for reporting.
type Category string

const (
	CategoryRetail    Category = "retail"
	CategoryWholesale Category = "wholesale"
	CategoryBroker    Category = "broker"
	CategoryOther     Category = "other"
)

// Customer represents a trading party with a running ledger balance.
type Customer struct {
	entity.Catalog

	// Phone is the primary contact number
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Category groups the customer for reports
	Category Category `db:"category" json:"category"`

	// Balance is the customer's current owing in whole rupees.
	// Maintained by a database trigger on transaction insert/delete; the
	// application never recomputes it. A statement's report-local running
	// balance can legitimately differ (it starts from zero inside a window).
	Balance types.MinorUnits `db:"balance" json:"balance"`

	// Village is a free-form locality note
	Village *string `db:"village" json:"village,omitempty"`
}

// NewCustomer creates a new Customer.
func NewCustomer(name string, category Category) *Customer {
	return &Customer{
		Catalog:  entity.NewCatalog(name),
		Category: category,
	}
}

// Validate implements entity.Validatable.
func (c *Customer) Validate(ctx context.Context) error {
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !isValidCategory(c.Category) {
		return apperror.NewValidation("invalid customer category").
			WithDetail("field", "category").
			WithDetail("value", string(c.Category))
	}

	if c.Phone != nil && *c.Phone != "" && !phoneRE.MatchString(*c.Phone) {
		return apperror.NewValidation("invalid phone number").
			WithDetail("field", "phone")
	}

	return nil
}

func isValidCategory(c Category) bool {
	switch c {
	case CategoryRetail, CategoryWholesale, CategoryBroker, CategoryOther:
		return true
	}
	return false
}
