// Package reports provides report aggregation over ledger, sale, purchase and
// funds data. Aggregation functions are pure folds over caller-supplied
// collections; fetching lives in the repository and service.
package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"ledgerbook/internal/core/id"
	"ledgerbook/internal/core/types"
	"ledgerbook/internal/domain/ledger"
	"ledgerbook/internal/domain/registers/funds"
)

// --- Inputs ---

// DateRange is an inclusive [From, To] calendar range.
// Zero times mean unbounded on that side.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether d falls inside the range.
func (r DateRange) Contains(d time.Time) bool {
	if !r.From.IsZero() && d.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && d.After(r.To) {
		return false
	}
	return true
}

// CustomerLedger pairs a customer with their transaction list, as fetched
// from the store. Aggregators never reach back to the store themselves.
type CustomerLedger struct {
	CustomerID   id.ID
	CustomerName string
	Transactions []*ledger.Transaction
}

// AccountLedger pairs a funds account with its movement list.
type AccountLedger struct {
	AccountID    id.ID
	AccountName  string
	Transactions []*funds.AccountTransaction
}

// --- Output rows ---

// PartyItemRow is one line of the item-by-party report.
type PartyItemRow struct {
	CustomerName string           `json:"customerName"`
	Product      string           `json:"product"`
	Quantity     float64          `json:"quantity"`
	Amount       types.MinorUnits `json:"amount"`
}

// ItemSummaryRow is one line of the item sale summary.
type ItemSummaryRow struct {
	Product  string  `json:"product"`
	Quantity float64 `json:"quantity"`
}

// MonthlySummaryRow is one line of the monthly business summary.
type MonthlySummaryRow struct {
	// Month is the zero-padded "YYYY-MM" bucket key
	Month       string           `json:"month"`
	Sales       types.MinorUnits `json:"sales"`
	Collections types.MinorUnits `json:"collections"`
}

// CustomerSummaryRow is one line of the customer-wise summary.
type CustomerSummaryRow struct {
	CustomerID    id.ID            `json:"customerId"`
	CustomerName  string           `json:"customerName"`
	TotalSales    types.MinorUnits `json:"totalSales"`
	TotalPayments types.MinorUnits `json:"totalPayments"`
	Balance       types.MinorUnits `json:"balance"`
}

// AccountBalanceRow is one line of the account balance summary.
type AccountBalanceRow struct {
	AccountID   id.ID            `json:"accountId"`
	AccountName string           `json:"accountName"`
	Collected   types.MinorUnits `json:"collected"`
}

// TransactionRow is one line of the flat transaction report.
type TransactionRow struct {
	TransactionID id.ID                  `json:"transactionId"`
	CustomerName  string                 `json:"customerName"`
	Type          ledger.TransactionType `json:"type"`
	Date          time.Time              `json:"date"`
	Amount        types.MinorUnits       `json:"amount"`
	Details       string                 `json:"details"`
}

// CustomerActivityRow is one line of the customer activity report.
type CustomerActivityRow struct {
	CustomerID       id.ID      `json:"customerId"`
	CustomerName     string     `json:"customerName"`
	LastTransaction  *time.Time `json:"lastTransaction,omitempty"`
	DaysSince        int        `json:"daysSince"`
	IsActive         bool       `json:"isActive"`
	RecentCount      int        `json:"recentCount"`
	TransactionCount int        `json:"transactionCount"`
}

// ProfitLoss is the profit/loss summary over a period.
// Averages use decimal arithmetic; every division is guarded so degenerate
// inputs produce zeros, never NaN.
type ProfitLoss struct {
	TotalSalesBags    float64          `json:"totalSalesBags"`
	TotalPurchaseBags float64          `json:"totalPurchaseBags"`
	TotalRevenue      types.MinorUnits `json:"totalRevenue"`
	TotalCost         types.MinorUnits `json:"totalCost"`

	AvgSellingPrice     decimal.Decimal `json:"avgSellingPrice"`
	AvgCostPrice        decimal.Decimal `json:"avgCostPrice"`
	ProfitPerBag        decimal.Decimal `json:"profitPerBag"`
	ProfitMarginPercent decimal.Decimal `json:"profitMarginPercent"`
	TotalProfit         decimal.Decimal `json:"totalProfit"`
}
