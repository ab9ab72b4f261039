package ledger

import (
	"sort"
	"time"

	"ledgerbook/internal/core/types"
)

// StatementRow is a single line of a customer statement with its running
// balance. Derived on every render, never persisted.
type StatementRow struct {
	Date    time.Time         `json:"date"`
	Details string            `json:"details"`
	Debit   types.MinorUnits  `json:"debit"`
	Credit  types.MinorUnits  `json:"credit"`
	Balance types.MinorUnits  `json:"balance"`
	Sign    types.BalanceSign `json:"balanceSign"`
}

// MonthGroup holds one calendar month of statement rows with month subtotals.
type MonthGroup struct {
	// Key is the zero-padded "YYYY-MM" bucket key; lexicographic order of
	// keys is chronological order, which the builder relies on.
	Key   string `json:"monthKey"`
	Label string `json:"monthLabel"`

	Rows        []StatementRow   `json:"rows"`
	DebitTotal  types.MinorUnits `json:"monthDebitTotal"`
	CreditTotal types.MinorUnits `json:"monthCreditTotal"`
}

// Statement is a month-grouped customer account statement.
type Statement struct {
	// OpeningBalance is always zero: there is no historical carry-forward.
	OpeningBalance types.MinorUnits `json:"openingBalance"`

	Months []MonthGroup `json:"months"`

	TotalDebit  types.MinorUnits  `json:"totalDebit"`
	TotalCredit types.MinorUnits  `json:"totalCredit"`
	NetBalance  types.MinorUnits  `json:"netBalance"`
	NetSign     types.BalanceSign `json:"netBalanceSign"`

	// Period echoes the requested range (zero times when unbounded).
	From time.Time `json:"from,omitempty"`
	To   time.Time `json:"to,omitempty"`
}

// StatementOptions bounds the statement to an inclusive date range.
// Zero times mean unbounded on that side.
type StatementOptions struct {
	From time.Time
	To   time.Time
}

// inRange reports whether d falls inside the inclusive [From, To] range.
func (o StatementOptions) inRange(d time.Time) bool {
	if !o.From.IsZero() && d.Before(o.From) {
		return false
	}
	if !o.To.IsZero() && d.After(o.To) {
		return false
	}
	return true
}

// BuildStatement folds a customer's transactions into an ordered,
// month-grouped statement with running balances.
//
// The fold is a pure function: it sorts a copy of the input (ascending entry
// date, UUID tiebreak), walks it once accumulating the running balance
// (debits add, credits subtract), and cuts a new month group whenever the
// "YYYY-MM" key changes. Because the input is date-sorted, each month's rows
// are contiguous and groups come out in chronological order without a
// separate key sort.
func BuildStatement(transactions []*Transaction, opts StatementOptions) *Statement {
	stmt := &Statement{
		OpeningBalance: 0,
		Months:         []MonthGroup{},
		From:           opts.From,
		To:             opts.To,
	}

	filtered := make([]*Transaction, 0, len(transactions))
	for _, t := range transactions {
		if opts.inRange(t.EntryDate) {
			filtered = append(filtered, t)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Less(filtered[j])
	})

	running := stmt.OpeningBalance
	var current *MonthGroup

	for _, t := range filtered {
		key := monthKey(t.EntryDate)
		if current == nil || current.Key != key {
			stmt.Months = append(stmt.Months, MonthGroup{
				Key:   key,
				Label: t.EntryDate.Format("January 2006"),
			})
			current = &stmt.Months[len(stmt.Months)-1]
		}

		debit := t.Debit()
		credit := t.Credit()
		running += debit - credit

		current.Rows = append(current.Rows, StatementRow{
			Date:    t.EntryDate,
			Details: rowDetails(t),
			Debit:   debit,
			Credit:  credit,
			Balance: running,
			Sign:    types.SignOf(running),
		})
		current.DebitTotal += debit
		current.CreditTotal += credit

		stmt.TotalDebit += debit
		stmt.TotalCredit += credit
	}

	stmt.NetBalance = stmt.OpeningBalance + stmt.TotalDebit - stmt.TotalCredit
	stmt.NetSign = types.SignOf(stmt.NetBalance)

	return stmt
}

// monthKey returns the zero-padded calendar-month bucket key.
func monthKey(d time.Time) string {
	return d.Format("2006-01")
}

// rowDetails builds the statement line text for an entry.
func rowDetails(t *Transaction) string {
	if t.Notes != nil && *t.Notes != "" {
		return *t.Notes
	}

	switch t.Type {
	case TypeSale:
		if t.SubCategory != nil && *t.SubCategory != "" {
			return "Sale - " + *t.SubCategory
		}
		return "Sale"
	case TypePayment:
		return "Payment received"
	case TypeDiscount:
		return "Discount"
	default:
		return string(t.Type)
	}
}
