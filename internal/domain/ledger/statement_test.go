package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerbook/internal/core/id"
	"ledgerbook/internal/core/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(txType TransactionType, d time.Time, amount types.MinorUnits) *Transaction {
	return NewTransaction(id.New(), txType, d, amount)
}

func TestBuildStatement_Scenario(t *testing.T) {
	// January: sale 1000, payment 400. February: sale 600.
	txs := []*Transaction{
		entry(TypeSale, date(2024, time.January, 5), 1000),
		entry(TypePayment, date(2024, time.January, 20), -400),
		entry(TypeSale, date(2024, time.February, 2), 600),
	}

	stmt := BuildStatement(txs, StatementOptions{})

	require.Len(t, stmt.Months, 2)

	jan := stmt.Months[0]
	assert.Equal(t, "2024-01", jan.Key)
	assert.Equal(t, "January 2024", jan.Label)
	assert.Equal(t, types.MinorUnits(1000), jan.DebitTotal)
	assert.Equal(t, types.MinorUnits(400), jan.CreditTotal)
	require.Len(t, jan.Rows, 2)
	assert.Equal(t, types.MinorUnits(600), jan.Rows[1].Balance)

	feb := stmt.Months[1]
	assert.Equal(t, "2024-02", feb.Key)
	assert.Equal(t, types.MinorUnits(600), feb.DebitTotal)
	require.Len(t, feb.Rows, 1)
	assert.Equal(t, types.MinorUnits(1200), feb.Rows[0].Balance)

	assert.Equal(t, types.MinorUnits(1600), stmt.TotalDebit)
	assert.Equal(t, types.MinorUnits(400), stmt.TotalCredit)
	assert.Equal(t, types.MinorUnits(1200), stmt.NetBalance)
	assert.Equal(t, types.Debit, stmt.NetSign)
	assert.Equal(t, "1,200 Dr", types.FormatBalance(stmt.NetBalance))
}

func TestBuildStatement_SignConvention(t *testing.T) {
	sale := entry(TypeSale, date(2024, time.March, 1), 500)
	assert.Equal(t, types.MinorUnits(500), sale.Debit())
	assert.Equal(t, types.MinorUnits(0), sale.Credit())

	payment := entry(TypePayment, date(2024, time.March, 2), -300)
	assert.Equal(t, types.MinorUnits(0), payment.Debit())
	assert.Equal(t, types.MinorUnits(300), payment.Credit())

	// Payments normalize to stored-negative even when supplied positive.
	positiveInput := entry(TypePayment, date(2024, time.March, 3), 250)
	assert.Equal(t, types.MinorUnits(-250), positiveInput.Amount)
	assert.Equal(t, types.MinorUnits(250), positiveInput.Credit())
}

func TestBuildStatement_RunningBalanceConsistency(t *testing.T) {
	txs := []*Transaction{
		entry(TypeSale, date(2023, time.November, 12), 2500),
		entry(TypePayment, date(2023, time.December, 1), -2500),
		entry(TypePayment, date(2024, time.January, 9), -700),
		entry(TypeSale, date(2024, time.January, 9), 1200),
		entry(TypeDiscount, date(2024, time.February, 28), -100),
	}

	stmt := BuildStatement(txs, StatementOptions{})

	var lastBalance types.MinorUnits
	var rowCount int
	for _, m := range stmt.Months {
		for _, r := range m.Rows {
			lastBalance = r.Balance
			rowCount++
		}
	}

	require.Equal(t, len(txs), rowCount)
	assert.Equal(t, stmt.OpeningBalance+stmt.TotalDebit-stmt.TotalCredit, lastBalance)
	assert.Equal(t, stmt.NetBalance, lastBalance)
}

func TestBuildStatement_CreditBalanceSign(t *testing.T) {
	txs := []*Transaction{
		entry(TypeSale, date(2024, time.May, 1), 200),
		entry(TypePayment, date(2024, time.May, 15), -500),
	}

	stmt := BuildStatement(txs, StatementOptions{})

	require.Len(t, stmt.Months, 1)
	last := stmt.Months[0].Rows[1]
	assert.Equal(t, types.MinorUnits(-300), last.Balance)
	assert.Equal(t, types.Credit, last.Sign)
	assert.Equal(t, types.MinorUnits(-300), stmt.NetBalance)
	assert.Equal(t, types.Credit, stmt.NetSign)
	assert.Equal(t, "300 Cr", types.FormatBalance(stmt.NetBalance))
}

func TestBuildStatement_MonthPartition(t *testing.T) {
	// Out-of-order input spanning a year boundary.
	txs := []*Transaction{
		entry(TypeSale, date(2024, time.January, 3), 100),
		entry(TypeSale, date(2023, time.December, 30), 200),
		entry(TypePayment, date(2024, time.January, 1), -50),
		entry(TypeSale, date(2023, time.December, 2), 300),
	}

	stmt := BuildStatement(txs, StatementOptions{})

	require.Len(t, stmt.Months, 2)
	assert.Equal(t, "2023-12", stmt.Months[0].Key)
	assert.Equal(t, "2024-01", stmt.Months[1].Key)

	// Concatenating group rows reproduces the date-sorted order, and every
	// transaction lands in exactly one group.
	var dates []time.Time
	for _, m := range stmt.Months {
		for _, r := range m.Rows {
			dates = append(dates, r.Date)
		}
	}
	require.Len(t, dates, len(txs))
	for i := 1; i < len(dates); i++ {
		assert.False(t, dates[i].Before(dates[i-1]), "rows out of order at %d", i)
	}
}

func TestBuildStatement_SameDayTiebreak(t *testing.T) {
	d := date(2024, time.June, 10)

	// UUIDv7 IDs are time-ordered, so creation order decides same-day ordering.
	first := entry(TypeSale, d, 100)
	second := entry(TypePayment, d, -40)
	third := entry(TypeSale, d, 60)

	// Shuffle input; output must come back in creation order.
	stmt := BuildStatement([]*Transaction{third, first, second}, StatementOptions{})

	require.Len(t, stmt.Months, 1)
	rows := stmt.Months[0].Rows
	require.Len(t, rows, 3)
	assert.Equal(t, types.MinorUnits(100), rows[0].Balance)
	assert.Equal(t, types.MinorUnits(60), rows[1].Balance)
	assert.Equal(t, types.MinorUnits(120), rows[2].Balance)
}

func TestBuildStatement_DateRangeFilter(t *testing.T) {
	txs := []*Transaction{
		entry(TypeSale, date(2024, time.January, 5), 1000),
		entry(TypeSale, date(2024, time.February, 10), 600),
		entry(TypeSale, date(2024, time.March, 20), 400),
	}

	stmt := BuildStatement(txs, StatementOptions{
		From: date(2024, time.February, 1),
		To:   date(2024, time.February, 29),
	})

	require.Len(t, stmt.Months, 1)
	assert.Equal(t, "2024-02", stmt.Months[0].Key)
	assert.Equal(t, types.MinorUnits(600), stmt.TotalDebit)
	// Opening balance stays zero inside a window: no carry-forward.
	assert.Equal(t, types.MinorUnits(0), stmt.OpeningBalance)
	assert.Equal(t, types.MinorUnits(600), stmt.NetBalance)
}

func TestBuildStatement_RangeBoundariesInclusive(t *testing.T) {
	from := date(2024, time.April, 1)
	to := date(2024, time.April, 30)
	txs := []*Transaction{
		entry(TypeSale, from, 10),
		entry(TypeSale, to, 20),
		entry(TypeSale, date(2024, time.March, 31), 99),
		entry(TypeSale, date(2024, time.May, 1), 99),
	}

	stmt := BuildStatement(txs, StatementOptions{From: from, To: to})

	assert.Equal(t, types.MinorUnits(30), stmt.TotalDebit)
}

func TestBuildStatement_Empty(t *testing.T) {
	stmt := BuildStatement(nil, StatementOptions{})

	assert.Empty(t, stmt.Months)
	assert.Equal(t, types.MinorUnits(0), stmt.OpeningBalance)
	assert.Equal(t, types.MinorUnits(0), stmt.TotalDebit)
	assert.Equal(t, types.MinorUnits(0), stmt.TotalCredit)
	assert.Equal(t, types.MinorUnits(0), stmt.NetBalance)
	assert.Equal(t, types.Debit, stmt.NetSign)
}

func TestBuildStatement_DoesNotMutateInput(t *testing.T) {
	a := entry(TypeSale, date(2024, time.July, 2), 100)
	b := entry(TypeSale, date(2024, time.July, 1), 200)
	in := []*Transaction{a, b}

	_ = BuildStatement(in, StatementOptions{})

	assert.Same(t, a, in[0])
	assert.Same(t, b, in[1])
}
