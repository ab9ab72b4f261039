package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerbook/internal/core/id"
	"ledgerbook/internal/core/types"
	"ledgerbook/internal/domain/documents/purchase"
	"ledgerbook/internal/domain/documents/sale"
	"ledgerbook/internal/domain/ledger"
	"ledgerbook/internal/domain/registers/funds"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tx(txType ledger.TransactionType, d time.Time, amount types.MinorUnits) *ledger.Transaction {
	return ledger.NewTransaction(id.New(), txType, d, amount)
}

func saleTx(d time.Time, amount types.MinorUnits, product string, bags float64) *ledger.Transaction {
	t := tx(ledger.TypeSale, d, amount)
	t.SubCategory = &product
	if bags > 0 {
		t.Bags = &bags
	}
	return t
}

func customerLedger(name string, txs ...*ledger.Transaction) *CustomerLedger {
	return &CustomerLedger{CustomerID: id.New(), CustomerName: name, Transactions: txs}
}

func TestItemReportByParty(t *testing.T) {
	ledgers := []*CustomerLedger{
		customerLedger("Ramesh",
			saleTx(date(2024, time.April, 3), 1000, "Wheat", 10),
			saleTx(date(2024, time.April, 9), 500, "Wheat", 5),
			saleTx(date(2024, time.April, 12), 800, "Rice", 0), // no bags, counts as 1
			tx(ledger.TypePayment, date(2024, time.April, 15), -700),
		),
		customerLedger("Anita",
			saleTx(date(2024, time.April, 5), 2000, "Wheat", 20),
		),
	}

	rows := ItemReportByParty(ledgers, DateRange{})

	require.Len(t, rows, 3)
	assert.Equal(t, "Anita", rows[0].CustomerName)
	assert.Equal(t, "Wheat", rows[0].Product)
	assert.Equal(t, 20.0, rows[0].Quantity)

	assert.Equal(t, "Ramesh", rows[1].CustomerName)
	assert.Equal(t, "Rice", rows[1].Product)
	assert.Equal(t, 1.0, rows[1].Quantity)
	assert.Equal(t, types.MinorUnits(800), rows[1].Amount)

	assert.Equal(t, "Ramesh", rows[2].CustomerName)
	assert.Equal(t, "Wheat", rows[2].Product)
	assert.Equal(t, 15.0, rows[2].Quantity)
	assert.Equal(t, types.MinorUnits(1500), rows[2].Amount)
}

func TestItemSaleSummary(t *testing.T) {
	ledgers := []*CustomerLedger{
		customerLedger("Ramesh",
			saleTx(date(2024, time.April, 3), 1000, "Wheat", 10),
			saleTx(date(2024, time.May, 9), 500, "Rice", 4),
		),
		customerLedger("Anita",
			saleTx(date(2024, time.April, 5), 2000, "Wheat", 20),
		),
	}

	rows := ItemSaleSummary(ledgers, DateRange{})

	require.Len(t, rows, 2)
	assert.Equal(t, ItemSummaryRow{Product: "Rice", Quantity: 4}, rows[0])
	assert.Equal(t, ItemSummaryRow{Product: "Wheat", Quantity: 30}, rows[1])
}

func TestMonthlyBusinessSummary(t *testing.T) {
	ledgers := []*CustomerLedger{
		customerLedger("Ramesh",
			tx(ledger.TypeSale, date(2024, time.January, 5), 1000),
			tx(ledger.TypePayment, date(2024, time.January, 20), -400),
			tx(ledger.TypeSale, date(2024, time.February, 2), 600),
			tx(ledger.TypeDiscount, date(2024, time.February, 10), -50),
		),
	}

	rows := MonthlyBusinessSummary(ledgers, DateRange{})

	require.Len(t, rows, 2)
	assert.Equal(t, "2024-01", rows[0].Month)
	assert.Equal(t, types.MinorUnits(1000), rows[0].Sales)
	assert.Equal(t, types.MinorUnits(400), rows[0].Collections)

	// Discounts count as neither sales nor collections.
	assert.Equal(t, "2024-02", rows[1].Month)
	assert.Equal(t, types.MinorUnits(600), rows[1].Sales)
	assert.Equal(t, types.MinorUnits(0), rows[1].Collections)
}

func TestCustomerWiseSummary_DropsInactiveCustomers(t *testing.T) {
	rng := DateRange{From: date(2024, time.April, 1), To: date(2024, time.April, 30)}
	ledgers := []*CustomerLedger{
		customerLedger("Ramesh",
			tx(ledger.TypeSale, date(2024, time.April, 3), 1000),
			tx(ledger.TypePayment, date(2024, time.April, 15), -400),
		),
		// All activity outside the range, so the customer is dropped.
		customerLedger("Anita",
			tx(ledger.TypeSale, date(2024, time.March, 3), 5000),
		),
	}

	rows := CustomerWiseSummary(ledgers, rng)

	require.Len(t, rows, 1)
	assert.Equal(t, "Ramesh", rows[0].CustomerName)
	assert.Equal(t, types.MinorUnits(1000), rows[0].TotalSales)
	assert.Equal(t, types.MinorUnits(400), rows[0].TotalPayments)
	assert.Equal(t, types.MinorUnits(600), rows[0].Balance)
}

func TestCustomerWiseSummary_SortsBySalesDescending(t *testing.T) {
	ledgers := []*CustomerLedger{
		customerLedger("Small", tx(ledger.TypeSale, date(2024, time.April, 3), 100)),
		customerLedger("Big", tx(ledger.TypeSale, date(2024, time.April, 3), 9000)),
		customerLedger("Mid", tx(ledger.TypeSale, date(2024, time.April, 3), 500)),
	}

	rows := CustomerWiseSummary(ledgers, DateRange{})

	require.Len(t, rows, 3)
	assert.Equal(t, "Big", rows[0].CustomerName)
	assert.Equal(t, "Mid", rows[1].CustomerName)
	assert.Equal(t, "Small", rows[2].CustomerName)
}

func TestAccountBalanceSummary_IgnoresNonPaymentTypes(t *testing.T) {
	cashID, bankID := id.New(), id.New()
	ledgers := []*AccountLedger{
		{
			AccountID:   cashID,
			AccountName: "Cash Drawer",
			Transactions: []*funds.AccountTransaction{
				funds.NewAccountTransaction(cashID, funds.TypePayment, date(2024, time.April, 4), 1200),
				funds.NewAccountTransaction(cashID, funds.TypePayment, date(2024, time.April, 8), 300),
				funds.NewAccountTransaction(cashID, funds.TypeExpense, date(2024, time.April, 9), -999),
				funds.NewAccountTransaction(cashID, funds.TypeAddFunds, date(2024, time.April, 10), 5000),
			},
		},
		{
			AccountID:   bankID,
			AccountName: "SBI Current",
			Transactions: []*funds.AccountTransaction{
				funds.NewAccountTransaction(bankID, funds.TypeTransferIn, date(2024, time.April, 5), 700),
			},
		},
	}

	rows := AccountBalanceSummary(ledgers, DateRange{})

	// The bank account has no payment rows, so it is dropped.
	require.Len(t, rows, 1)
	assert.Equal(t, "Cash Drawer", rows[0].AccountName)
	assert.Equal(t, types.MinorUnits(1500), rows[0].Collected)
}

func TestTransactionReport_NewestFirst(t *testing.T) {
	ledgers := []*CustomerLedger{
		customerLedger("Ramesh",
			tx(ledger.TypeSale, date(2024, time.April, 3), 1000),
			tx(ledger.TypePayment, date(2024, time.April, 20), -400),
		),
		customerLedger("Anita",
			tx(ledger.TypeSale, date(2024, time.April, 10), 600),
		),
	}

	rows := TransactionReport(ledgers, DateRange{})

	require.Len(t, rows, 3)
	assert.Equal(t, date(2024, time.April, 20), rows[0].Date)
	assert.Equal(t, date(2024, time.April, 10), rows[1].Date)
	assert.Equal(t, "Anita", rows[1].CustomerName)
	assert.Equal(t, date(2024, time.April, 3), rows[2].Date)
}

func TestTransactionReport_RangeFilter(t *testing.T) {
	rng := DateRange{From: date(2024, time.April, 1), To: date(2024, time.April, 30)}
	ledgers := []*CustomerLedger{
		customerLedger("Ramesh",
			tx(ledger.TypeSale, date(2024, time.March, 31), 100),
			tx(ledger.TypeSale, date(2024, time.April, 1), 200),
			tx(ledger.TypeSale, date(2024, time.April, 30), 300),
			tx(ledger.TypeSale, date(2024, time.May, 1), 400),
		),
	}

	rows := TransactionReport(ledgers, rng)

	require.Len(t, rows, 2)
	assert.Equal(t, types.MinorUnits(300), rows[0].Amount)
	assert.Equal(t, types.MinorUnits(200), rows[1].Amount)
}

func TestCustomerActivityData(t *testing.T) {
	now := date(2024, time.June, 1)
	ledgers := []*CustomerLedger{
		customerLedger("Dormant",
			tx(ledger.TypeSale, date(2024, time.January, 10), 100),
		),
		customerLedger("Fresh",
			tx(ledger.TypeSale, date(2024, time.May, 25), 500),
			tx(ledger.TypePayment, date(2024, time.May, 30), -200),
		),
		customerLedger("Never"),
	}

	rows := CustomerActivityData(ledgers, now)

	require.Len(t, rows, 3)

	assert.Equal(t, "Fresh", rows[0].CustomerName)
	assert.True(t, rows[0].IsActive)
	assert.Equal(t, 2, rows[0].DaysSince)
	assert.Equal(t, 2, rows[0].RecentCount)
	assert.Equal(t, 2, rows[0].TransactionCount)

	assert.Equal(t, "Dormant", rows[1].CustomerName)
	assert.False(t, rows[1].IsActive)
	assert.Equal(t, 143, rows[1].DaysSince)
	assert.Equal(t, 0, rows[1].RecentCount)

	// No transactions at all sorts last, with a nil last-transaction date.
	assert.Equal(t, "Never", rows[2].CustomerName)
	assert.Nil(t, rows[2].LastTransaction)
	assert.False(t, rows[2].IsActive)
	assert.Equal(t, 0, rows[2].TransactionCount)
}

func newSale(d time.Time, qty float64, price types.MinorUnits) *sale.Sale {
	s := sale.NewSale("Wheat", qty, price, d)
	s.RecalculateTotal()
	return s
}

func newPurchase(d time.Time, qty float64, price types.MinorUnits) *purchase.Purchase {
	p := purchase.NewPurchase("Mandi Traders", "Wheat", qty, price, d)
	p.RecalculateTotal()
	return p
}

func TestProfitLossData(t *testing.T) {
	sales := []*sale.Sale{
		newSale(date(2024, time.April, 3), 10, 120),
		newSale(date(2024, time.April, 9), 10, 140),
	}
	purchases := []*purchase.Purchase{
		newPurchase(date(2024, time.April, 1), 20, 100),
	}

	pl := ProfitLossData(sales, purchases, DateRange{})

	assert.Equal(t, 20.0, pl.TotalSalesBags)
	assert.Equal(t, 20.0, pl.TotalPurchaseBags)
	assert.Equal(t, types.MinorUnits(2600), pl.TotalRevenue)
	assert.Equal(t, types.MinorUnits(2000), pl.TotalCost)

	assert.True(t, pl.AvgSellingPrice.Equal(decimal.NewFromInt(130)), "avg selling %s", pl.AvgSellingPrice)
	assert.True(t, pl.AvgCostPrice.Equal(decimal.NewFromInt(100)), "avg cost %s", pl.AvgCostPrice)
	assert.True(t, pl.ProfitPerBag.Equal(decimal.NewFromInt(30)), "profit/bag %s", pl.ProfitPerBag)
	assert.True(t, pl.ProfitMarginPercent.Equal(decimal.NewFromInt(30)), "margin %s", pl.ProfitMarginPercent)
	assert.True(t, pl.TotalProfit.Equal(decimal.NewFromInt(600)), "total profit %s", pl.TotalProfit)
}

func TestProfitLossData_OriginalPriceOverridesCost(t *testing.T) {
	p := newPurchase(date(2024, time.April, 1), 10, 100)
	original := types.MinorUnits(90)
	p.OriginalPrice = &original

	pl := ProfitLossData(nil, []*purchase.Purchase{p}, DateRange{})

	assert.Equal(t, types.MinorUnits(900), pl.TotalCost)
	assert.True(t, pl.AvgCostPrice.Equal(decimal.NewFromInt(90)), "avg cost %s", pl.AvgCostPrice)
}

func TestProfitLossData_ZeroDivisionGuards(t *testing.T) {
	pl := ProfitLossData(nil, nil, DateRange{})

	assert.True(t, pl.AvgSellingPrice.IsZero())
	assert.True(t, pl.AvgCostPrice.IsZero())
	assert.True(t, pl.ProfitPerBag.IsZero())
	assert.True(t, pl.ProfitMarginPercent.IsZero())
	assert.True(t, pl.TotalProfit.IsZero())

	// Sales without purchases must not yield an infinite margin.
	pl = ProfitLossData([]*sale.Sale{newSale(date(2024, time.April, 3), 5, 100)}, nil, DateRange{})
	assert.True(t, pl.ProfitMarginPercent.IsZero())
	assert.True(t, pl.AvgSellingPrice.Equal(decimal.NewFromInt(100)))
}

func TestAggregators_Idempotent(t *testing.T) {
	ledgers := []*CustomerLedger{
		customerLedger("Ramesh",
			saleTx(date(2024, time.April, 3), 1000, "Wheat", 10),
			tx(ledger.TypePayment, date(2024, time.April, 15), -400),
		),
	}
	rng := DateRange{From: date(2024, time.April, 1), To: date(2024, time.April, 30)}

	assert.Equal(t, CustomerWiseSummary(ledgers, rng), CustomerWiseSummary(ledgers, rng))
	assert.Equal(t, MonthlyBusinessSummary(ledgers, rng), MonthlyBusinessSummary(ledgers, rng))
	assert.Equal(t, ItemReportByParty(ledgers, rng), ItemReportByParty(ledgers, rng))
	assert.Equal(t, TransactionReport(ledgers, rng), TransactionReport(ledgers, rng))
}
