package reports

import (
	"bytes"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"ledgerbook/internal/core/types"
	"ledgerbook/internal/domain/documents/purchase"
	"ledgerbook/internal/domain/documents/sale"
	"ledgerbook/internal/domain/ledger"
	"ledgerbook/internal/domain/registers/funds"
)

// activityWindow is the lookback used to classify a customer as active.
const activityWindow = 30 * 24 * time.Hour

// ItemReportByParty groups sale transactions by customer and product,
// summing quantity and amount. Rows come out sorted by customer name,
// then product.
func ItemReportByParty(ledgers []*CustomerLedger, rng DateRange) []PartyItemRow {
	type key struct {
		customer string
		product  string
	}
	acc := make(map[key]*PartyItemRow)
	for _, cl := range ledgers {
		for _, t := range cl.Transactions {
			if !t.IsSale() || !rng.Contains(t.EntryDate) {
				continue
			}
			k := key{customer: cl.CustomerName, product: t.Product()}
			row, ok := acc[k]
			if !ok {
				row = &PartyItemRow{CustomerName: cl.CustomerName, Product: t.Product()}
				acc[k] = row
			}
			row.Quantity += t.Quantity()
			row.Amount += t.Amount
		}
	}

	rows := make([]PartyItemRow, 0, len(acc))
	for _, row := range acc {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CustomerName != rows[j].CustomerName {
			return rows[i].CustomerName < rows[j].CustomerName
		}
		return rows[i].Product < rows[j].Product
	})
	return rows
}

// ItemSaleSummary sums sale quantities per product, sorted by product name.
func ItemSaleSummary(ledgers []*CustomerLedger, rng DateRange) []ItemSummaryRow {
	acc := make(map[string]float64)
	for _, cl := range ledgers {
		for _, t := range cl.Transactions {
			if !t.IsSale() || !rng.Contains(t.EntryDate) {
				continue
			}
			acc[t.Product()] += t.Quantity()
		}
	}

	rows := make([]ItemSummaryRow, 0, len(acc))
	for product, qty := range acc {
		rows = append(rows, ItemSummaryRow{Product: product, Quantity: qty})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Product < rows[j].Product })
	return rows
}

// MonthlyBusinessSummary buckets transactions by calendar month. Sale amounts
// accumulate as sales; payment magnitudes accumulate as collections.
// Months come out in chronological order.
func MonthlyBusinessSummary(ledgers []*CustomerLedger, rng DateRange) []MonthlySummaryRow {
	acc := make(map[string]*MonthlySummaryRow)
	for _, cl := range ledgers {
		for _, t := range cl.Transactions {
			if !rng.Contains(t.EntryDate) {
				continue
			}
			month := t.EntryDate.Format("2006-01")
			row, ok := acc[month]
			if !ok {
				row = &MonthlySummaryRow{Month: month}
				acc[month] = row
			}
			switch t.Type {
			case ledger.TypeSale:
				row.Sales += t.Amount
			case ledger.TypePayment:
				row.Collections += t.Amount.Abs()
			}
		}
	}

	rows := make([]MonthlySummaryRow, 0, len(acc))
	for _, row := range acc {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })
	return rows
}

// CustomerWiseSummary computes per-customer sale and payment totals and the
// resulting balance. Customers with no activity inside the range are dropped.
// Rows come out sorted by total sales descending, name ascending on ties.
func CustomerWiseSummary(ledgers []*CustomerLedger, rng DateRange) []CustomerSummaryRow {
	rows := make([]CustomerSummaryRow, 0, len(ledgers))
	for _, cl := range ledgers {
		row := CustomerSummaryRow{CustomerID: cl.CustomerID, CustomerName: cl.CustomerName}
		for _, t := range cl.Transactions {
			if !rng.Contains(t.EntryDate) {
				continue
			}
			switch t.Type {
			case ledger.TypeSale:
				row.TotalSales += t.Amount
			case ledger.TypePayment:
				row.TotalPayments += t.Amount.Abs()
			}
		}
		if row.TotalSales.IsZero() && row.TotalPayments.IsZero() {
			continue
		}
		row.Balance = row.TotalSales - row.TotalPayments
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalSales != rows[j].TotalSales {
			return rows[i].TotalSales > rows[j].TotalSales
		}
		return rows[i].CustomerName < rows[j].CustomerName
	})
	return rows
}

// AccountBalanceSummary sums payment magnitudes per account. Rows with a
// type other than payment are skipped even when they fall inside the range.
// Zero-total accounts are dropped; rows come out sorted by amount descending.
func AccountBalanceSummary(ledgers []*AccountLedger, rng DateRange) []AccountBalanceRow {
	rows := make([]AccountBalanceRow, 0, len(ledgers))
	for _, al := range ledgers {
		row := AccountBalanceRow{AccountID: al.AccountID, AccountName: al.AccountName}
		for _, t := range al.Transactions {
			if t.Type != funds.TypePayment || !rng.Contains(t.EntryDate) {
				continue
			}
			row.Collected += t.Amount.Abs()
		}
		if row.Collected.IsZero() {
			continue
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Collected != rows[j].Collected {
			return rows[i].Collected > rows[j].Collected
		}
		return rows[i].AccountName < rows[j].AccountName
	})
	return rows
}

// TransactionReport flattens every customer transaction inside the range into
// one list with the customer name attached, newest first.
func TransactionReport(ledgers []*CustomerLedger, rng DateRange) []TransactionRow {
	var rows []TransactionRow
	for _, cl := range ledgers {
		for _, t := range cl.Transactions {
			if !rng.Contains(t.EntryDate) {
				continue
			}
			var details string
			if t.Notes != nil {
				details = *t.Notes
			}
			rows = append(rows, TransactionRow{
				TransactionID: t.ID,
				CustomerName:  cl.CustomerName,
				Type:          t.Type,
				Date:          t.EntryDate,
				Amount:        t.Amount,
				Details:       details,
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.After(rows[j].Date)
		}
		return bytes.Compare(rows[i].TransactionID[:], rows[j].TransactionID[:]) > 0
	})
	return rows
}

// CustomerActivityData reports recency per customer relative to now. Active
// customers sort first by ascending days-since; customers with no
// transactions at all sort last.
func CustomerActivityData(ledgers []*CustomerLedger, now time.Time) []CustomerActivityRow {
	rows := make([]CustomerActivityRow, 0, len(ledgers))
	cutoff := now.Add(-activityWindow)
	for _, cl := range ledgers {
		row := CustomerActivityRow{CustomerID: cl.CustomerID, CustomerName: cl.CustomerName}
		var last time.Time
		for _, t := range cl.Transactions {
			row.TransactionCount++
			if t.EntryDate.After(last) {
				last = t.EntryDate
			}
			if !t.EntryDate.Before(cutoff) {
				row.RecentCount++
			}
		}
		if !last.IsZero() {
			lastCopy := last
			row.LastTransaction = &lastCopy
			row.DaysSince = int(now.Sub(last) / (24 * time.Hour))
			row.IsActive = row.RecentCount > 0
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		ri, rj := rows[i], rows[j]
		if (ri.LastTransaction == nil) != (rj.LastTransaction == nil) {
			return rj.LastTransaction == nil
		}
		if ri.IsActive != rj.IsActive {
			return ri.IsActive
		}
		if ri.DaysSince != rj.DaysSince {
			return ri.DaysSince < rj.DaysSince
		}
		return ri.CustomerName < rj.CustomerName
	})
	return rows
}

// ProfitLossData derives average prices, per-bag profit and margin from
// sales and purchases, each filtered by the range independently. Every
// division is guarded: empty inputs yield zeros, never NaN or infinity.
func ProfitLossData(sales []*sale.Sale, purchases []*purchase.Purchase, rng DateRange) ProfitLoss {
	var out ProfitLoss

	for _, s := range sales {
		if !rng.Contains(s.SaleDate) {
			continue
		}
		out.TotalSalesBags += s.Quantity
		out.TotalRevenue += s.TotalAmount
	}
	revenue := out.TotalRevenue.Decimal()

	var cost decimal.Decimal
	for _, p := range purchases {
		if !rng.Contains(p.PurchaseDate) {
			continue
		}
		out.TotalPurchaseBags += p.Quantity
		lineCost := p.CostBasis().Decimal().Mul(decimal.NewFromFloat(p.Quantity))
		cost = cost.Add(lineCost)
	}
	out.TotalCost = types.MinorUnits(cost.Round(0).IntPart())

	salesBags := decimal.NewFromFloat(out.TotalSalesBags)
	purchaseBags := decimal.NewFromFloat(out.TotalPurchaseBags)

	if !salesBags.IsZero() {
		out.AvgSellingPrice = revenue.Div(salesBags)
	}
	if !purchaseBags.IsZero() {
		out.AvgCostPrice = cost.Div(purchaseBags)
	}
	out.ProfitPerBag = out.AvgSellingPrice.Sub(out.AvgCostPrice)
	if !out.AvgCostPrice.IsZero() {
		out.ProfitMarginPercent = out.ProfitPerBag.Div(out.AvgCostPrice).Mul(decimal.NewFromInt(100))
	}
	out.TotalProfit = salesBags.Mul(out.ProfitPerBag)
	return out
}
