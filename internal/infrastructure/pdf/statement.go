// Package pdf renders customer statements as printable A4 documents.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"ledgerbook/internal/core/types"
	"ledgerbook/internal/domain/ledger"
)

// Column widths in mm for the statement table (A4 portrait, 10mm margins).
var colWidths = [5]float64{24, 76, 30, 30, 30}

var colTitles = [5]string{"Date", "Details", "Debit (-)", "Credit (+)", "Balance"}

// StatementRenderer renders a month-grouped statement to PDF.
type StatementRenderer struct {
	businessName string
}

// NewStatementRenderer creates a renderer with the business name printed in
// the document header.
func NewStatementRenderer(businessName string) *StatementRenderer {
	return &StatementRenderer{businessName: businessName}
}

// Render produces the PDF bytes for a customer statement.
func (r *StatementRenderer) Render(customerName string, stmt *ledger.Statement) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(10, 10, 10)
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	r.header(doc, customerName, stmt)
	r.summary(doc, stmt)
	r.table(doc, stmt)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render statement pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *StatementRenderer) header(doc *fpdf.Fpdf, customerName string, stmt *ledger.Statement) {
	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 9, r.businessName, "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 6, "Account Statement", "", 1, "C", false, 0, "")

	doc.Ln(2)
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 7, customerName, "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(0, 5, "Period: "+periodLabel(stmt), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 5, "Generated: "+time.Now().Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	doc.Ln(2)
}

func (r *StatementRenderer) summary(doc *fpdf.Fpdf, stmt *ledger.Statement) {
	doc.SetFillColor(240, 240, 240)
	doc.SetFont("Helvetica", "B", 10)

	w := 47.5
	doc.CellFormat(w, 8, "Opening: "+types.FormatBalance(stmt.OpeningBalance), "1", 0, "C", true, 0, "")
	doc.CellFormat(w, 8, "Total Debit: "+types.FormatINR(stmt.TotalDebit), "1", 0, "C", true, 0, "")
	doc.CellFormat(w, 8, "Total Credit: "+types.FormatINR(stmt.TotalCredit), "1", 0, "C", true, 0, "")
	doc.CellFormat(w, 8, "Net Balance: "+types.FormatBalance(stmt.NetBalance), "1", 1, "C", true, 0, "")
	doc.Ln(3)
}

func (r *StatementRenderer) table(doc *fpdf.Fpdf, stmt *ledger.Statement) {
	r.tableHead(doc)

	// Opening balance row
	doc.SetFont("Helvetica", "I", 9)
	doc.CellFormat(colWidths[0], 6, "", "1", 0, "L", false, 0, "")
	doc.CellFormat(colWidths[1], 6, "Opening balance", "1", 0, "L", false, 0, "")
	doc.CellFormat(colWidths[2], 6, "", "1", 0, "R", false, 0, "")
	doc.CellFormat(colWidths[3], 6, "", "1", 0, "R", false, 0, "")
	doc.CellFormat(colWidths[4], 6, types.FormatBalance(stmt.OpeningBalance), "1", 1, "R", false, 0, "")

	for _, month := range stmt.Months {
		r.monthHeader(doc, month.Label)

		fill := false
		for _, row := range month.Rows {
			if doc.GetY() > 270 {
				doc.AddPage()
				r.tableHead(doc)
			}
			r.bodyRow(doc, row, fill)
			fill = !fill
		}

		r.monthTotals(doc, month)
	}
}

func (r *StatementRenderer) tableHead(doc *fpdf.Fpdf) {
	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(50, 50, 50)
	doc.SetTextColor(255, 255, 255)
	for i, title := range colTitles {
		last := 0
		if i == len(colTitles)-1 {
			last = 1
		}
		doc.CellFormat(colWidths[i], 7, title, "1", last, "C", true, 0, "")
	}
	doc.SetTextColor(0, 0, 0)
}

func (r *StatementRenderer) monthHeader(doc *fpdf.Fpdf, label string) {
	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(220, 220, 220)
	doc.CellFormat(sumWidths(), 6, label, "1", 1, "L", true, 0, "")
}

func (r *StatementRenderer) bodyRow(doc *fpdf.Fpdf, row ledger.StatementRow, fill bool) {
	doc.SetFont("Helvetica", "", 9)
	doc.SetFillColor(248, 248, 248)

	debit, credit := "", ""
	if !row.Debit.IsZero() {
		debit = types.FormatINR(row.Debit)
	}
	if !row.Credit.IsZero() {
		credit = types.FormatINR(row.Credit)
	}

	doc.CellFormat(colWidths[0], 6, row.Date.Format("02-01-2006"), "1", 0, "L", fill, 0, "")
	doc.CellFormat(colWidths[1], 6, truncate(row.Details, 48), "1", 0, "L", fill, 0, "")
	doc.CellFormat(colWidths[2], 6, debit, "1", 0, "R", fill, 0, "")
	doc.CellFormat(colWidths[3], 6, credit, "1", 0, "R", fill, 0, "")
	doc.CellFormat(colWidths[4], 6, types.FormatBalance(row.Balance), "1", 1, "R", fill, 0, "")
}

func (r *StatementRenderer) monthTotals(doc *fpdf.Fpdf, month ledger.MonthGroup) {
	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(235, 235, 235)
	doc.CellFormat(colWidths[0]+colWidths[1], 6, "Total for "+month.Label, "1", 0, "R", true, 0, "")
	doc.CellFormat(colWidths[2], 6, types.FormatINR(month.DebitTotal), "1", 0, "R", true, 0, "")
	doc.CellFormat(colWidths[3], 6, types.FormatINR(month.CreditTotal), "1", 0, "R", true, 0, "")
	doc.CellFormat(colWidths[4], 6, "", "1", 1, "R", true, 0, "")
}

func periodLabel(stmt *ledger.Statement) string {
	const layout = "02 Jan 2006"
	switch {
	case stmt.From.IsZero() && stmt.To.IsZero():
		return "All time"
	case stmt.From.IsZero():
		return "Up to " + stmt.To.Format(layout)
	case stmt.To.IsZero():
		return "From " + stmt.From.Format(layout)
	default:
		return stmt.From.Format(layout) + " to " + stmt.To.Format(layout)
	}
}

func sumWidths() float64 {
	var total float64
	for _, w := range colWidths {
		total += w
	}
	return total
}

// truncate shortens s to at most max runes, never splitting a multi-byte
// character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
