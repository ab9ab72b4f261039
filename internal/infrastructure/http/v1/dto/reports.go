package dto

import (
	"ledgerbook/internal/domain/reports"
)

// ReportRangeRequest bounds a report to an inclusive date range.
type ReportRangeRequest struct {
	RangeQuery
}

// ToDateRange resolves the range bounds into a domain range.
func (r ReportRangeRequest) ToDateRange() (reports.DateRange, error) {
	from, to, err := r.Parse()
	if err != nil {
		return reports.DateRange{}, err
	}
	return reports.DateRange{From: from, To: to}, nil
}

// ReportResponse wraps report rows with their row count and the echoed range.
// Row types carry their own JSON shape; this wrapper only adds envelope
// fields common to every report.
type ReportResponse struct {
	Rows     any    `json:"rows"`
	RowCount int    `json:"rowCount"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
}

// NewReportResponse builds the report envelope.
func NewReportResponse(rows any, count int, rng reports.DateRange) ReportResponse {
	resp := ReportResponse{Rows: rows, RowCount: count}
	if !rng.From.IsZero() {
		resp.From = rng.From.Format(dateLayout)
	}
	if !rng.To.IsZero() {
		resp.To = rng.To.Format(dateLayout)
	}
	return resp
}
