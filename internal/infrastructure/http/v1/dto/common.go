// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"time"

	"ledgerbook/internal/core/apperror"
	"ledgerbook/internal/core/id"
)

// dateLayout is the only accepted wire format for calendar dates.
const dateLayout = "2006-01-02"

// ParseDate parses a required "YYYY-MM-DD" value. Malformed input is a
// validation error, never silently coerced.
func ParseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, apperror.NewValidation("date is required").
			WithDetail("field", field)
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperror.NewValidation("invalid date, expected YYYY-MM-DD").
			WithDetail("field", field).
			WithDetail("value", value)
	}
	return d, nil
}

// ParseOptionalDate parses a "YYYY-MM-DD" value, returning a zero time for
// an empty input. Malformed input is still rejected.
func ParseOptionalDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return ParseDate(field, value)
}

// RangeQuery bounds a listing or report to an inclusive date range.
type RangeQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// Parse resolves the range bounds; zero times mean unbounded.
func (q RangeQuery) Parse() (from, to time.Time, err error) {
	if from, err = ParseOptionalDate("from", q.From); err != nil {
		return
	}
	to, err = ParseOptionalDate("to", q.To)
	return
}

// --- List Response ---

// ListResponse wraps list results with pagination.
type ListResponse struct {
	Items      any   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// --- ID Response ---

// IDResponse for create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// NewIDResponse creates ID response.
func NewIDResponse(i id.ID) IDResponse {
	return IDResponse{ID: i.String()}
}

// --- Success Response ---

// SuccessResponse for operations without data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// --- Error Response ---

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// --- Deletion ---

type SetDeletionMarkRequest struct {
	Marked bool `json:"marked"`
}
