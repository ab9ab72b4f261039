package pdf

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerbook/internal/core/id"
	"ledgerbook/internal/core/types"
	"ledgerbook/internal/domain/ledger"
)

func TestTruncate_KeepsMultiByteRunesIntact(t *testing.T) {
	// Devanagari text: every rune is three bytes, so byte slicing would cut
	// through the middle of a character.
	long := strings.Repeat("\u0915\u093e\u0924\u093e ", 20)

	got := truncate(long, 48)
	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, utf8.RuneCountInString(got), 48)
}

func TestTruncate_ShortStringUnchanged(t *testing.T) {
	assert.Equal(t, "Rice 10 bags", truncate("Rice 10 bags", 48))
}

func TestRender_ProducesPDF(t *testing.T) {
	customerID := id.New()
	notes := strings.Repeat("\u0930\u093e\u092e\u092a\u0941\u0930 ", 15)

	sale := ledger.NewTransaction(customerID, ledger.TypeSale,
		time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), types.MinorUnits(12000))
	sale.Notes = &notes
	payment := ledger.NewTransaction(customerID, ledger.TypePayment,
		time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC), types.MinorUnits(5000))

	stmt := ledger.BuildStatement([]*ledger.Transaction{sale, payment}, ledger.StatementOptions{})

	r := NewStatementRenderer("Test Traders")
	data, err := r.Render("Ramesh Traders", stmt)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data[:5]), "%PDF-"))
}
