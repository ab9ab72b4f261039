package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   MinorUnits
		want string
	}{
		{0, "0"},
		{500, "500"},
		{1200, "1,200"},
		{75000, "75,000"},
		{100000, "1,00,000"},
		{1234567, "12,34,567"},
		{12345678, "1,23,45,678"},
		{-75000, "-75,000"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, FormatINR(c.in), "FormatINR(%d)", c.in)
	}
}

func TestSignOf(t *testing.T) {
	assert.Equal(t, Debit, SignOf(0))
	assert.Equal(t, Debit, SignOf(1200))
	assert.Equal(t, Credit, SignOf(-300))
}

func TestFormatBalance(t *testing.T) {
	assert.Equal(t, "1,200 Dr", FormatBalance(1200))
	assert.Equal(t, "300 Cr", FormatBalance(-300))
	assert.Equal(t, "0 Dr", FormatBalance(0))
}
