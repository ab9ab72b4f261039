// Package types provides common type aliases and monetary utilities.
package types

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MinorUnits represents a monetary value in whole rupees.
// The business records amounts without paise, so the "minor unit" here is one rupee.
// Storage: int64 - sufficient for any realistic turnover.
type MinorUnits int64

func (m MinorUnits) IsZero() bool     { return m == 0 }
func (m MinorUnits) IsPositive() bool { return m > 0 }
func (m MinorUnits) IsNegative() bool { return m < 0 }
func (m MinorUnits) Neg() MinorUnits  { return -m }

func (m MinorUnits) Abs() MinorUnits {
	if m < 0 {
		return -m
	}
	return m
}

// Decimal converts the amount to a decimal.Decimal for precise arithmetic
// (per-bag averages, margin percentages).
func (m MinorUnits) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(m))
}

// BalanceSign is the display label for a running or net balance.
// Non-negative balances are owed by the customer (Dr), negative balances are
// owed to the customer (Cr).
type BalanceSign string

const (
	Debit  BalanceSign = "Dr"
	Credit BalanceSign = "Cr"
)

// SignOf returns the display sign for a balance value.
func SignOf(m MinorUnits) BalanceSign {
	if m < 0 {
		return Credit
	}
	return Debit
}

// FormatINR renders an amount with en-IN digit grouping and no fractional
// digits: 1234567 -> "12,34,567". Negative values keep a leading minus.
func FormatINR(m MinorUnits) string {
	v := int64(m)
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatInt(v, 10)
	if len(s) > 3 {
		// Last group of three, then groups of two (lakh/crore system).
		head := s[:len(s)-3]
		tail := s[len(s)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		s = strings.Join(append(groups, tail), ",")
	}

	if neg {
		return "-" + s
	}
	return s
}

// FormatBalance renders a balance as absolute amount plus Dr/Cr suffix,
// e.g. -300 -> "300 Cr", 1200 -> "1,200 Dr".
func FormatBalance(m MinorUnits) string {
	return FormatINR(m.Abs()) + " " + string(SignOf(m))
}
