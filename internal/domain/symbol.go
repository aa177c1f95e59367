package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrZeroCostPrice is returned by PercentChange when the cost basis is zero.
// Callers skip the offending line item rather than aborting the cycle.
var ErrZeroCostPrice = errors.New("cost price is zero")

// index and derivative names that show up in screener tables and holdings
// exports but are not tradable equities
var nonEquitySymbols = map[string]struct{}{
	"NIFTY":      {},
	"NIFTY50":    {},
	"BANKNIFTY":  {},
	"FINNIFTY":   {},
	"MIDCPNIFTY": {},
	"INDIAVIX":   {},
	"SENSEX":     {},
}

// CleanSymbol returns the canonical form of a raw ticker: upper-cased, with
// whitespace, currency markers, the exchange prefix and series suffixes
// stripped. It is idempotent, so already-clean symbols pass through unchanged.
func CleanSymbol(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "$", "")
	if i := strings.Index(s, ":"); i >= 0 {
		s = s[i+1:]
	}
	for _, suffix := range []string{"-EQ", "-BE"} {
		s = strings.TrimSuffix(s, suffix)
	}
	return strings.TrimSpace(s)
}

// IsValidSymbol reports whether the raw ticker canonicalizes to a tradable
// equity symbol.
func IsValidSymbol(raw string) bool {
	s := CleanSymbol(raw)
	if s == "" {
		return false
	}
	if _, ok := nonEquitySymbols[s]; ok {
		return false
	}
	return true
}

// RoundTwo rounds to two decimal places, half away from zero. Applied to
// every price and P/L figure before storage so threshold comparisons are
// stable.
func RoundTwo(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PercentChange returns (last - cost) / cost * 100 rounded to two places.
func PercentChange(cost, last decimal.Decimal) (decimal.Decimal, error) {
	if cost.IsZero() {
		return decimal.Zero, ErrZeroCostPrice
	}
	return RoundTwo(last.Sub(cost).Div(cost).Mul(decimal.NewFromInt(100))), nil
}
