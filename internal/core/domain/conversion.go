package domain

import "github.com/shopspring/decimal"

// Conversion is the outcome of converting an amount between two currencies
// through one provider's published rates.
type Conversion struct {
	ConvertedAmount decimal.Decimal // Rounded to 2 decimal places
	ExchangeRate    decimal.Decimal // Full precision; rounded only for display
	Path            []string        // Ordered currency abbreviations of the hop sequence
}

// Identity reports whether no real conversion happened (same currency on both
// ends, single-element path).
func (c Conversion) Identity() bool {
	return len(c.Path) == 1
}
