package types

import "github.com/shopspring/decimal"

// Amount is an exact decimal money value.
type Amount struct {
	decimal.Decimal
}

// NewAmount returns an Amount holding the whole number n.
func NewAmount(n int64) Amount { return Amount{decimal.NewFromInt(n)} }

// ParseAmount parses a decimal string such as "100" or "12.50".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{d}, nil
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount { return Amount{a.Decimal.Sub(b.Decimal)} }

// Equal reports whether a and b hold the same value, ignoring scale.
func (a Amount) Equal(b Amount) bool { return a.Decimal.Equal(b.Decimal) }

// String returns the shortest decimal form, e.g. "90" or "2.5".
func (a Amount) String() string { return a.Decimal.String() }
