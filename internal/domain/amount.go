package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Amount is an exact decimal monetary value with an explicit unset state.
// Unset is distinct from zero: a schedule column that was never computed is
// unset, a fully repaid bucket is zero. The zero value of Amount is unset.
type Amount struct {
	value decimal.Decimal
	set   bool
}

// NewAmount creates a set Amount from a decimal.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{value: d, set: true}
}

// AmountFromString parses a set Amount from its decimal string form.
func AmountFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}

	return Amount{value: d, set: true}, nil
}

// AmountFromInt creates a set Amount from an integer number of currency units.
func AmountFromInt(i int64) Amount {
	return Amount{value: decimal.NewFromInt(i), set: true}
}

// ZeroAmount returns a set Amount of exactly zero.
func ZeroAmount() Amount {
	return Amount{value: decimal.Zero, set: true}
}

// IsSet reports whether the amount holds a concrete value.
func (a Amount) IsSet() bool {
	return a.set
}

// Decimal returns the underlying decimal value. It is zero when the amount
// is unset; callers that must distinguish check IsSet first.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Add returns a + b. If either operand is unset the result is unset.
func (a Amount) Add(b Amount) Amount {
	if !a.set || !b.set {
		return Amount{}
	}

	return Amount{value: a.value.Add(b.value), set: true}
}

// Sub returns a - b. If either operand is unset the result is unset.
func (a Amount) Sub(b Amount) Amount {
	if !a.set || !b.set {
		return Amount{}
	}

	return Amount{value: a.value.Sub(b.value), set: true}
}

// Cmp three-way compares two amounts: -1 if a < b, 0 if equal, 1 if a > b.
// Comparing an unset amount is a caller error and returns ErrAmountUnset.
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.set || !b.set {
		return 0, ErrAmountUnset
	}

	return a.value.Cmp(b.value), nil
}

// Equal reports whether both amounts are set and numerically equal.
func (a Amount) Equal(b Amount) bool {
	return a.set && b.set && a.value.Equal(b.value)
}

// IsZero reports whether the amount is set and exactly zero.
func (a Amount) IsZero() bool {
	return a.set && a.value.IsZero()
}

// IsNegative reports whether the amount is set and below zero.
func (a Amount) IsNegative() bool {
	return a.set && a.value.IsNegative()
}

// IsPositive reports whether the amount is set and above zero.
func (a Amount) IsPositive() bool {
	return a.set && a.value.IsPositive()
}

// String renders the decimal value, or "unset".
func (a Amount) String() string {
	if !a.set {
		return "unset"
	}

	return a.value.String()
}

// MarshalJSON encodes unset as null and set values as decimal strings.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.set {
		return []byte("null"), nil
	}

	return json.Marshal(a.value.String())
}

// UnmarshalJSON decodes null as unset and accepts decimal strings or numbers.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = Amount{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Not a string, try a bare JSON number.
		d, numErr := decimal.NewFromString(string(data))
		if numErr != nil {
			return err
		}

		*a = Amount{value: d, set: true}

		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}

	*a = Amount{value: d, set: true}

	return nil
}
