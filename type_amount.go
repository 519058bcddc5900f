package growth

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value as reported by the engine.
//
// An Amount is either defined, and then rounded to 2 decimals, or undefined
// when the computation that produced it had no real result. The zero value is
// a defined zero.
type Amount struct {
	value     decimal.Decimal
	undefined bool
}

// A builds an Amount from a float computed at full precision. NaN and
// infinite values yield the undefined Amount.
//
// Rounding applies to the exact binary value of v, halves away from zero, so
// 1.005 (stored as 1.00499999...) gives 1.00 and 0.125 gives 0.13.
func A(v float64) Amount {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Undefined()
	}
	exact := new(big.Rat).SetFloat64(v)
	return Amount{value: decimal.RequireFromString(exact.FloatString(2))}
}

// Undefined returns the undefined Amount.
func Undefined() Amount { return Amount{undefined: true} }

func (a Amount) IsDefined() bool { return !a.undefined }

// Float64 returns the rounded value, or NaN when a is undefined.
func (a Amount) Float64() float64 {
	if a.undefined {
		return math.NaN()
	}
	return a.value.InexactFloat64()
}

// Equal reports whether both amounts are undefined or hold the same value.
func (a Amount) Equal(b Amount) bool {
	if a.undefined || b.undefined {
		return a.undefined == b.undefined
	}
	return a.value.Equal(b.value)
}

// Add returns a+b. An undefined operand makes the sum undefined.
func (a Amount) Add(b Amount) Amount {
	if a.undefined || b.undefined {
		return Undefined()
	}
	return Amount{value: a.value.Add(b.value)}
}

// Sub returns a-b. An undefined operand makes the difference undefined.
func (a Amount) Sub(b Amount) Amount {
	if a.undefined || b.undefined {
		return Undefined()
	}
	return Amount{value: a.value.Sub(b.value)}
}

// String returns the value with exactly 2 decimals, or "-" when undefined.
func (a Amount) String() string {
	if a.undefined {
		return "-"
	}
	return a.value.StringFixed(2)
}

// MarshalJSON writes a defined amount as a number with 2 decimals and an
// undefined one as null.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.undefined {
		return []byte("null"), nil
	}
	return []byte(a.value.StringFixed(2)), nil
}

// UnmarshalJSON accepts a number or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = Undefined()
		return nil
	}
	a.undefined = false
	if err := a.value.UnmarshalJSON(data); err != nil {
		return err
	}
	a.value = a.value.Round(2)
	return nil
}
