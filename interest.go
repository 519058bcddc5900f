package growth

import "math"

// DaysPerYear is the number of days used to turn a compounding period into a
// number of compounds per year.
const DaysPerYear = 365

// Compounding is the number of days between two compounding events.
// Zero, or any negative value, means no compounding at all: the simple
// interest formula applies to the whole horizon.
type Compounding int

const (
	NoCompounding Compounding = 0
	Daily         Compounding = 1
	Weekly        Compounding = 7
	Monthly       Compounding = 30
	Quarterly     Compounding = 91
	Yearly        Compounding = 365
)

// IsCompounding reports whether c compounds at all.
func (c Compounding) IsCompounding() bool { return c > 0 }

// CompoundsPerYear returns 365/c. It is a real number, not necessarily an
// integer, and is only meaningful when c compounds.
func (c Compounding) CompoundsPerYear() float64 {
	return DaysPerYear / float64(c)
}

// SimpleInterest returns the value of principal p after t years at the
// annual rate r, with interest computed on the principal only.
func SimpleInterest(p float64, r Rate, t float64) float64 {
	return p * (1 + r.Fraction()*t)
}

// CompoundInterest returns the value of principal p after t years at the
// annual rate r, compounded every 'days' days.
//
// A non compounding period falls back to SimpleInterest. When the periodic
// growth factor is negative and the exponent fractional, the result is NaN.
func CompoundInterest(p float64, r Rate, t float64, days Compounding) float64 {
	if !days.IsCompounding() {
		return SimpleInterest(p, r, t)
	}
	n := days.CompoundsPerYear()
	return p * math.Pow(1+r.Fraction()/n, n*t)
}
