package growth

import "strconv"

// Rate is an annual interest rate expressed as a percentage: 5 means 5%.
// A negative rate models depreciation.
type Rate float64

// Fraction returns the rate as a fraction, 5% is 0.05.
func (r Rate) Fraction() float64 { return float64(r) / 100 }

// String returns the shortest representation of the rate followed by "%".
func (r Rate) String() string {
	return strconv.FormatFloat(float64(r), 'f', -1, 64) + "%"
}
