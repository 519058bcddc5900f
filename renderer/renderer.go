// Package renderer turns growth projections into markdown reports.
package renderer

import (
	"fmt"
	"math"
	"strconv"

	"github.com/etnz/growth"
)

// years formats a duration in years, without useless decimals.
func years(y float64) string {
	s := strconv.FormatFloat(y, 'f', -1, 64)
	if y == 1 {
		return s + " year"
	}
	return s + " years"
}

// compounding describes the compounding rule in plain words.
func compounding(c growth.Compounding) string {
	if !c.IsCompounding() {
		return "No compounding: simple interest over the whole horizon."
	}
	return fmt.Sprintf("Compounding every %d days (%s times a year).", c, strconv.FormatFloat(c.CompoundsPerYear(), 'f', -1, 64))
}

// rate formats a rate, undefined rates are rendered as "-".
func rate(r growth.Rate) string {
	if math.IsNaN(float64(r)) {
		return "-"
	}
	return r.String()
}
