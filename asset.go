package growth

import "strings"

// ColorTag is an opaque display attribute of an asset. It plays no role in
// any computation.
type ColorTag string

// Palette is the fixed set of colour tags assigned to assets in creation
// order.
var Palette = []ColorTag{"#8884d8", "#82ca9d", "#ffc658", "#ff8042", "#0088FE", "#00C49F", "#FFBB28", "#FF8042", "#a4de6c"}

// colorOf returns the palette entry for a given asset id.
func colorOf(id int) ColorTag {
	n := len(Palette)
	return Palette[((id-1)%n+n)%n]
}

// Asset is one holding of a portfolio.
//
// Assets are immutable: changing the principal or the rate of a holding means
// removing it and adding a new one.
type Asset struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Principal float64  `json:"principal"`
	Rate      Rate     `json:"rate"`
	Color     ColorTag `json:"color"`
}

// Projection returns the projection of the asset under the given parameters.
func (a Asset) Projection(params Parameters) Projection {
	return Projection{
		Principal:             a.Principal,
		Rate:                  a.Rate,
		Years:                 params.Years,
		CompoundingPeriodDays: params.CompoundingPeriodDays,
	}
}

// ValueAt returns the asset value after t years using the compounding rule of
// params. It is not rounded.
func (a Asset) ValueAt(params Parameters, t float64) float64 {
	return CompoundInterest(a.Principal, a.Rate, t, params.CompoundingPeriodDays)
}

// FinalValue returns the asset value at the horizon of params. It is not
// rounded.
func (a Asset) FinalValue(params Parameters) float64 {
	return a.ValueAt(params, params.Years)
}

// validName reports whether name can label an asset.
func validName(name string) bool { return strings.TrimSpace(name) != "" }
