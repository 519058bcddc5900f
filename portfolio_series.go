package growth

import (
	"encoding/json"

	"gonum.org/v1/gonum/floats"
)

// AssetValue is the value of one asset in a PortfolioPoint.
type AssetValue struct {
	ID    int
	Name  string
	Value Amount
}

// PortfolioPoint is the value of every asset after a whole number of years.
type PortfolioPoint struct {
	Year   int
	Values []AssetValue // in portfolio order
	Total  Amount
}

// Value returns the value of the first asset named name.
func (pt PortfolioPoint) Value(name string) (Amount, bool) {
	for _, v := range pt.Values {
		if v.Name == name {
			return v.Value, true
		}
	}
	return Amount{}, false
}

// MarshalJSON writes the point as a flat object keyed by asset names, in
// portfolio order, between "year" and "total".
func (pt PortfolioPoint) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("year", pt.Year)
	for _, v := range pt.Values {
		w.Append(v.Name, v.Value)
	}
	w.Append("total", pt.Total)
	return w.MarshalJSON()
}

var _ json.Marshaler = PortfolioPoint{}

// YearlySeries returns one point per whole year, from year 0 to the last
// whole year within the horizon. A fractional horizon gets no sample for its
// last partial year.
func (p *Portfolio) YearlySeries() []PortfolioPoint {
	var series []PortfolioPoint
	raws := make([]float64, len(p.assets))
	for y := 0; float64(y) <= p.params.Years; y++ {
		pt := PortfolioPoint{Year: y, Values: make([]AssetValue, len(p.assets))}
		for i, a := range p.assets {
			raws[i] = a.ValueAt(p.params, float64(y))
			pt.Values[i] = AssetValue{ID: a.ID, Name: a.Name, Value: A(raws[i])}
		}
		pt.Total = A(floats.Sum(raws))
		series = append(series, pt)
	}
	return series
}
