package growth

import "gonum.org/v1/gonum/floats"

// Allocation is one weighted entry of a distribution.
type Allocation struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Color ColorTag `json:"color"`
	Value Amount   `json:"value"`

	total float64 // unrounded sum of the set this allocation belongs to.
	raw   float64
}

// Share returns the allocation as a percent of its set total. It is NaN when
// the total is zero or undefined.
func (a Allocation) Share() Percent {
	return Percent(100 * a.raw / a.total)
}

// Distribution compares how a portfolio is spread at the start and at the end
// of the horizon.
type Distribution struct {
	Initial      []Allocation `json:"initial"`
	Final        []Allocation `json:"final"`
	InitialTotal Amount       `json:"initialTotal"`
	FinalTotal   Amount       `json:"finalTotal"`
}

// allocations builds one allocation per asset, weighted by value.
func allocations(assets []Asset, value func(Asset) float64) ([]Allocation, float64) {
	raws := make([]float64, len(assets))
	for i, a := range assets {
		raws[i] = value(a)
	}
	total := floats.Sum(raws)
	res := make([]Allocation, len(assets))
	for i, a := range assets {
		res[i] = Allocation{
			ID:    a.ID,
			Name:  a.Name,
			Color: a.Color,
			Value: A(raws[i]),
			total: total,
			raw:   raws[i],
		}
	}
	return res, total
}

// Distribution returns the initial allocation, weighted by principal, and
// the final one, weighted by the value at the horizon.
func (p *Portfolio) Distribution() Distribution {
	initial, initialTotal := allocations(p.assets, func(a Asset) float64 { return a.Principal })
	final, finalTotal := allocations(p.assets, func(a Asset) float64 { return a.FinalValue(p.params) })
	return Distribution{
		Initial:      initial,
		Final:        final,
		InitialTotal: A(initialTotal),
		FinalTotal:   A(finalTotal),
	}
}
