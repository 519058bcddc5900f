package growth

import "slices"

// Parameters is the calculation context shared by every asset of a
// portfolio.
type Parameters struct {
	Years                 float64     `json:"years"`
	CompoundingPeriodDays Compounding `json:"compoundingPeriodDays"`
}

// DefaultParameters is a five years horizon compounded yearly.
var DefaultParameters = Parameters{Years: 5, CompoundingPeriodDays: Yearly}

// Portfolio is an ordered collection of assets and the parameters used to
// project them.
//
// Asset ids are assigned from a monotonic counter and never reused, even after
// a removal. The zero value is not ready to use, see NewPortfolio.
type Portfolio struct {
	assets []Asset
	nextID int
	params Parameters
}

// NewPortfolio returns an empty portfolio.
func NewPortfolio(params Parameters) *Portfolio {
	return &Portfolio{nextID: 1, params: params}
}

// DefaultPortfolio returns a portfolio seeded with a sample set of holdings.
func DefaultPortfolio() *Portfolio {
	p := NewPortfolio(DefaultParameters)
	p.Add("USUAL", 220, 75)
	p.Add("BTC", 450, 25)
	p.Add("Pendle USDC", 200, 10)
	p.Add("ETH/USDT", 305, 5)
	p.Add("USDC syntetix", 380, 27)
	p.Add("Other", 63.35, 0)
	p.Add("rabby other", 108, 20)
	p.Add("USDC binance", 160, 10)
	return p
}

func (p *Portfolio) Parameters() Parameters          { return p.params }
func (p *Portfolio) SetParameters(params Parameters) { p.params = params }

// Len returns the number of assets.
func (p *Portfolio) Len() int { return len(p.assets) }

// NextID returns the id the next added asset will receive.
func (p *Portfolio) NextID() int { return p.nextID }

// Assets returns a copy of the assets in insertion order.
func (p *Portfolio) Assets() []Asset { return slices.Clone(p.assets) }

// Asset returns the asset with the given id.
func (p *Portfolio) Asset(id int) (Asset, bool) {
	i := slices.IndexFunc(p.assets, func(a Asset) bool { return a.ID == id })
	if i < 0 {
		return Asset{}, false
	}
	return p.assets[i], true
}

// Add appends a new asset and returns it.
//
// A name that is empty once trimmed is rejected: nothing changes, not even
// the id counter, and Add returns false.
func (p *Portfolio) Add(name string, principal float64, rate Rate) (Asset, bool) {
	if !validName(name) {
		return Asset{}, false
	}
	a := Asset{
		ID:        p.nextID,
		Name:      name,
		Principal: principal,
		Rate:      rate,
		Color:     colorOf(p.nextID),
	}
	p.nextID++
	p.assets = append(p.assets, a)
	return a, true
}

// Remove deletes the asset with the given id. It reports whether an asset was
// removed; an unknown id is not an error.
func (p *Portfolio) Remove(id int) bool {
	n := len(p.assets)
	p.assets = slices.DeleteFunc(p.assets, func(a Asset) bool { return a.ID == id })
	return len(p.assets) != n
}

// FinalValue returns the value of a at the portfolio horizon, rounded.
func (p *Portfolio) FinalValue(a Asset) Amount {
	return A(a.FinalValue(p.params))
}
