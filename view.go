package growth

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// AssetRow is an asset together with its value at the horizon.
type AssetRow struct {
	Asset
	FinalValue Amount `json:"finalValue"`
}

// PortfolioView is everything a host needs to display a portfolio. It is
// derived from the portfolio state and holds no reference to it.
type PortfolioView struct {
	Parameters      Parameters       `json:"parameters"`
	Sort            string           `json:"sort"`
	Assets          []AssetRow       `json:"assets"`
	Series          []PortfolioPoint `json:"series"`
	Distribution    Distribution     `json:"distribution"`
	TotalInvestment Amount           `json:"totalInvestment"`
	TotalFinalValue Amount           `json:"totalFinalValue"`
	// WeightedRate is the average rate weighted by principal. It is NaN for
	// a portfolio without principal.
	WeightedRate Rate `json:"-"`
}

// Gain returns the total final value minus the total investment.
func (v PortfolioView) Gain() Amount {
	return v.TotalFinalValue.Sub(v.TotalInvestment)
}

// weightedRate returns the principal weighted mean rate of assets.
func weightedRate(assets []Asset) Rate {
	rates := make([]float64, len(assets))
	weights := make([]float64, len(assets))
	var sum float64
	for i, a := range assets {
		rates[i] = float64(a.Rate)
		weights[i] = a.Principal
		sum += a.Principal
	}
	if sum == 0 {
		return Rate(math.NaN())
	}
	return Rate(stat.Mean(rates, weights))
}

// View computes the derived view of the portfolio, with assets sorted by s.
func (p *Portfolio) View(s Sorter) PortfolioView {
	sorted := p.Sorted(s)
	rows := make([]AssetRow, len(sorted))
	for i, a := range sorted {
		rows[i] = AssetRow{Asset: a, FinalValue: p.FinalValue(a)}
	}
	d := p.Distribution()
	return PortfolioView{
		Parameters:      p.params,
		Sort:            s.String(),
		Assets:          rows,
		Series:          p.YearlySeries(),
		Distribution:    d,
		TotalInvestment: d.InitialTotal,
		TotalFinalValue: d.FinalTotal,
		WeightedRate:    weightedRate(p.assets),
	}
}
