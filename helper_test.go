package growth

import "testing"

// newTestPortfolio returns a portfolio holding the given assets, added in order.
func newTestPortfolio(t *testing.T, params Parameters, assets ...Asset) *Portfolio {
	t.Helper()
	p := NewPortfolio(params)
	for _, a := range assets {
		if _, ok := p.Add(a.Name, a.Principal, a.Rate); !ok {
			t.Fatalf("cannot add asset %q", a.Name)
		}
	}
	return p
}

// names returns the names of assets, in order.
func names(assets []Asset) []string {
	res := make([]string, len(assets))
	for i, a := range assets {
		res[i] = a.Name
	}
	return res
}
