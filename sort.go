package growth

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
)

// SortField is the asset attribute a portfolio view is sorted by.
type SortField int

const (
	ByName SortField = iota
	ByPrincipal
	ByRate
	ByFinalValue
)

func (f SortField) String() string {
	switch f {
	case ByName:
		return "name"
	case ByPrincipal:
		return "principal"
	case ByRate:
		return "rate"
	case ByFinalValue:
		return "finalValue"
	default:
		return "unknown"
	}
}

// ParseSortField parses a string into a SortField.
func ParseSortField(s string) (SortField, error) {
	switch s {
	case "name":
		return ByName, nil
	case "principal":
		return ByPrincipal, nil
	case "rate":
		return ByRate, nil
	case "finalValue":
		return ByFinalValue, nil
	default:
		return 0, fmt.Errorf("unknown sort field: %q", s)
	}
}

// Sorter is the sort state of a portfolio view. Its zero value sorts by name,
// ascending.
type Sorter struct {
	Field      SortField
	Descending bool
}

// Toggle returns the sorter after selecting field: selecting the active field
// flips the direction, selecting another one sorts ascending by it.
func (s Sorter) Toggle(field SortField) Sorter {
	if s.Field == field {
		return Sorter{Field: field, Descending: !s.Descending}
	}
	return Sorter{Field: field}
}

func (s Sorter) String() string {
	if s.Descending {
		return s.Field.String() + " desc"
	}
	return s.Field.String() + " asc"
}

// compareValues orders undefined values last, whatever the direction.
func compareValues(a, b float64, desc bool) int {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	}
	if desc {
		return cmp.Compare(b, a)
	}
	return cmp.Compare(a, b)
}

// Sort sorts assets in place, keeping equal assets in their current order.
// Final values are computed with params.
func (s Sorter) Sort(assets []Asset, params Parameters) {
	key := func(a Asset) float64 {
		switch s.Field {
		case ByPrincipal:
			return a.Principal
		case ByRate:
			return float64(a.Rate)
		default:
			return a.FinalValue(params)
		}
	}
	if s.Field == ByName {
		slices.SortStableFunc(assets, func(a, b Asset) int {
			c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
			if s.Descending {
				return -c
			}
			return c
		})
		return
	}
	slices.SortStableFunc(assets, func(a, b Asset) int {
		return compareValues(key(a), key(b), s.Descending)
	})
}

// Sorted returns a sorted copy of the portfolio assets. The portfolio keeps
// its insertion order.
func (p *Portfolio) Sorted(s Sorter) []Asset {
	assets := p.Assets()
	s.Sort(assets, p.params)
	return assets
}
