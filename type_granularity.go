package growth

import "fmt"

// Granularity is the spacing between two samples of a trajectory.
type Granularity int

const (
	Year Granularity = iota
	Month
	Week
	Day
)

// Granularities lists every supported granularity, coarsest first.
var Granularities = []Granularity{Year, Month, Week, Day}

func (g Granularity) String() string {
	switch g {
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	default:
		return "unknown"
	}
}

// IntervalSize returns the duration of one interval in years.
func (g Granularity) IntervalSize() float64 {
	switch g {
	case Day:
		return 1.0 / DaysPerYear
	case Week:
		return 7.0 / DaysPerYear
	case Month:
		return 1.0 / 12
	default:
		return 1
	}
}

// ParseGranularity parses a string into a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch s {
	case "day":
		return Day, nil
	case "week":
		return Week, nil
	case "month":
		return Month, nil
	case "year":
		return Year, nil
	default:
		return 0, fmt.Errorf("unknown granularity: %q", s)
	}
}

func (g Granularity) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

func (g *Granularity) UnmarshalText(text []byte) error {
	v, err := ParseGranularity(string(text))
	if err != nil {
		return err
	}
	*g = v
	return nil
}
