package growth

import (
	"fmt"
	"math"
)

// Percent is a share of a total, in percent.
type Percent float64

func (p Percent) String() string {
	if math.IsNaN(float64(p)) {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", p)
}
