package growth

import "math"

// MaxPoints is the number of samples above which a trajectory is decimated.
const MaxPoints = 100

// Projection describes a single asset growth over a horizon.
type Projection struct {
	Principal             float64
	Rate                  Rate
	Years                 float64
	CompoundingPeriodDays Compounding
}

// TrajectoryPoint is one sample of a single asset trajectory.
type TrajectoryPoint struct {
	Index        float64 `json:"index"` // number of intervals elapsed
	ElapsedYears float64 `json:"elapsedYears"`
	Simple       Amount  `json:"simple"`
	Compound     Amount  `json:"compound"`
}

// Trajectory is the result of a Projection at a given granularity.
type Trajectory struct {
	Granularity   Granularity       `json:"granularity"`
	Points        []TrajectoryPoint `json:"points"`
	SimpleTotal   Amount            `json:"simpleTotal"`
	CompoundTotal Amount            `json:"compoundTotal"`
}

// Simple returns the simple interest value after t years.
func (p Projection) Simple(t float64) float64 {
	return SimpleInterest(p.Principal, p.Rate, t)
}

// Compound returns the compound interest value after t years.
func (p Projection) Compound(t float64) float64 {
	return CompoundInterest(p.Principal, p.Rate, t, p.CompoundingPeriodDays)
}

// stride returns the decimation step for a number of raw samples. It rounds
// up so that no more than MaxPoints samples are kept, at the price of keeping
// fewer samples than a rounded down step would for some horizons.
func stride(rawCount float64) float64 {
	if rawCount <= MaxPoints {
		return 1
	}
	return math.Ceil(rawCount / MaxPoints)
}

// Trajectory samples the projection every g interval from 0 to Years.
//
// At most MaxPoints samples are retained: above that, only every n-th sample
// is kept, starting with the first one, n being the raw sample count divided
// by MaxPoints and rounded up. The exact horizon is not forced into the
// samples when decimation skips it, but the totals are always computed at the
// exact horizon.
func (p Projection) Trajectory(g Granularity) Trajectory {
	size := g.IntervalSize()
	// counts are kept in float64: a horizon in days may not fit an int.
	last := 0.0
	if p.Years > 0 {
		last = math.Ceil(p.Years / size)
	}
	step := stride(last + 1)
	kept := 1
	if !math.IsInf(step, 0) {
		kept = min(int(min(math.Floor(last/step), MaxPoints))+1, MaxPoints)
	}

	points := make([]TrajectoryPoint, 0, kept)
	for k := range kept {
		i := 0.0
		if k > 0 {
			i = float64(k) * step
		}
		t := i * size
		if t > p.Years {
			continue
		}
		points = append(points, TrajectoryPoint{
			Index:        i,
			ElapsedYears: t,
			Simple:       A(p.Simple(t)),
			Compound:     A(p.Compound(t)),
		})
	}

	return Trajectory{
		Granularity:   g,
		Points:        points,
		SimpleTotal:   A(p.Simple(p.Years)),
		CompoundTotal: A(p.Compound(p.Years)),
	}
}

// Interest returns how much compounding adds over simple interest at the
// horizon.
func (t Trajectory) Interest() Amount {
	return t.CompoundTotal.Sub(t.SimpleTotal)
}
