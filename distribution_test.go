package growth

import (
	"math"
	"testing"
)

func TestDistribution(t *testing.T) {
	p := newTestPortfolio(t, Parameters{Years: 1, CompoundingPeriodDays: NoCompounding},
		Asset{Name: "A", Principal: 100, Rate: 100},
		Asset{Name: "B", Principal: 300, Rate: 0},
	)
	d := p.Distribution()

	if got, want := d.InitialTotal.String(), "400.00"; got != want {
		t.Errorf("InitialTotal = %s, want %s", got, want)
	}
	if got, want := d.FinalTotal.String(), "500.00"; got != want {
		t.Errorf("FinalTotal = %s, want %s", got, want)
	}

	tests := []struct {
		a    Allocation
		name string
		val  string
		pct  string
	}{
		{d.Initial[0], "A", "100.00", "25.00%"},
		{d.Initial[1], "B", "300.00", "75.00%"},
		{d.Final[0], "A", "200.00", "40.00%"},
		{d.Final[1], "B", "300.00", "60.00%"},
	}
	for _, tt := range tests {
		if tt.a.Name != tt.name || tt.a.Value.String() != tt.val || tt.a.Share().String() != tt.pct {
			t.Errorf("allocation = %s %s %s, want %s %s %s", tt.a.Name, tt.a.Value, tt.a.Share(), tt.name, tt.val, tt.pct)
		}
	}
	if d.Final[1].Color != Palette[1] {
		t.Errorf("allocation color = %v, want the asset color %v", d.Final[1].Color, Palette[1])
	}
}

func TestDistributionEmpty(t *testing.T) {
	d := NewPortfolio(DefaultParameters).Distribution()
	if len(d.Initial) != 0 || len(d.Final) != 0 {
		t.Errorf("empty portfolio has allocations: %+v", d)
	}
	if !d.InitialTotal.Equal(A(0)) || !d.FinalTotal.Equal(A(0)) {
		t.Errorf("empty portfolio totals = %v, %v", d.InitialTotal, d.FinalTotal)
	}
}

func TestDistributionZeroShare(t *testing.T) {
	p := newTestPortfolio(t, DefaultParameters, Asset{Name: "Nothing", Principal: 0, Rate: 5})
	if share := p.Distribution().Initial[0].Share(); !math.IsNaN(float64(share)) {
		t.Errorf("share of a zero total = %v, want NaN", share)
	}
}
