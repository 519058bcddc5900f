package cmd

import (
	"slices"
	"testing"

	"github.com/posener/complete/v2/predict"
)

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, cmd := range Commands {
		if _, ok := c.Sub[cmd.Name()]; !ok {
			t.Errorf("no completion for %q", cmd.Name())
		}
	}

	project := c.Sub["project"]
	g, ok := project.Flags["g"].(predict.Set)
	if !ok || !slices.Contains(g, "month") {
		t.Errorf("project -g predictor = %v, want the granularities", project.Flags["g"])
	}
	if _, ok := c.Sub["report"].Flags["sort"].(predict.Set); !ok {
		t.Errorf("report -sort has no predictor")
	}
	if _, ok := c.Flags["portfolio-file"]; !ok {
		t.Errorf("no completion for the global -portfolio-file flag")
	}
}
