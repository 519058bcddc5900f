package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/growth"
	"github.com/etnz/growth/renderer"
	"github.com/google/subcommands"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	principal   float64
	rate        float64
	years       float64
	compounding int
	granularity string
	json        bool
	query       string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the growth of a single amount" }
func (*projectCmd) Usage() string {
	return `grow project [-p <principal>] [-r <rate>] [-y <years>] [-c <days>] [-g day|week|month|year] [-json] [-q <jsonpath>]

  Compares simple and compound interest on a single amount, sampled at the
  given granularity up to the horizon.

Usage Examples:
$ grow project -p 1000 -r 5 -y 5 -c 365
$ grow project -y 30 -g month -json -q '$.compoundTotal'
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.principal, "p", 1000, "Initial principal.")
	f.Float64Var(&c.rate, "r", 5, "Annual interest rate in percent.")
	f.Float64Var(&c.years, "y", *years, "Horizon in years.")
	f.IntVar(&c.compounding, "c", *compounding, "Compounding period in days, 0 for simple interest.")
	f.StringVar(&c.granularity, "g", growth.Year.String(), "Sampling interval: day, week, month or year.")
	f.BoolVar(&c.json, "json", false, "Print the trajectory as JSON.")
	f.StringVar(&c.query, "q", "", "JSONPath query applied to the JSON output. Implies -json.")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	g, err := growth.ParseGranularity(c.granularity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing granularity: %v\n", err)
		return subcommands.ExitUsageError
	}

	p := growth.Projection{
		Principal:             c.principal,
		Rate:                  growth.Rate(c.rate),
		Years:                 c.years,
		CompoundingPeriodDays: growth.Compounding(c.compounding),
	}
	t := p.Trajectory(g)
	logf("projected %v over %v years per %v: %d points", p.Principal, p.Years, g, len(t.Points))

	if c.json || c.query != "" {
		if err := writeJSON(os.Stdout, t, c.query); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.TrajectoryMarkdown(p, t))
	return subcommands.ExitSuccess
}
