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

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	file  string
	sort  string
	desc  bool
	json  bool
	query string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the growth of a portfolio" }
func (*reportCmd) Usage() string {
	return `grow report [-f <file>] [-sort name|principal|rate|finalValue] [-desc] [-json] [-q <jsonpath>]

  Displays the portfolio assets with their final value, the yearly growth of
  every asset and the initial and final distribution. The horizon and the
  compounding period are set by the global -years and -compounding flags.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Portfolio CSV file. Defaults to the global portfolio file, or a sample portfolio.")
	f.StringVar(&c.sort, "sort", growth.ByName.String(), "Sort assets by name, principal, rate or finalValue.")
	f.BoolVar(&c.desc, "desc", false, "Sort in descending order.")
	f.BoolVar(&c.json, "json", false, "Print the report as JSON.")
	f.StringVar(&c.query, "q", "", "JSONPath query applied to the JSON output. Implies -json.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	field, err := growth.ParseSortField(c.sort)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing sort field: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, err := DecodePortfolio(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	view := p.View(growth.Sorter{Field: field, Descending: c.desc})

	if c.json || c.query != "" {
		if err := writeJSON(os.Stdout, view, c.query); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.PortfolioMarkdown(view))
	return subcommands.ExitSuccess
}
