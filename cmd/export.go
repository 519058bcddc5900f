package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct {
	file string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "print the portfolio report as CSV" }
func (*exportCmd) Usage() string {
	return `grow export [-f <file>]

  Prints one CSV line per asset with its final value, and a total line.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Portfolio CSV file. Defaults to the global portfolio file, or a sample portfolio.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := p.ExportCSV(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
