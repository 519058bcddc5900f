package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/growth"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	file      string
	name      string
	principal float64
	rate      float64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an asset to a portfolio file" }
func (*addCmd) Usage() string {
	return `grow add [-f <file>] -name <name> -p <principal> -r <rate>

  Appends an asset to the portfolio file, creating it if needed.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Portfolio CSV file. Defaults to the global portfolio file.")
	f.StringVar(&c.name, "name", "", "Asset name.")
	f.Float64Var(&c.principal, "p", 1000, "Initial principal.")
	f.Float64Var(&c.rate, "r", 5, "Annual interest rate in percent.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" && *portfolioFile == "" {
		fmt.Fprintln(os.Stderr, "Error: a portfolio file is required, use -f")
		return subcommands.ExitUsageError
	}
	p, err := DecodePortfolio(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	a, ok := p.Add(c.name, c.principal, growth.Rate(c.rate))
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: the asset name cannot be empty")
		return subcommands.ExitUsageError
	}

	if err := EncodePortfolio(c.file, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added asset %d %q\n", a.ID, a.Name)
	return subcommands.ExitSuccess
}

// removeCmd holds the flags for the 'remove' subcommand.
type removeCmd struct {
	file string
	id   int
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove an asset from a portfolio file" }
func (*removeCmd) Usage() string {
	return `grow remove [-f <file>] -id <id>

  Removes an asset from the portfolio file. Ids are the asset positions in the
  file, starting at 1, as shown by 'grow report'.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Portfolio CSV file. Defaults to the global portfolio file.")
	f.IntVar(&c.id, "id", 0, "Id of the asset to remove.")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" && *portfolioFile == "" {
		fmt.Fprintln(os.Stderr, "Error: a portfolio file is required, use -f")
		return subcommands.ExitUsageError
	}
	p, err := DecodePortfolio(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	if !p.Remove(c.id) {
		fmt.Fprintf(os.Stderr, "Warning: no asset with id %d\n", c.id)
		return subcommands.ExitSuccess
	}

	if err := EncodePortfolio(c.file, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed asset %d\n", c.id)
	return subcommands.ExitSuccess
}
