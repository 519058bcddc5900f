// Package cmd implements the CLI application to project interest growth.
package cmd

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"slices"
	"strconv"

	"github.com/etnz/growth"
	"github.com/google/subcommands"
)

// Commands lists the grow subcommands.
var Commands = []subcommands.Command{
	&projectCmd{},
	&reportCmd{},
	&exportCmd{},
	&addCmd{},
	&removeCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&projectCmd{}, "projection")

	c.Register(&reportCmd{}, "portfolio")
	c.Register(&exportCmd{}, "portfolio")
	c.Register(&addCmd{}, "portfolio")
	c.Register(&removeCmd{}, "portfolio")

	c.Register(&topicCmd{}, "help")
}

// IsCommand reports whether name is a builtin subcommand.
func IsCommand(name string) bool {
	if name == "help" || name == "flags" || name == "commands" {
		return true
	}
	return slices.ContainsFunc(Commands, func(c subcommands.Command) bool { return c.Name() == name })
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	portfolioFile = flag.String("portfolio-file", os.Getenv(EnvPortfolioFile), "Path to the portfolio CSV file. Defaults to $"+EnvPortfolioFile+".")
	years         = flag.Float64("years", envFloat(EnvYears, growth.DefaultParameters.Years), "Investment horizon in years. Defaults to $"+EnvYears+".")
	compounding   = flag.Int("compounding", int(envFloat(EnvCompounding, float64(growth.DefaultParameters.CompoundingPeriodDays))), "Compounding period in days, 0 for simple interest. Defaults to $"+EnvCompounding+".")
	Verbose       = flag.Bool("v", false, "Print diagnostic logs.")
)

// envFloat reads a float from the environment variable key, def when unset
// or invalid.
func envFloat(key string, def float64) float64 {
	s, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("ignoring invalid %s=%q: %v", key, s, err)
		return def
	}
	return v
}

// logf logs only in verbose mode.
func logf(format string, args ...any) {
	if *Verbose {
		log.Printf(format, args...)
	}
}

// parameters returns the calculation parameters from the global flags.
func parameters() growth.Parameters {
	return growth.Parameters{Years: *years, CompoundingPeriodDays: growth.Compounding(*compounding)}
}

// DecodePortfolio reads the portfolio from a CSV file. An empty filename
// selects the global portfolio file. When no file is configured at all, the
// sample portfolio is returned.
func DecodePortfolio(filename string) (*growth.Portfolio, error) {
	if filename == "" {
		filename = *portfolioFile
	}
	if filename == "" {
		logf("no portfolio file, using the sample portfolio")
		p := growth.DefaultPortfolio()
		p.SetParameters(parameters())
		return p, nil
	}

	p := growth.NewPortfolio(parameters())
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		logf("warning, portfolio %q does not exist, starting with an empty portfolio", filename)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open portfolio %q: %w", filename, err)
	}
	defer f.Close()

	n, err := p.ImportCSV(f)
	if err != nil {
		return nil, fmt.Errorf("cannot import portfolio %q: %w", filename, err)
	}
	logf("imported %d assets from %q", n, filename)
	return p, nil
}

// EncodePortfolio writes the portfolio into a CSV file, in the export format.
func EncodePortfolio(filename string, p *growth.Portfolio) error {
	if filename == "" {
		filename = *portfolioFile
	}
	if filename == "" {
		return errors.New("no portfolio file: use -portfolio-file or $" + EnvPortfolioFile)
	}
	var buf bytes.Buffer
	if err := p.ExportCSV(&buf); err != nil {
		return fmt.Errorf("cannot export portfolio: %w", err)
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write portfolio %q: %w", filename, err)
	}
	logf("wrote %d assets to %q", p.Len(), filename)
	return nil
}
