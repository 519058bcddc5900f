// Command grow projects interest growth for an amount or a portfolio.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/growth/cmd"
	"github.com/google/subcommands"
)

func main() {
	// exits when invoked by the shell to complete a command line.
	cmd.Completion().Complete("grow")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()

	if name := flag.Arg(0); name != "" && !cmd.IsCommand(name) {
		if ok, code := cmd.RunExtension(name, flag.Args()[1:]); ok {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
