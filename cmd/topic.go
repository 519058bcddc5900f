package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/growth/docs"
	"github.com/google/subcommands"
)

// topicCmd prints the embedded manual, rendered for the terminal.
type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the grow manual" }
func (*topicCmd) Usage() string {
	return `grow topic [-list] [<topic>...]

Read the grow manual. Without a topic, print the introduction.

Topics:
  interest    simple and compound interest formulas, compounding periods
  trajectory  how a single asset is sampled and decimated
  portfolio   assets, final values, sorting and distribution
  csv         the lenient import and the exact export formats

"*" prints every topic.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "print the available topic names, one per line")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		topics, err := docs.GetAllTopics()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing topics: %v\n", err)
			return subcommands.ExitFailure
		}
		for _, t := range topics {
			fmt.Println(t)
		}
		return subcommands.ExitSuccess
	}

	names := f.Args()
	if len(names) == 0 {
		names = []string{"readme"}
	}
	manual, err := docs.GetTopics(names...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading topic: %v\n", err)
		return subcommands.ExitUsageError
	}
	logf("showing topics %s", strings.Join(names, ", "))
	printMarkdown(manual)
	return subcommands.ExitSuccess
}
