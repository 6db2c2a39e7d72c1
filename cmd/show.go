package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sharonbn/stopquote"
	"github.com/sharonbn/stopquote/renderer"
)

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display a previously written summary file" }
func (*showCmd) Usage() string {
	return `sq show <summary_file>

  Reads back a .summary.csv file and renders it as a table in the terminal.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one summary file\n")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening summary %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	rows, err := stopquote.ReadSummary(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading summary %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(rows))
	return subcommands.ExitSuccess
}
