package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sharonbn/stopquote"
)

// autoCmd holds the flags for the 'auto' subcommand.
type autoCmd struct {
	csv     string
	verbose string
}

func (*autoCmd) Name() string { return "auto" }
func (*autoCmd) Synopsis() string {
	return "find the newest exports in the downloads directory and compute stop quotes"
}
func (*autoCmd) Usage() string {
	return `sq auto [-csv yes|no] [-v on|off]

  Picks the two most recently downloaded export files matching the configured
  pattern, tells the holdings export from the orders export by content, and
  runs the calc pipeline on them.
`
}

func (c *autoCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.csv, "csv", "no", "yes to write the summary to a timestamped CSV file")
	f.StringVar(&c.verbose, "v", "off", "on to trace per-symbol intermediate values")
}

func (c *autoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := setVerbose(c.verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.csv != "yes" && c.csv != "no" {
		fmt.Fprintf(os.Stderr, "Error: invalid -csv value %q, want yes or no\n", c.csv)
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}

	exports, err := stopquote.DiscoverExports(cfg.Downloads, cfg.Pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Using holdings %s and orders %s\n", exports.Cost, exports.Order)

	if err := run(cfg, []string{exports.Cost}, []string{exports.Order}, c.csv == "yes"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
