package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/sharonbn/stopquote"
)

// fileList collects a repeatable file flag.
type fileList []string

func (l *fileList) String() string     { return strings.Join(*l, ",") }
func (l *fileList) Set(v string) error { *l = append(*l, v); return nil }

// calcCmd holds the flags for the 'calc' subcommand.
type calcCmd struct {
	costFiles  fileList
	orderFiles fileList
	csv        string
	verbose    string
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "compute stop quotes from holdings and orders exports" }
func (*calcCmd) Usage() string {
	return `sq calc -c <cost_file> [-c ...] -o <order_file> [-o ...] [-csv yes|no] [-v on|off]

  Joins the holdings (cost) exports with the open-orders exports by stock
  symbol and computes a new stop quote per holding. With -csv yes the summary
  is written to a timestamped .summary.csv file in the downloads directory,
  otherwise it is printed to stdout.
`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.costFiles, "c", "holdings (cost) export file, repeatable")
	f.Var(&c.orderFiles, "o", "open-orders export file, repeatable")
	f.StringVar(&c.csv, "csv", "no", "yes to write the summary to a timestamped CSV file")
	f.StringVar(&c.verbose, "v", "off", "on to trace per-symbol intermediate values")
}

func (c *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := setVerbose(c.verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.csv != "yes" && c.csv != "no" {
		fmt.Fprintf(os.Stderr, "Error: invalid -csv value %q, want yes or no\n", c.csv)
		return subcommands.ExitUsageError
	}
	if len(c.costFiles) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing required argument -c (cost file)\n")
		return subcommands.ExitUsageError
	}
	if len(c.orderFiles) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing required argument -o (order file)\n")
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := run(cfg, c.costFiles, c.orderFiles, c.csv == "yes"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// run executes the whole pipeline: load, join, compute, emit.
func run(cfg stopquote.Config, costFiles, orderFiles []string, toCSV bool) error {
	for _, p := range costFiles {
		if slices.Contains(orderFiles, p) {
			return fmt.Errorf("holding file %q same as order file", p)
		}
	}
	for _, p := range append(append([]string{}, costFiles...), orderFiles...) {
		if err := stopquote.CheckExport(p); err != nil {
			return err
		}
	}

	book := stopquote.NewBook()
	if err := loadAll(book, costFiles, (*stopquote.Book).LoadHoldings); err != nil {
		return err
	}
	if err := loadAll(book, orderFiles, (*stopquote.Book).LoadOrders); err != nil {
		return err
	}

	book.ComputeStops(cfg.StopPercent, stopquote.Percent(cfg.GainGate))
	rows := book.Summary()

	if !toCSV {
		return stopquote.WriteSummary(os.Stdout, rows)
	}

	name := filepath.Join(cfg.Downloads, stopquote.SummaryFileName(time.Now()))
	// refuse to overwrite a previous run
	out, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("cannot create summary file: %w", err)
	}
	defer out.Close()
	if err := stopquote.WriteSummary(out, rows); err != nil {
		return err
	}
	fmt.Printf("Summary written to %s\n", name)
	return nil
}

func loadAll(book *stopquote.Book, paths []string, load func(*stopquote.Book, io.Reader, string) error) error {
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return fmt.Errorf("cannot open %q: %w", p, err)
		}
		err = load(book, f, p)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
