package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/sharonbn/stopquote"
)

const testHoldings = `"Symbol","Day Change","Unrealized Gain/Loss","Description","Quantity","Unit Cost","Price"
"AAPL","+$1.23 +0.55%","+$1,062.50 +12.5%","APPLE INC","10.5","$160.00","$170.00"
"KO","+$0.10 +0.10%","+$50.00 +1.0%","COCA-COLA CO","40","$60.00","$62.00"
`

const testOrders = `"Order #","Symbol","Account","Quantity","Order Type","TIF"
"1001","AAPL","74-1234","10","Stop quote$161.50 Trigger","GTC"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunWritesSummary(t *testing.T) {
	dir := t.TempDir()
	cost := writeFile(t, dir, "holdings.csv", testHoldings)
	order := writeFile(t, dir, "orders.csv", testOrders)

	cfg := stopquote.Config{Downloads: dir, StopPercent: 0.95, GainGate: 5}
	if err := run(cfg, []string{cost}, []string{order}, true); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.summary.csv"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one summary file, got %v (err %v)", matches, err)
	}

	f, err := os.Open(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := stopquote.ReadSummary(f)
	if err != nil {
		t.Fatalf("ReadSummary() error = %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("summary has %d rows, want 2", len(rows))
	}
	if rows[0].Symbol != "AAPL" || !rows[0].NewStop.Equal(stopquote.P(161.5)) {
		t.Errorf("AAPL row = %+v, want new stop $161.50", rows[0])
	}
	if rows[1].Symbol != "KO" || rows[1].HasNew {
		t.Errorf("KO row = %+v, want no new stop", rows[1])
	}
}

func TestRunRejectsSharedFile(t *testing.T) {
	dir := t.TempDir()
	cost := writeFile(t, dir, "holdings.csv", testHoldings)

	cfg := stopquote.Config{Downloads: dir, StopPercent: 0.95, GainGate: 5}
	if err := run(cfg, []string{cost}, []string{cost}, false); err == nil {
		t.Fatal("run() expected an error when cost and order files are the same")
	}
}

func TestRunMissingFile(t *testing.T) {
	dir := t.TempDir()
	order := writeFile(t, dir, "orders.csv", testOrders)

	cfg := stopquote.Config{Downloads: dir, StopPercent: 0.95, GainGate: 5}
	err := run(cfg, []string{filepath.Join(dir, "absent.csv")}, []string{order}, false)
	if err == nil {
		t.Fatal("run() expected an error for a missing cost file")
	}
}

func TestCalcCmdMissingArguments(t *testing.T) {
	c := &calcCmd{csv: "no", verbose: "off"}
	got := c.Execute(context.Background(), flag.NewFlagSet("calc", flag.ContinueOnError))
	if got != subcommands.ExitUsageError {
		t.Errorf("Execute() = %v, want ExitUsageError", got)
	}
}

func TestCalcCmdBadFlagValues(t *testing.T) {
	c := &calcCmd{csv: "maybe", verbose: "off", costFiles: fileList{"a"}, orderFiles: fileList{"b"}}
	if got := c.Execute(context.Background(), flag.NewFlagSet("calc", flag.ContinueOnError)); got != subcommands.ExitUsageError {
		t.Errorf("Execute() with -csv maybe = %v, want ExitUsageError", got)
	}

	c = &calcCmd{csv: "no", verbose: "loud", costFiles: fileList{"a"}, orderFiles: fileList{"b"}}
	if got := c.Execute(context.Background(), flag.NewFlagSet("calc", flag.ContinueOnError)); got != subcommands.ExitUsageError {
		t.Errorf("Execute() with -v loud = %v, want ExitUsageError", got)
	}
}
