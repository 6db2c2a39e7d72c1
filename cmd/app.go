// Package cmd implements the CLI application to compute stop quotes.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/sharonbn/stopquote"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&calcCmd{}, "quotes")
	c.Register(&autoCmd{}, "quotes")
	c.Register(&showCmd{}, "quotes")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the config file (YAML). Empty means ~/.stopquote.yaml")

// LoadConfig loads the application config, honoring the -config flag.
func LoadConfig() (stopquote.Config, error) {
	return stopquote.LoadConfig(*configFile)
}

// NewLogger builds the console logger used for progress output.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(lvl)
}

// setVerbose maps the -v on|off choice to the package logger level.
func setVerbose(verbose string) error {
	switch verbose {
	case "on":
		stopquote.SetLogger(NewLogger("debug"))
	case "off":
		stopquote.SetLogger(NewLogger("info"))
	default:
		return fmt.Errorf("invalid -v value %q, want on or off", verbose)
	}
	return nil
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
