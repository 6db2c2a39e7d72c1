package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/sharonbn/stopquote/cmd"
)

func main() {
	// shell completion, only active when invoked by the completion hooks
	completer := &complete.Command{
		Sub: map[string]*complete.Command{
			"calc": {Flags: map[string]complete.Predictor{
				"c":   predict.Files("*.csv"),
				"o":   predict.Files("*.csv"),
				"csv": predict.Set{"yes", "no"},
				"v":   predict.Set{"on", "off"},
			}},
			"auto": {Flags: map[string]complete.Predictor{
				"csv": predict.Set{"yes", "no"},
				"v":   predict.Set{"on", "off"},
			}},
			"show":  {Args: predict.Files("*.summary.csv")},
			"topic": {},
		},
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
		},
	}
	completer.Complete("sq")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
