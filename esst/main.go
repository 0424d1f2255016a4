package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/esstax/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. Install with
// 'COMP_INSTALL=1 esst'.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"vestings": predict.Files("*.csv"),
		"sales":    predict.Files("*.csv"),
		"rates":    predict.Files("*.json"),
		"currency": predict.Set{"AUD", "USD"},
	},
	Sub: map[string]*complete.Command{
		"income": {Flags: map[string]complete.Predictor{"row": predict.Something}},
		"gains":  {Flags: map[string]complete.Predictor{"row": predict.Something}},
		"report": {Flags: map[string]complete.Predictor{"fy": predict.Something}},
		"convert": {Flags: map[string]complete.Predictor{
			"amount": predict.Something,
			"from":   predict.Set{"USD"},
			"rate":   predict.Something,
			"date":   predict.Something,
		}},
		"thirtyday": {Flags: map[string]complete.Predictor{
			"vest": predict.Something,
			"sale": predict.Something,
		}},
		"topic": {Args: predict.Set{"readme", "thirty-day-rule", "cgt-discount", "currency-conversion", "file-formats", "*"}},
	},
}

func main() {
	completion.Complete("esst")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
