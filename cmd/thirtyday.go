package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/esstax"
	"github.com/etnz/esstax/date"
	"github.com/etnz/esstax/renderer"
	"github.com/google/subcommands"
)

// thirtydayCmd holds the flags for the 'thirtyday' subcommand.
type thirtydayCmd struct {
	vest string
	sale string
}

func (*thirtydayCmd) Name() string     { return "thirtyday" }
func (*thirtydayCmd) Synopsis() string { return "check the 30-day rule for a pair of dates" }
func (*thirtydayCmd) Usage() string {
	return `esst thirtyday -vest <date> -sale <date>

  Tells whether a sale on the given date would re-characterize the income of
  shares vested on the given date.
`
}

func (c *thirtydayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.vest, "vest", "", "Vesting date")
	f.StringVar(&c.sale, "sale", date.Today().String(), "Sale date")
}

func (c *thirtydayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	vest, err := date.Parse(c.vest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing vesting date: %v\n", err)
		return subcommands.ExitUsageError
	}
	sale, err := date.Parse(c.sale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing sale date: %v\n", err)
		return subcommands.ExitUsageError
	}

	result, err := esstax.EvaluateThirtyDayRule(vest, sale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ThirtyDayMarkdown(result))
	return subcommands.ExitSuccess
}
