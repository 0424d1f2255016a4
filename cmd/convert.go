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
	"github.com/shopspring/decimal"
)

// convertCmd holds the flags for the 'convert' subcommand.
type convertCmd struct {
	amount string
	from   string
	rate   string
	date   string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount to the reporting currency" }
func (*convertCmd) Usage() string {
	return `esst convert -amount <value> [-from <currency>] [-rate <rate>] [-date <date>]

  Converts an amount using the given exchange rate (units of the source
  currency per unit of the reporting currency), or a rate looked up in the
  rates file for the given date.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount to convert")
	f.StringVar(&c.from, "from", "USD", "Source currency")
	f.StringVar(&c.rate, "rate", "", "Exchange rate. Defaults to the rates file entry for -date.")
	f.StringVar(&c.date, "date", date.Today().String(), "Conversion date")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	table, err := loadRates()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rates: %v\n", err)
		return subcommands.ExitFailure
	}

	var rate decimal.Decimal
	if c.rate != "" {
		rate, err = decimal.NewFromString(c.rate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing rate %q: %v\n", c.rate, err)
			return subcommands.ExitUsageError
		}
	} else {
		if table == nil {
			fmt.Fprintln(os.Stderr, "Either -rate or -rates must be given")
			return subcommands.ExitUsageError
		}
		rate, err = table.Rate(c.from, on)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error looking up rate: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	conv := newCalculator(table).Converter()
	conv.Support(c.from)
	result, err := conv.Convert(esstax.M(amount, c.from), rate, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ConversionMarkdown(result))
	return subcommands.ExitSuccess
}
