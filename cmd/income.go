package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/esstax/renderer"
	"github.com/google/subcommands"
)

// incomeCmd holds the flags for the 'income' subcommand.
type incomeCmd struct {
	row int
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "taxable income from vesting events" }
func (*incomeCmd) Usage() string {
	return `esst income [-row <n>]

  Reconciles each vesting event against its linked sales and displays the
  taxable income, after the 30-day re-characterization rule.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.row, "row", 0, "Vesting row to report on (1-based). Defaults to all vestings.")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := loadRates()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rates: %v\n", err)
		return subcommands.ExitFailure
	}
	vestings, err := loadVestings(table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading vestings: %v\n", err)
		return subcommands.ExitFailure
	}
	records, err := loadSales(table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sales: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.row < 0 || c.row > len(vestings) {
		fmt.Fprintf(os.Stderr, "-row %d out of range, have %d vestings\n", c.row, len(vestings))
		return subcommands.ExitUsageError
	}

	calc := newCalculator(table)
	sales := salesByVesting(records)
	for i, vest := range vestings {
		if c.row != 0 && c.row != i+1 {
			continue
		}
		income, err := calc.Reconcile(vest, sales[i+1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error on vesting %d (%s): %v\n", i+1, vest.VestDate, err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.IncomeMarkdown(income))
	}

	return subcommands.ExitSuccess
}
