package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/esstax/date"
	"github.com/etnz/esstax/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	fy string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "full tax report for a financial year" }
func (*reportCmd) Usage() string {
	return `esst report [-fy <year>]

  Aggregates taxable income and capital gains over an Australian financial
  year (July 1 to June 30), e.g. -fy 2024-25.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fy, "fy", "", "Financial year to report on, e.g. '2024-25'. Defaults to the current one.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period := date.FinancialYearOf(date.Today())
	if c.fy != "" {
		var err error
		period, err = date.ParseFY(c.fy)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing financial year: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

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

	calc := newCalculator(table)
	report, err := calc.FinancialYearReport(period, vestings, salesByVesting(records), records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TaxReportMarkdown(report))
	return subcommands.ExitSuccess
}
