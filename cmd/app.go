// Package cmd implements the CLI application to compute ESS tax figures.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/esstax"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&incomeCmd{}, "reports")
	c.Register(&gainsCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")

	c.Register(&convertCmd{}, "engine")
	c.Register(&thirtydayCmd{}, "engine")

	c.Register(&topicCmd{}, "documentation")
	c.Register(subcommands.HelpCommand(), "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var vestingsFile = flag.String("vestings", "vestings.csv", "Path to the vesting events file (CSV format)")
var salesFile = flag.String("sales", "sales.csv", "Path to the sale events file (CSV format)")
var ratesFile = flag.String("rates", "", "Path to an exchange rates file (JSON format); optional")
var reportingCurrency = flag.String("currency", esstax.DefaultReportingCurrency, "Reporting currency")

// newCalculator assembles the calculator for the configured reporting
// currency, with every currency of the rates table enabled.
func newCalculator(table *esstax.RateTable) *esstax.Calculator {
	conv := esstax.NewConverter(*reportingCurrency, nil)
	if table != nil {
		for _, currency := range table.Currencies() {
			conv.Support(currency)
		}
	}
	return esstax.NewCalculator(conv)
}

// loadRates reads the rates table, or returns nil when none is configured.
func loadRates() (*esstax.RateTable, error) {
	if *ratesFile == "" {
		return nil, nil
	}
	f, err := os.Open(*ratesFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open rates file %q: %w", *ratesFile, err)
	}
	defer f.Close()
	table, err := esstax.ImportRates(f)
	if err != nil {
		return nil, fmt.Errorf("rates file %q: %w", *ratesFile, err)
	}
	return table, nil
}

// loadVestings reads the vesting events, filling missing exchange rates from
// the rates table when one is configured.
func loadVestings(table *esstax.RateTable) ([]esstax.VestingEvent, error) {
	f, err := os.Open(*vestingsFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open vestings file %q: %w", *vestingsFile, err)
	}
	defer f.Close()
	events, err := esstax.ImportVestings(f)
	if err != nil {
		return nil, fmt.Errorf("vestings file %q: %w", *vestingsFile, err)
	}
	for i, ev := range events {
		if ev.Price.Currency() == *reportingCurrency || !ev.ExchangeRate.IsZero() || table == nil {
			continue
		}
		rate, err := table.Rate(ev.Price.Currency(), ev.VestDate)
		if err != nil {
			return nil, fmt.Errorf("vesting on %s: %w", ev.VestDate, err)
		}
		events[i].ExchangeRate = rate
	}
	return events, nil
}

// loadSales reads the sale records, filling missing exchange rates from the
// rates table when one is configured.
func loadSales(table *esstax.RateTable) ([]esstax.SaleRecord, error) {
	f, err := os.Open(*salesFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open sales file %q: %w", *salesFile, err)
	}
	defer f.Close()
	records, err := esstax.ImportSales(f)
	if err != nil {
		return nil, fmt.Errorf("sales file %q: %w", *salesFile, err)
	}
	for i, rec := range records {
		ev := rec.Event
		if ev.Price.Currency() == *reportingCurrency || !ev.ExchangeRate.IsZero() || table == nil {
			continue
		}
		rate, err := table.Rate(ev.Price.Currency(), ev.SaleDate)
		if err != nil {
			return nil, fmt.Errorf("sale on %s: %w", ev.SaleDate, err)
		}
		records[i].Event.ExchangeRate = rate
	}
	return records, nil
}

// salesByVesting groups linked sale events by their 1-based vesting row.
func salesByVesting(records []esstax.SaleRecord) map[int][]esstax.ShareSaleEvent {
	sales := make(map[int][]esstax.ShareSaleEvent)
	for _, rec := range records {
		if rec.Vesting > 0 {
			sales[rec.Vesting] = append(sales[rec.Vesting], rec.Event)
		}
	}
	return sales
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the terminal renderer cannot be built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		if out, rerr := r.Render(md); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(md)
}
