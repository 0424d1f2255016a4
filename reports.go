package esstax

import (
	"fmt"

	"github.com/etnz/esstax/date"
)

// TaxReport aggregates engine results over a reporting period, typically an
// Australian financial year. Aggregation lives here, outside the engine: the
// engine computes one event at a time and carries no period notion.
type TaxReport struct {
	Range    date.Range
	Currency string

	Vestings  []VestingReport
	Disposals []DisposalReport

	TotalIncome Money
	TotalGains  Money
}

// VestingReport pairs a vesting event with its reconciled income result.
type VestingReport struct {
	Event  VestingEvent
	Income *TaxableIncomeResult
}

// DisposalReport pairs a standalone sale with its capital gains result.
type DisposalReport struct {
	Event ShareSaleEvent
	Gains *CapitalGainsResult
}

// FinancialYearReport reconciles every vesting whose vest date falls in the
// period against its associated sales, evaluates every disposal sold in the
// period (standalone, or linked and outside the 30-day window), and sums the
// taxable income and capital gains figures.
//
// 'sales' associates sale events to vestings by 1-based vesting row, matching
// the import format.
func (c *Calculator) FinancialYearReport(period date.Range, vestings []VestingEvent, sales map[int][]ShareSaleEvent, disposals []SaleRecord) (*TaxReport, error) {
	reporting := c.conv.Reporting()
	report := &TaxReport{
		Range:       period,
		Currency:    reporting,
		TotalIncome: M(0, reporting),
		TotalGains:  M(0, reporting),
	}

	for row := range sales {
		if row < 1 || row > len(vestings) {
			return nil, fmt.Errorf("sales reference vesting row %d, have %d vestings: %w", row, len(vestings), ErrInvalidInput)
		}
	}

	for i, vest := range vestings {
		if !period.Contains(vest.VestDate) {
			continue
		}
		income, err := c.Reconcile(vest, sales[i+1])
		if err != nil {
			return nil, fmt.Errorf("vesting %d on %s: %w", i+1, vest.VestDate, err)
		}
		report.Vestings = append(report.Vestings, VestingReport{Event: vest, Income: income})
		report.TotalIncome = report.TotalIncome.Add(income.TaxableIncome)
	}

	for i, d := range disposals {
		if !period.Contains(d.Event.SaleDate) {
			continue
		}
		var gains *CapitalGainsResult
		var err error
		if d.Vesting == 0 {
			gains, err = c.CalculateCapitalGains(d.Event, d.CostBase)
		} else {
			if d.Vesting > len(vestings) {
				return nil, fmt.Errorf("disposal %d references vesting row %d, have %d vestings: %w", i+1, d.Vesting, len(vestings), ErrInvalidInput)
			}
			// A linked sale outside the 30-day window is a standard
			// disposal against its proportional slice of the vesting cost
			// base; inside the window the proceeds are income, reconciled
			// above, and linkedGains reports no CGT event.
			gains, err = c.linkedGains(vestings[d.Vesting-1], d.Event)
		}
		if err != nil {
			return nil, fmt.Errorf("disposal %d on %s: %w", i+1, d.Event.SaleDate, err)
		}
		if gains == nil {
			continue
		}
		report.Disposals = append(report.Disposals, DisposalReport{Event: d.Event, Gains: gains})
		report.TotalGains = report.TotalGains.Add(gains.CapitalGain)
	}

	return report, nil
}
