package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/esstax"
	"github.com/etnz/esstax/date"
)

func fixedToday() date.Date { return date.MustParse("2025-06-30") }

func TestIncomeMarkdown(t *testing.T) {
	calc := esstax.NewCalculator(esstax.NewConverter("AUD", fixedToday))
	vest := esstax.VestingEvent{
		VestDate:     date.MustParse("2025-01-01"),
		Price:        esstax.M(40, "AUD"),
		SharesVested: esstax.Q(300),
	}
	sale := esstax.ShareSaleEvent{
		SaleDate:   date.MustParse("2025-01-20"),
		SharesSold: esstax.Q(100),
		Price:      esstax.M(45, "AUD"),
	}
	res, err := calc.Reconcile(vest, []esstax.ShareSaleEvent{sale})
	if err != nil {
		t.Fatal(err)
	}

	md := IncomeMarkdown(res)
	for _, want := range []string{"# Taxable Income (AUD)", "Sales against this vesting", "| 2025-01-20 | 19 | yes |"} {
		if !strings.Contains(md, want) {
			t.Errorf("IncomeMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestGainsMarkdown(t *testing.T) {
	calc := esstax.NewCalculator(esstax.NewConverter("AUD", fixedToday))
	sale := esstax.ShareSaleEvent{
		SaleDate:        date.MustParse("2025-03-01"),
		SharesSold:      esstax.Q(100),
		Price:           esstax.M(30, "AUD"),
		AcquisitionDate: date.MustParse("2023-03-01"),
	}
	res, err := calc.CalculateCapitalGains(sale, esstax.M(2000, "AUD"))
	if err != nil {
		t.Fatal(err)
	}

	md := GainsMarkdown(res)
	for _, want := range []string{"# Capital Gains (AUD)", "standard-cgt", "## CGT Discount", "Held 731 days"} {
		if !strings.Contains(md, want) {
			t.Errorf("GainsMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestTaxReportMarkdown(t *testing.T) {
	calc := esstax.NewCalculator(esstax.NewConverter("AUD", fixedToday))
	fy := date.FinancialYear(2025)
	vestings := []esstax.VestingEvent{
		{VestDate: date.MustParse("2025-01-10"), Price: esstax.M(50, "AUD"), SharesVested: esstax.Q(250)},
	}
	report, err := calc.FinancialYearReport(fy, vestings, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	md := TaxReportMarkdown(report)
	for _, want := range []string{"# ESS Tax Report 2024-25", "## Vesting Income", "## Capital Gains", "2025-01-10"} {
		if !strings.Contains(md, want) {
			t.Errorf("TaxReportMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestThirtyDayMarkdown(t *testing.T) {
	res, err := esstax.EvaluateThirtyDayRule(date.MustParse("2025-03-01"), date.MustParse("2025-03-31"))
	if err != nil {
		t.Fatal(err)
	}
	md := ThirtyDayMarkdown(res)
	if !strings.Contains(md, "**applies**") {
		t.Errorf("ThirtyDayMarkdown() missing verdict in:\n%s", md)
	}
}
