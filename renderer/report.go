package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/esstax"
)

// TaxReportMarkdown renders a financial-year tax report.
func TaxReportMarkdown(report *esstax.TaxReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# ESS Tax Report %s\n\n", report.Range.FYName())
	fmt.Fprintf(&b, "Period: %s. All figures in %s.\n\n", report.Range, report.Currency)

	fmt.Fprint(&b, "## Vesting Income\n\n")
	fmt.Fprintln(&b, "| Vest Date | Shares | Market Value | Taxable Income | Remaining |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	for _, v := range report.Vestings {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			v.Event.VestDate,
			v.Income.Breakdown.Shares,
			v.Income.Breakdown.MarketValue,
			v.Income.TaxableIncome,
			v.Income.RemainingShares,
		)
	}
	fmt.Fprintf(&b, "| **Total** | | | **%s** | |\n", report.TotalIncome)

	fmt.Fprint(&b, "\n## Capital Gains\n\n")
	fmt.Fprintln(&b, "| Sale Date | Shares | Net Proceeds | Rule | Capital Gain |")
	fmt.Fprintln(&b, "|:---|---:|---:|:---|---:|")
	for _, d := range report.Disposals {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			d.Event.SaleDate,
			d.Event.SharesSold,
			d.Gains.NetProceeds,
			d.Gains.AppliedRule,
			d.Gains.CapitalGain.SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **Total** | | | | **%s** |\n", report.TotalGains.SignedString())

	return b.String()
}
