package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/esstax"
)

// IncomeMarkdown renders the income side of a reconciled vesting.
func IncomeMarkdown(res *esstax.TaxableIncomeResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Taxable Income (%s)\n\n", res.Currency)

	fmt.Fprintln(&b, "| Shares | Price | Market Value | Cost Base | Taxable Income | Remaining |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|---:|")
	fmt.Fprintf(&b, "| %s | %s | %s | %s | **%s** | %s |\n",
		res.Breakdown.Shares,
		res.Breakdown.Price,
		res.Breakdown.MarketValue,
		res.Breakdown.CostBase,
		res.TaxableIncome,
		res.RemainingShares,
	)

	if len(res.Sales) == 0 {
		return b.String()
	}

	fmt.Fprint(&b, "\n## Sales against this vesting\n\n")
	fmt.Fprintln(&b, "| Sale Date | Days After Vest | 30-Day Rule | Shares | Income Delta |")
	fmt.Fprintln(&b, "|:---|---:|:---|---:|---:|")
	for _, s := range res.Sales {
		verdict := "no"
		if s.Rule.Applies {
			verdict = "yes"
		}
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s |\n",
			s.Rule.SaleDate, s.Rule.DaysBetween, verdict, s.SharesSold, s.Delta.SignedString())
	}

	return b.String()
}
