package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/esstax"
)

// GainsMarkdown renders a capital gains result.
func GainsMarkdown(res *esstax.CapitalGainsResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Capital Gains (%s)\n\n", res.Currency)
	fmt.Fprintf(&b, "Applied rule: %s\n\n", res.AppliedRule)

	fmt.Fprintln(&b, "| Gross Proceeds | Fees | Net Proceeds | Cost Base | Capital Gain |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|")
	fmt.Fprintf(&b, "| %s | %s | %s | %s | **%s** |\n",
		res.GrossProceeds,
		res.Breakdown.Fees,
		res.NetProceeds,
		res.CostBase,
		res.CapitalGain.SignedString(),
	)

	if res.Discount.Eligible || !res.Discount.Rate.IsZero() {
		fmt.Fprint(&b, "\n## CGT Discount\n\n")
		fmt.Fprintf(&b, "Held %d days", res.Discount.HoldingDays)
		if res.Discount.Rate.IsZero() {
			fmt.Fprint(&b, ", no discount applied.\n")
		} else {
			fmt.Fprintf(&b, ", %s discount: %s reduced to %s.\n",
				res.Discount.Rate, res.Discount.GrossGain, res.Discount.DiscountedGain)
		}
	}

	return b.String()
}
