// Package renderer turns esstax results into markdown reports. It only reads
// the result shapes: how figures are computed, aggregated or persisted is the
// engine's and the caller's business.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/esstax"
)

// ConversionMarkdown renders a single currency conversion.
func ConversionMarkdown(conv esstax.Conversion) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Currency Conversion on %s\n\n", conv.Date)
	fmt.Fprintln(&b, "| Original | Rate | Converted |")
	fmt.Fprintln(&b, "|---:|---:|---:|")
	fmt.Fprintf(&b, "| %s | %s | %s |\n", conv.Original, conv.Rate, conv.Converted)

	return b.String()
}

// ThirtyDayMarkdown renders a 30-day rule evaluation.
func ThirtyDayMarkdown(res esstax.ThirtyDayResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Thirty-Day Rule: %s to %s\n\n", res.ReferenceDate, res.SaleDate)
	verdict := "does not apply"
	if res.Applies {
		verdict = "applies"
	}
	fmt.Fprintf(&b, "The rule **%s**: %s.\n", verdict, res.Reason)

	return b.String()
}
