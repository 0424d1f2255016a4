package esstax

import (
	"fmt"

	"github.com/etnz/esstax/date"
)

// ThirtyDayWindow is the number of days, inclusive, within which a disposal
// shifts the taxing point from the vesting date to the sale date.
const ThirtyDayWindow = 30

// ThirtyDayResult is the outcome of the 30-day rule evaluation.
type ThirtyDayResult struct {
	Applies       bool
	DaysBetween   int // whole days from reference to sale, never negative
	ReferenceDate date.Date
	SaleDate      date.Date
	Reason        string
}

// EvaluateThirtyDayRule decides whether a sale on 'sale' re-characterizes a
// vesting dated 'reference'. The boundary is inclusive: a sale exactly 30 days
// after vesting still applies, 31 days does not.
func EvaluateThirtyDayRule(reference, sale date.Date) (ThirtyDayResult, error) {
	if sale.Before(reference) {
		return ThirtyDayResult{}, fmt.Errorf("sale date %s is before reference date %s: %w", sale, reference, ErrInvalidDateOrder)
	}
	days := sale.Sub(reference)
	applies := days <= ThirtyDayWindow
	reason := fmt.Sprintf("sold %d days after vesting, within the %d-day window: taxing point moves to the sale", days, ThirtyDayWindow)
	if !applies {
		reason = fmt.Sprintf("sold %d days after vesting, outside the %d-day window: taxing point stays at vesting", days, ThirtyDayWindow)
	}
	return ThirtyDayResult{
		Applies:       applies,
		DaysBetween:   days,
		ReferenceDate: reference,
		SaleDate:      sale,
		Reason:        reason,
	}, nil
}
