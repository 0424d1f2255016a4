package esstax

import (
	"fmt"

	"github.com/etnz/esstax/date"
	"github.com/shopspring/decimal"
)

// DiscountHoldingDays is the holding period, in whole days, that must be
// strictly exceeded for the CGT discount: exactly 365 days is not eligible.
const DiscountHoldingDays = 365

// discountRate is the long-term CGT discount for individuals.
var discountRate = decimal.New(5, -1) // 0.5

// DiscountResult is the outcome of the CGT discount evaluation.
type DiscountResult struct {
	Eligible       bool
	Rate           decimal.Decimal // 0 or 0.5; 0.5 only for an eligible gain, never a loss
	HoldingDays    int
	GrossGain      Money
	DiscountedGain Money // gross × (1 − rate), rounded to 2 decimals
}

// EvaluateDiscount decides whether a disposal qualifies for the long-term CGT
// discount. Time eligibility alone is not enough: a loss keeps a zero rate
// even when held long enough. That asymmetry is statutory, not a bug.
func EvaluateDiscount(acquisition, sale date.Date, gross Money) (DiscountResult, error) {
	if sale.Before(acquisition) {
		return DiscountResult{}, fmt.Errorf("sale date %s is before acquisition date %s: %w", sale, acquisition, ErrInvalidDateOrder)
	}
	days := sale.Sub(acquisition)
	eligible := days > DiscountHoldingDays

	rate := decimal.Zero
	if eligible && gross.IsPositive() {
		rate = discountRate
	}
	discounted := gross.Mul(Q(decimal.New(1, 0).Sub(rate))).Round2()

	return DiscountResult{
		Eligible:       eligible,
		Rate:           rate,
		HoldingDays:    days,
		GrossGain:      gross.Round2(),
		DiscountedGain: discounted,
	}, nil
}
