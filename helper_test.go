package esstax

import (
	"github.com/etnz/esstax/date"
	"github.com/shopspring/decimal"
)

// AUD is a helper for test to create reporting-currency money from const
func AUD(v float64) Money { return M(v, "AUD") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

func rate(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// frozen is the injected "current date" so conversions stay deterministic.
func frozen() date.Date { return date.MustParse("2025-06-30") }

func testCalculator() *Calculator { return NewCalculator(NewConverter("AUD", frozen)) }
