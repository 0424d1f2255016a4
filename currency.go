package esstax

import (
	"fmt"

	"github.com/etnz/esstax/date"
	"github.com/shopspring/decimal"
)

// DefaultReportingCurrency is the currency all final figures are expressed in.
const DefaultReportingCurrency = "AUD"

// Pair identifies a supported conversion, always into the reporting currency.
type Pair struct{ From, To string }

// Converter turns foreign-currency amounts into the reporting currency. Rates
// are always supplied by the caller; the converter never fetches anything.
//
// The set of supported pairs is data: new source currencies are enabled with
// Support, without touching the conversion algorithm.
type Converter struct {
	reporting string
	pairs     map[Pair]bool
	today     func() date.Date
}

// NewConverter returns a converter into 'reporting'. 'today' is the fallback
// conversion date for same-currency results when the caller supplies none; nil
// means the wall clock. Tests inject a fixed date to stay deterministic.
//
// USD is supported out of the box, the only foreign currency ESS statements
// commonly carry.
func NewConverter(reporting string, today func() date.Date) *Converter {
	if today == nil {
		today = date.Today
	}
	c := &Converter{reporting: reporting, pairs: make(map[Pair]bool), today: today}
	c.Support("USD")
	return c
}

// Reporting returns the reporting currency.
func (c *Converter) Reporting() string { return c.reporting }

// Support enables conversion from 'source' into the reporting currency.
func (c *Converter) Support(source string) { c.pairs[Pair{source, c.reporting}] = true }

// Conversion is the outcome of a currency conversion. A rate of exactly 1 with
// identical currencies signals that no conversion was performed.
type Conversion struct {
	Original  Money
	Converted Money
	Rate      decimal.Decimal
	Date      date.Date
}

// Convert divides 'amount' by 'rate' into the reporting currency, rounding the
// result to 2 decimal places at the point of conversion.
func (c *Converter) Convert(amount Money, rate decimal.Decimal, on date.Date) (Conversion, error) {
	if amount.IsNegative() {
		return Conversion{}, fmt.Errorf("cannot convert negative amount %s: %w", amount, ErrInvalidInput)
	}
	if rate.Sign() <= 0 {
		return Conversion{}, fmt.Errorf("exchange rate %s is not positive: %w", rate, ErrInvalidInput)
	}
	converted := M(amount.Decimal().Div(rate), c.reporting).Round2()
	return Conversion{Original: amount, Converted: converted, Rate: rate, Date: on}, nil
}

// ConvertShareEvent converts price × quantity into 'target'. When the price is
// already in the target currency the amount is returned unchanged with a rate
// of 1, dated 'on' or, when 'on' is zero, the injected current date. A foreign
// price requires both a rate and a date.
func (c *Converter) ConvertShareEvent(price Money, quantity Quantity, target string, rate decimal.Decimal, on date.Date) (Conversion, error) {
	if quantity.IsNegative() {
		return Conversion{}, fmt.Errorf("cannot convert negative quantity %s: %w", quantity, ErrInvalidInput)
	}
	amount := price.Mul(quantity)

	if price.Currency() == target {
		when := on
		if when.IsZero() {
			when = c.today()
		}
		return Conversion{Original: amount, Converted: amount, Rate: decimal.NewFromInt(1), Date: when}, nil
	}

	if target != c.reporting || !c.pairs[Pair{price.Currency(), target}] {
		return Conversion{}, fmt.Errorf("conversion %s to %s is not configured: %w", price.Currency(), target, ErrUnsupportedConversion)
	}
	if rate.IsZero() {
		return Conversion{}, fmt.Errorf("conversion %s to %s on %s: %w", price.Currency(), target, on, ErrMissingExchangeRate)
	}
	if on.IsZero() {
		return Conversion{}, fmt.Errorf("conversion %s to %s: %w", price.Currency(), target, ErrMissingConversionDate)
	}
	return c.Convert(amount, rate, on)
}

// toReporting converts an arbitrary amount (fees, cost base) into the
// reporting currency. Amounts without a currency are treated as already
// reported; negative amounts are allowed here since only prices and
// share-event amounts are sign-checked.
func (c *Converter) toReporting(m Money, rate decimal.Decimal, on date.Date) (Money, error) {
	if m.Currency() == "" || m.Currency() == c.reporting {
		return M(m.Decimal(), c.reporting), nil
	}
	if !c.pairs[Pair{m.Currency(), c.reporting}] {
		return Money{}, fmt.Errorf("conversion %s to %s is not configured: %w", m.Currency(), c.reporting, ErrUnsupportedConversion)
	}
	if rate.IsZero() {
		return Money{}, fmt.Errorf("amount %s in %s: %w", m, m.Currency(), ErrMissingExchangeRate)
	}
	if rate.Sign() < 0 {
		return Money{}, fmt.Errorf("exchange rate %s is not positive: %w", rate, ErrInvalidInput)
	}
	return M(m.Decimal().Div(rate), c.reporting).Round2(), nil
}
