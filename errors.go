package esstax

import "errors"

// Every validation failure wraps one of these sentinel kinds, so callers can
// tell them apart with errors.Is. None are transient: retrying an operation
// with the same inputs reproduces the same failure.
var (
	// ErrInvalidInput reports a negative amount or a non-positive exchange rate.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingExchangeRate reports a foreign-currency amount with no rate supplied.
	ErrMissingExchangeRate = errors.New("missing exchange rate")

	// ErrMissingConversionDate reports a foreign-currency conversion with no date supplied.
	ErrMissingConversionDate = errors.New("missing conversion date")

	// ErrUnsupportedConversion reports a currency pair the converter is not configured for.
	ErrUnsupportedConversion = errors.New("unsupported conversion")

	// ErrInvalidDateOrder reports a sale date earlier than its reference date.
	ErrInvalidDateOrder = errors.New("invalid date order")

	// ErrOverAllocation reports cumulative shares sold exceeding the shares vested.
	ErrOverAllocation = errors.New("over-allocation")
)
