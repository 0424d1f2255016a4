package esstax

import (
	"fmt"

	"github.com/etnz/esstax/date"
	"github.com/shopspring/decimal"
)

// VestingEvent records one tranche of shares becoming taxable. It is a value
// type, immutable once constructed.
type VestingEvent struct {
	VestDate     date.Date
	Price        Money    // market price per share at vest, in its own currency
	SharesVested Quantity // non-negative, fractional allowed
	CostBase     Money    // amount already taxed, zero by default
	ExchangeRate decimal.Decimal // zero means "not supplied"; mandatory for foreign currency
}

// Validate checks the event's intrinsic invariants. Currency requirements are
// checked at conversion time, where the reporting currency is known.
func (v VestingEvent) Validate() error {
	if v.SharesVested.IsNegative() {
		return fmt.Errorf("shares vested %s is negative: %w", v.SharesVested, ErrInvalidInput)
	}
	if v.Price.IsNegative() {
		return fmt.Errorf("vest price %s is negative: %w", v.Price, ErrInvalidInput)
	}
	if v.VestDate.IsZero() {
		return fmt.Errorf("vesting has no date: %w", ErrInvalidInput)
	}
	return nil
}

// ShareSaleEvent records a disposal of shares. Immutable.
type ShareSaleEvent struct {
	SaleDate     date.Date
	SharesSold   Quantity
	Price        Money // sale price per share, in its own currency
	ExchangeRate decimal.Decimal // zero means "not supplied"
	Brokerage    Money // zero by default
	Fees         Money // supplemental fees, zero by default

	// AcquisitionDate is only consulted when the sale is evaluated standalone,
	// outside a reconciler run. Zero means unknown.
	AcquisitionDate date.Date
}

func (s ShareSaleEvent) Validate() error {
	if s.SharesSold.IsNegative() {
		return fmt.Errorf("shares sold %s is negative: %w", s.SharesSold, ErrInvalidInput)
	}
	if s.Price.IsNegative() {
		return fmt.Errorf("sale price %s is negative: %w", s.Price, ErrInvalidInput)
	}
	if s.SaleDate.IsZero() {
		return fmt.Errorf("sale has no date: %w", ErrInvalidInput)
	}
	return nil
}

// totalFees is the sum of brokerage and supplemental fees, in the sale's currency.
func (s ShareSaleEvent) totalFees() Money { return s.Brokerage.Add(s.Fees) }
