package esstax

import (
	"fmt"
	"slices"
)

// Applied rules on a capital gains figure.
const (
	RuleStandardCGT = "standard-cgt"
	RuleThirtyDay   = "30-day"
	RuleNone        = "none"
)

// IncomeBreakdown mirrors the inputs of a taxable income figure, all monetary
// fields in the reporting currency except Price which keeps its own.
type IncomeBreakdown struct {
	MarketValue Money
	CostBase    Money
	Shares      Quantity
	Price       Money
}

// SaleAdjustment is the per-sale sub-result of a reconciliation: the 30-day
// outcome for that sale and the net income delta it contributed.
type SaleAdjustment struct {
	Rule       ThirtyDayResult
	SharesSold Quantity
	Delta      Money // zero when the rule does not apply
}

// TaxableIncomeResult is the income side of a vesting after reconciling its sales.
type TaxableIncomeResult struct {
	TaxableIncome   Money
	Currency        string
	Breakdown       IncomeBreakdown
	Sales           []SaleAdjustment // ordered by sale date, ascending
	RemainingShares Quantity         // vested minus all shares consumed by sales
}

// GainsBreakdown mirrors the inputs of a capital gains figure, in the
// reporting currency.
type GainsBreakdown struct {
	Proceeds Money
	Fees     Money
	CostBase Money
}

// CapitalGainsResult is the gains side of a disposal.
type CapitalGainsResult struct {
	CapitalGain   Money // signed, after discount; positive means gain
	IsGain        bool  // sign of the final (discounted) figure
	CostBase      Money
	GrossProceeds Money
	NetProceeds   Money // after fees
	Currency      string
	AppliedRule   string // RuleStandardCGT, RuleThirtyDay or RuleNone
	Discount      DiscountResult
	Breakdown     GainsBreakdown
}

// Calculator binds the pure evaluators to a currency converter. It holds no
// other state and is safe for concurrent use.
type Calculator struct {
	conv *Converter
}

func NewCalculator(conv *Converter) *Calculator { return &Calculator{conv: conv} }

// Converter returns the calculator's converter.
func (c *Calculator) Converter() *Converter { return c.conv }

// Reconcile apportions one vesting between the sales that consumed its shares.
//
// The baseline taxable income is the full vesting's market value minus cost
// base, in the reporting currency. Sales outside the 30-day window only
// consume shares: their slice of vesting income stays in the baseline. Sales
// inside the window re-characterize their proportional slice, replacing it
// with sale proceeds minus proportional cost base minus fees.
//
// Sales are processed in date order regardless of the order given, and the
// running total of shares sold must never exceed the shares vested.
func (c *Calculator) Reconcile(vest VestingEvent, sales []ShareSaleEvent) (*TaxableIncomeResult, error) {
	if err := vest.Validate(); err != nil {
		return nil, err
	}

	ordered := slices.Clone(sales)
	slices.SortStableFunc(ordered, func(a, b ShareSaleEvent) int {
		return a.SaleDate.Sub(b.SaleDate) // ascending by date
	})

	var sold Quantity
	for _, s := range ordered {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		sold = sold.Add(s.SharesSold)
		if sold.GreaterThan(vest.SharesVested) {
			return nil, fmt.Errorf("cumulative %s shares sold exceed %s vested: %w", sold, vest.SharesVested, ErrOverAllocation)
		}
	}

	reporting := c.conv.Reporting()

	market, err := c.conv.ConvertShareEvent(vest.Price, vest.SharesVested, reporting, vest.ExchangeRate, vest.VestDate)
	if err != nil {
		return nil, fmt.Errorf("vesting on %s: %w", vest.VestDate, err)
	}
	costBase, err := c.conv.toReporting(vest.CostBase, vest.ExchangeRate, vest.VestDate)
	if err != nil {
		return nil, fmt.Errorf("vesting on %s: %w", vest.VestDate, err)
	}

	baseline := market.Converted.Sub(costBase)
	total := baseline

	adjustments := make([]SaleAdjustment, 0, len(ordered))
	var consumed Quantity
	for _, s := range ordered {
		rule, err := EvaluateThirtyDayRule(vest.VestDate, s.SaleDate)
		if err != nil {
			return nil, err
		}
		adj := SaleAdjustment{Rule: rule, SharesSold: s.SharesSold, Delta: M(0, reporting)}

		if rule.Applies && s.SharesSold.IsPositive() {
			// The slice of baseline income attributable to these shares is
			// replaced by the sale-side figure. Multiply before dividing to
			// keep proportional amounts exact.
			proceeds, err := c.conv.ConvertShareEvent(s.Price, s.SharesSold, reporting, s.ExchangeRate, s.SaleDate)
			if err != nil {
				return nil, fmt.Errorf("sale on %s: %w", s.SaleDate, err)
			}
			fees, err := c.conv.toReporting(s.totalFees(), s.ExchangeRate, s.SaleDate)
			if err != nil {
				return nil, fmt.Errorf("sale on %s: %w", s.SaleDate, err)
			}
			propCost := costBase.Mul(s.SharesSold).Div(vest.SharesVested)
			propIncome := baseline.Mul(s.SharesSold).Div(vest.SharesVested)
			delta := proceeds.Converted.Sub(propCost).Sub(fees).Sub(propIncome)
			total = total.Add(delta)
			adj.Delta = delta.Round2()
		}

		consumed = consumed.Add(s.SharesSold)
		adjustments = append(adjustments, adj)
	}

	return &TaxableIncomeResult{
		TaxableIncome:   total.Round2(),
		Currency:        reporting,
		Breakdown:       IncomeBreakdown{MarketValue: market.Converted, CostBase: costBase, Shares: vest.SharesVested, Price: vest.Price},
		Sales:           adjustments,
		RemainingShares: vest.SharesVested.Sub(consumed),
	}, nil
}

// CalculateCapitalGains evaluates a disposal on its own, for sales that were
// not captured by 30-day re-characterization: typically sales more than 30
// days after the relevant vesting, or sales whose vesting record is gone and
// only a cost base figure survives.
//
// The discount evaluator runs when the sale carries an acquisition date;
// without one the gross gain stands undiscounted under the standard rule.
func (c *Calculator) CalculateCapitalGains(sale ShareSaleEvent, costBase Money) (*CapitalGainsResult, error) {
	if err := sale.Validate(); err != nil {
		return nil, err
	}
	reporting := c.conv.Reporting()

	if sale.SharesSold.IsZero() {
		// Nothing was disposed of: no rule applies.
		zero := M(0, reporting)
		return &CapitalGainsResult{
			CapitalGain: zero, CostBase: zero, GrossProceeds: zero, NetProceeds: zero,
			Currency: reporting, AppliedRule: RuleNone,
			Breakdown: GainsBreakdown{Proceeds: zero, Fees: zero, CostBase: zero},
		}, nil
	}

	proceeds, err := c.conv.ConvertShareEvent(sale.Price, sale.SharesSold, reporting, sale.ExchangeRate, sale.SaleDate)
	if err != nil {
		return nil, fmt.Errorf("sale on %s: %w", sale.SaleDate, err)
	}
	fees, err := c.conv.toReporting(sale.totalFees(), sale.ExchangeRate, sale.SaleDate)
	if err != nil {
		return nil, fmt.Errorf("sale on %s: %w", sale.SaleDate, err)
	}
	base, err := c.conv.toReporting(costBase, sale.ExchangeRate, sale.SaleDate)
	if err != nil {
		return nil, fmt.Errorf("sale on %s: %w", sale.SaleDate, err)
	}

	gross := proceeds.Converted
	net := gross.Sub(fees)
	grossGain := net.Sub(base)

	var disc DiscountResult
	if !sale.AcquisitionDate.IsZero() {
		disc, err = EvaluateDiscount(sale.AcquisitionDate, sale.SaleDate, grossGain)
		if err != nil {
			return nil, err
		}
	} else {
		// No acquisition date: no holding period to measure, zero discount.
		disc = DiscountResult{GrossGain: grossGain.Round2(), DiscountedGain: grossGain.Round2()}
	}

	capital := disc.DiscountedGain
	return &CapitalGainsResult{
		CapitalGain:   capital,
		IsGain:        capital.IsPositive(),
		CostBase:      base.Round2(),
		GrossProceeds: gross.Round2(),
		NetProceeds:   net.Round2(),
		Currency:      reporting,
		AppliedRule:   RuleStandardCGT,
		Discount:      disc,
		Breakdown:     GainsBreakdown{Proceeds: gross.Round2(), Fees: fees.Round2(), CostBase: base.Round2()},
	}, nil
}

// linkedGains evaluates the capital gains side of a sale disposing from a
// vesting. It returns nil when the 30-day rule re-characterized the sale,
// since the proceeds are then assessed as income and no CGT event arises.
// Otherwise the gain is measured against the proportional slice of the
// vesting's cost base, from the vesting date unless the sale carries its own
// acquisition date.
func (c *Calculator) linkedGains(vest VestingEvent, sale ShareSaleEvent) (*CapitalGainsResult, error) {
	rule, err := EvaluateThirtyDayRule(vest.VestDate, sale.SaleDate)
	if err != nil {
		return nil, err
	}
	if rule.Applies {
		return nil, nil
	}

	disposal := sale
	if disposal.AcquisitionDate.IsZero() {
		disposal.AcquisitionDate = vest.VestDate
	}
	var propCost Money
	if sale.SharesSold.IsPositive() {
		base, err := c.conv.toReporting(vest.CostBase, vest.ExchangeRate, vest.VestDate)
		if err != nil {
			return nil, fmt.Errorf("vesting on %s: %w", vest.VestDate, err)
		}
		propCost = base.Mul(sale.SharesSold).Div(vest.SharesVested)
	}
	return c.CalculateCapitalGains(disposal, propCost)
}

// CombinedResult is the end-to-end outcome of a single vesting and a single sale.
type CombinedResult struct {
	// TaxableIncome always matches what Reconcile reports for the same inputs.
	TaxableIncome Money
	Currency      string

	// Vesting is the per-vesting breakdown. It is nil when the 30-day rule
	// re-characterized the sale, since income is then assessed at sale rather
	// than at vesting.
	Vesting *TaxableIncomeResult

	CapitalGains *CapitalGainsResult
}

// ProcessVestingAndSale handles the single-sale case end-to-end. A sale within
// the 30-day window skips CGT entirely: the proceeds become income and the
// gains figure is zero under RuleThirtyDay. A later sale leaves the vesting
// income untouched and yields a standard capital gain against the
// proportional cost base, measured from the vesting date unless the sale
// carries its own acquisition date.
func (c *Calculator) ProcessVestingAndSale(vest VestingEvent, sale ShareSaleEvent) (*CombinedResult, error) {
	income, err := c.Reconcile(vest, []ShareSaleEvent{sale})
	if err != nil {
		return nil, err
	}
	reporting := c.conv.Reporting()

	cg, err := c.linkedGains(vest, sale)
	if err != nil {
		return nil, err
	}
	if cg == nil {
		zero := M(0, reporting)
		cg = &CapitalGainsResult{
			CapitalGain: zero, CostBase: zero, GrossProceeds: zero, NetProceeds: zero,
			Currency: reporting, AppliedRule: RuleThirtyDay,
			Breakdown: GainsBreakdown{Proceeds: zero, Fees: zero, CostBase: zero},
		}
		return &CombinedResult{TaxableIncome: income.TaxableIncome, Currency: reporting, Vesting: nil, CapitalGains: cg}, nil
	}
	return &CombinedResult{TaxableIncome: income.TaxableIncome, Currency: reporting, Vesting: income, CapitalGains: cg}, nil
}
