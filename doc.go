// Package esstax computes the Australian tax consequences of Employee Share
// Scheme equity events: the assessable income created when restricted stock
// units vest, the capital gain or loss realized when the resulting shares are
// sold, the statutory 30-day rule that shifts the taxing point from vesting to
// sale, and the 50% CGT discount for assets held more than a year.
//
// The core functionalities include:
//   - Currency Conversion: turning foreign-currency amounts into the reporting
//     currency (AUD) from explicitly supplied exchange rates, never from a
//     hidden clock or a network call.
//   - Thirty-Day Rule: deciding whether a disposal within 30 days of vesting
//     re-characterizes the vesting income.
//   - CGT Discount: deciding whether a disposal qualifies for the long-term
//     discount, with the statutory asymmetry that losses are never discounted.
//   - Reconciliation: apportioning the shares of a single vesting between the
//     sales that consumed them, producing combined taxable-income and
//     capital-gains figures.
//
// Every operation is a pure function over immutable inputs: computations are
// exact decimals until the single rounding applied to each final figure, so
// results are deterministic and safe for concurrent callers.
//
// This package serves as the foundational logic for the `esst` command-line
// tool, which adds CSV ingestion, rate-table lookup and report rendering on
// top of the engine.
package esstax
