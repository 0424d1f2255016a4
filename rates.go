package esstax

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/esstax/date"
	"github.com/shopspring/decimal"
)

// RateTable holds user-supplied historical exchange rates, one series per
// source currency, expressed as units of the source per one reporting unit.
// Rates are inputs read from a local document, never fetched.
type RateTable struct {
	reporting string
	series    map[string][]ratePoint // sorted by date, ascending
}

type ratePoint struct {
	on   date.Date
	rate decimal.Decimal
}

// ImportRates reads a rates document from 'r'. The document is JSON shaped
// like the RBA historical-rates export:
//
//	{
//	  "reporting": "AUD",
//	  "series": {
//	    "USD": {"2025-06-27": 0.6512, "2025-06-30": 0.6548}
//	  }
//	}
func ImportRates(r io.Reader) (*RateTable, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read rates document: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, fmt.Errorf("cannot parse rates document: %w", err)
	}

	jval, err := jsonpath.Get("$.reporting", jobj)
	if err != nil {
		return nil, fmt.Errorf("rates document has no reporting currency: %w", err)
	}
	reporting, ok := scalar(jval).(string)
	if !ok {
		return nil, fmt.Errorf("reporting currency is not a string: %v", jval)
	}

	jval, err = jsonpath.Get("$.series", jobj)
	if err != nil {
		return nil, fmt.Errorf("rates document has no series: %w", err)
	}
	jseries, ok := scalar(jval).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("series is not an object: %v", jval)
	}

	t := &RateTable{reporting: reporting, series: make(map[string][]ratePoint)}
	for currency, jpoints := range jseries {
		points, ok := jpoints.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("series %q is not an object of date to rate", currency)
		}
		for day, jrate := range points {
			on, err := date.Parse(day)
			if err != nil {
				return nil, fmt.Errorf("series %q: %w", currency, err)
			}
			rate, ok := jrate.(float64)
			if !ok || rate <= 0 {
				return nil, fmt.Errorf("series %q on %s: rate %v is not a positive number", currency, on, jrate)
			}
			t.series[currency] = append(t.series[currency], ratePoint{on: on, rate: decimal.NewFromFloat(rate)})
		}
		pts := t.series[currency]
		sort.Slice(pts, func(i, j int) bool { return pts[i].on.Before(pts[j].on) })
	}
	return t, nil
}

// scalar unwraps single-element lists: jsonpath is never clear about whether
// it returns a list of 1 answer or a single answer.
func scalar(jval any) any {
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		return jlist[0]
	}
	return jval
}

// Reporting returns the reporting currency of the table.
func (t *RateTable) Reporting() string { return t.reporting }

// Currencies returns the source currencies the table has a series for.
func (t *RateTable) Currencies() []string {
	out := make([]string, 0, len(t.series))
	for c := range t.series {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Rate returns the most recent rate for 'currency' on or before 'on'.
// Weekends and holidays fall back to the previous published rate.
func (t *RateTable) Rate(currency string, on date.Date) (decimal.Decimal, error) {
	pts := t.series[currency]
	best := -1
	for i, p := range pts {
		if p.on.After(on) {
			break
		}
		best = i
	}
	if best < 0 {
		return decimal.Decimal{}, fmt.Errorf("no %s rate on or before %s: %w", currency, on, ErrMissingExchangeRate)
	}
	return pts[best].rate, nil
}
