package esstax

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/esstax/date"
	"github.com/shopspring/decimal"
)

// this file contains functions to handle the import format.
// Records come from broker or registry exports, reshaped by the user into a
// fixed set of named columns. There is no format detection: a file either has
// the expected header or the import fails.

// Vesting CSV columns. cost_base and exchange_rate may be empty.
var vestingColumns = []string{"vest_date", "shares", "price", "currency", "cost_base", "exchange_rate"}

// Sale CSV columns. vesting links a sale to a vesting row (1-based); an empty
// vesting marks a standalone disposal whose cost_base column is used instead.
var saleColumns = []string{"sale_date", "shares", "price", "currency", "exchange_rate", "brokerage", "fees", "acquisition_date", "vesting", "cost_base"}

// SaleRecord is one imported sale line: the event plus its link to the
// vesting it disposes from, or a standalone cost base when there is none.
type SaleRecord struct {
	Event    ShareSaleEvent
	Vesting  int   // 1-based vesting row, 0 for a standalone disposal
	CostBase Money // standalone disposals only
}

// ImportVestings reads vesting events from 'r' in the import CSV format.
func ImportVestings(r io.Reader) ([]VestingEvent, error) {
	rows, idx, err := readTable(r, vestingColumns, []string{"vest_date", "shares", "price", "currency"})
	if err != nil {
		return nil, err
	}

	var events []VestingEvent
	for n, row := range rows {
		line := n + 2 // header is line 1
		vestDate, err := date.Parse(row[idx["vest_date"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		shares, err := parseQuantity(row[idx["shares"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: shares: %w", line, err)
		}
		currency := strings.TrimSpace(row[idx["currency"]])
		price, err := parseMoney(row[idx["price"]], currency)
		if err != nil {
			return nil, fmt.Errorf("line %d: price: %w", line, err)
		}
		costBase, err := parseOptionalMoney(cell(row, idx, "cost_base"), currency)
		if err != nil {
			return nil, fmt.Errorf("line %d: cost_base: %w", line, err)
		}
		rate, err := parseOptionalDecimal(cell(row, idx, "exchange_rate"))
		if err != nil {
			return nil, fmt.Errorf("line %d: exchange_rate: %w", line, err)
		}

		ev := VestingEvent{VestDate: vestDate, Price: price, SharesVested: shares, CostBase: costBase, ExchangeRate: rate}
		if err := ev.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// ImportSales reads sale records from 'r' in the import CSV format.
func ImportSales(r io.Reader) ([]SaleRecord, error) {
	rows, idx, err := readTable(r, saleColumns, []string{"sale_date", "shares", "price", "currency"})
	if err != nil {
		return nil, err
	}

	var records []SaleRecord
	for n, row := range rows {
		line := n + 2
		saleDate, err := date.Parse(row[idx["sale_date"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		shares, err := parseQuantity(row[idx["shares"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: shares: %w", line, err)
		}
		currency := strings.TrimSpace(row[idx["currency"]])
		price, err := parseMoney(row[idx["price"]], currency)
		if err != nil {
			return nil, fmt.Errorf("line %d: price: %w", line, err)
		}
		rate, err := parseOptionalDecimal(cell(row, idx, "exchange_rate"))
		if err != nil {
			return nil, fmt.Errorf("line %d: exchange_rate: %w", line, err)
		}
		brokerage, err := parseOptionalMoney(cell(row, idx, "brokerage"), currency)
		if err != nil {
			return nil, fmt.Errorf("line %d: brokerage: %w", line, err)
		}
		fees, err := parseOptionalMoney(cell(row, idx, "fees"), currency)
		if err != nil {
			return nil, fmt.Errorf("line %d: fees: %w", line, err)
		}

		var acquired date.Date
		if s := cell(row, idx, "acquisition_date"); s != "" {
			acquired, err = date.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("line %d: acquisition_date: %w", line, err)
			}
		}

		rec := SaleRecord{Event: ShareSaleEvent{
			SaleDate: saleDate, SharesSold: shares, Price: price,
			ExchangeRate: rate, Brokerage: brokerage, Fees: fees,
			AcquisitionDate: acquired,
		}}
		if s := cell(row, idx, "vesting"); s != "" {
			rec.Vesting, err = strconv.Atoi(s)
			if err != nil || rec.Vesting < 1 {
				return nil, fmt.Errorf("line %d: vesting must be a positive row number, got %q", line, s)
			}
		} else {
			rec.CostBase, err = parseOptionalMoney(cell(row, idx, "cost_base"), currency)
			if err != nil {
				return nil, fmt.Errorf("line %d: cost_base: %w", line, err)
			}
		}
		if err := rec.Event.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// readTable reads the CSV, checks that every required column is present and
// that no unknown column sneaks in, and returns rows plus the header index.
func readTable(r io.Reader, known, required []string) ([][]string, map[string]int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.ToLower(name))
		found := false
		for _, k := range known {
			if k == name {
				found = true
				break
			}
		}
		if !found {
			return nil, nil, fmt.Errorf("unknown column %q, want a subset of %v", name, known)
		}
		idx[name] = i
	}
	for _, req := range required {
		if _, ok := idx[req]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", req)
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read records: %w", err)
	}
	return rows, idx, nil
}

// cell returns the trimmed value of an optional column, or "" when the column
// is absent from the file.
func cell(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseQuantity(s string) (Quantity, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	return Q(d), nil
}

func parseMoney(s, currency string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return M(d, currency), nil
}

func parseOptionalMoney(s, currency string) (Money, error) {
	if s == "" {
		return M(0, currency), nil
	}
	return parseMoney(s, currency)
}

func parseOptionalDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return d, nil
}
