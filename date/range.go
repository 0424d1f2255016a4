package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// Contains return true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

func (r Range) String() string { return fmt.Sprintf("%s to %s", r.From, r.To) }

// FinancialYear returns the Australian financial year ending 30 June of
// 'endYear'. FinancialYear(2025) is 2024-07-01 to 2025-06-30.
func FinancialYear(endYear int) Range {
	return Range{
		From: New(endYear-1, time.July, 1),
		To:   New(endYear, time.June, 30),
	}
}

// FinancialYearOf returns the financial year containing d.
func FinancialYearOf(d Date) Range {
	if d.Month() >= time.July {
		return FinancialYear(d.Year() + 1)
	}
	return FinancialYear(d.Year())
}

// ParseFY parses a financial year written as "2024-25" or "2024-2025" and
// returns its range.
func ParseFY(fy string) (Range, error) {
	parts := strings.SplitN(fy, "-", 2)
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("invalid financial year %q want format \"2024-25\"", fy)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) != 4 {
		return Range{}, fmt.Errorf("invalid financial year %q want format \"2024-25\"", fy)
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return Range{}, fmt.Errorf("invalid financial year %q want format \"2024-25\"", fy)
	}
	if len(parts[1]) == 2 {
		end += start - start%100
	}
	if end != start+1 {
		return Range{}, fmt.Errorf("invalid financial year %q: %d does not follow %d", fy, end, start)
	}
	return FinancialYear(end), nil
}

// FYName returns the conventional short name of the financial year range,
// like "2024-25".
func (r Range) FYName() string {
	return fmt.Sprintf("%d-%02d", r.From.Year(), r.To.Year()%100)
}
