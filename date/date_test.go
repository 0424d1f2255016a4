package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"2025-03-01", "2025-03-01", 0},
		{"2025-03-01", "2025-03-31", 30},
		{"2025-03-01", "2025-04-01", 31},
		// across a leap day
		{"2024-02-28", "2024-03-01", 2},
		// across a whole year with a leap day in it
		{"2024-01-01", "2025-01-01", 366},
		{"2025-01-01", "2026-01-01", 365},
	}
	for _, tt := range tests {
		got := MustParse(tt.to).Sub(MustParse(tt.from))
		if got != tt.want {
			t.Errorf("Sub(%s, %s) = %d, want %d", tt.to, tt.from, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if d != New(2025, time.July, 1) {
		t.Errorf("Parse() = %s, want 2025-07-01", d)
	}

	if _, err := Parse("01/07/2025"); err == nil {
		t.Errorf("Parse() expected error for non ISO date")
	}
}

func TestFinancialYear(t *testing.T) {
	fy := FinancialYear(2025)
	if fy.From != New(2024, time.July, 1) || fy.To != New(2025, time.June, 30) {
		t.Errorf("FinancialYear(2025) = %s, want 2024-07-01 to 2025-06-30", fy)
	}
	if !fy.Contains(New(2024, time.July, 1)) || !fy.Contains(New(2025, time.June, 30)) {
		t.Errorf("FinancialYear(2025) should contain its boundaries")
	}
	if fy.Contains(New(2025, time.July, 1)) {
		t.Errorf("FinancialYear(2025) should not contain 2025-07-01")
	}
}

func TestFinancialYearOf(t *testing.T) {
	if got := FinancialYearOf(New(2025, time.June, 30)); got != FinancialYear(2025) {
		t.Errorf("FinancialYearOf(2025-06-30) = %s", got)
	}
	if got := FinancialYearOf(New(2025, time.July, 1)); got != FinancialYear(2026) {
		t.Errorf("FinancialYearOf(2025-07-01) = %s", got)
	}
}

func TestParseFY(t *testing.T) {
	tests := []struct {
		fy      string
		want    Range
		wantErr bool
	}{
		{fy: "2024-25", want: FinancialYear(2025)},
		{fy: "2024-2025", want: FinancialYear(2025)},
		{fy: "2025-26", want: FinancialYear(2026)},
		{fy: "2024-26", wantErr: true},
		{fy: "invalid", wantErr: true},
		{fy: "abc-de", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.fy, func(t *testing.T) {
			got, err := ParseFY(tt.fy)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFY(%q) expected error", tt.fy)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFY(%q) error = %v", tt.fy, err)
			}
			if got != tt.want {
				t.Errorf("ParseFY(%q) = %s, want %s", tt.fy, got, tt.want)
			}
		})
	}
}

func TestFYName(t *testing.T) {
	if got := FinancialYear(2025).FYName(); got != "2024-25" {
		t.Errorf("FYName() = %q, want %q", got, "2024-25")
	}
	if got := FinancialYear(2000).FYName(); got != "1999-00" {
		t.Errorf("FYName() = %q, want %q", got, "1999-00")
	}
}
