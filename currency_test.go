package esstax

import (
	"errors"
	"testing"

	"github.com/etnz/esstax/date"
	"github.com/shopspring/decimal"
)

func TestConvert(t *testing.T) {
	conv := NewConverter("AUD", frozen)
	on := date.MustParse("2025-03-14")

	tests := []struct {
		name   string
		amount Money
		rate   float64
		want   Money
	}{
		{"usd to aud", USD(4000), 0.65, AUD(6153.85)},
		{"zero amount", USD(0), 0.65, AUD(0)},
		{"rounds half up", USD(10), 3, AUD(3.33)},
		{"exact division", USD(100), 0.5, AUD(200)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.Convert(tt.amount, rate(tt.rate), on)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if !got.Converted.Equal(tt.want) {
				t.Errorf("Convert() = %s, want %s", got.Converted, tt.want)
			}
			if !got.Original.Equal(tt.amount) {
				t.Errorf("Convert() original = %s, want %s", got.Original, tt.amount)
			}
			if got.Date != on {
				t.Errorf("Convert() date = %s, want %s", got.Date, on)
			}
		})
	}
}

func TestConvert_InvalidInput(t *testing.T) {
	conv := NewConverter("AUD", frozen)
	on := date.MustParse("2025-03-14")

	if _, err := conv.Convert(USD(-1), rate(0.65), on); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative amount: error = %v, want ErrInvalidInput", err)
	}
	if _, err := conv.Convert(USD(100), rate(0), on); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero rate: error = %v, want ErrInvalidInput", err)
	}
	if _, err := conv.Convert(USD(100), rate(-0.65), on); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative rate: error = %v, want ErrInvalidInput", err)
	}
}

func TestConvert_Monotonic(t *testing.T) {
	conv := NewConverter("AUD", frozen)
	on := date.MustParse("2025-03-14")

	var prev Money
	for _, amount := range []float64{0, 0.01, 1, 37.5, 100, 4000, 1e6} {
		got, err := conv.Convert(USD(amount), rate(0.63), on)
		if err != nil {
			t.Fatalf("Convert(%v) error = %v", amount, err)
		}
		if got.Converted.LessThan(prev) {
			t.Errorf("Convert(%v) = %s less than previous %s", amount, got.Converted, prev)
		}
		prev = got.Converted
	}
}

func TestConvertShareEvent_SameCurrency(t *testing.T) {
	conv := NewConverter("AUD", frozen)

	got, err := conv.ConvertShareEvent(AUD(50), Q(250), "AUD", decimal.Decimal{}, date.MustParse("2025-01-10"))
	if err != nil {
		t.Fatalf("ConvertShareEvent() error = %v", err)
	}
	if !got.Converted.Equal(AUD(12500)) {
		t.Errorf("ConvertShareEvent() = %s, want %s", got.Converted, AUD(12500))
	}
	// rate of exactly 1 and identical currencies signal no conversion
	if !got.Rate.Equal(decimal.NewFromInt(1)) {
		t.Errorf("ConvertShareEvent() rate = %s, want 1", got.Rate)
	}
	if got.Original.Currency() != got.Converted.Currency() {
		t.Errorf("currencies differ: %s vs %s", got.Original.Currency(), got.Converted.Currency())
	}
}

func TestConvertShareEvent_DateFallback(t *testing.T) {
	conv := NewConverter("AUD", frozen)

	got, err := conv.ConvertShareEvent(AUD(50), Q(10), "AUD", decimal.Decimal{}, date.Date{})
	if err != nil {
		t.Fatalf("ConvertShareEvent() error = %v", err)
	}
	if got.Date != frozen() {
		t.Errorf("ConvertShareEvent() date = %s, want injected %s", got.Date, frozen())
	}
}

func TestConvertShareEvent_Foreign(t *testing.T) {
	conv := NewConverter("AUD", frozen)
	on := date.MustParse("2025-02-03")

	got, err := conv.ConvertShareEvent(USD(40), Q(100), "AUD", rate(0.65), on)
	if err != nil {
		t.Fatalf("ConvertShareEvent() error = %v", err)
	}
	if !got.Converted.Equal(AUD(6153.85)) {
		t.Errorf("ConvertShareEvent() = %s, want %s", got.Converted, AUD(6153.85))
	}
	if !got.Original.Equal(USD(4000)) {
		t.Errorf("ConvertShareEvent() original = %s, want %s", got.Original, USD(4000))
	}
}

func TestConvertShareEvent_Failures(t *testing.T) {
	conv := NewConverter("AUD", frozen)
	on := date.MustParse("2025-02-03")

	if _, err := conv.ConvertShareEvent(USD(40), Q(100), "AUD", decimal.Decimal{}, on); !errors.Is(err, ErrMissingExchangeRate) {
		t.Errorf("no rate: error = %v, want ErrMissingExchangeRate", err)
	}
	if _, err := conv.ConvertShareEvent(USD(40), Q(100), "AUD", rate(0.65), date.Date{}); !errors.Is(err, ErrMissingConversionDate) {
		t.Errorf("no date: error = %v, want ErrMissingConversionDate", err)
	}
	if _, err := conv.ConvertShareEvent(USD(40), Q(100), "NZD", rate(0.65), on); !errors.Is(err, ErrUnsupportedConversion) {
		t.Errorf("foreign target: error = %v, want ErrUnsupportedConversion", err)
	}
	if _, err := conv.ConvertShareEvent(M(40, "EUR"), Q(100), "AUD", rate(0.6), on); !errors.Is(err, ErrUnsupportedConversion) {
		t.Errorf("unconfigured pair: error = %v, want ErrUnsupportedConversion", err)
	}
}

func TestConverter_Support(t *testing.T) {
	conv := NewConverter("AUD", frozen)
	conv.Support("EUR")
	on := date.MustParse("2025-02-03")

	got, err := conv.ConvertShareEvent(M(40, "EUR"), Q(100), "AUD", rate(0.6), on)
	if err != nil {
		t.Fatalf("ConvertShareEvent() error = %v", err)
	}
	if !got.Converted.Equal(AUD(6666.67)) {
		t.Errorf("ConvertShareEvent() = %s, want %s", got.Converted, AUD(6666.67))
	}
}

func TestConvert_Idempotent(t *testing.T) {
	conv := NewConverter("AUD", frozen)
	on := date.MustParse("2025-03-14")

	a, err := conv.Convert(USD(1234.56), rate(0.63), on)
	if err != nil {
		t.Fatal(err)
	}
	b, err := conv.Convert(USD(1234.56), rate(0.63), on)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Converted.Equal(b.Converted) || !a.Rate.Equal(b.Rate) || a.Date != b.Date {
		t.Errorf("two identical conversions differ: %v vs %v", a, b)
	}
}
