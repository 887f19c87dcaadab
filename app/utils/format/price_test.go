package format

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"59.9", "$59.90"},
		{"1234.5", "$1,234.50"},
		{"1000000", "$1,000,000.00"},
	}

	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		if err != nil {
			t.Fatalf("parsing %q: %v", tt.in, err)
		}
		if got := Price(d); got != tt.want {
			t.Errorf("Price(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOptionalPrice(t *testing.T) {
	if got := OptionalPrice(nil); got != "-" {
		t.Errorf("OptionalPrice(nil) = %q, want -", got)
	}
	d := decimal.NewFromInt(20)
	if got := OptionalPrice(&d); got != "$20.00" {
		t.Errorf("OptionalPrice(20) = %q, want $20.00", got)
	}
}
