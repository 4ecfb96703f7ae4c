package format

import (
	"strings"
	"testing"

	"pocketledger/internal/models"
)

func TestDecimal(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		maxDigits int
		expected  string
	}{
		{"trims trailing zeros", 3.0, 2, "3"},
		{"keeps significant digit", 3.5, 2, "3.5"},
		{"keeps both digits", 3.25, 2, "3.25"},
		{"rounds beyond max digits", 3.256, 2, "3.26"},
		{"zero", 0.0, 2, "0"},
		{"negative", -1.5, 2, "-1.5"},
		{"no decimals requested", 3.7, 0, "4"},
		{"single digit precision", 2.50, 1, "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decimal(tt.value, tt.maxDigits); got != tt.expected {
				t.Errorf("Decimal(%v, %d) = %q, expected %q", tt.value, tt.maxDigits, got, tt.expected)
			}
		})
	}
}

func TestMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		perkType models.PerkType
		expected string
	}{
		{"cashback gets percent suffix", 3.0, models.PerkTypeCashback, "3%"},
		{"cashback keeps fraction", 1.5, models.PerkTypeCashback, "1.5%"},
		{"points gets x suffix", 2.0, models.PerkTypePoints, "2x"},
		{"points keeps fraction", 1.25, models.PerkTypePoints, "1.25x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Multiplier(tt.value, tt.perkType); got != tt.expected {
				t.Errorf("Multiplier(%v, %s) = %q, expected %q", tt.value, tt.perkType, got, tt.expected)
			}
		})
	}
}

func TestCurrency_USLocale(t *testing.T) {
	got := Currency(100.5, "en-US")
	if !strings.Contains(got, "$") {
		t.Errorf("expected a dollar symbol in %q", got)
	}
	if !strings.Contains(got, "100.50") {
		t.Errorf("expected two forced decimal places in %q", got)
	}
}

func TestCurrency_CanadianLocale(t *testing.T) {
	got := Currency(42.0, "en-CA")
	if !strings.Contains(got, "$") {
		t.Errorf("expected a dollar symbol in %q", got)
	}
}

func TestCurrency_InvalidLocaleFallsBackToDecimal(t *testing.T) {
	if got := Currency(3.5, "not a locale"); got != "3.5" {
		t.Errorf("expected plain decimal fallback, got %q", got)
	}
	if got := Currency(3.0, "!!"); got != "3" {
		t.Errorf("expected plain decimal fallback, got %q", got)
	}
}
