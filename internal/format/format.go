// Package format provides display formatting for amounts and perk
// multipliers. All functions are pure and safe for concurrent use.
package format

import (
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"pocketledger/internal/models"
)

// Currency formats an amount using the currency conventions of the given
// BCP 47 locale tag (e.g. "en-US", "fr-CA"). If the locale cannot be parsed
// or carries no currency, the plain numeric representation is returned.
func Currency(amount float64, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return Decimal(amount, 2)
	}
	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		return Decimal(amount, 2)
	}
	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(unit.Amount(amount)))
}

// Decimal formats a number with at most maxDigits decimal places, trimming
// trailing zeros: 3.0 -> "3", 3.50 -> "3.5".
func Decimal(v float64, maxDigits int) string {
	s := strconv.FormatFloat(v, 'f', maxDigits, 64)
	if maxDigits > 0 && strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// Multiplier renders a perk value for display: a "%" suffix for cashback
// rates and an "x" suffix for points multipliers, on the trimmed decimal.
func Multiplier(v float64, perkType models.PerkType) string {
	suffix := "x"
	if perkType == models.PerkTypeCashback {
		suffix = "%"
	}
	return Decimal(v, 2) + suffix
}
