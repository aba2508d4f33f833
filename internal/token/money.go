// Package token locates currency-like and date-like substrings in receipt
// lines and converts them to validated typed values.
package token

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a validated currency token found within a line.
type Money struct {
	Value       decimal.Decimal
	Text        string
	Start       int
	HasCurrency bool
}

// Float64 returns the amount as a float, for the public extraction record.
func (m Money) Float64() float64 {
	f, _ := m.Value.Float64()
	return f
}

var (
	// Dollar-style amounts: optional marker, optional thousands commas,
	// exactly two fractional digits.
	moneyRe = regexp.MustCompile(`\$?\s?\d{1,5}(?:,\d{3})*\.\d{2}`)

	// Comma-as-decimal-separator locales: 1.234,56 or 1234,56.
	moneyCommaRe = regexp.MustCompile(`\d{1,5}(?:\.\d{3})*,\d{2}`)

	// Amounts above this are OCR digit-run garbage (e.g. two amounts
	// concatenated), not receipt totals.
	maxPlausible = decimal.NewFromInt(99999)
)

// Amounts returns every plausible money token on a line in left-to-right
// order. Tokens that parse to a non-positive or implausibly large value are
// dropped. When the dollar-style pattern finds nothing, a comma-decimal
// secondary pass is attempted.
func Amounts(line string) []Money {
	out := matchMoney(line, moneyRe, parseDollar)
	if len(out) == 0 {
		out = matchMoney(line, moneyCommaRe, parseCommaDecimal)
	}
	return out
}

// HasAmount reports whether the line carries at least one plausible money token.
func HasAmount(line string) bool {
	return len(Amounts(line)) > 0
}

// HasCurrencyMarker reports whether the line carries an explicit currency sign.
func HasCurrencyMarker(line string) bool {
	return strings.Contains(line, "$")
}

// Largest returns the largest token, or false when the slice is empty.
func Largest(ms []Money) (Money, bool) {
	if len(ms) == 0 {
		return Money{}, false
	}
	best := ms[0]
	for _, m := range ms[1:] {
		if m.Value.GreaterThan(best.Value) {
			best = m
		}
	}
	return best, true
}

// Rightmost returns the last token on the line, or false when empty.
func Rightmost(ms []Money) (Money, bool) {
	if len(ms) == 0 {
		return Money{}, false
	}
	return ms[len(ms)-1], true
}

func matchMoney(line string, re *regexp.Regexp, parse func(string) (decimal.Decimal, bool)) []Money {
	var out []Money
	for _, loc := range re.FindAllStringIndex(line, -1) {
		start, end := loc[0], loc[1]
		if !cleanBoundaries(line, start, end) {
			continue
		}
		text := line[start:end]
		val, ok := parse(text)
		if !ok {
			continue
		}
		if !val.IsPositive() || val.GreaterThan(maxPlausible) {
			continue
		}
		out = append(out, Money{
			Value:       val,
			Text:        text,
			Start:       start,
			HasCurrency: strings.HasPrefix(text, "$"),
		})
	}
	return out
}

// cleanBoundaries rejects matches embedded in longer digit runs, such as the
// "12.40" inside a gallons reading of 12.404.
func cleanBoundaries(line string, start, end int) bool {
	if start > 0 {
		prev := line[start-1]
		if isAlnum(prev) || prev == '.' || prev == ',' {
			return false
		}
	}
	if end < len(line) {
		next := line[end]
		if next >= '0' && next <= '9' {
			return false
		}
		// A separator glued to more digits means the match is a window into
		// a longer number, not a complete amount.
		if (next == '.' || next == ',') && end+1 < len(line) && line[end+1] >= '0' && line[end+1] <= '9' {
			return false
		}
	}
	return true
}

func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func parseDollar(text string) (decimal.Decimal, bool) {
	text = strings.TrimPrefix(text, "$")
	text = strings.ReplaceAll(text, ",", "")
	text = strings.TrimSpace(text)
	val, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return val, true
}

func parseCommaDecimal(text string) (decimal.Decimal, bool) {
	text = strings.ReplaceAll(text, ".", "")
	text = strings.ReplaceAll(text, ",", ".")
	val, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return val, true
}
