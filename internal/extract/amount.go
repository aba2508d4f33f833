package extract

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mwhitmore/ledgerlens/internal/textnorm"
	"github.com/mwhitmore/ledgerlens/internal/token"
)

// Totals are printed near the end of a receipt, so the selector works over
// the bottom portion of the text unless the receipt is very short.
const (
	bottomFraction = 0.55 // scan starts at this fraction of the line count
	minLinesSplit  = 8
)

// Amount confidence tiers, strictly decreasing through the fallbacks.
const (
	confConfirmedTotal  = 0.96 // label match agrees with subtotal+tax
	confLabelMatch      = 0.90 // accepted label match, no reference to check
	confReferenceOnly   = 0.88 // computed subtotal+tax, no usable label line
	confBottomFallback  = 0.72 // largest plausible value near the bottom
	confAnywhereFall    = 0.58 // largest plausible value anywhere
	referenceToleranceC = 5    // cents of slack against the reference sum
)

// totalLabels mark a line as total-style, strongest first.
var totalLabels = []string{
	"grand total", "amount due", "total due", "balance due", "total",
}

// tenderTerms carry total-shaped numbers that are not the total: payment
// methods, change, tips, and authorization chatter.
var tenderTerms = []string{
	"subtotal", "sub total", "tax", "vat", "discount", "change",
	"cash", "tender", "tip", "gratuity", "service charge",
	"visa", "mastercard", "amex", "discover", "debit", "credit",
	"auth", "approval", "authorized", "ref", "account",
}

// unitTraps flag quantity lines (gallons pumped, weights, item counts)
// whose value mimics a currency amount.
var unitTraps = []string{
	"gal", "gallon", "gallons", "qty", "quantity", "lb", "lbs", "oz", "kg", "@",
}

// Receipts above this are OCR corruption, not purchases.
var amountCeiling = decimal.NewFromInt(20000)

// ExtractAmount recovers the printed total. It cross-validates an explicit
// total line against an independently computed subtotal+tax reference and
// falls back through decreasing-confidence tiers; no value found is the
// documented (0.0, 0.0) state.
func ExtractAmount(lines []string) (float64, float64) {
	if len(lines) == 0 {
		return 0.0, 0.0
	}

	bottom := lines
	if len(lines) >= minLinesSplit {
		bottom = lines[int(float64(len(lines))*bottomFraction):]
	}

	reference, hasRef := subtotalPlusTax(bottom)
	label, hasLabel := labelCandidate(bottom)

	switch {
	case hasLabel && hasRef:
		diff := label.Sub(reference).Abs()
		tolerance := decimal.New(referenceToleranceC, -2)
		if diff.LessThanOrEqual(tolerance) {
			return toFloat(label), confConfirmedTotal
		}
		// A label value wildly above the reference is OCR digit corruption;
		// trust the computed sum instead.
		if label.GreaterThan(reference.Mul(decimal.NewFromInt(10))) {
			return toFloat(reference), confReferenceOnly
		}
		return toFloat(label), confLabelMatch
	case hasLabel:
		if label.LessThanOrEqual(amountCeiling) {
			return toFloat(label), confLabelMatch
		}
	case hasRef:
		return toFloat(reference), confReferenceOnly
	}

	if v, ok := largestAmount(bottom, true); ok {
		return toFloat(v), confBottomFallback
	}
	if v, ok := largestAmount(lines, false); ok {
		return toFloat(v), confAnywhereFall
	}
	return 0.0, 0.0
}

// subtotalPlusTax independently locates a subtotal line and a tax line and
// returns their sum as a self-consistency reference.
func subtotalPlusTax(lines []string) (decimal.Decimal, bool) {
	var subtotal, tax decimal.Decimal
	var haveSub, haveTax bool

	for _, ln := range lines {
		low := textnorm.Norm(ln)
		isSubtotal := strings.Contains(low, "subtotal") || strings.Contains(low, "sub total")
		switch {
		case !haveSub && isSubtotal:
			if m, ok := token.Rightmost(token.Amounts(ln)); ok {
				subtotal, haveSub = m.Value, true
			}
		case !haveTax && !isSubtotal && strings.Contains(low, "tax"):
			if m, ok := token.Rightmost(token.Amounts(ln)); ok {
				tax, haveTax = m.Value, true
			}
		}
	}
	if !haveSub || !haveTax {
		return decimal.Decimal{}, false
	}
	return subtotal.Add(tax), true
}

// labelCandidate scans bottom-up for the first explicit total-style label
// line that is neither tender chatter nor an uncurrencied unit trap, and
// takes its largest plausible value.
func labelCandidate(lines []string) (decimal.Decimal, bool) {
	for i := len(lines) - 1; i >= 0; i-- {
		ln := lines[i]
		low := textnorm.Norm(ln)
		if !hasTotalLabel(low) || excludedAmountLine(ln, low) {
			continue
		}
		if m, ok := token.Largest(token.Amounts(ln)); ok {
			return m.Value, true
		}
	}
	return decimal.Decimal{}, false
}

func hasTotalLabel(low string) bool {
	for _, label := range totalLabels {
		if strings.Contains(low, label) {
			return true
		}
	}
	return false
}

// excludedAmountLine rejects tender lines outright and unit-trap lines
// unless they carry an explicit currency marker.
func excludedAmountLine(line, low string) bool {
	for _, t := range tenderTerms {
		if strings.Contains(low, t) {
			return true
		}
	}
	if token.HasCurrencyMarker(line) {
		return false
	}
	for _, t := range unitTraps {
		if t == "@" {
			if strings.Contains(line, "@") {
				return true
			}
			continue
		}
		if containsWord(low, t) {
			return true
		}
	}
	return false
}

func largestAmount(lines []string, rejectTraps bool) (decimal.Decimal, bool) {
	var best decimal.Decimal
	found := false
	for _, ln := range lines {
		low := textnorm.Norm(ln)
		if rejectTraps {
			if excludedAmountLine(ln, low) {
				continue
			}
		} else if tenderOnly(low) {
			continue
		}
		for _, m := range token.Amounts(ln) {
			if !found || m.Value.GreaterThan(best) {
				best, found = m.Value, true
			}
		}
	}
	return best, found
}

// tenderOnly is the weaker exclusion used by the last-resort scan: traps are
// tolerated but tender lines never are.
func tenderOnly(low string) bool {
	for _, t := range tenderTerms {
		if strings.Contains(low, t) {
			return true
		}
	}
	return false
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
