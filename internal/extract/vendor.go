package extract

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/mwhitmore/ledgerlens/internal/textnorm"
	"github.com/mwhitmore/ledgerlens/internal/token"
)

// Vendor headers can appear after a few lines of OCR garbage, so the scorer
// looks well past the top of the receipt.
const (
	vendorWindow    = 60
	maxVendorLine   = 48
	maxCandidates   = 3
	disqualified    = -1000.0
	pairMinLen      = 3
	pairMaxLen      = 26
	minAlphaVendor  = 3
	shortTokenRatio = 0.75
)

var (
	phoneRe    = regexp.MustCompile(`(\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	stateZipRe = regexp.MustCompile(`\b[A-Z]{2}\s+\d{5}(-\d{4})?\b`)
	streetRe   = regexp.MustCompile(`^\d{1,6}\s+[A-Za-z]`)
)

// paymentTerms disqualify a line outright: card brands, terminal chatter,
// and copy boilerplate never name the merchant.
var paymentTerms = []string{
	"visa", "mastercard", "amex", "discover", "debit", "credit card",
	"auth", "approval", "approved", "authorized", "entry method", "chip",
	"swiped", "contactless", "customer copy", "merchant copy", "cardholder",
	"terminal", "cashier", "register",
	"receipt", "invoice", "total", "subtotal", "tax", "change", "cash",
	"thank you", "thanks", "welcome", "come again",
}

// footerTerms only penalize: they show up in policy footers that sometimes
// share a line with real header text.
var footerTerms = []string{
	"return policy", "returns", "survey", "feedback", "rewards", "points",
	"www", ".com", "hours", "open daily", "save your receipt",
}

// merchantTokens is the curated vocabulary that makes a line look like a
// store header: legal suffixes, category words, and known brand fragments.
var merchantTokens = []string{
	"llc", "inc", "corp", "co", "company", "ltd",
	"market", "store", "shop", "mart", "deli", "diner", "cafe", "coffee",
	"grill", "restaurant", "pizza", "pizzeria", "bakery", "bar",
	"gas", "station", "fuel", "oil", "auto", "tire", "lube",
	"hardware", "supply", "supplies", "lumber", "tools", "rental", "depot",
	"shell", "chevron", "exxon", "sunoco", "wawa", "speedway", "valero",
}

var addressHints = map[string]bool{
	"st": true, "street": true, "rd": true, "road": true, "ave": true,
	"avenue": true, "blvd": true, "boulevard": true, "ln": true, "lane": true,
	"dr": true, "drive": true, "hwy": true, "highway": true, "suite": true,
	"ste": true, "unit": true,
}

// Score-to-confidence bands for vendor candidates: marginal survivors sit
// near 0.60, very strong header matches near 0.93.
var vendorBands = []confidenceBand{
	{Min: 1.9, Confidence: 0.93},
	{Min: 1.5, Confidence: 0.87},
	{Min: 1.1, Confidence: 0.78},
	{Min: 0.7, Confidence: 0.70},
	{Min: 0.3, Confidence: 0.64},
	{Min: 0.0, Confidence: 0.60},
}

// ExtractVendor generates line and line-pair candidates from the top of the
// receipt, filters noise, scores the survivors, and returns the winner with
// its confidence and up to three alternates. Every candidate disqualified is
// the documented unknown-vendor state: ("", 0.0, nil).
func ExtractVendor(lines []string) (string, float64, []string) {
	top := lines
	if len(top) > vendorWindow {
		top = top[:vendorWindow]
	}

	var cands []candidate
	for i, a := range top {
		cands = append(cands, candidate{
			text:  textnorm.CollapseSpacedLetters(a),
			score: vendorScore(a, i),
		})
		if i+1 < len(top) {
			b := top[i+1]
			if len(a) >= pairMinLen && len(a) <= pairMaxLen-4 &&
				len(b) >= pairMinLen && len(b) <= pairMaxLen &&
				!vendorNoise(a) && !vendorNoise(b) {
				merged := a + " " + b
				cands = append(cands, candidate{
					text:  textnorm.CollapseSpacedLetters(merged),
					score: vendorScore(merged, i),
				})
			}
		}
	}

	best := candidate{score: disqualified}
	seen := make(map[string]bool)
	var ranked []candidate
	for _, c := range cands {
		if c.score <= disqualified {
			continue
		}
		key := textnorm.Norm(c.text)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		ranked = append(ranked, c)
		if c.score > best.score {
			best = c
		}
	}
	if best.score <= disqualified || best.score < 0 {
		return "", 0.0, nil
	}

	// Alternates for UI display, strongest first, winner excluded.
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	var alternates []string
	for _, c := range ranked {
		if c.text == best.text {
			continue
		}
		alternates = append(alternates, c.text)
		if len(alternates) >= maxCandidates {
			break
		}
	}

	return best.text, bandedConfidence(best.score, vendorBands), alternates
}

// vendorScore computes the weighted heuristic score for one candidate at a
// given line position. Noise lines score below the disqualification floor.
func vendorScore(line string, position int) float64 {
	line = textnorm.CleanLine(textnorm.CollapseSpacedLetters(line))
	if vendorNoise(line) || garbageLine(line) {
		return disqualified
	}

	score := 0.0

	// Earlier lines are more header-like, decaying smoothly rather than
	// cutting off, since real headers can follow a junk line or two.
	score += 0.55 * math.Exp(-float64(position)/12.0)

	letters, uppers, digits, punct := 0, 0, 0, 0
	structural := false
	for _, c := range line {
		switch {
		case c >= 'a' && c <= 'z':
			letters++
		case c >= 'A' && c <= 'Z':
			letters++
			uppers++
		case c >= '0' && c <= '9':
			digits++
		case c == '&' || c == '#':
			structural = true
		case c != ' ':
			punct++
		}
	}
	if letters > 0 {
		score += 0.9 * float64(uppers) / float64(letters)
	}
	score -= 0.15 * float64(digits)
	score -= 0.20 * float64(punct)
	if structural {
		score += 0.25
	}

	low := textnorm.Norm(line)
	for _, t := range merchantTokens {
		if containsWord(low, t) {
			score += 0.5
			break
		}
	}
	for _, t := range footerTerms {
		if strings.Contains(low, t) {
			score -= 0.6
			break
		}
	}

	switch words := len(strings.Fields(line)); {
	case words >= 1 && words <= 6:
		score += 0.5
	case words <= 10:
		score += 0.1
	default:
		score -= 0.4
	}

	return score
}

// vendorNoise disqualifies lines that can never be a merchant header:
// phones, dates, times, money, addresses, payment chatter, long policy text.
func vendorNoise(line string) bool {
	low := textnorm.Norm(line)
	if low == "" {
		return true
	}
	for _, t := range paymentTerms {
		if strings.Contains(low, t) {
			return true
		}
	}
	if phoneRe.MatchString(line) {
		return true
	}
	if token.HasAmount(line) {
		return true
	}
	if token.HasDate(line) || token.HasTime(line) {
		return true
	}
	if looksLikeAddress(line) {
		return true
	}
	return len(line) > maxVendorLine
}

// garbageLine rejects OCR fragment runs: too few letters, or a line made
// almost entirely of 1-2 character tokens.
func garbageLine(line string) bool {
	letters := 0
	for _, c := range line {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			letters++
		}
	}
	if letters < minAlphaVendor {
		return true
	}
	toks := strings.Fields(line)
	if len(toks) >= 4 {
		short := 0
		for _, t := range toks {
			if len(t) <= 2 {
				short++
			}
		}
		if float64(short)/float64(len(toks)) >= shortTokenRatio {
			return true
		}
	}
	return false
}

func looksLikeAddress(line string) bool {
	if stateZipRe.MatchString(strings.ToUpper(line)) {
		return true
	}
	if streetRe.MatchString(line) {
		return true
	}
	hasDigit := strings.ContainsAny(line, "0123456789")
	if !hasDigit {
		return false
	}
	for _, w := range strings.Fields(textnorm.Norm(line)) {
		if addressHints[w] {
			return true
		}
	}
	return false
}

// containsWord reports whether the normalized text contains t as a whole
// word, so "co" does not fire inside "coffee".
func containsWord(normalized, t string) bool {
	for _, w := range strings.Fields(normalized) {
		if w == t {
			return true
		}
	}
	return false
}

// candidate pairs a cleaned vendor string with its heuristic score.
type candidate struct {
	text  string
	score float64
}
