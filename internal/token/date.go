package token

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateFormat identifies which receipt date shape matched, in priority order.
type DateFormat int

// Date formats, highest priority first.
const (
	FormatISO DateFormat = iota
	FormatNumeric
	FormatDotted
	FormatMonthName
)

// Confidence returns the format-dependent confidence for a validated match.
func (f DateFormat) Confidence() float64 {
	switch f {
	case FormatISO:
		return 0.95
	case FormatNumeric:
		return 0.85
	case FormatDotted:
		return 0.80
	case FormatMonthName:
		return 0.82
	}
	return 0.0
}

// DateFormats lists every format in fixed priority order.
var DateFormats = []DateFormat{FormatISO, FormatNumeric, FormatDotted, FormatMonthName}

// Years outside this window are OCR digit corruption, not receipt dates.
const (
	minYear = 2010
	maxYear = 2035
)

// Date is a validated calendar date token.
type Date struct {
	Time   time.Time
	Format DateFormat
}

// ISO renders the date as YYYY-MM-DD, the engine's wire form.
func (d Date) ISO() string {
	return d.Time.Format("2006-01-02")
}

var (
	isoRe       = regexp.MustCompile(`\b(20\d{2})[-/](\d{1,2})[-/](\d{1,2})\b`)
	numericRe   = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2}|\d{4})\b`)
	dottedRe    = regexp.MustCompile(`\b(\d{1,2})\.(\d{1,2})\.(\d{4})\b`)
	monthNameRe = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`)
	timeRe      = regexp.MustCompile(`\b\d{1,2}:\d{2}(?::\d{2})?\b`)
)

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// FindDate tries each format in priority order and returns the first
// validated match on the line.
func FindDate(line string) (Date, bool) {
	for _, f := range DateFormats {
		if d, ok := FindDateFormat(line, f); ok {
			return d, true
		}
	}
	return Date{}, false
}

// FindDateFormat locates the first validated match of a single format.
func FindDateFormat(line string, f DateFormat) (Date, bool) {
	switch f {
	case FormatISO:
		for _, m := range isoRe.FindAllStringSubmatch(line, -1) {
			if d, ok := makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]), f); ok {
				return d, true
			}
		}
	case FormatNumeric:
		for _, m := range numericRe.FindAllStringSubmatch(line, -1) {
			year := atoi(m[3])
			if len(m[3]) == 2 {
				year += 2000
			}
			if d, ok := makeDate(year, atoi(m[1]), atoi(m[2]), f); ok {
				return d, true
			}
		}
	case FormatDotted:
		for _, m := range dottedRe.FindAllStringSubmatch(line, -1) {
			if d, ok := makeDate(atoi(m[3]), atoi(m[1]), atoi(m[2]), f); ok {
				return d, true
			}
		}
	case FormatMonthName:
		for _, m := range monthNameRe.FindAllStringSubmatch(line, -1) {
			month := monthNumbers[strings.ToLower(m[1])]
			if d, ok := makeDate(atoi(m[3]), month, atoi(m[2]), f); ok {
				return d, true
			}
		}
	}
	return Date{}, false
}

// HasDate reports whether the line contains any date-shaped token, valid or
// not. Used as a noise signal, so validation is intentionally skipped.
func HasDate(line string) bool {
	return isoRe.MatchString(line) || numericRe.MatchString(line) ||
		dottedRe.MatchString(line) || monthNameRe.MatchString(line)
}

// HasTime reports whether the line contains a clock time token.
func HasTime(line string) bool {
	return timeRe.MatchString(line)
}

// makeDate builds a real calendar date, rejecting component overflow (a
// normalized Feb 30 is not a match) and years outside the sanity window.
func makeDate(year, month, day int, f DateFormat) (Date, bool) {
	if year < minYear || year > maxYear {
		return Date{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Date{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return Date{}, false
	}
	return Date{Time: t, Format: f}, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
