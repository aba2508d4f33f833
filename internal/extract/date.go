package extract

import (
	"github.com/mwhitmore/ledgerlens/internal/token"
)

// Receipts print the transaction date near the top; matches in the head of
// the text outrank matches anywhere else for the same format.
const dateHeadLines = 22

// ExtractDate applies the date token matchers over the whole text in fixed
// format-priority order. For each format the head of the receipt is scanned
// before the tail, so a higher-priority format found anywhere still beats a
// lower-priority one. No match yields ("", 0.0).
func ExtractDate(lines []string) (string, float64) {
	head := lines
	if len(head) > dateHeadLines {
		head = head[:dateHeadLines]
	}
	tail := lines[len(head):]

	for _, f := range token.DateFormats {
		for _, region := range [][]string{head, tail} {
			for _, ln := range region {
				if d, ok := token.FindDateFormat(ln, f); ok {
					return d.ISO(), clamp01(f.Confidence())
				}
			}
		}
	}
	return "", 0.0
}
