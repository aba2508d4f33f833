// Package textnorm prepares raw OCR text for the extraction and
// categorization modules. Every function is pure and total: empty input
// yields empty output, nothing here can fail.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	softenRe     = regexp.MustCompile(`[^a-z0-9 ]+`)
)

// CleanLine trims a single line and collapses internal whitespace.
func CleanLine(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// Lines splits raw OCR text into cleaned, non-empty lines in order.
func Lines(raw string) []string {
	var out []string
	for _, ln := range strings.Split(raw, "\n") {
		if cleaned := CleanLine(ln); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

// Norm lowercases a string and softens punctuation to spaces, producing
// the canonical form used for substring and keyword search.
func Norm(s string) string {
	s = strings.ToLower(s)
	s = softenRe.ReplaceAllString(s, " ")
	return CleanLine(s)
}

// Blob produces the normalized whole-text form used for keyword scoring.
// Line boundaries survive as single spaces.
func Blob(raw string) string {
	return Norm(strings.ReplaceAll(raw, "\n", " "))
}

// CollapseSpacedLetters repairs OCR letter-spacing artifacts by joining a
// leading run of single-letter tokens, so "S H E L L" becomes "SHELL" and
// "S H E L L OIL" becomes "SHELL OIL". Lines without at least three leading
// single-letter tokens are returned unchanged.
func CollapseSpacedLetters(s string) string {
	toks := strings.Fields(s)
	run := 0
	for _, t := range toks {
		if len(t) != 1 {
			break
		}
		run++
	}
	if run < 3 {
		return s
	}
	joined := strings.Join(toks[:run], "")
	rest := toks[run:]
	if len(rest) == 0 {
		return joined
	}
	return joined + " " + strings.Join(rest, " ")
}
