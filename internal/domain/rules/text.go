package rules

import (
	"regexp"
	"strings"
)

var (
	wsPattern       = regexp.MustCompile(`\s+`)
	sentencePattern = regexp.MustCompile(`[.!?;]+`)
	// A sentence counts as measurable when it carries a number or a
	// bounding phrase that pins the behavior down.
	measurablePattern = regexp.MustCompile(`(?i)(\d|%|\bwithin\b|\bat least\b|\bat most\b|\bno more than\b|\bless than\b|\bper second\b|\bper minute\b)`)
)

// compactWS collapses runs of whitespace into single spaces and trims.
func compactWS(s string) string {
	return strings.TrimSpace(wsPattern.ReplaceAllString(s, " "))
}

// splitSentences breaks text on sentence terminators, dropping empties.
func splitSentences(text string) []string {
	var out []string
	for _, s := range sentencePattern.Split(text, -1) {
		s = compactWS(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// hasMeasurableQualifier reports whether a sentence quantifies its claim.
func hasMeasurableQualifier(sentence string) bool {
	return measurablePattern.MatchString(sentence)
}

// termPattern compiles a case-insensitive, word-boundary anchored matcher
// for a vocabulary term. Trailing dots ("etc.") are dropped so the boundary
// lands on the last word character.
func termPattern(term string) *regexp.Regexp {
	trimmed := strings.TrimRight(term, ".")
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(trimmed) + `\b`)
}
