package rules

import (
	"fmt"
	"strings"

	"github.com/reqqual/reqqual/internal/domain/requirement"
)

// StatementLengthDetector flags sentences that run past the configured word
// limit. Long sentences usually bundle several requirements into one.
type StatementLengthDetector struct {
	maxWords int
}

func NewStatementLengthDetector(maxWords int) *StatementLengthDetector {
	if maxWords <= 0 {
		maxWords = DefaultConfig().MaxSentenceWords
	}
	return &StatementLengthDetector{maxWords: maxWords}
}

func (d *StatementLengthDetector) ID() string { return "STY-001" }

func (d *StatementLengthDetector) Description() string {
	return "flags sentences exceeding the configured word limit"
}

func (d *StatementLengthDetector) Detect(req requirement.Requirement) []requirement.Issue {
	var issues []requirement.Issue
	for _, sentence := range splitSentences(req.Text) {
		words := len(strings.Fields(sentence))
		if words <= d.maxWords {
			continue
		}
		issues = append(issues, requirement.NewRuleIssue(
			d.ID(),
			requirement.CategoryStyle,
			requirement.SeverityMinor,
			fmt.Sprintf("sentence has %d words, exceeding the %d-word limit; split it into separate statements", words, d.maxWords),
		))
	}
	return issues
}
