package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/reqqual/reqqual/internal/domain/requirement"
)

// nonTestableVerbs are verbs that promise behavior without a measurable
// target. An occurrence is acceptable only when its sentence quantifies
// the claim.
var nonTestableVerbs = []string{"support", "handle", "manage", "process", "improve"}

// NonTestableVerbDetector flags unquantifiable verbs that are not
// accompanied by a measurable qualifier within the same sentence. One MAJOR
// issue per flagged occurrence.
type NonTestableVerbDetector struct {
	pattern *regexp.Regexp
}

func NewNonTestableVerbDetector() *NonTestableVerbDetector {
	// Match simple inflections too (handles, handled, managing). Stemming
	// off a trailing "e" lets one alternation cover them all.
	alts := make([]string, len(nonTestableVerbs))
	for i, v := range nonTestableVerbs {
		alts[i] = regexp.QuoteMeta(strings.TrimSuffix(v, "e"))
	}
	return &NonTestableVerbDetector{
		pattern: regexp.MustCompile(`(?i)\b(` + strings.Join(alts, "|") + `)(e|es|ed|ing|s)?\b`),
	}
}

func (d *NonTestableVerbDetector) ID() string { return "TST-001" }

func (d *NonTestableVerbDetector) Description() string {
	return "flags unquantifiable verbs whose sentence carries no measurable qualifier"
}

func (d *NonTestableVerbDetector) Detect(req requirement.Requirement) []requirement.Issue {
	var issues []requirement.Issue
	for _, sentence := range splitSentences(req.Text) {
		if hasMeasurableQualifier(sentence) {
			continue
		}
		for _, m := range d.pattern.FindAllStringSubmatch(sentence, -1) {
			issues = append(issues, requirement.NewRuleIssue(
				d.ID(),
				requirement.CategoryTestability,
				requirement.SeverityMajor,
				fmt.Sprintf("verb %q is not testable as stated; add a number, unit, or named condition to the sentence", strings.ToLower(m[0])),
			))
		}
	}
	return issues
}
