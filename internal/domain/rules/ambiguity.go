package rules

import (
	"fmt"
	"regexp"

	"github.com/reqqual/reqqual/internal/domain/requirement"
)

// ambiguousTerms is the controlled vocabulary of vague qualifiers and weak
// modal verbs. Order is significant: matches are reported in this order.
var ambiguousTerms = []string{
	"should",
	"may",
	"might",
	"could",
	"etc.",
	"and/or",
	"as appropriate",
	"if necessary",
	"if needed",
	"as needed",
	"user-friendly",
	"intuitive",
	"fast",
	"quick",
	"efficient",
	"robust",
	"reliable",
	"secure",
	"sufficient",
	"adequate",
	"optimize",
	"minimize",
	"maximize",
}

type ambiguousTerm struct {
	term    string
	pattern *regexp.Regexp
}

// AmbiguousTermDetector flags vague qualifiers and weak modal verbs in the
// requirement title and text. One MINOR issue per distinct matched term,
// regardless of how often the term occurs.
type AmbiguousTermDetector struct {
	terms []ambiguousTerm
}

func NewAmbiguousTermDetector() *AmbiguousTermDetector {
	d := &AmbiguousTermDetector{}
	for _, t := range ambiguousTerms {
		d.terms = append(d.terms, ambiguousTerm{term: t, pattern: termPattern(t)})
	}
	return d
}

func (d *AmbiguousTermDetector) ID() string { return "AMB-001" }

func (d *AmbiguousTermDetector) Description() string {
	return "flags vague qualifiers and weak modal verbs that dodge a measurable commitment"
}

func (d *AmbiguousTermDetector) Detect(req requirement.Requirement) []requirement.Issue {
	haystack := compactWS(req.Title + " " + req.Text)
	if haystack == "" {
		return nil
	}

	var issues []requirement.Issue
	for _, t := range d.terms {
		if !t.pattern.MatchString(haystack) {
			continue
		}
		issues = append(issues, requirement.NewRuleIssue(
			d.ID(),
			requirement.CategoryAmbiguity,
			requirement.SeverityMinor,
			fmt.Sprintf("ambiguous term %q detected; replace it with a normative, measurable phrasing", t.term),
		))
	}
	return issues
}
