package rules

import (
	"fmt"

	"github.com/reqqual/reqqual/internal/domain/requirement"
)

const minCriteriaLength = 15

// AcceptanceCriteriaDetector checks the acceptance-criteria field. A missing
// field is a BLOCKER; when the field is present, weak criteria (too short,
// vague wording) are flagged at lower severities.
type AcceptanceCriteriaDetector struct {
	terms []ambiguousTerm
}

func NewAcceptanceCriteriaDetector() *AcceptanceCriteriaDetector {
	d := &AcceptanceCriteriaDetector{}
	for _, t := range ambiguousTerms {
		d.terms = append(d.terms, ambiguousTerm{term: t, pattern: termPattern(t)})
	}
	return d
}

func (d *AcceptanceCriteriaDetector) ID() string { return "AC-001" }

func (d *AcceptanceCriteriaDetector) Description() string {
	return "requires acceptance criteria to be present, long enough to act on, and free of vague wording"
}

func (d *AcceptanceCriteriaDetector) Detect(req requirement.Requirement) []requirement.Issue {
	criteria := compactWS(req.AcceptanceCriteria)
	if criteria == "" {
		return []requirement.Issue{requirement.NewRuleIssue(
			"AC-001",
			requirement.CategoryAcceptanceCriteria,
			requirement.SeverityBlocker,
			"acceptance criteria are missing; the requirement cannot be verified",
		)}
	}

	var issues []requirement.Issue
	if len(criteria) < minCriteriaLength {
		issues = append(issues, requirement.NewRuleIssue(
			"AC-002",
			requirement.CategoryAcceptanceCriteria,
			requirement.SeverityMinor,
			"acceptance criteria are too short to be actionable",
		))
	}
	if t, ok := d.firstVagueTerm(criteria); ok {
		issues = append(issues, requirement.NewRuleIssue(
			"AC-003",
			requirement.CategoryAcceptanceCriteria,
			requirement.SeverityInfo,
			fmt.Sprintf("acceptance criteria contain the ambiguous term %q", t),
		))
	}
	return issues
}

func (d *AcceptanceCriteriaDetector) firstVagueTerm(criteria string) (string, bool) {
	best := -1
	term := ""
	for _, t := range d.terms {
		loc := t.pattern.FindStringIndex(criteria)
		if loc == nil {
			continue
		}
		if best == -1 || loc[0] < best {
			best = loc[0]
			term = t.term
		}
	}
	return term, best >= 0
}
