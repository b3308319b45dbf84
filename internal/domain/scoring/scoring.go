// Package scoring converts rule issues into a 0-100 score and a
// PASS/WARN/FAIL status. Scoring is a pure function of the RULE-issue
// subset; advisory issues never move the needle.
package scoring

import (
	"github.com/reqqual/reqqual/internal/domain/requirement"
)

// Policy is the severity weight table and the score-to-status thresholds.
// The values are a configurable policy surface; DefaultPolicy documents the
// shipped defaults.
type Policy struct {
	Weights       map[requirement.Severity]int
	PassThreshold int // score >= PassThreshold classifies PASS
	WarnThreshold int // score >= WarnThreshold classifies WARN
}

// DefaultPolicy returns the shipped weights and thresholds:
// INFO=0, MINOR=5, MAJOR=25, BLOCKER=100; PASS at 80, WARN at 50.
func DefaultPolicy() Policy {
	return Policy{
		Weights: map[requirement.Severity]int{
			requirement.SeverityInfo:    0,
			requirement.SeverityMinor:   5,
			requirement.SeverityMajor:   25,
			requirement.SeverityBlocker: 100,
		},
		PassThreshold: 80,
		WarnThreshold: 50,
	}
}

// Score deducts the severity weight of every RULE issue from 100 and clamps
// to [0,100]. Adding an issue can never raise the score.
func (p Policy) Score(issues []requirement.Issue) int {
	score := 100
	for _, i := range issues {
		if i.Source != requirement.SourceRule {
			continue
		}
		score -= p.Weights[i.Severity]
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// Classify maps a score to a status. Bucket lower bounds are closed: a
// score of exactly PassThreshold is PASS, exactly WarnThreshold is WARN.
// Any BLOCKER issue forces FAIL outright; the weight table already drives
// such scores to zero, but the guarantee must not depend on arithmetic.
func (p Policy) Classify(score int, issues []requirement.Issue) requirement.Status {
	for _, i := range issues {
		if i.Source == requirement.SourceRule && i.Severity == requirement.SeverityBlocker {
			return requirement.StatusFail
		}
	}
	switch {
	case score >= p.PassThreshold:
		return requirement.StatusPass
	case score >= p.WarnThreshold:
		return requirement.StatusWarn
	default:
		return requirement.StatusFail
	}
}

// Evaluate computes score and status in one step.
func (p Policy) Evaluate(issues []requirement.Issue) (int, requirement.Status) {
	score := p.Score(issues)
	return score, p.Classify(score, issues)
}

// WorstOf returns the most severe status present: FAIL dominates WARN,
// WARN dominates PASS. An empty input is PASS.
func WorstOf(statuses ...requirement.Status) requirement.Status {
	worst := requirement.StatusPass
	for _, s := range statuses {
		if statusRank(s) > statusRank(worst) {
			worst = s
		}
	}
	return worst
}

func statusRank(s requirement.Status) int {
	switch s {
	case requirement.StatusFail:
		return 2
	case requirement.StatusWarn:
		return 1
	default:
		return 0
	}
}
