// Package requirement holds the core data model: requirements under review,
// the issues found against them, and the per-requirement analysis result.
package requirement

// Severity classifies how badly an issue hurts requirement quality.
// The ordering INFO < MINOR < MAJOR < BLOCKER is significant for scoring.
type Severity string

const (
	SeverityInfo    Severity = "INFO"
	SeverityMinor   Severity = "MINOR"
	SeverityMajor   Severity = "MAJOR"
	SeverityBlocker Severity = "BLOCKER"
)

// Rank returns the position of the severity in the INFO..BLOCKER order.
// Unknown severities rank below INFO.
func (s Severity) Rank() int {
	switch s {
	case SeverityInfo:
		return 1
	case SeverityMinor:
		return 2
	case SeverityMajor:
		return 3
	case SeverityBlocker:
		return 4
	default:
		return 0
	}
}

// Category is the closed set of quality dimensions an issue can belong to.
type Category string

const (
	CategoryAmbiguity          Category = "AMBIGUITY"
	CategoryTestability        Category = "TESTABILITY"
	CategoryAcceptanceCriteria Category = "ACCEPTANCE_CRITERIA"
	CategoryStyle              Category = "STYLE"
	CategoryOther              Category = "OTHER"
)

// Source records whether an issue came from a deterministic detector or the
// advisory AI component. Only RULE issues participate in scoring.
type Source string

const (
	SourceRule Source = "RULE"
	SourceAI   Source = "AI"
)

// Status is the PASS/WARN/FAIL classification of a requirement.
type Status string

const (
	StatusPass Status = "PASS"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Requirement is one statement under quality review. It is created by an
// upstream parser and treated as read-only by everything downstream.
type Requirement struct {
	ID                 string `json:"req_id"`
	Title              string `json:"title,omitempty"`
	Text               string `json:"text"`
	Origin             string `json:"origin,omitempty"`
	System             string `json:"system,omitempty"`
	Component          string `json:"component,omitempty"`
	Priority           string `json:"priority,omitempty"`
	Rationale          string `json:"rationale,omitempty"`
	VerificationMethod string `json:"verification_method,omitempty"`
	AcceptanceCriteria string `json:"acceptance_criteria,omitempty"`
}

// Issue is a single finding against a requirement.
type Issue struct {
	RuleID   string   `json:"rule_id"`
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Source   Source   `json:"source"`
}

// NewRuleIssue builds an issue produced by a deterministic detector.
func NewRuleIssue(ruleID string, category Category, severity Severity, message string) Issue {
	return Issue{
		RuleID:   ruleID,
		Category: category,
		Severity: severity,
		Message:  message,
		Source:   SourceRule,
	}
}

// NewAIIssue builds an advisory issue. AI issues are always INFO and never
// participate in scoring; the constructor enforces that invariant rather
// than leaving it to convention.
func NewAIIssue(ruleID, message string) Issue {
	return Issue{
		RuleID:   ruleID,
		Category: CategoryOther,
		Severity: SeverityInfo,
		Message:  message,
		Source:   SourceAI,
	}
}

// Result is the finished analysis of one requirement: the full ordered issue
// list (RULE issues first, in catalog order, then AI issues in suggestion
// order), a 0-100 score, and a status. Results are values; a new run produces
// new results instead of editing old ones.
type Result struct {
	Requirement Requirement `json:"requirement"`
	Issues      []Issue     `json:"issues"`
	Score       int         `json:"score"`
	Status      Status      `json:"status"`
}

// NewResult builds a result from the rule issues and the already-computed
// score and status. The issue slice is copied so later appends elsewhere
// cannot reach into the result.
func NewResult(req Requirement, ruleIssues []Issue, score int, status Status) Result {
	issues := make([]Issue, len(ruleIssues))
	copy(issues, ruleIssues)
	return Result{
		Requirement: req,
		Issues:      issues,
		Score:       score,
		Status:      status,
	}
}

// WithSuggestions returns a copy of the result with the advisory issues
// appended after the rule issues. Score and status are deliberately left
// untouched: suggestions are additive only. Issues not sourced from AI are
// skipped so a misbehaving adapter can never smuggle in scoring issues.
func (r Result) WithSuggestions(suggestions []Issue) Result {
	out := Result{
		Requirement: r.Requirement,
		Issues:      make([]Issue, len(r.Issues), len(r.Issues)+len(suggestions)),
		Score:       r.Score,
		Status:      r.Status,
	}
	copy(out.Issues, r.Issues)
	for _, s := range suggestions {
		if s.Source != SourceAI {
			continue
		}
		out.Issues = append(out.Issues, s)
	}
	return out
}

// RuleIssues returns the scoring subset of the issue list.
func (r Result) RuleIssues() []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Source == SourceRule {
			out = append(out, i)
		}
	}
	return out
}

// AIIssues returns the advisory tail of the issue list.
func (r Result) AIIssues() []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Source == SourceAI {
			out = append(out, i)
		}
	}
	return out
}
