// Package rules implements the deterministic detector catalog. Every
// detector is a pure function of the requirement: no clock, no randomness,
// no I/O, no shared state. Re-running the catalog on the same requirement
// always yields the same issue sequence in the same order.
package rules

import (
	"fmt"

	"github.com/reqqual/reqqual/internal/domain/requirement"
)

// Detector inspects one requirement and reports zero or more issues.
type Detector interface {
	ID() string
	Description() string
	Detect(req requirement.Requirement) []requirement.Issue
}

// Config carries the tunable knobs of the catalog.
type Config struct {
	// MaxSentenceWords is the sentence length above which the style
	// detector flags a requirement.
	MaxSentenceWords int
}

// DefaultConfig returns the catalog defaults.
func DefaultConfig() Config {
	return Config{MaxSentenceWords: 30}
}

// Catalog is the fixed, ordered collection of detectors applied to every
// requirement. It is built once at startup and shared read-only.
type Catalog struct {
	detectors []Detector
}

// NewCatalog builds a catalog from an explicit detector order.
func NewCatalog(detectors ...Detector) *Catalog {
	return &Catalog{detectors: detectors}
}

// DefaultCatalog returns the production detector set in its fixed order.
func DefaultCatalog(cfg Config) *Catalog {
	if cfg.MaxSentenceWords <= 0 {
		cfg.MaxSentenceWords = DefaultConfig().MaxSentenceWords
	}
	return NewCatalog(
		NewAmbiguousTermDetector(),
		NewNonTestableVerbDetector(),
		NewAcceptanceCriteriaDetector(),
		NewStatementLengthDetector(cfg.MaxSentenceWords),
	)
}

// Detectors returns the catalog content in evaluation order.
func (c *Catalog) Detectors() []Detector {
	out := make([]Detector, len(c.detectors))
	copy(out, c.detectors)
	return out
}

// EvaluationError reports a detector fault. Detector faults are programming
// defects, fatal to the evaluation run; they always identify the offending
// rule and requirement and are never silently swallowed.
type EvaluationError struct {
	RequirementID string
	RuleID        string
	Cause         error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("rule %s failed on requirement %s: %v", e.RuleID, e.RequirementID, e.Cause)
}

func (e *EvaluationError) Unwrap() error { return e.Cause }

// Evaluate runs every detector against the requirement and concatenates
// their issues in catalog order.
func (c *Catalog) Evaluate(req requirement.Requirement) ([]requirement.Issue, error) {
	var issues []requirement.Issue
	for _, d := range c.detectors {
		hits, err := run(d, req)
		if err != nil {
			return nil, err
		}
		issues = append(issues, hits...)
	}
	return issues, nil
}

func run(d Detector, req requirement.Requirement) (hits []requirement.Issue, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &EvaluationError{
				RequirementID: req.ID,
				RuleID:        d.ID(),
				Cause:         fmt.Errorf("panic: %v", r),
			}
		}
	}()
	return d.Detect(req), nil
}
