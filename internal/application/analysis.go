// Package application composes the detector catalog, scoring policy, and
// optional advisory adapter into a single analysis run.
package application

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/reqqual/reqqual/internal/domain/requirement"
	"github.com/reqqual/reqqual/internal/domain/rules"
	"github.com/reqqual/reqqual/internal/domain/scoring"
)

// Suggester is the advisory capability injected into the orchestrator. A nil
// Suggester means advisory mode is disabled and the adapter is never called.
type Suggester interface {
	Suggest(ctx context.Context, req requirement.Requirement, ruleIssues []requirement.Issue) []requirement.Issue
}

// AnalysisService runs the full pipeline for a batch of requirements:
// evaluate (always), score and classify (always), then optionally append
// advisory suggestions. Scoring is finalized strictly before the advisory
// call, so an adapter fault can never taint a score.
type AnalysisService struct {
	catalog *rules.Catalog
	policy  scoring.Policy
	advisor Suggester
	workers int
	logger  *slog.Logger
}

// Option configures an AnalysisService.
type Option func(*AnalysisService)

// WithAdvisor enables advisory suggestions.
func WithAdvisor(advisor Suggester) Option {
	return func(s *AnalysisService) { s.advisor = advisor }
}

// WithWorkers bounds the evaluation fan-out.
func WithWorkers(n int) Option {
	return func(s *AnalysisService) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithLogger replaces the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *AnalysisService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewAnalysisService(catalog *rules.Catalog, policy scoring.Policy, opts ...Option) *AnalysisService {
	s := &AnalysisService{
		catalog: catalog,
		policy:  policy,
		workers: 4,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze evaluates every requirement and returns results in input order.
// Evaluation and scoring are pure and run in parallel across requirements;
// results land in an index-addressed slice so the collection order is
// deterministic. A detector fault aborts the whole run; an advisory fault
// only empties that requirement's suggestion tail.
func (s *AnalysisService) Analyze(ctx context.Context, reqs []requirement.Requirement) ([]requirement.Result, error) {
	results := make([]requirement.Result, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, req := range reqs {
		g.Go(func() error {
			issues, err := s.catalog.Evaluate(req)
			if err != nil {
				return err
			}

			score, status := s.policy.Evaluate(issues)
			res := requirement.NewResult(req, issues, score, status)

			// Suggestions only make sense for requirements with findings,
			// and they run after score and status are already final.
			if s.advisor != nil && len(issues) > 0 {
				res = res.WithSuggestions(s.advisor.Suggest(gctx, req, issues))
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("analysis complete",
		"requirements", len(reqs),
		"advisory", s.advisor != nil)
	return results, nil
}
