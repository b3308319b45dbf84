package application_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/reqqual/reqqual/internal/application"
	"github.com/reqqual/reqqual/internal/domain/requirement"
	"github.com/reqqual/reqqual/internal/domain/rules"
	"github.com/reqqual/reqqual/internal/domain/scoring"
)

type stubSuggester struct {
	suggestions []requirement.Issue
	calls       int
}

func (s *stubSuggester) Suggest(context.Context, requirement.Requirement, []requirement.Issue) []requirement.Issue {
	s.calls++
	return s.suggestions
}

func newService(opts ...application.Option) *application.AnalysisService {
	return application.NewAnalysisService(
		rules.DefaultCatalog(rules.DefaultConfig()),
		scoring.DefaultPolicy(),
		opts...,
	)
}

func TestAnalysisService_ResultsKeepInputOrder(t *testing.T) {
	var reqs []requirement.Requirement
	for i := 0; i < 20; i++ {
		reqs = append(reqs, requirement.Requirement{
			ID:                 fmt.Sprintf("REQ-%03d", i),
			Text:               "The valve shall close within 200 ms of the stop signal.",
			AcceptanceCriteria: "Closing time measured below 200 ms in 10 consecutive trials",
		})
	}

	results, err := newService(application.WithWorkers(8)).Analyze(context.Background(), reqs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	for i, res := range results {
		if res.Requirement.ID != reqs[i].ID {
			t.Errorf("result %d belongs to %s, want %s", i, res.Requirement.ID, reqs[i].ID)
		}
	}
}

func TestAnalysisService_ScoresAndClassifies(t *testing.T) {
	reqs := []requirement.Requirement{
		{
			ID:                 "REQ-001",
			Text:               "The pump shall reach 5 bar within 2 seconds",
			AcceptanceCriteria: "Pressure reaches 5 bar within 2 s on the test bench",
		},
		{
			ID:   "REQ-002",
			Text: "The system should handle errors",
		},
	}

	results, err := newService().Analyze(context.Background(), reqs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if results[0].Score != 100 || results[0].Status != requirement.StatusPass {
		t.Errorf("clean requirement: got score %d status %s, want 100 PASS", results[0].Score, results[0].Status)
	}
	// MINOR(5) + MAJOR(25) + BLOCKER(100) floors the score at zero.
	if results[1].Score != 0 || results[1].Status != requirement.StatusFail {
		t.Errorf("vague requirement: got score %d status %s, want 0 FAIL", results[1].Score, results[1].Status)
	}
}

func TestAnalysisService_SuggestionsDoNotChangeScoring(t *testing.T) {
	req := requirement.Requirement{
		ID:   "REQ-001",
		Text: "The system should handle errors",
	}

	base, err := newService().Analyze(context.Background(), []requirement.Requirement{req})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	advisor := &stubSuggester{suggestions: []requirement.Issue{
		requirement.NewAIIssue("AI-001", "state the error classes and the recovery deadline"),
	}}
	advised, err := newService(application.WithAdvisor(advisor)).Analyze(context.Background(), []requirement.Requirement{req})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if advised[0].Score != base[0].Score || advised[0].Status != base[0].Status {
		t.Errorf("suggestions changed scoring: %d/%s vs %d/%s",
			advised[0].Score, advised[0].Status, base[0].Score, base[0].Status)
	}
	if len(advised[0].AIIssues()) != 1 {
		t.Errorf("expected 1 advisory issue, got %d", len(advised[0].AIIssues()))
	}

	ruleCount := len(base[0].Issues)
	for i, issue := range advised[0].Issues {
		if i < ruleCount && issue.Source != requirement.SourceRule {
			t.Errorf("issue %d: rule issues must precede advisory ones", i)
		}
		if i >= ruleCount && issue.Source != requirement.SourceAI {
			t.Errorf("issue %d: advisory issues must come last", i)
		}
	}
}

func TestAnalysisService_AdvisorSkippedForCleanRequirements(t *testing.T) {
	advisor := &stubSuggester{}
	reqs := []requirement.Requirement{{
		ID:                 "REQ-001",
		Text:               "The valve shall close within 200 ms of the stop signal.",
		AcceptanceCriteria: "Closing time measured below 200 ms in 10 consecutive trials",
	}}

	if _, err := newService(application.WithAdvisor(advisor)).Analyze(context.Background(), reqs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if advisor.calls != 0 {
		t.Errorf("advisor must not be called for requirements without findings, got %d calls", advisor.calls)
	}
}

type faultyDetector struct{}

func (faultyDetector) ID() string          { return "BAD-001" }
func (faultyDetector) Description() string { return "always panics" }
func (faultyDetector) Detect(requirement.Requirement) []requirement.Issue {
	panic("nil map write")
}

func TestAnalysisService_DetectorFaultAbortsRun(t *testing.T) {
	svc := application.NewAnalysisService(rules.NewCatalog(faultyDetector{}), scoring.DefaultPolicy())

	results, err := svc.Analyze(context.Background(), []requirement.Requirement{{ID: "REQ-009"}})
	if err == nil {
		t.Fatal("expected the detector fault to abort the run")
	}
	if results != nil {
		t.Errorf("aborted run must not return partial results")
	}

	var evalErr *rules.EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected *rules.EvaluationError, got %T", err)
	}
	if evalErr.RuleID != "BAD-001" || evalErr.RequirementID != "REQ-009" {
		t.Errorf("fault must name rule and requirement, got %q/%q", evalErr.RuleID, evalErr.RequirementID)
	}
}

func TestAnalysisService_EmptyBatch(t *testing.T) {
	results, err := newService().Analyze(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results for an empty batch, got %d", len(results))
	}
}

func TestSummarize(t *testing.T) {
	results := []requirement.Result{
		requirement.NewResult(requirement.Requirement{ID: "A"}, nil, 100, requirement.StatusPass),
		requirement.NewResult(requirement.Requirement{ID: "B"}, nil, 70, requirement.StatusWarn),
		requirement.NewResult(requirement.Requirement{ID: "C"}, nil, 10, requirement.StatusFail),
	}

	summary := application.Summarize(results, true)
	if summary.Total != 3 || summary.Pass != 1 || summary.Warn != 1 || summary.Fail != 1 {
		t.Errorf("unexpected counts: %+v", summary)
	}
	if summary.MeanScore != 60 {
		t.Errorf("mean score = %v, want 60", summary.MeanScore)
	}
	if summary.Status != requirement.StatusFail {
		t.Errorf("overall status must be worst-of, got %s", summary.Status)
	}
	if !summary.AIEnabled {
		t.Errorf("AIEnabled flag lost")
	}
	if summary.RunID == "" {
		t.Errorf("expected a run id")
	}
}

func TestSummarize_EmptyRun(t *testing.T) {
	summary := application.Summarize(nil, false)
	if summary.Total != 0 || summary.MeanScore != 0 {
		t.Errorf("unexpected summary for empty run: %+v", summary)
	}
	if summary.Status != requirement.StatusPass {
		t.Errorf("empty run defaults to PASS, got %s", summary.Status)
	}
}
