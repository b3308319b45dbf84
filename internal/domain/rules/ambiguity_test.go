package rules_test

import (
	"strings"
	"testing"

	"github.com/reqqual/reqqual/internal/domain/requirement"
	"github.com/reqqual/reqqual/internal/domain/rules"
)

func TestAmbiguousTermDetector(t *testing.T) {
	detector := rules.NewAmbiguousTermDetector()

	tests := []struct {
		name      string
		text      string
		wantTerms []string
	}{
		{
			name:      "no vague wording",
			text:      "The valve shall close within 200 ms of the stop signal.",
			wantTerms: nil,
		},
		{
			name:      "single modal verb",
			text:      "The system should log every request.",
			wantTerms: []string{"should"},
		},
		{
			name:      "distinct terms reported once each",
			text:      "It should be fast, really fast, and should stay fast.",
			wantTerms: []string{"should", "fast"},
		},
		{
			name:      "case insensitive",
			text:      "The UI SHOULD be User-Friendly.",
			wantTerms: []string{"should", "user-friendly"},
		},
		{
			name:      "word boundary respected",
			text:      "The mayor module displays status.",
			wantTerms: nil,
		},
		{
			name:      "slash compound",
			text:      "Users and/or admins can export data.",
			wantTerms: []string{"and/or"},
		},
		{
			name:      "trailing etc",
			text:      "Export supports CSV, XML, etc.",
			wantTerms: []string{"etc."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := detector.Detect(requirement.Requirement{ID: "R", Text: tt.text})

			if len(issues) != len(tt.wantTerms) {
				t.Fatalf("got %d issues, want %d: %v", len(issues), len(tt.wantTerms), issues)
			}
			for i, term := range tt.wantTerms {
				if !strings.Contains(issues[i].Message, term) {
					t.Errorf("issue %d message %q should mention %q", i, issues[i].Message, term)
				}
				if issues[i].Severity != requirement.SeverityMinor {
					t.Errorf("issue %d: expected MINOR, got %s", i, issues[i].Severity)
				}
				if issues[i].Category != requirement.CategoryAmbiguity {
					t.Errorf("issue %d: expected AMBIGUITY, got %s", i, issues[i].Category)
				}
			}
		})
	}
}

func TestAmbiguousTermDetector_ScansTitle(t *testing.T) {
	detector := rules.NewAmbiguousTermDetector()

	issues := detector.Detect(requirement.Requirement{
		ID:    "R",
		Title: "Robust error recovery",
		Text:  "Recovery completes within 5 seconds.",
	})
	if len(issues) != 1 || !strings.Contains(issues[0].Message, "robust") {
		t.Fatalf("expected the title term to be flagged, got %v", issues)
	}
}
