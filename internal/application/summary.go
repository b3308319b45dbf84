package application

import (
	"github.com/google/uuid"

	"github.com/reqqual/reqqual/internal/domain/requirement"
	"github.com/reqqual/reqqual/internal/domain/scoring"
)

// RunSummary aggregates one analysis run. The overall status is worst-of:
// a single failing requirement fails the batch-level signal.
type RunSummary struct {
	RunID     string             `json:"run_id"`
	Total     int                `json:"total"`
	Pass      int                `json:"pass"`
	Warn      int                `json:"warn"`
	Fail      int                `json:"fail"`
	MeanScore float64            `json:"mean_score"`
	Status    requirement.Status `json:"status"`
	AIEnabled bool               `json:"ai_enabled"`
}

// Summarize rolls a result set up into a RunSummary with a fresh run id.
func Summarize(results []requirement.Result, aiEnabled bool) RunSummary {
	summary := RunSummary{
		RunID:     uuid.NewString(),
		Total:     len(results),
		Status:    requirement.StatusPass,
		AIEnabled: aiEnabled,
	}

	sum := 0
	statuses := make([]requirement.Status, 0, len(results))
	for _, r := range results {
		sum += r.Score
		statuses = append(statuses, r.Status)
		switch r.Status {
		case requirement.StatusPass:
			summary.Pass++
		case requirement.StatusWarn:
			summary.Warn++
		case requirement.StatusFail:
			summary.Fail++
		}
	}

	if len(results) > 0 {
		summary.MeanScore = float64(sum) / float64(len(results))
	}
	summary.Status = scoring.WorstOf(statuses...)
	return summary
}
