// Package report renders analysis results for downstream consumers: a CSV
// export carrying the full documented field set and a standalone HTML page.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/reqqual/reqqual/internal/application"
	"github.com/reqqual/reqqual/internal/domain/requirement"
)

var csvHeader = []string{
	"req_id",
	"title",
	"text",
	"origin",
	"system",
	"component",
	"priority",
	"verification_method",
	"acceptance_criteria",
	"score",
	"status",
	"issue_count",
	"ai_suggestion_count",
	"issues_json",
}

// WriteCSV writes one row per requirement. The issue list is embedded as
// compact JSON so a single file carries the complete result.
func WriteCSV(path string, results []requirement.Result, summary application.RunSummary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range results {
		issuesJSON, err := json.Marshal(r.Issues)
		if err != nil {
			return fmt.Errorf("marshal issues for %s: %w", r.Requirement.ID, err)
		}
		row := []string{
			r.Requirement.ID,
			r.Requirement.Title,
			r.Requirement.Text,
			r.Requirement.Origin,
			r.Requirement.System,
			r.Requirement.Component,
			r.Requirement.Priority,
			r.Requirement.VerificationMethod,
			r.Requirement.AcceptanceCriteria,
			strconv.Itoa(r.Score),
			string(r.Status),
			strconv.Itoa(len(r.RuleIssues())),
			strconv.Itoa(len(r.AIIssues())),
			string(issuesJSON),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
