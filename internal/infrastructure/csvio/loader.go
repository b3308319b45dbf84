// Package csvio maps requirement CSV exports onto the domain model. Column
// naming varies between requirement management tools, so the loader accepts
// a set of header aliases instead of one fixed schema.
package csvio

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"

	"github.com/reqqual/reqqual/internal/domain/requirement"
)

var headerAliases = map[string][]string{
	"id":                  {"req_id", "id", "requirement_id"},
	"title":               {"title", "summary"},
	"text":                {"requirement_text", "text", "requirement", "description", "content"},
	"origin":              {"source", "tool", "origin"},
	"system":              {"system"},
	"component":           {"component"},
	"priority":            {"priority"},
	"rationale":           {"rationale"},
	"verification_method": {"verification_method", "verification"},
	"acceptance_criteria": {"acceptance_criteria", "ac"},
}

// Loader reads requirements from CSV files.
type Loader struct {
	retryConfig retry.Config
	logger      *slog.Logger
}

func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
		logger: logger,
	}
}

// Load parses the file into requirements. Rows with neither title nor text
// are skipped with a warning; missing ids are generated as REQ-NNN so every
// requirement keeps a stable key within the file.
func (l *Loader) Load(path string) ([]requirement.Requirement, error) {
	retryer := retry.New[[]byte](l.retryConfig)
	data, err := retryer.Do(context.Background(), func(ctx context.Context) ([]byte, error) {
		return os.ReadFile(path)
	})
	if err != nil {
		return nil, fmt.Errorf("read input file %s: %w", path, err)
	}

	// Excel exports often lead with a UTF-8 BOM.
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv %s has no header row", path)
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var reqs []requirement.Requirement
	for rowNum, record := range records[1:] {
		row := map[string]string{}
		for i, cell := range record {
			if i < len(header) {
				row[header[i]] = strings.TrimSpace(cell)
			}
		}

		req := l.mapRow(row, len(reqs)+1)
		if req.Title == "" && req.Text == "" {
			l.logger.Warn("skipping empty requirement row", "row", rowNum+2)
			continue
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func (l *Loader) mapRow(row map[string]string, ordinal int) requirement.Requirement {
	req := requirement.Requirement{
		ID:                 pickFirst(row, headerAliases["id"]),
		Title:              pickFirst(row, headerAliases["title"]),
		Text:               pickFirst(row, headerAliases["text"]),
		Origin:             pickFirst(row, headerAliases["origin"]),
		System:             pickFirst(row, headerAliases["system"]),
		Component:          pickFirst(row, headerAliases["component"]),
		Priority:           pickFirst(row, headerAliases["priority"]),
		Rationale:          pickFirst(row, headerAliases["rationale"]),
		VerificationMethod: pickFirst(row, headerAliases["verification_method"]),
		AcceptanceCriteria: pickFirst(row, headerAliases["acceptance_criteria"]),
	}

	if req.ID == "" {
		req.ID = fmt.Sprintf("REQ-%03d", ordinal)
	}
	if req.Title == "" {
		parts := make([]string, 0, 3)
		for _, p := range []string{req.System, req.Component, req.Priority} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		req.Title = strings.Join(parts, " / ")
	}
	return req
}

func pickFirst(row map[string]string, keys []string) string {
	for _, k := range keys {
		if v := row[k]; v != "" {
			return v
		}
	}
	return ""
}
