package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/reqqual/reqqual/internal/domain/ai"
	"github.com/reqqual/reqqual/internal/domain/requirement"
)

const aiRuleID = "AI-001"

// suggestionSchemaJSON is the contract the advisory model must honor.
// Anything else is treated as a malformed response and discarded.
const suggestionSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["suggestions"],
  "properties": {
    "suggestions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["message"],
        "properties": {
          "message": { "type": "string" },
          "rationale": { "type": "string" },
          "confidence": { "type": "number" }
        }
      }
    }
  }
}`

var suggestionSchemaLoader = gojsonschema.NewStringLoader(suggestionSchemaJSON)

type suggestionPayload struct {
	Suggestions []struct {
		Message    string  `json:"message"`
		Rationale  string  `json:"rationale"`
		Confidence float64 `json:"confidence"`
	} `json:"suggestions"`
}

// Advisor obtains advisory reformulation suggestions from an external model.
// It is suggestion-only: its output never changes a score or status, and no
// fault of any kind escapes its boundary. Every failure degrades to an empty
// suggestion set for the affected requirement.
type Advisor struct {
	provider       ai.Provider
	maxSuggestions int
	logger         *slog.Logger
}

func NewAdvisor(provider ai.Provider, maxSuggestions int, logger *slog.Logger) *Advisor {
	if maxSuggestions <= 0 {
		maxSuggestions = 3
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Advisor{
		provider:       provider,
		maxSuggestions: maxSuggestions,
		logger:         logger,
	}
}

// Suggest makes a single bounded attempt to obtain suggestions for the
// requirement. It never returns an error and never panics past its boundary.
func (a *Advisor) Suggest(ctx context.Context, req requirement.Requirement, ruleIssues []requirement.Issue) []requirement.Issue {
	if a.provider == nil {
		return nil
	}

	resp, err := a.provider.Complete(ctx, ai.CompletionRequest{
		Prompt:      a.buildPrompt(req, ruleIssues),
		System:      "You are a senior requirements engineering assistant. You return suggestions as strict JSON only.",
		Temperature: 0.2,
		MaxTokens:   1000,
	})
	if err != nil {
		a.logger.Warn("advisory call failed, falling back to empty suggestion set",
			"requirement", req.ID, "provider", a.provider.ID(), "error", err)
		return nil
	}

	payload, err := a.parseSuggestions(resp.Text)
	if err != nil {
		a.logger.Warn("advisory response rejected, falling back to empty suggestion set",
			"requirement", req.ID, "provider", a.provider.ID(), "error", err)
		return nil
	}

	var issues []requirement.Issue
	for _, s := range payload.Suggestions {
		msg := strings.TrimSpace(s.Message)
		if msg == "" {
			continue
		}
		issues = append(issues, requirement.NewAIIssue(aiRuleID, msg))
		if len(issues) == a.maxSuggestions {
			break
		}
	}
	return issues
}

func (a *Advisor) buildPrompt(req requirement.Requirement, ruleIssues []requirement.Issue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task: Propose up to %d improved formulations or acceptance-criteria suggestions for the requirement below.\n", a.maxSuggestions)
	b.WriteString(`Suggestions must be measurable and testable. Avoid vague terms (fast, robust, if needed, as appropriate).
Return ONLY a JSON object with no surrounding text, no markdown, and no code fences.

Format:
{
  "suggestions": [
    { "message": "<improved formulation>", "rationale": "<why>", "confidence": 0.0 }
  ]
}

Requirement:
`)
	fmt.Fprintf(&b, "id: %s\ntitle: %s\ntext: %s\nverification_method: %s\nacceptance_criteria: %s\n", req.ID, req.Title, req.Text, req.VerificationMethod, req.AcceptanceCriteria)

	b.WriteString("\nDetected issues:\n")
	if len(ruleIssues) == 0 {
		b.WriteString("- (none)\n")
	}
	for _, i := range ruleIssues {
		fmt.Fprintf(&b, "- %s [%s] %s: %s\n", i.RuleID, i.Severity, i.Category, i.Message)
	}
	return b.String()
}

func (a *Advisor) parseSuggestions(text string) (*suggestionPayload, error) {
	clean := extractJSONPayload(text)
	if clean == "" {
		return nil, fmt.Errorf("empty response")
	}

	result, err := gojsonschema.Validate(suggestionSchemaLoader, gojsonschema.NewStringLoader(clean))
	if err != nil {
		return nil, fmt.Errorf("validate suggestions: %w", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("suggestions do not match schema: %v", result.Errors())
	}

	var payload suggestionPayload
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}
	return &payload, nil
}

// extractJSONPayload strips code fences and surrounding prose, keeping the
// outermost JSON object or array in the response.
func extractJSONPayload(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return clean
	}

	start := strings.IndexAny(clean, "[{")
	if start == -1 {
		return clean
	}
	end := strings.LastIndexAny(clean, "]}")
	if end == -1 || end <= start {
		return clean
	}
	return strings.TrimSpace(clean[start : end+1])
}
