package ai

import (
	"context"

	"github.com/reqqual/reqqual/internal/domain/ai"
)

// MockProvider returns a canned response. It exists so the advisory path can
// be exercised deterministically in tests and demos.
type MockProvider struct {
	Model    string
	Response string
	Err      error
}

func (p *MockProvider) ID() string {
	model := p.Model
	if model == "" {
		model = "static"
	}
	return "mock:" + model
}

func (p *MockProvider) Complete(ctx context.Context, req ai.CompletionRequest) (*ai.CompletionResponse, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	text := p.Response
	if text == "" {
		text = `{"suggestions":[]}`
	}
	return &ai.CompletionResponse{
		Text:  text,
		Model: p.ID(),
		Usage: ai.TokenUsage{InputTokens: len(req.Prompt) / 4, OutputTokens: len(text) / 4},
	}, nil
}
