// Package ai defines the port to the optional advisory language model.
package ai

import (
	"context"
)

// CompletionRequest is a prompt to the advisory model.
type CompletionRequest struct {
	Prompt      string
	System      string
	Temperature float32
	MaxTokens   int
}

// CompletionResponse is the model's answer.
type CompletionResponse struct {
	Text  string
	Model string
	Usage TokenUsage
}

// TokenUsage tracks consumption for audit purposes.
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
}

// Provider is the interface every advisory backend implements. Providers
// are injected into the orchestrator so tests can substitute deterministic
// stubs.
type Provider interface {
	ID() string
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}
