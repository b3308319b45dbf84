package ai_test

import (
	"context"
	"strings"
	"testing"

	"github.com/reqqual/reqqual/internal/domain/ai"
	aiinfra "github.com/reqqual/reqqual/internal/infrastructure/ai"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		wantID   string
		wantErr  bool
	}{
		{name: "ollama", provider: "ollama", wantID: "ollama:"},
		{name: "empty defaults to ollama", provider: "", wantID: "ollama:"},
		{name: "openai", provider: "openai", wantID: "openai:"},
		{name: "mock", provider: "mock", wantID: "mock:"},
		{name: "unknown", provider: "bard", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := aiinfra.NewProvider(tt.provider, "")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error for provider %q", tt.provider)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasPrefix(p.ID(), tt.wantID) {
				t.Errorf("provider id %q, want prefix %q", p.ID(), tt.wantID)
			}
		})
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("REQQUAL_AI_PROVIDER", "mock")
	t.Setenv("REQQUAL_AI_MODEL", "static")

	p, err := aiinfra.FromEnv("ollama", "llama3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID() != "mock:static" {
		t.Errorf("env override lost, got provider %q", p.ID())
	}
}

func TestMockProvider_Complete(t *testing.T) {
	p := &aiinfra.MockProvider{}

	resp, err := p.Complete(context.Background(), ai.CompletionRequest{Prompt: "anything"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != `{"suggestions":[]}` {
		t.Errorf("default mock response should be an empty suggestion set, got %q", resp.Text)
	}
}
