package ai_test

import (
	"context"
	"testing"
	"time"

	"github.com/reqqual/reqqual/internal/domain/ai"
	aiinfra "github.com/reqqual/reqqual/internal/infrastructure/ai"
)

type slowProvider struct {
	delay time.Duration
}

func (p *slowProvider) ID() string { return "slow" }

func (p *slowProvider) Complete(ctx context.Context, _ ai.CompletionRequest) (*ai.CompletionResponse, error) {
	select {
	case <-time.After(p.delay):
		return &ai.CompletionResponse{Text: `{"suggestions":[]}`, Model: "slow"}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestBoundedProvider_PassesFastCallsThrough(t *testing.T) {
	p := aiinfra.NewBoundedProvider(&slowProvider{delay: 5 * time.Millisecond}, time.Second)

	resp, err := p.Complete(context.Background(), ai.CompletionRequest{Prompt: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != `{"suggestions":[]}` {
		t.Errorf("unexpected response: %q", resp.Text)
	}
	if p.ID() != "slow" {
		t.Errorf("wrapper must keep the inner provider id, got %q", p.ID())
	}
}

func TestBoundedProvider_EnforcesDeadline(t *testing.T) {
	p := aiinfra.NewBoundedProvider(&slowProvider{delay: 2 * time.Second}, 30*time.Millisecond)

	start := time.Now()
	_, err := p.Complete(context.Background(), ai.CompletionRequest{Prompt: "x"})
	if err == nil {
		t.Fatal("expected a timeout error")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("call was not cut off at the deadline, took %v", elapsed)
	}
}
