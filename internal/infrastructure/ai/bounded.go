package ai

import (
	"context"
	"time"

	"github.com/felixgeelhaar/fortify/timeout"
	"github.com/reqqual/reqqual/internal/domain/ai"
)

const defaultCallTimeout = 30 * time.Second

// BoundedProvider enforces a hard deadline on every advisory call. There is
// deliberately no retry at this layer: the adapter contract is a single
// bounded attempt per requirement, then fallback to the deterministic path.
type BoundedProvider struct {
	inner ai.Provider
	limit time.Duration
}

func NewBoundedProvider(inner ai.Provider, limit time.Duration) *BoundedProvider {
	if limit <= 0 {
		limit = defaultCallTimeout
	}
	return &BoundedProvider{inner: inner, limit: limit}
}

func (p *BoundedProvider) ID() string {
	return p.inner.ID()
}

func (p *BoundedProvider) Complete(ctx context.Context, req ai.CompletionRequest) (*ai.CompletionResponse, error) {
	guard := timeout.New[*ai.CompletionResponse](timeout.Config{
		DefaultTimeout: p.limit,
	})
	return guard.Execute(ctx, p.limit, func(ctx context.Context) (*ai.CompletionResponse, error) {
		return p.inner.Complete(ctx, req)
	})
}
