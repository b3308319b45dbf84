package ai

import (
	"fmt"
	"os"

	"github.com/reqqual/reqqual/internal/domain/ai"
)

// NewProvider builds an advisory backend by name. Credentials come from the
// environment and stay opaque to the core; a provider constructed without
// its credential still loads, and the missing key surfaces as an ordinary
// call failure that the advisory boundary absorbs.
func NewProvider(providerName, modelName string) (ai.Provider, error) {
	switch providerName {
	case "ollama", "":
		return NewOllamaProvider(modelName), nil
	case "openai":
		return NewOpenAIProvider(modelName, os.Getenv("OPENAI_API_KEY")), nil
	case "mock":
		return &MockProvider{Model: modelName}, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", providerName)
	}
}

// FromEnv resolves the provider, honoring REQQUAL_AI_PROVIDER and
// REQQUAL_AI_MODEL overrides before falling back to the configured values.
func FromEnv(providerName, modelName string) (ai.Provider, error) {
	if v := os.Getenv("REQQUAL_AI_PROVIDER"); v != "" {
		providerName = v
	}
	if v := os.Getenv("REQQUAL_AI_MODEL"); v != "" {
		modelName = v
	}
	return NewProvider(providerName, modelName)
}
