// Package config loads the reqqual.yaml run configuration and applies
// environment overrides. Everything here is loaded once per run and handed
// to the orchestrator as immutable values; no process-wide toggles.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reqqual/reqqual/internal/domain/requirement"
	"github.com/reqqual/reqqual/internal/domain/rules"
	"github.com/reqqual/reqqual/internal/domain/scoring"
)

// DefaultFile is the config filename looked up in the working directory.
const DefaultFile = "reqqual.yaml"

type Config struct {
	AI      AIConfig      `yaml:"ai"`
	Scoring ScoringConfig `yaml:"scoring"`
	Rules   RulesConfig   `yaml:"rules"`
}

// AIConfig gates and shapes the advisory component. Enabled defaults to
// false: the deterministic pipeline must run identically without it.
type AIConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Provider       string `yaml:"provider"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxSuggestions int    `yaml:"max_suggestions"`
}

// ScoringConfig overrides the default weight table and thresholds. Zero
// values fall back to the defaults.
type ScoringConfig struct {
	Weights       map[string]int `yaml:"weights"`
	PassThreshold int            `yaml:"pass_threshold"`
	WarnThreshold int            `yaml:"warn_threshold"`
}

type RulesConfig struct {
	MaxSentenceWords int `yaml:"max_sentence_words"`
}

// Default returns the shipped configuration.
func Default() *Config {
	return &Config{
		AI: AIConfig{
			Provider:       "ollama",
			TimeoutSeconds: 30,
			MaxSuggestions: 3,
		},
		Rules: RulesConfig{MaxSentenceWords: rules.DefaultConfig().MaxSentenceWords},
	}
}

// Load reads the config file. A missing file is not an error; defaults
// apply.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv layers environment overrides over the file values.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv("REQQUAL_ENABLE_AI"); ok {
		c.AI.Enabled = truthy(v)
	}
	if v := os.Getenv("REQQUAL_AI_PROVIDER"); v != "" {
		c.AI.Provider = v
	}
	if v := os.Getenv("REQQUAL_AI_MODEL"); v != "" {
		c.AI.Model = v
	}
}

// ScoringPolicy materializes the scoring policy, falling back to defaults
// for anything the file left unset.
func (c *Config) ScoringPolicy() scoring.Policy {
	policy := scoring.DefaultPolicy()
	for name, weight := range c.Scoring.Weights {
		sev := requirement.Severity(strings.ToUpper(strings.TrimSpace(name)))
		if sev.Rank() == 0 {
			continue
		}
		policy.Weights[sev] = weight
	}
	if c.Scoring.PassThreshold > 0 {
		policy.PassThreshold = c.Scoring.PassThreshold
	}
	if c.Scoring.WarnThreshold > 0 {
		policy.WarnThreshold = c.Scoring.WarnThreshold
	}
	return policy
}

// RuleConfig materializes the catalog configuration.
func (c *Config) RuleConfig() rules.Config {
	cfg := rules.DefaultConfig()
	if c.Rules.MaxSentenceWords > 0 {
		cfg.MaxSentenceWords = c.Rules.MaxSentenceWords
	}
	return cfg
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
