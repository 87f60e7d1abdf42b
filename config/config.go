package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// CONTENTFORGE_GENERATION_API_KEY sets generation.api_key.
const EnvPrefix = "CONTENTFORGE_"

// Config is the full runtime configuration. Values are layered: built-in
// defaults, then an optional YAML file, then CONTENTFORGE_* environment
// variables, each layer overriding the previous one.
type Config struct {
	Generation GenerationConfig `koanf:"generation"`
	Pipeline   PipelineConfig   `koanf:"pipeline"`
	Output     OutputConfig     `koanf:"output"`
	Store      StoreConfig      `koanf:"store"`
	Log        LogConfig        `koanf:"log"`
}

// GenerationConfig configures the external generation client.
type GenerationConfig struct {
	Provider        string        `koanf:"provider"` // groq, anthropic
	Model           string        `koanf:"model"`
	APIKey          string        `koanf:"api_key"`
	BaseURL         string        `koanf:"base_url"`
	MaxTokens       int           `koanf:"max_tokens"`
	MaxAttempts     int           `koanf:"max_attempts"`
	RetryBaseWait   time.Duration `koanf:"retry_base_wait"`
	RequestInterval time.Duration `koanf:"request_interval"`
}

// PipelineConfig configures agent behavior for one run.
type PipelineConfig struct {
	QuestionCount int `koanf:"question_count"`
	MinFAQCount   int `koanf:"min_faq_count"`
	CallBudget    int `koanf:"call_budget"` // 0 means unlimited
}

// OutputConfig configures where generated pages are written.
type OutputConfig struct {
	Dir string `koanf:"dir"`
}

// StoreConfig configures the run ledger. An empty path selects the
// in-memory store.
type StoreConfig struct {
	Path string `koanf:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // json, text
}

// Load builds a Config from defaults, the optional YAML file at path, and
// CONTENTFORGE_* environment variables, in that precedence order.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("set default %q: %w", key, err)
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %q: %w", path, err)
		}
	}

	// CONTENTFORGE_GENERATION_API_KEY -> generation.api_key: only the first
	// underscore separates the section from the key.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment overrides: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration without file or environment
// layering.
func Default() *Config {
	return &Config{
		Generation: GenerationConfig{
			Provider:      "groq",
			Model:         "llama-3.3-70b-versatile",
			MaxTokens:     2000,
			MaxAttempts:   3,
			RetryBaseWait: 10 * time.Second,
		},
		Pipeline: PipelineConfig{
			QuestionCount: 15,
			MinFAQCount:   15,
		},
		Output: OutputConfig{Dir: "outputs"},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// defaults flattens Default into koanf keys.
func defaults() map[string]any {
	d := Default()

	return map[string]any{
		"generation.provider":         d.Generation.Provider,
		"generation.model":            d.Generation.Model,
		"generation.api_key":          d.Generation.APIKey,
		"generation.base_url":         d.Generation.BaseURL,
		"generation.max_tokens":       d.Generation.MaxTokens,
		"generation.max_attempts":     d.Generation.MaxAttempts,
		"generation.retry_base_wait":  d.Generation.RetryBaseWait.String(),
		"generation.request_interval": d.Generation.RequestInterval.String(),
		"pipeline.question_count":     d.Pipeline.QuestionCount,
		"pipeline.min_faq_count":      d.Pipeline.MinFAQCount,
		"pipeline.call_budget":        d.Pipeline.CallBudget,
		"output.dir":                  d.Output.Dir,
		"store.path":                  d.Store.Path,
		"log.level":                   d.Log.Level,
		"log.format":                  d.Log.Format,
	}
}

// Validate checks configuration invariants that would otherwise surface as
// confusing runtime failures.
func (c *Config) Validate() error {
	switch c.Generation.Provider {
	case "groq", "anthropic", "stub":
	default:
		return fmt.Errorf("unknown generation provider %q", c.Generation.Provider)
	}

	if c.Generation.MaxAttempts < 1 {
		return fmt.Errorf("generation.max_attempts must be at least 1, got %d", c.Generation.MaxAttempts)
	}

	if c.Pipeline.QuestionCount < 1 {
		return fmt.Errorf("pipeline.question_count must be at least 1, got %d", c.Pipeline.QuestionCount)
	}

	if c.Pipeline.MinFAQCount < 0 {
		return fmt.Errorf("pipeline.min_faq_count must not be negative, got %d", c.Pipeline.MinFAQCount)
	}

	return nil
}
