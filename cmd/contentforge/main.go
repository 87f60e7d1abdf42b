// Command contentforge generates structured marketing content (FAQ page,
// product page, comparison page) for a product description by running the
// dependency-ordered agent pipeline against a configured generation provider.
package main

import (
	"fmt"
	"os"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/spf13/cobra"

	"github.com/hupe1980/contentforge/config"
	"github.com/hupe1980/contentforge/genai"
	"github.com/hupe1980/contentforge/genai/anthropic"
	"github.com/hupe1980/contentforge/genai/groq"
	"github.com/hupe1980/contentforge/logging"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "contentforge",
		Short:         "Generate FAQ, product and comparison pages for a product record",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	cmd.AddCommand(newGenerateCmd(&configPath))
	cmd.AddCommand(newStatusCmd(&configPath))

	return cmd
}

// loadConfig layers defaults, the optional config file and environment
// overrides, then validates the result.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newLogger builds the process logger from the log config.
func newLogger(cfg config.LogConfig) logging.Logger {
	return logging.NewSlogLogger(parseLogLevel(cfg.Level), cfg.Format, false)
}

func parseLogLevel(level string) logging.LogLevel {
	switch level {
	case "debug":
		return logging.LogLevelDebug
	case "warn":
		return logging.LogLevelWarn
	case "error":
		return logging.LogLevelError
	default:
		return logging.LogLevelInfo
	}
}

// newClient builds the retrying generation client for the configured
// provider.
func newClient(cfg config.GenerationConfig, logger logging.Logger) (genai.Client, error) {
	var provider genai.Provider

	switch cfg.Provider {
	case "groq":
		provider = groq.New(func(o *groq.Options) {
			o.Model = cfg.Model
			o.APIKey = cfg.APIKey
			o.MaxTokens = int64(cfg.MaxTokens)
			if cfg.BaseURL != "" {
				o.BaseURL = cfg.BaseURL
			}
		})
	case "anthropic":
		provider = anthropic.New(func(o *anthropic.Options) {
			if cfg.Model != "" {
				o.Model = anthropicsdk.Model(cfg.Model)
			}
			o.APIKey = cfg.APIKey
			o.MaxTokens = int64(cfg.MaxTokens)
		})
	default:
		return nil, fmt.Errorf("provider %q is not usable from the CLI (stub is for tests and examples)", cfg.Provider)
	}

	client := genai.NewGenerator(provider, func(o *genai.GeneratorOptions) {
		o.MaxAttempts = cfg.MaxAttempts
		o.BaseWait = cfg.RetryBaseWait
		o.RequestInterval = cfg.RequestInterval
		o.Logger = logger
	})

	return client, nil
}
