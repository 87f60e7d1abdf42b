// Package groq provides an implementation of genai.Provider using the Groq
// Chat Completions API. Groq exposes an OpenAI-compatible endpoint, so the
// adapter drives the official openai-go SDK against the Groq base URL.
package groq

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/hupe1980/contentforge/genai"
)

const (
	// DefaultBaseURL is the Groq OpenAI-compatible endpoint.
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	// DefaultModel is the default Groq model id.
	DefaultModel = "llama-3.3-70b-versatile"
	// DefaultMaxTokens caps completions when the request does not set one.
	DefaultMaxTokens = 2000
)

// Options configure the Groq provider adapter.
// Fields mirror a subset of Chat Completion parameters intentionally kept
// minimal; extend via functional options without breaking callers.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int64
	BaseURL     string
	APIKey      string
}

// Provider wraps the Groq Chat Completions API behind the generic
// genai.Provider interface.
type Provider struct {
	client *openai.Client
	opts   Options
}

// New creates a new Groq provider using the official openai client.
func New(optFns ...func(o *Options)) *Provider {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	clientOpts := []option.RequestOption{
		option.WithBaseURL(opts.BaseURL),
	}
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	client := openai.NewClient(clientOpts...)

	return &Provider{client: &client, opts: opts}
}

// NewFromClient creates a new Groq provider from an existing client.
func NewFromClient(client *openai.Client, optFns ...func(o *Options)) *Provider {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Provider{client: client, opts: opts}
}

func defaultOptions() Options {
	return Options{
		Model:       DefaultModel,
		Temperature: 0.7,
		MaxTokens:   DefaultMaxTokens,
		BaseURL:     DefaultBaseURL,
	}
}

// Complete implements genai.Provider with a single non-streaming completion.
func (p *Provider) Complete(ctx context.Context, req genai.Request) (string, error) {
	maxTokens := p.opts.MaxTokens
	if req.MaxTokens > 0 {
		maxTokens = int64(req.MaxTokens)
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.User))

	params := openai.ChatCompletionNewParams{
		Messages:            messages,
		Model:               p.opts.Model,
		Temperature:         openai.Float(p.opts.Temperature),
		MaxCompletionTokens: openai.Int(maxTokens),
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("groq api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

// Info returns metadata describing this Groq provider implementation.
func (p *Provider) Info() genai.Info {
	return genai.Info{
		Name:     p.opts.Model,
		Provider: "groq",
	}
}
