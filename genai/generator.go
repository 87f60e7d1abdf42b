package genai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/contentforge/logging"
)

const (
	// DefaultMaxAttempts is the default number of tries per generation call.
	DefaultMaxAttempts = 3
	// DefaultBaseWait is the default unit for the linearly increasing retry
	// wait: attempt n sleeps n*DefaultBaseWait before trying again.
	DefaultBaseWait = 10 * time.Second
)

// GeneratorOptions configures a Generator.
type GeneratorOptions struct {
	// MaxAttempts caps how many times a single call may hit the provider.
	MaxAttempts int
	// BaseWait is the unit of the linear retry wait (attempt * BaseWait).
	BaseWait time.Duration
	// RequestInterval, when > 0, enforces a minimum spacing between provider
	// calls across the whole Generator.
	RequestInterval time.Duration
	// Logger receives retry and classification events.
	Logger logging.Logger
}

// Generator implements Client on top of a Provider. It adds bounded retries
// for rate-limit-classified errors with linearly increasing waits, optional
// inter-call pacing, and JSON cleanup for structured generation. All other
// provider errors fail on the first attempt.
type Generator struct {
	provider Provider
	opts     GeneratorOptions
	pacer    *rate.Limiter
	logger   logging.Logger
}

// NewGenerator creates a Generator wrapping the given provider.
func NewGenerator(provider Provider, optFns ...func(o *GeneratorOptions)) *Generator {
	opts := GeneratorOptions{
		MaxAttempts: DefaultMaxAttempts,
		BaseWait:    DefaultBaseWait,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	var pacer *rate.Limiter
	if opts.RequestInterval > 0 {
		pacer = rate.NewLimiter(rate.Every(opts.RequestInterval), 1)
	}

	return &Generator{provider: provider, opts: opts, pacer: pacer, logger: logger}
}

// Provider returns the wrapped provider.
func (g *Generator) Provider() Provider { return g.provider }

// GenerateText requests a completion, retrying rate-limited attempts with
// increasing waits. Retry exhaustion and deadline expiry both surface
// ErrServiceUnavailable so callers treat them as one failure category.
func (g *Generator) GenerateText(ctx context.Context, system, user string, maxTokens int) (string, error) {
	req := Request{System: system, User: user, MaxTokens: maxTokens}

	var lastErr error

	for attempt := 1; attempt <= g.opts.MaxAttempts; attempt++ {
		if g.pacer != nil {
			if err := g.pacer.Wait(ctx); err != nil {
				return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
			}
		}

		text, err := g.provider.Complete(ctx, req)
		if err == nil {
			return text, nil
		}

		lastErr = err

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
		}

		if !IsRateLimit(err) {
			return "", fmt.Errorf("generation request failed: %w", err)
		}

		if attempt == g.opts.MaxAttempts {
			break
		}

		wait := time.Duration(attempt) * g.opts.BaseWait
		g.logger.Warn("Rate limited, backing off", "provider", g.provider.Info().Provider, "attempt", attempt, "wait", wait)

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, ctx.Err())
		case <-time.After(wait):
		}
	}

	return "", fmt.Errorf("%w: %d attempts exhausted: %v", ErrServiceUnavailable, g.opts.MaxAttempts, lastErr)
}

// GenerateStructured requests a completion constrained to JSON output and
// decodes it into v via the cleanup pipeline.
func (g *Generator) GenerateStructured(ctx context.Context, system, user string, maxTokens int, v any) error {
	sys := system
	if sys != "" {
		sys += "\n\n"
	}
	sys += "Respond with valid JSON only. No explanations, no markdown fences."

	text, err := g.GenerateText(ctx, sys, user, maxTokens)
	if err != nil {
		return err
	}

	return DecodeJSON(text, v)
}
