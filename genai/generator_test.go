package genai

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastGenerator(provider Provider) *Generator {
	return NewGenerator(provider, func(o *GeneratorOptions) {
		o.BaseWait = time.Millisecond
	})
}

func TestGenerator_SuccessFirstAttempt(t *testing.T) {
	stub := NewStubProvider()
	stub.Enqueue("hello")

	g := fastGenerator(stub)

	text, err := g.GenerateText(context.Background(), "sys", "user", 100)

	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Len(t, stub.Calls(), 1)
}

func TestGenerator_RetriesRateLimit(t *testing.T) {
	stub := NewStubProvider()
	stub.EnqueueError(fmt.Errorf("429 too many requests"))
	stub.EnqueueError(fmt.Errorf("rate limit exceeded"))
	stub.Enqueue("recovered")

	g := fastGenerator(stub)

	text, err := g.GenerateText(context.Background(), "sys", "user", 100)

	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Len(t, stub.Calls(), 3)
}

func TestGenerator_ExhaustionSurfacesServiceUnavailable(t *testing.T) {
	stub := NewStubProvider()
	stub.EnqueueError(fmt.Errorf("rate limit exceeded"))
	stub.EnqueueError(fmt.Errorf("rate limit exceeded"))
	stub.EnqueueError(fmt.Errorf("rate limit exceeded"))

	g := fastGenerator(stub)

	_, err := g.GenerateText(context.Background(), "sys", "user", 100)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrServiceUnavailable))
	assert.Len(t, stub.Calls(), 3)
}

func TestGenerator_NonRateLimitFailsFast(t *testing.T) {
	stub := NewStubProvider()
	stub.EnqueueError(fmt.Errorf("invalid request: model not found"))

	g := fastGenerator(stub)

	_, err := g.GenerateText(context.Background(), "sys", "user", 100)

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrServiceUnavailable))
	assert.Len(t, stub.Calls(), 1, "non rate-limit errors must not be retried")
}

func TestGenerator_DeadlineSurfacesServiceUnavailable(t *testing.T) {
	stub := NewStubProvider()

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	g := fastGenerator(stub)

	_, err := g.GenerateText(ctx, "sys", "user", 100)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrServiceUnavailable))
}

func TestGenerator_GenerateStructuredDecodes(t *testing.T) {
	stub := NewStubProvider()
	stub.Enqueue("```json\n{\"name\": \"GlowBoost\"}\n```")

	g := fastGenerator(stub)

	var out struct {
		Name string `json:"name"`
	}

	err := g.GenerateStructured(context.Background(), "sys", "user", 100, &out)

	require.NoError(t, err)
	assert.Equal(t, "GlowBoost", out.Name)

	calls := stub.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].System, "valid JSON only")
}

func TestGenerator_GenerateStructuredMalformed(t *testing.T) {
	stub := NewStubProvider()
	stub.Enqueue("no json here at all")

	g := fastGenerator(stub)

	var out map[string]any

	err := g.GenerateStructured(context.Background(), "sys", "user", 100, &out)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
}

func TestIsRateLimit_Patterns(t *testing.T) {
	assert.True(t, IsRateLimit(fmt.Errorf("HTTP 429 Too Many Requests")))
	assert.True(t, IsRateLimit(fmt.Errorf("quota exceeded for this billing period")))
	assert.True(t, IsRateLimit(fmt.Errorf("RESOURCE_EXHAUSTED")))
	assert.True(t, IsRateLimit(fmt.Errorf("the model is overloaded")))
	assert.False(t, IsRateLimit(fmt.Errorf("invalid api key")))
	assert.False(t, IsRateLimit(nil))
}

func TestGenerator_RequestIntervalPacing(t *testing.T) {
	stub := NewStubProvider()
	stub.Enqueue("one")
	stub.Enqueue("two")

	g := NewGenerator(stub, func(o *GeneratorOptions) {
		o.RequestInterval = 20 * time.Millisecond
	})

	start := time.Now()

	_, err := g.GenerateText(context.Background(), "", "a", 10)
	require.NoError(t, err)

	_, err = g.GenerateText(context.Background(), "", "b", 10)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond, "second call should wait for the pacing interval")
}
