package genai

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Request captures a single normalized generation request.
type Request struct {
	System    string `json:"system"`     // System prompt framing the task
	User      string `json:"user"`       // User prompt with the concrete instruction
	MaxTokens int    `json:"max_tokens"` // Completion token cap, 0 uses the provider default
}

// Info contains metadata about a provider implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "groq", "anthropic", "stub", etc.
}

// Provider is the minimal interface a generation backend must implement.
// Complete performs exactly one request against the service; retries,
// pacing and output cleanup are layered on top by Generator.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)

	// Info returns information about the provider implementation.
	Info() Info
}

// Client is the interface agents use to drive generation. GenerateText
// returns the raw completion text; GenerateStructured additionally cleans
// the response and decodes it as JSON into v.
type Client interface {
	GenerateText(ctx context.Context, system, user string, maxTokens int) (string, error)
	GenerateStructured(ctx context.Context, system, user string, maxTokens int, v any) error
}

// stubResult is a queued canned outcome for StubProvider.
type stubResult struct {
	text string
	err  error
}

// StubProvider is a lightweight in-memory Provider useful for tests & examples.
// Queued results (Enqueue / EnqueueError) are consumed first in FIFO order;
// otherwise responses registered with AddResponse are matched by substring of
// the user prompt. Unmatched prompts get a generic echo completion.
type StubProvider struct {
	info      Info
	responses map[string]string
	queue     []stubResult
	calls     []Request
	mu        sync.Mutex
}

// NewStubProvider constructs a StubProvider.
func NewStubProvider() *StubProvider {
	return &StubProvider{
		info:      Info{Name: "stub", Provider: "stub"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion returned whenever
// the user prompt contains the given substring.
func (s *StubProvider) AddResponse(promptSubstring, response string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[promptSubstring] = response
}

// Enqueue appends a canned completion consumed by the next Complete call.
func (s *StubProvider) Enqueue(response string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, stubResult{text: response})
}

// EnqueueError appends an error consumed by the next Complete call.
func (s *StubProvider) EnqueueError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, stubResult{err: err})
}

// Calls returns a copy of all requests seen so far.
func (s *StubProvider) Calls() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	calls := make([]Request, len(s.calls))
	copy(calls, s.calls)
	return calls
}

// Complete implements Provider.
func (s *StubProvider) Complete(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, req)

	if len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]

		if next.err != nil {
			return "", next.err
		}

		return next.text, nil
	}

	for substr, response := range s.responses {
		if strings.Contains(req.User, substr) {
			return response, nil
		}
	}

	return fmt.Sprintf("Stub response to: %s", req.User), nil
}

// Info implements Provider.
func (s *StubProvider) Info() Info { return s.info }
