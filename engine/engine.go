package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/contentforge/core"
	"github.com/hupe1980/contentforge/logging"
)

// Options configures an Engine instance using the functional options pattern.
type Options struct {
	// Logger receives run and per-agent execution events.
	// Defaults to NoOp logger if nil to ensure no logging dependencies.
	Logger logging.Logger

	// CallBudget caps the number of generation calls a single run may issue
	// across all agents. 0 means unlimited.
	CallBudget int
}

// Engine coordinates a registered set of agents over one shared result state.
//
// Agents are registered once, in the order they should be scanned, and every
// run walks that order executing the first agent whose dependencies are
// satisfied. The Engine commits each result under the agent's identity, so
// downstream agents observe exactly the results their declarations name.
//
// The zero value is not usable; construct instances with New.
type Engine struct {
	logger     logging.Logger
	callBudget int

	// Agent registry and status map - protected by mu
	agents   map[string]core.Agent
	order    []string // registration order, drives the scan
	statuses map[string]core.Status
	mu       sync.RWMutex

	// Serializes runs; at most one ExecuteAll is active at a time
	runMu sync.Mutex
}

// New creates an Engine with sensible defaults and optional configuration.
//
// Example:
//
//	eng := engine.New(
//	    engine.WithLogger(logger),
//	)
//	_ = eng.Register(agent.NewParserAgent())
func New(optFns ...func(o *Options)) *Engine {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Engine{
		logger:     opts.Logger,
		callBudget: opts.CallBudget,
		agents:     make(map[string]core.Agent),
		statuses:   make(map[string]core.Status),
	}
}

// WithLogger returns an option setting the engine logger.
func WithLogger(logger logging.Logger) func(o *Options) {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithCallBudget returns an option capping generation calls per run.
func WithCallBudget(max int) func(o *Options) {
	return func(o *Options) {
		o.CallBudget = max
	}
}

// Register adds an agent to the engine's registry.
//
// The identity (agent.Name()) must be unique across the registered set and
// must not collide with the reserved input key. Registration order determines
// scan order during ExecuteAll, so registering independent agents in priority
// order gives deterministic scheduling.
func (e *Engine) Register(a core.Agent) error {
	name := a.Name()
	if name == "" {
		return fmt.Errorf("agent name must not be empty")
	}

	if name == core.InputKey {
		return fmt.Errorf("agent name %q is reserved for the input record", core.InputKey)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.agents[name]; exists {
		return fmt.Errorf("agent %q already registered", name)
	}

	e.agents[name] = a
	e.order = append(e.order, name)
	e.statuses[name] = core.StatusPending

	return nil
}

// Agents returns the registered agent names in registration order.
func (e *Engine) Agents() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, len(e.order))
	copy(names, e.order)

	return names
}

// AgentStatus returns a snapshot of every agent's current status. It is safe
// to call at any time, including mid-run and after a failed run.
func (e *Engine) AgentStatus() map[string]core.Status {
	e.mu.RLock()
	defer e.mu.RUnlock()

	snapshot := make(map[string]core.Status, len(e.statuses))
	for name, status := range e.statuses {
		snapshot[name] = status
	}

	return snapshot
}

// Reset returns every agent to the pending status. Results from previous runs
// are not retained by the engine, so Reset is all that is needed between runs.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for name := range e.statuses {
		e.statuses[name] = core.StatusPending
	}
}

// ExecuteAll runs every registered agent in dependency order against the
// given input record and returns the shared state snapshot keyed by agent
// identity (plus the input under core.InputKey).
//
// The run aborts on the first agent failure; the returned error wraps the
// agent's error with its identity and the remaining agents stay pending. A
// dependency on an unregistered agent or a scan pass without progress fails
// with a *core.GraphError.
func (e *Engine) ExecuteAll(ctx context.Context, input map[string]any) (map[string]any, error) {
	e.runMu.Lock()
	defer e.runMu.Unlock()

	agents, order := e.registry()

	if err := validateGraph(agents, order); err != nil {
		return nil, err
	}

	e.Reset()

	state := core.NewSharedState()
	if err := state.Set(core.InputKey, input); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	budget := core.NewCallBudget(e.callBudget)
	base := core.NewRunContext(ctx, runID, core.AgentInfo{}, state, budget, e.logger)

	e.logger.Info("Run started", "run_id", runID, "agents", len(order))

	started := time.Now()
	completed := make(map[string]bool, len(order))
	remaining := make([]string, len(order))
	copy(remaining, order)

	for len(remaining) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run cancelled: %w", err)
		}

		progressed := false

		for i, name := range remaining {
			a := agents[name]
			if !a.CanExecute(completed) {
				continue
			}

			e.setStatus(name, core.StatusRunning)

			rc := base.WithAgent(core.AgentInfo{Name: name, Type: fmt.Sprintf("%T", a)})

			agentStart := time.Now()
			result, err := a.Execute(rc)
			agentDur := time.Since(agentStart)

			if err != nil {
				e.setStatus(name, core.StatusFailed)
				e.logger.Error("Agent failed", "run_id", runID, "agent", name, "duration", agentDur, "error", err)

				return nil, fmt.Errorf("agent %q: %w", name, err)
			}

			if err := state.Set(name, result); err != nil {
				e.setStatus(name, core.StatusFailed)

				return nil, fmt.Errorf("agent %q: %w", name, err)
			}

			e.setStatus(name, core.StatusCompleted)
			e.logger.Info("Agent completed", "run_id", runID, "agent", name, "duration", agentDur)

			completed[name] = true
			remaining = append(remaining[:i], remaining[i+1:]...)
			progressed = true

			break // restart the scan from the first remaining agent
		}

		if !progressed {
			stuck := make([]string, len(remaining))
			copy(stuck, remaining)

			return nil, &core.GraphError{Reason: "no runnable agent in scan pass", Agents: stuck}
		}
	}

	e.logger.Info("Run completed", "run_id", runID, "duration", time.Since(started), "calls", budget.Count())

	return state.Snapshot(), nil
}

// registry snapshots the agent map and registration order.
func (e *Engine) registry() (map[string]core.Agent, []string) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	agents := make(map[string]core.Agent, len(e.agents))
	for name, a := range e.agents {
		agents[name] = a
	}

	order := make([]string, len(e.order))
	copy(order, e.order)

	return agents, order
}

func (e *Engine) setStatus(name string, status core.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.statuses[name] = status
}

// validateGraph checks that every declared dependency names a registered
// agent, so a dangling reference fails the run before any agent executes.
func validateGraph(agents map[string]core.Agent, order []string) error {
	for _, name := range order {
		for _, dep := range agents[name].Dependencies() {
			if _, ok := agents[dep]; !ok {
				return &core.GraphError{
					Reason: fmt.Sprintf("agent %q depends on unregistered agent %q", name, dep),
					Agents: []string{name},
				}
			}
		}
	}

	return nil
}
