package core

import (
	"context"
	"fmt"

	"github.com/hupe1980/contentforge/logging"
)

// RunContext carries execution state & helpers for an agent run.
// It encapsulates the per-run execution scope passed to an Agent's Execute
// method. It aggregates:
//   - The ambient cancellation Context
//   - Identifiers (RunID, Agent info)
//   - Read access to the shared result state
//   - The per-run generation CallBudget
//   - A logger enriched with run/agent attributes
//
// Agents read dependency results through Result and never mutate shared
// state; the engine commits Execute return values itself.
type RunContext struct {
	Context context.Context
	RunID   string
	Agent   AgentInfo
	State   *SharedState
	Budget  *CallBudget

	*loggerAdapter
}

// NewRunContext constructs a RunContext over the given shared state.
func NewRunContext(
	ctx context.Context,
	runID string,
	agent AgentInfo,
	state *SharedState,
	budget *CallBudget,
	logger logging.Logger,
) *RunContext {
	if budget == nil {
		budget = NewCallBudget(0)
	}

	return &RunContext{
		Context:       ctx,
		RunID:         runID,
		Agent:         agent,
		State:         state,
		Budget:        budget,
		loggerAdapter: newLoggerAdapter(logger),
	}
}

// Done returns a channel closed when the underlying context is cancelled.
func (rc *RunContext) Done() <-chan struct{} { return rc.Context.Done() }

// Err returns the cancellation error (if any) from the underlying context.
func (rc *RunContext) Err() error { return rc.Context.Err() }

// Result returns the committed result for the named agent.
func (rc *RunContext) Result(name string) (any, bool) {
	if rc.State == nil {
		return nil, false
	}

	return rc.State.Get(name)
}

// MustResult returns the committed result for the named agent or an error
// when the dependency has not completed. Agents use it for declared
// dependencies, which the engine guarantees are present before Execute runs.
func (rc *RunContext) MustResult(name string) (any, error) {
	v, ok := rc.Result(name)
	if !ok {
		return nil, fmt.Errorf("dependency %q has no committed result", name)
	}

	return v, nil
}

// Input returns the raw input record stored under the reserved InputKey.
func (rc *RunContext) Input() (map[string]any, bool) {
	v, ok := rc.Result(InputKey)
	if !ok {
		return nil, false
	}

	m, ok := v.(map[string]any)

	return m, ok
}

// ReserveCall charges one generation call against the run budget.
func (rc *RunContext) ReserveCall() error {
	if rc.Budget == nil {
		return nil
	}

	return rc.Budget.Increment()
}

// GetAgentName returns the logical agent name for this execution.
func (rc *RunContext) GetAgentName() string { return rc.Agent.Name }

// GetAgentType returns a categorization label for the agent.
func (rc *RunContext) GetAgentType() string { return rc.Agent.Type }

// WithAgent returns a copy of the context scoped to another agent. The engine
// derives one per agent execution so logs carry the right identity while the
// run-wide state and budget stay shared.
func (rc *RunContext) WithAgent(agent AgentInfo) *RunContext {
	c := &RunContext{
		Context:       rc.Context,
		RunID:         rc.RunID,
		Agent:         agent,
		State:         rc.State,
		Budget:        rc.Budget,
		loggerAdapter: rc.loggerAdapter,
	}

	return c
}
