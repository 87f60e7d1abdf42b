package core

// Agent defines the core interface that all agents in ContentForge must implement.
//
// Agents are the primary processing units in the ContentForge pipeline. Each
// agent declares a unique name and a static list of dependencies (names of
// other agents whose results it reads). The engine runs an agent exactly once,
// after all of its dependencies have completed, and commits the returned
// result to shared state under the agent's name.
//
// Implementations must:
//   - Keep CanExecute pure (no side effects, no external calls)
//   - Read dependency results only through the provided RunContext
//   - Never write shared state directly; the engine commits results
//   - Respect context cancellation on blocking work
type Agent interface {
	Name() string
	Dependencies() []string
	CanExecute(completed map[string]bool) bool
	Execute(rc *RunContext) (any, error)
}

// AgentInfo carries identifying details about an agent used in contexts & logs.
// Name is the external identifier; Type categorizes implementation (e.g. "parser", "generator").
type AgentInfo struct{ Name, Type string }
