// Package engine implements the dependency-ordered execution engine at the
// heart of ContentForge.
//
// The Engine owns a registry of named agents, each declaring the agents whose
// results it needs, and drives one run over a shared result state: every
// completed agent commits exactly one result under its own name, and
// downstream agents read those results through the run context.
//
// # Core Responsibilities
//
// Agent Management:
//   - Registration with identity uniqueness enforcement
//   - Dependency validation before any agent runs
//   - Status tracking (pending, running, completed, failed) per agent
//
// Run Orchestration:
//   - Sequential scan-based scheduling in registration order
//   - Shared state commits on behalf of completed agents
//   - Abort on first agent failure with the originating identity attached
//   - Per-run generation call budget shared across agents
//
// # Scheduling
//
// ExecuteAll repeatedly scans the remaining agents in registration order and
// runs the first one whose CanExecute predicate is satisfied by the completed
// set, restarting the scan after every completion. A full scan without
// progress means the graph is unsatisfiable (a cycle, or a predicate that can
// never hold) and the run fails with a GraphError naming the stuck agents.
//
// The scan tolerates agents whose CanExecute looks at more than simple
// set-membership, which a precomputed topological order would not. At this
// scale (a handful of agents, two dependency levels) the quadratic worst case
// is irrelevant; larger graphs should precompute an in-degree order instead.
//
// The default pipeline wiring:
//
//	           ┌──────────┐
//	           │  parser  │
//	           └────┬─────┘
//	     ┌─────────┼──────────────┐
//	┌────┴─────┐ ┌─┴───────┐ ┌────┴───────┐
//	│questions │ │ product  │ │ comparison │
//	└────┬─────┘ └──────────┘ └────────────┘
//	┌────┴─────┐
//	│   faq    │
//	└──────────┘
//
// # Error Handling
//
//   - Registration errors: duplicate identity, reserved input key
//   - GraphError: unregistered dependency (before the run) or a no-progress
//     scan (during the run)
//   - Agent failures: returned wrapped with the agent identity; the run
//     aborts and remaining agents stay pending
//
// # Concurrency Model
//
// Agents run strictly sequentially: at most one agent is in the running
// state at any time and ExecuteAll holds the run lock for the whole
// invocation. Status reads (AgentStatus) are safe at any time, including
// mid-run and mid-failure.
package engine
