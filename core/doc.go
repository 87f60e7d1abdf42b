// Package core provides the foundational domain types, interfaces and execution
// contexts used by ContentForge. It defines the core abstractions for:
//
//   - Agents (units of dependency-ordered content generation work)
//   - SharedState (append-once result map propagated between agents)
//   - RunContext (scoped execution state handed to an agent's Execute)
//   - Status (per-agent lifecycle: pending, running, completed, failed)
//   - The product/question data model shared by all agents
//   - The error taxonomy for graph and schema failures
//
// The package intentionally keeps implementation concerns (generation clients,
// engine orchestration, concrete agents) out of scope, exposing small
// interfaces to enable custom backends and extensions. All exported
// identifiers include concise documentation to aid discoverability and
// external consumption.
package core
