// Package agent contains the concrete pipeline agents and the shared
// plumbing they embed. The package focuses on three concerns:
//
//  1. Identity + dependency declaration (BaseAgent)
//  2. Deterministic transforms (ParserAgent, ProductAgent)
//  3. Generation-backed content agents (QuestionAgent, FAQAgent, ComparisonAgent)
//
// Design principles:
//   - Minimal hidden global state – collaborators are injected via constructors
//   - Explicit data flow – dependency results are read from core.RunContext,
//     never from package-level variables
//   - Observability – each agent logs through the run-scoped logger
//   - Extensibility – embed BaseAgent; only implement Execute plus any custom API
//
// Execution Model:
//   - An agent's Execute receives a *core.RunContext scoped to its identity
//   - The engine commits returned results under the agent's name; agents
//     themselves never write shared state
//   - Generation-backed agents reserve budget via ReserveCall before each
//     external call
//
// The package intentionally keeps provider specifics, retry policy and page
// layout in the genai and template packages to avoid cyclic deps.
package agent
