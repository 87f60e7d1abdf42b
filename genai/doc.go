// Package genai defines the provider-agnostic abstractions and concrete
// helpers for calling text generation services from ContentForge agents.
//
// Core goals:
//   - Unify text + structured (JSON) generation behind a single interface
//   - Isolate transient service failures with bounded, classified retries
//   - Normalize messy model output (fences, prose framing, broken JSON)
//   - Facilitate lightweight stubbing for tests (StubProvider)
//
// Providers (e.g. Groq, Anthropic) implement the Provider interface from this
// package so higher layers (agents, pipeline) remain decoupled from vendor SDKs.
package genai
