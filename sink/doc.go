// Package sink persists assembled pages.
//
// The Sink interface is the persistence collaborator consumed by the CLI and
// the pipeline façade: it accepts one named document at a time and writes it
// durably. Implementation types provide storage backends that can be swapped
// without touching calling code: FileSink for the JSON output directory,
// MemorySink for tests and single-process prototypes.
//
// Callers should depend on the Sink interface rather than concrete types so
// they can substitute alternative persistence layers in tests or production.
package sink
