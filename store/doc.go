// Package store records pipeline runs for later inspection.
//
// A RunRecord captures one ExecuteAll invocation: identity, timing, final
// per-agent statuses and the failure (if any). The Store interface has an
// in-memory implementation for tests and prototypes and a SQLite-backed one
// for durable history; the CLI status command reads the latter.
package store
