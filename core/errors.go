package core

import (
	"fmt"
	"strings"
)

// GraphError reports an unsatisfiable agent dependency graph: a declared
// dependency that no registered agent provides, or a cycle that leaves a
// scan pass without a runnable agent. It is raised before or during a run
// and always aborts it.
type GraphError struct {
	Reason string   // human readable cause
	Agents []string // agents that can never execute
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	if len(e.Agents) == 0 {
		return fmt.Sprintf("unsatisfiable agent graph: %s", e.Reason)
	}
	return fmt.Sprintf("unsatisfiable agent graph: %s (stuck agents: %s)", e.Reason, strings.Join(e.Agents, ", "))
}

// SchemaError reports a record missing a required field, either in the raw
// input handed to the parser or in an item decoded from generated output.
// Index is the list position and -1 when the failure is not tied to one.
type SchemaError struct {
	Agent string // agent that received the malformed record
	Field string // missing or invalid field
	Index int    // position in the decoded list, -1 if not applicable
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("agent %q: item %d missing required field %q", e.Agent, e.Index, e.Field)
	}
	return fmt.Sprintf("agent %q: missing required field %q", e.Agent, e.Field)
}

// GenerationError reports a decodable but semantically invalid generation
// result, such as an answer list whose size does not match the question list.
type GenerationError struct {
	Agent  string // agent that produced the result
	Reason string // human readable violation
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("agent %q: %s", e.Agent, e.Reason)
}
