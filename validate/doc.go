// Package validate enforces business rules on assembled pages after a run.
//
// The engine's contract ends at committing agent results; the rules here
// (minimum FAQ count, complete product sections, exactly two compared
// products) are the caller's quality gate, applied to the run's result map
// before anything is persisted. Violations surface as *Error values naming
// the page and the broken rule.
package validate
