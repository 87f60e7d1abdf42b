package core

// Status represents the lifecycle state of an agent within a single run.
// Agents move pending -> running -> completed or failed; the terminal states
// are never left except through an engine Reset.
type Status int

const (
	// StatusPending means the agent has not started yet.
	StatusPending Status = iota
	// StatusRunning means the agent is currently executing.
	StatusRunning
	// StatusCompleted means the agent finished and its result was committed.
	StatusCompleted
	// StatusFailed means the agent returned an error.
	StatusFailed
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status is a terminal state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}
