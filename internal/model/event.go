package model

import "fmt"

// EventKind identifies the type of a worker event
type EventKind int

const (
	EventStepStarted EventKind = iota
	EventProgress
	EventStepFailed
	EventLaunchFailed
	EventCompleted
)

// String returns a short label for the event kind
func (k EventKind) String() string {
	switch k {
	case EventStepStarted:
		return "step-started"
	case EventProgress:
		return "progress"
	case EventStepFailed:
		return "step-failed"
	case EventLaunchFailed:
		return "launch-failed"
	case EventCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Event is a message from the split worker to the UI.
// Index is 1-based, Fraction is 0.0 to 1.0.
type Event struct {
	Kind     EventKind
	JobID    string
	Index    int
	Total    int
	Fraction float64
	ExitCode int
	Err      error
	Status   JobStatus
}

// Track returns the "current/total" label used in status messages
func (e Event) Track() string {
	return fmt.Sprintf("%d/%d", e.Index, e.Total)
}

// Percent returns Fraction as an integer percentage
func (e Event) Percent() int {
	return int(e.Fraction*100 + 0.5)
}
