package model

// JobStatus represents the status of a split job
type JobStatus string

const (
	// JobStatusIdle means no job has been started
	JobStatusIdle JobStatus = "Idle"

	// JobStatusRunning means the worker is executing recipes
	JobStatusRunning JobStatus = "Running"

	// JobStatusCancelling means a stop was requested and the worker is winding down
	JobStatusCancelling JobStatus = "Cancelling"

	// JobStatusInterrupted means the job was stopped by the user
	JobStatusInterrupted JobStatus = "Interrupted"

	// JobStatusFinished means every recipe completed successfully
	JobStatusFinished JobStatus = "Finished"

	// JobStatusError means a step failed to launch or exited with an error
	JobStatusError JobStatus = "Error"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if a worker is attached to the job
func (js JobStatus) IsActive() bool {
	return js == JobStatusRunning || js == JobStatusCancelling
}

// IsFinished returns true if the job reached a terminal state (finished, interrupted, or error)
func (js JobStatus) IsFinished() bool {
	return js == JobStatusFinished || js == JobStatusInterrupted || js == JobStatusError
}
