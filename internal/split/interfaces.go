package split

import (
	"context"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/model"
)

// Splitter runs a job of encoder recipes in the background.
// Events must be drained until closed.
type Splitter interface {
	Start(ctx context.Context) error
	Events() <-chan model.Event
	Stop()
	Wait() model.JobStatus
	JobID() string
	Status() model.JobStatus
}
