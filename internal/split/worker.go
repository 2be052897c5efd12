package split

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/logging"
	"github.com/ffcuesplitter/ffcuesplitter-gui/internal/model"
)

// Worker constants
const (
	JobIDPrefix      = "split-"
	LockSuffix       = ".lock"
	CommandLogPrefix = "COMMAND: "
	ErrorLogPrefix   = "ERROR: "
	NotInstalledHint = "Is 'ffmpeg' installed on your system?"

	eventBuffer = 64
	// grace period after SIGTERM before the encoder is killed
	stopWaitDelay = 5 * time.Second
)

var (
	// ErrJobLocked means another job holds the log lock
	ErrJobLocked = errors.New("another split job is running")
	// ErrNoRecipes means the job has nothing to run
	ErrNoRecipes = errors.New("no recipes to run")
	// ErrAlreadyStarted means Start was called twice
	ErrAlreadyStarted = errors.New("job already started")
)

// Worker executes recipes one at a time, relaying encoder progress as events
type Worker struct {
	id      string
	recipes []model.Recipe
	logPath string
	logger  *slog.Logger
	lock    *flock.Flock

	events   chan model.Event
	done     chan struct{}
	started  atomic.Bool
	stopping atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
	status model.JobStatus
}

// NewWorker creates a worker for recipes, writing encoder output to logPath
func NewWorker(recipes []model.Recipe, logPath string, logger *slog.Logger) (*Worker, error) {
	if len(recipes) == 0 {
		return nil, ErrNoRecipes
	}
	id := generateJobID()
	return &Worker{
		id:      id,
		recipes: recipes,
		logPath: logPath,
		logger:  logging.NewComponentLogger(logger, "split").With(slog.String(logging.FieldJobID, id)),
		lock:    flock.New(logPath + LockSuffix),
		events:  make(chan model.Event, eventBuffer),
		done:    make(chan struct{}),
		status:  model.JobStatusIdle,
	}, nil
}

// JobID returns the job identifier
func (w *Worker) JobID() string {
	return w.id
}

// Events returns the event stream; it is closed after the Completed event
func (w *Worker) Events() <-chan model.Event {
	return w.events
}

// Status returns the current job status
func (w *Worker) Status() model.JobStatus {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Start takes the job lock, truncates the log and runs the recipes in the background
func (w *Worker) Start(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	ok, err := w.lock.TryLock()
	if err != nil {
		w.started.Store(false)
		return fmt.Errorf("acquire job lock: %w", err)
	}
	if !ok {
		w.started.Store(false)
		return ErrJobLocked
	}

	logFile, err := os.OpenFile(w.logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC|os.O_APPEND, 0o644)
	if err != nil {
		_ = w.lock.Unlock()
		w.started.Store(false)
		return fmt.Errorf("open log file: %w", err)
	}
	fmt.Fprintf(logFile, "JOB: %s (%d tracks) %s\n", w.id, len(w.recipes), time.Now().Format(time.RFC3339))

	w.setStatus(model.JobStatusRunning)
	w.logger.Info("split job started", "tracks", len(w.recipes), "log", w.logPath)

	go w.run(ctx, logFile)
	return nil
}

// Stop requests cancellation: the running encoder is terminated and no further steps start
func (w *Worker) Stop() {
	if !w.stopping.CompareAndSwap(false, true) {
		return
	}
	w.mu.Lock()
	if w.status.IsActive() {
		w.status = model.JobStatusCancelling
	}
	if w.cancel != nil {
		w.cancel()
	}
	w.mu.Unlock()
	w.logger.Info("split job stop requested")
}

// Wait blocks until the job has finished and returns its terminal status
func (w *Worker) Wait() model.JobStatus {
	if !w.started.Load() {
		return w.Status()
	}
	<-w.done
	return w.Status()
}

func (w *Worker) run(ctx context.Context, logFile *os.File) {
	final := model.JobStatusFinished

	defer func() {
		w.setStatus(final)
		w.events <- model.Event{Kind: model.EventCompleted, JobID: w.id, Total: len(w.recipes), Status: final}
		close(w.events)
		logFile.Close()
		if err := w.lock.Unlock(); err != nil {
			w.logger.Warn("release job lock", logging.Error(err))
		}
		w.logger.Info("split job completed", "status", final.String())
		close(w.done)
	}()

	total := len(w.recipes)
	for i, recipe := range w.recipes {
		index := i + 1

		stepCtx, cancel := context.WithCancel(ctx)
		w.mu.Lock()
		if w.cancelled(ctx) {
			w.mu.Unlock()
			cancel()
			final = model.JobStatusInterrupted
			return
		}
		w.cancel = cancel
		w.mu.Unlock()

		w.emit(model.Event{Kind: model.EventStepStarted, Index: index, Total: total})
		final = w.runStep(stepCtx, recipe, index, total, logFile)

		w.mu.Lock()
		w.cancel = nil
		w.mu.Unlock()
		cancel()

		if final != model.JobStatusFinished {
			return
		}
	}
}

// runStep executes one recipe. It returns Finished to continue with the next step.
func (w *Worker) runStep(ctx context.Context, recipe model.Recipe, index, total int, logFile *os.File) model.JobStatus {
	fmt.Fprintf(logFile, "\n%s%s\n", CommandLogPrefix, recipe.CommandLine())

	if recipe.Command() == "" {
		w.launchFailed(fmt.Errorf("empty command"), index, total, logFile)
		return model.JobStatusError
	}

	cmd := exec.CommandContext(ctx, recipe.Args[0], recipe.Args[1:]...)
	cmd.Stderr = logFile
	cmd.Cancel = func() error { return terminate(cmd) }
	cmd.WaitDelay = stopWaitDelay

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		if w.cancelled(ctx) {
			return model.JobStatusInterrupted
		}
		w.launchFailed(fmt.Errorf("failed to create stdout pipe: %w", err), index, total, logFile)
		return model.JobStatusError
	}

	// a Stop landing between the loop check and Start cancels ctx, which Start reports as an error
	if err := cmd.Start(); err != nil {
		if w.cancelled(ctx) {
			return model.JobStatusInterrupted
		}
		w.launchFailed(err, index, total, logFile)
		return model.JobStatusError
	}
	w.logger.Debug("step started", "index", index, "total", total, "output", recipe.OutputName)

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		fraction, ok := ParseProgress(scanner.Text(), recipe.Duration)
		if !ok {
			continue
		}
		w.emit(model.Event{Kind: model.EventProgress, Index: index, Total: total, Fraction: fraction})
	}
	if err := scanner.Err(); err != nil {
		w.logger.Warn("progress scan stopped", "index", index, logging.Error(err))
		// keep the pipe empty so the encoder can run to completion
		_, _ = io.Copy(io.Discard, stdout)
	}

	err = cmd.Wait()
	if w.cancelled(ctx) {
		return model.JobStatusInterrupted
	}
	if err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		w.logger.Warn("step failed", "index", index, "exit_code", code, logging.Error(err))
		w.emit(model.Event{Kind: model.EventStepFailed, Index: index, Total: total, ExitCode: code, Err: err})
		return model.JobStatusError
	}
	return model.JobStatusFinished
}

func (w *Worker) cancelled(ctx context.Context) bool {
	return w.stopping.Load() || ctx.Err() != nil
}

func (w *Worker) launchFailed(err error, index, total int, logFile *os.File) {
	err = fmt.Errorf("%w\n  %s", err, NotInstalledHint)
	fmt.Fprintf(logFile, "\n%s%v\n", ErrorLogPrefix, err)
	w.logger.Error("step launch failed", "index", index, logging.Error(err))
	w.emit(model.Event{Kind: model.EventLaunchFailed, Index: index, Total: total, Err: err})
}

func (w *Worker) emit(ev model.Event) {
	ev.JobID = w.id
	ev.Status = w.Status()
	w.events <- ev
}

func (w *Worker) setStatus(status model.JobStatus) {
	w.mu.Lock()
	w.status = status
	w.mu.Unlock()
}

// generateJobID generates a time-ordered job id using UUID v7
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(JobIDPrefix+"%d", time.Now().UnixNano())
	}
	return JobIDPrefix + id.String()
}
