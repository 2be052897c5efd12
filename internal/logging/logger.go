// Package logging builds the application's slog logger: text records to
// stderr and, when a path is given, to the application log file.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Standard attribute keys
const (
	FieldComponent = "component"
	FieldJobID     = "job_id"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Path   string    // application log file, optional
	Stderr io.Writer // defaults to os.Stderr
	Quiet  bool      // no console output
}

// New constructs a slog logger writing text records to every configured output.
// The returned closer releases the log file.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	levelVar := new(slog.LevelVar)
	levelVar.Set(parseLevel(opts.Level))
	handlerOpts := &slog.HandlerOptions{Level: levelVar}

	var writers []io.Writer
	if !opts.Quiet {
		if opts.Stderr != nil {
			writers = append(writers, opts.Stderr)
		} else {
			writers = append(writers, os.Stderr)
		}
	}

	var closer io.Closer = nopCloser{}
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("ensure log directory: %w", err)
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %q: %w", opts.Path, err)
		}
		writers = append(writers, f)
		closer = f
	}

	if len(writers) == 0 {
		return NewNop(), closer, nil
	}
	handler := slog.NewTextHandler(io.MultiWriter(writers...), handlerOpts)
	return slog.New(handler), closer, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}

// NewComponentLogger tags logger with a component attribute.
// A nil logger becomes a no-op logger.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(slog.String(FieldComponent, component))
}

// Error returns a standard error attribute.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// NoopHandler discards all log output.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }

func (NoopHandler) WithAttrs([]slog.Attr) slog.Handler { return NoopHandler{} }

func (NoopHandler) WithGroup(string) slog.Handler { return NoopHandler{} }

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
