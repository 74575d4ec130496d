// Package logging configures the slog logger: JSON records to a file, an
// optional Seq sink and, for commands, a text handler on stderr.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	slogseq "github.com/sokkalf/slog-seq"
)

// Options selects where records go.
type Options struct {
	// File receives JSON records. Empty disables the file sink.
	File string
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// SeqURL enables the Seq sink when non-empty.
	SeqURL string
	// Stderr adds a text handler on standard error. The TUI leaves it off
	// because it owns the terminal.
	Stderr bool
}

// multiHandler forwards log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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

// Setup builds the application logger and returns a cleanup function that
// flushes and closes every sink. With no sinks configured the logger
// discards everything.
func Setup(opts Options) (*slog.Logger, func(), error) {
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var handlers []slog.Handler
	var closers []func()

	if path := strings.TrimSpace(opts.File); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(file, handlerOpts))
		closers = append(closers, func() { _ = file.Close() })
	}

	if opts.Stderr {
		handlers = append(handlers, slog.NewTextHandler(os.Stderr, handlerOpts))
	}

	if url := strings.TrimSpace(opts.SeqURL); url != "" {
		_, seqHandler := slogseq.NewLogger(
			url,
			slogseq.WithBatchSize(1),
			slogseq.WithFlushInterval(500*time.Millisecond),
			slogseq.WithHandlerOptions(handlerOpts),
		)
		// If Seq is not available, keep the other sinks.
		if seqHandler != nil {
			handlers = append(handlers, seqHandler)
			closers = append(closers, func() { seqHandler.Close() })
		}
	}

	cleanup := func() {
		// Close in reverse so the Seq batch flushes before the file closes.
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch len(handlers) {
	case 0:
		return slog.New(slog.NewTextHandler(io.Discard, handlerOpts)), cleanup, nil
	case 1:
		return slog.New(handlers[0]), cleanup, nil
	default:
		return slog.New(&multiHandler{handlers: handlers}), cleanup, nil
	}
}
