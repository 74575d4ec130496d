package state

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/five82/tabula/internal/notify"
	"github.com/five82/tabula/internal/placeholder"
)

// Notification texts for load outcomes.
const (
	LoadedMessage     = "Data loaded successfully"
	LoadFailedMessage = "Error loading data"
	LoadFailedDetail  = "Failed to fetch data from API. Please try again."
)

// Result describes one finished load.
type Result struct {
	Generation uint64
	RequestID  string
	Applied    bool // false when a newer load superseded this one
	Err        error
	Duration   time.Duration
}

// Loader runs full loads of the dataset into a Store.
type Loader struct {
	Fetcher  placeholder.Fetcher
	Store    *Store
	Notifier notify.Notifier
	Logger   *slog.Logger
}

// Refresh performs one load: it starts a generation, fetches all collections
// concurrently, commits the outcome and sends exactly one notification. A
// load that was superseded while in flight is dropped silently.
func (l *Loader) Refresh(ctx context.Context) Result {
	gen := l.Store.Begin()
	return l.Finish(ctx, gen)
}

// Finish completes a load whose generation was already started with
// Store.Begin. The UI uses it to mark loading synchronously and fetch in a
// command goroutine.
func (l *Loader) Finish(ctx context.Context, gen uint64) Result {
	res := Result{Generation: gen, RequestID: uuid.NewString()}
	logger := l.logger().With("request_id", res.RequestID, "generation", gen)
	if b, ok := l.Fetcher.(interface{ BaseURL() string }); ok {
		logger.Debug("load started", "api_base", b.BaseURL())
	} else {
		logger.Debug("load started")
	}

	start := time.Now()
	ds, err := placeholder.FetchAll(ctx, l.Fetcher)
	res.Duration = time.Since(start)
	res.Err = err

	res.Applied = l.Store.Commit(gen, ds, err)
	if !res.Applied {
		logger.Info("load superseded, result discarded", "duration", res.Duration, "error", err)
		return res
	}

	if err != nil {
		logger.Error("load failed", "duration", res.Duration, "error", err)
		l.notifier().Error(LoadFailedMessage, LoadFailedDetail)
		return res
	}
	logger.Info("load complete",
		"duration", res.Duration,
		"users", len(ds.Users),
		"posts", len(ds.Posts),
		"todos", len(ds.Todos),
	)
	l.notifier().Success(LoadedMessage, ds.Counts())
	return res
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}

func (l *Loader) notifier() notify.Notifier {
	if l.Notifier == nil {
		return notify.LogNotifier{Logger: l.logger()}
	}
	return l.Notifier
}
