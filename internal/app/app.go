package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/five82/tabula/internal/config"
	"github.com/five82/tabula/internal/logging"
	"github.com/five82/tabula/internal/notify"
	"github.com/five82/tabula/internal/placeholder"
	"github.com/five82/tabula/internal/prefs"
	"github.com/five82/tabula/internal/state"
	"github.com/five82/tabula/internal/ui"
)

// Options configure the tabula application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/tabula/prefs.toml
	// LogLevel overrides the configured level when set.
	LogLevel string
	// Stderr mirrors log records on standard error. The TUI ignores it.
	Stderr bool
}

// Env holds the dependencies shared by the TUI and the one-shot commands.
type Env struct {
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	Logger    *slog.Logger
	Fetcher   placeholder.Fetcher

	cleanup func()
}

// Open loads configuration and preferences, sets up logging and builds the
// API client.
func Open(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	prefsPath := opts.PrefsPath
	if strings.TrimSpace(prefsPath) == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger, cleanup, err := logging.Setup(logging.Options{
		File:   cfg.LogFile,
		Level:  level,
		SeqURL: cfg.SeqURL,
		Stderr: opts.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	client, err := placeholder.NewClient(cfg.APIBase, cfg.Timeout)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("init api client: %w", err)
	}

	return &Env{
		Config:    cfg,
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
		Logger:    logger,
		Fetcher:   client,
		cleanup:   cleanup,
	}, nil
}

// Close flushes and closes the log sinks.
func (e *Env) Close() {
	if e != nil && e.cleanup != nil {
		e.cleanup()
	}
}

// PageSize is the stored preference, or the configured default.
func (e *Env) PageSize() int {
	if e.Prefs.PageSize > 0 {
		return e.Prefs.PageSize
	}
	return e.Config.PageSize
}

// loader builds a Loader over a fresh store that reports to notifier and
// the log.
func (e *Env) loader(notifier notify.Notifier) *state.Loader {
	log := notify.LogNotifier{Logger: e.Logger}
	var n notify.Notifier = log
	if notifier != nil {
		n = notify.Multi{notifier, log}
	}
	return &state.Loader{
		Fetcher:  e.Fetcher,
		Store:    &state.Store{},
		Notifier: n,
		Logger:   e.Logger,
	}
}

// Run boots the tabula TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	opts.Stderr = false
	env, err := Open(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	env.Logger.Info("tabula starting",
		"version", placeholder.Version,
		"api_base", env.Config.APIBase,
		"page_size", env.PageSize(),
	)

	center := notify.NewCenter(notify.DefaultTTL)
	err = ui.Run(ui.Options{
		Context:   ctx,
		Loader:    env.loader(center),
		Center:    center,
		Logger:    env.Logger,
		ThemeName: env.Prefs.Theme,
		PageSize:  env.PageSize(),
		PrefsPath: env.PrefsPath,
		LogFile:   env.Config.LogFile,
	})
	if err != nil && (errors.Is(err, context.Canceled) || ctx.Err() != nil) {
		env.Logger.Info("tabula interrupted")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	env.Logger.Info("tabula stopped")
	return nil
}
