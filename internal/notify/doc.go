// Package notify carries short user-facing notifications ("toasts").
//
// [Center] keeps recent toasts for the terminal UI to draw; each expires after
// a TTL. [LogNotifier] sends the same notifications to a slog logger for the
// non-interactive commands. Both satisfy [Notifier], which is what the loader
// and the dashboard schemas depend on.
package notify
