// Package app is the composition root for tabula.
//
// # Overview
//
// Open wires configuration, preferences, logging and the JSONPlaceholder
// client into an Env. Run hands that Env to the Bubble Tea UI; the one-shot
// commands (Print, ShowUser, Tail) use it directly and write to an
// io.Writer.
//
// # Startup
//
//  1. Load ~/.config/tabula/config.toml (defaults when missing)
//  2. Load ~/.config/tabula/prefs.toml (defaults when missing or invalid)
//  3. Set up slog: JSON file sink, optional Seq sink, stderr for commands
//  4. Build the HTTP client for the configured API base
//  5. Start the TUI, which issues the first load itself
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> Open()              config, prefs, logging, client
//	       ├─────> notify.NewCenter()  toasts shown by the UI
//	       ├─────> state.Loader{}      one store, notifications to center + log
//	       └─────> ui.Run()            blocks until quit or cancellation
//
// There is no background polling. Data is loaded once at startup and again
// only when the user asks for a refresh.
//
// # Error Handling
//
// Fatal errors (returned from Open and Run):
//   - Config file unreadable or invalid
//   - Log file cannot be created
//   - API base URL invalid
//
// Load failures are not fatal. The UI keeps the previous data and shows an
// error toast; Print returns the error because it has nothing to show.
// Cancelling the context while the UI runs is a clean exit.
package app
