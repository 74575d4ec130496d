// Package state provides thread-safe state management for the tabula dashboard.
//
// # Overview
//
// This package holds the most recently loaded users, posts and todos and
// coordinates loads with the UI. Loads run in background goroutines; the UI
// reads immutable snapshots while rendering.
//
// # Architecture
//
//	Loader (tea.Cmd goroutine):    UI (Update/View):
//	┌──────────────────────┐      ┌──────────────────┐
//	│ gen := store.Begin() │      │                  │
//	│ FetchAll()           │      │                  │
//	│      ↓               │      │                  │
//	│ store.Commit(gen, …) │─────→│ store.Snapshot() │
//	│ notify once          │      │ render tables    │
//	└──────────────────────┘      └──────────────────┘
//
// # Generations
//
// Every load takes a generation number from [Store.Begin]. [Store.Commit]
// only applies the result of the latest generation, so a slow load that
// finishes after a newer one has started is discarded without touching the
// data, the error or the loading flag. In-flight requests of a superseded load
// are not cancelled; their results are simply dropped.
//
// # Failure Handling
//
// A failed load never partially overwrites data: the previous dataset stays in
// place as a whole and the error is recorded in [Snapshot.LastError]. There is
// no automatic retry. The user triggers a new load.
//
// # Snapshots
//
// Committed data is copied once on the way in. Snapshots hand out the same
// slices until the next successful load, which lets the table engine memoize
// filtered and sorted views on slice identity. Callers must not modify them.
//
// # Notifications
//
// [Loader.Refresh] sends exactly one notification per applied load:
//
//   - success: "Data loaded successfully", "Loaded N users, N posts, and N todos"
//   - failure: "Error loading data", "Failed to fetch data from API. Please try again."
//
// Each load is logged with a uuid request ID and its generation.
package state
