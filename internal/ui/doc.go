// Package ui provides the Bubble Tea terminal interface for tabula.
//
// The screen is a fixed stack of lines: status bar, tabs, sheet title,
// search line, column headers, a rule, the table body, the pagination line
// and the command bar. Toasts from the notification center are drawn over
// the bottom right corner. Because the rows above the body are fixed, mouse
// clicks are mapped back to tabs, headers and cells by pure layout functions
// (see layout.go).
//
// All state transitions happen synchronously in Update. Loads start a new
// generation on the store and fetch in a command; the result message only
// refreshes the snapshot, so a superseded load never changes what is shown.
//
// Key bindings:
//
//   - 1/2/3, tab, shift+tab: switch tabs
//   - j/k, h/l: move the row and column cursor
//   - enter: click the cell under the cursor
//   - s: sort by the cursor column (ascending, descending, off)
//   - /: search with live filtering; enter keeps, esc clears
//   - esc: clear the kept search, or dismiss toasts when there is none
//   - n/p, g/G: next/previous, first/last page
//   - +/-: page size
//   - r: refresh, L: application log, T: theme, ?: help
//   - q or ctrl+c: quit
package ui
