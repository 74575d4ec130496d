// Package logtail provides utilities for reading and formatting the
// application log.
//
// # Overview
//
// tabula writes JSON records through slog. This package reads the end of that
// file and turns records back into one readable line each for `tabula logs`.
//
// # Reading Log Files
//
// The Read function uses a ring buffer to extract the last maxLines from a
// file regardless of its size:
//
//   - Scans the file sequentially (one pass)
//   - Uses O(maxLines) memory, not O(file size)
//   - Returns lines in chronological order
//
// Example usage:
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//	if err != nil {
//		return err
//	}
//
// # Formatting
//
// [Parse] decodes one slog JSON record; nested groups become dotted keys
// ("counts.users"). [FormatLine] renders it as
//
//	2025-10-08 21:01:05 INFO  load complete generation=2 request_id=...
//
// optionally colored with lipgloss. Lines that are not JSON records (a
// panic trace, for instance) pass through unchanged.
//
// # Error Handling
//
// Read returns nil, nil for non-existent files. Other errors (permission
// denied, I/O errors) are returned wrapped. Formatting never fails.
package logtail
