package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// truncate trims value and cuts it to limit cells, ending in "..." when
// there is room for it.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || ansi.StringWidth(value) <= limit {
		return value
	}
	if limit <= 3 {
		return ansi.Truncate(value, limit, "")
	}
	return ansi.Truncate(value, limit, "...")
}

// truncateMiddle shortens value by cutting out its middle, keeping more of
// the end so file names survive.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	runes := []rune(value)
	if limit <= 0 || len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	keep := limit - 1
	head := keep / 3
	return string(runes[:head]) + "…" + string(runes[len(runes)-(keep-head):])
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); width > w {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// fitCell truncates one line of a cell and pads it to width.
func fitCell(value string, width int) string {
	return padRight(truncate(value, width), width)
}

// humanizeAgo formats the age of a timestamp for the status bar.
func humanizeAgo(d time.Duration) string {
	switch {
	case d < time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
}
