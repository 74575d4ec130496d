package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one decoded slog JSON record.
type Entry struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   []Attr // sorted by key; groups flattened to dotted keys
}

// Attr is a flattened record attribute.
type Attr struct {
	Key   string
	Value string
}

// Parse decodes a line written by slog's JSON handler. It reports false for
// anything else.
func Parse(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "{") {
		return Entry{}, false
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{}, false
	}
	msg, ok := raw[slog.MessageKey].(string)
	if !ok {
		return Entry{}, false
	}

	e := Entry{Message: msg}
	if ts, ok := raw[slog.TimeKey].(string); ok {
		e.Time, _ = time.Parse(time.RFC3339Nano, ts)
	}
	if lvl, ok := raw[slog.LevelKey].(string); ok {
		_ = e.Level.UnmarshalText([]byte(lvl))
	}
	for k, v := range raw {
		switch k {
		case slog.TimeKey, slog.LevelKey, slog.MessageKey:
			continue
		}
		e.Attrs = flatten(e.Attrs, k, v)
	}
	slices.SortFunc(e.Attrs, func(a, b Attr) int { return strings.Compare(a.Key, b.Key) })
	return e, true
}

func flatten(dst []Attr, prefix string, v any) []Attr {
	group, ok := v.(map[string]any)
	if !ok {
		return append(dst, Attr{Key: prefix, Value: fmt.Sprint(v)})
	}
	for k, inner := range group {
		dst = flatten(dst, prefix+"."+k, inner)
	}
	return dst
}

// Filter keeps lines at or above minLevel. Lines that are not slog records are
// kept so nothing is silently hidden.
func Filter(lines []string, minLevel slog.Level) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if e, ok := Parse(line); ok && e.Level < minLevel {
			continue
		}
		out = append(out, line)
	}
	return out
}

var (
	timeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#87AFFF"))
	levelStyle = map[slog.Level]lipgloss.Style{
		slog.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Bold(true),
		slog.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true),
		slog.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		slog.LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	}
)

// FormatLine renders a slog JSON line as
// "2006-01-02 15:04:05 INFO  message key=value ...". Other lines are returned
// unchanged. With color set the fields are styled with lipgloss.
func FormatLine(line string, color bool) string {
	e, ok := Parse(line)
	if !ok {
		return line
	}
	paint := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(paint(timeStyle, e.Time.Local().Format("2006-01-02 15:04:05")))
		b.WriteByte(' ')
	}
	b.WriteString(paint(levelStyle[e.Level], fmt.Sprintf("%-5s", e.Level.String())))
	b.WriteByte(' ')
	b.WriteString(e.Message)
	for _, a := range e.Attrs {
		b.WriteByte(' ')
		b.WriteString(paint(keyStyle, a.Key+"="))
		b.WriteString(a.Value)
	}
	return b.String()
}

// FormatLines applies FormatLine to every line.
func FormatLines(lines []string, color bool) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = FormatLine(line, color)
	}
	return out
}
