package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/tabula/internal/dashboard"
	"github.com/five82/tabula/internal/logging"
	"github.com/five82/tabula/internal/logtail"
	"github.com/five82/tabula/internal/table"
)

// PrintOptions select the page printed by Print.
type PrintOptions struct {
	Sheet    string // users, posts or todos
	Query    string
	SortKey  string
	Desc     bool
	Page     int
	PageSize int // zero uses the environment's page size
}

// Print loads the dataset once and writes one page of a table to w.
func (e *Env) Print(ctx context.Context, w io.Writer, opts PrintOptions) error {
	sheets := dashboard.Sheets(dashboard.Actions{})
	sheet, ok := dashboard.Find(sheets, opts.Sheet)
	if !ok {
		return fmt.Errorf("unknown table %q (want one of %s)", opts.Sheet, strings.Join(dashboard.Keys(sheets), ", "))
	}

	size := opts.PageSize
	if size <= 0 {
		size = e.PageSize()
	}
	view := sheet.Search(table.NewViewState(size), opts.Query)
	if opts.SortKey != "" {
		next, ok := sheet.HeaderClick(view, opts.SortKey)
		if !ok {
			return fmt.Errorf("column %q of %s is not sortable", opts.SortKey, sheet.Key())
		}
		if opts.Desc {
			next, _ = sheet.HeaderClick(next, opts.SortKey)
		}
		view = next
	}

	loader := e.loader(nil)
	res := loader.Refresh(ctx)
	if res.Err != nil {
		return fmt.Errorf("load data: %w", res.Err)
	}
	snap := loader.Store.Snapshot()

	if opts.Page > 0 {
		view = sheet.SetPage(snap, view, opts.Page)
	}
	grid := sheet.Render(snap, view, false)

	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render(sheet.Title()))
	fmt.Fprintln(w, renderGrid(grid))
	p := grid.Pagination
	fmt.Fprintf(w, "%s · page %d of %d\n", p.Summary(), p.Page, p.PageCount)
	return nil
}

// renderGrid draws a grid as a bordered table. An empty grid shows its
// message in place of rows.
func renderGrid(grid table.Grid[any]) string {
	headers := make([]string, len(grid.Headers))
	for i, h := range grid.Headers {
		headers[i] = h.Label
		if ind := h.Indicator(); ind != "" {
			headers[i] += " " + ind
		}
	}

	muted := make(map[int]bool)
	t := ltable.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == ltable.HeaderRow:
				return style.Bold(true)
			case muted[row]:
				return style.Faint(true)
			}
			return style
		})

	if grid.State != table.StateRows {
		out := t.String()
		return out + "\n" + grid.Message
	}
	for i, r := range grid.Rows {
		cells := make([]string, len(r.Cells))
		for c, value := range r.Cells {
			width := 0
			if c < len(grid.Headers) {
				width = grid.Headers[c].Width
			}
			cells[c] = clip(value, width)
		}
		if r.Tone == table.ToneMuted {
			muted[i] = true
		}
		t.Row(cells...)
	}
	return t.String()
}

// clip truncates every line of s to width cells. Non-positive widths leave s
// unchanged.
func clip(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "…")
	}
	return strings.Join(lines, "\n")
}

// ShowUser fetches one user and writes it as YAML.
func (e *Env) ShowUser(ctx context.Context, w io.Writer, id int) error {
	user, err := e.Fetcher.GetUser(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch user %d: %w", id, err)
	}
	e.Logger.Info("user fetched", "user_id", id)
	out, err := dashboard.DetailYAML(user)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// Tail writes the last n records of the application log at or above level.
func (e *Env) Tail(w io.Writer, n int, level string, color bool) error {
	lines, err := logtail.Read(e.Config.LogFile, 0)
	if err != nil {
		return fmt.Errorf("read log: %w", err)
	}
	if level != "" {
		lines = logtail.Filter(lines, logging.ParseLevel(level))
	}
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	for _, line := range logtail.FormatLines(lines, color) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
