package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tabula/internal/table"
)

// bodyHeight is the number of lines available to table rows.
func (m Model) bodyHeight() int {
	return max(m.height-tableBodyLine-footerLines, 1)
}

func rowHeights(rows []table.GridRow[any]) []int {
	heights := make([]int, len(rows))
	for i, r := range rows {
		heights[i] = rowHeight(r.Cells)
	}
	return heights
}

// visibleRows returns the rendered grid with its row heights and the window
// of rows that fits on screen.
func (m Model) visibleRows() (grid table.Grid[any], heights []int, start, end int) {
	grid = m.grid()
	heights = rowHeights(grid.Rows)
	tab := m.tabs[m.active]
	start, end = bodyWindow(heights, m.bodyHeight(), tab.row, tab.offset)
	return grid, heights, start, end
}

// layout returns the screen geometry of the current grid for hit testing.
func (m Model) layout() gridLayout {
	grid, heights, start, end := m.visibleRows()
	return newGridLayout(grid.Headers, heights, start, end)
}

// syncOffset scrolls the body so the cursor row stays visible.
func (m *Model) syncOffset() {
	_, _, start, _ := m.visibleRows()
	m.current().offset = start
}

// renderGrid renders the column headers, the rule and the visible body.
func (m Model) renderGrid() []string {
	styles := m.theme.Styles()
	grid, heights, start, end := m.visibleRows()
	tab := m.tabs[m.active]
	pad := strings.Repeat(" ", leftMargin)
	gap := strings.Repeat(" ", columnGap)

	widths := make([]int, len(grid.Headers))
	total := 0
	for i, h := range grid.Headers {
		widths[i] = columnWidth(h)
		total += widths[i]
	}
	total += columnGap * max(len(widths)-1, 0)

	// Headers
	heads := make([]string, len(grid.Headers))
	for i, h := range grid.Headers {
		label := h.Label
		if ind := h.Indicator(); ind != "" {
			label += " " + ind
		}
		style := styles.MutedText.Bold(true)
		if h.Sortable {
			style = styles.TableHeader
		}
		if i == tab.col {
			style = style.Underline(true)
		}
		heads[i] = style.Render(fitCell(label, widths[i]))
	}
	lines := []string{
		pad + strings.Join(heads, gap),
		pad + styles.FaintText.Render(strings.Repeat("─", total)),
	}

	switch grid.State {
	case table.StateLoading:
		return append(lines, pad+styles.AccentText.Render(m.spinner.View())+" "+styles.WarningText.Render(grid.Message))
	case table.StateEmpty:
		return append(lines, pad+styles.MutedText.Render(grid.Message))
	}

	for i := start; i < end; i++ {
		row := grid.Rows[i]
		selected := i == tab.row
		for line := 0; line < heights[i]; line++ {
			cells := make([]string, len(row.Cells))
			for c, value := range row.Cells {
				text := ""
				if parts := strings.Split(value, "\n"); line < len(parts) {
					text = parts[line]
				}
				cells[c] = m.cellStyle(row.Tone, selected, selected && c == tab.col, line > 0).
					Render(fitCell(text, widths[c]))
			}
			sep := gap
			if selected {
				sep = styles.Selected.Render(gap)
			}
			lines = append(lines, pad+strings.Join(cells, sep))
		}
	}
	return lines
}

// cellStyle picks the style of one cell line. Muted rows and continuation
// lines of multi-line cells are dimmed.
func (m Model) cellStyle(tone table.Tone, selected, cursor, continuation bool) lipgloss.Style {
	styles := m.theme.Styles()
	switch {
	case cursor:
		return styles.Cursor
	case selected:
		return styles.Selected
	case tone == table.ToneMuted, continuation:
		return styles.FaintText
	default:
		return styles.Text
	}
}

// renderPagination renders the summary line under the table.
func (m Model) renderPagination() string {
	styles := m.theme.Styles()
	p := m.grid().Pagination

	prev := styles.FaintText.Render("‹ prev")
	if p.HasPrev() {
		prev = styles.AccentText.Render("‹ prev")
	}
	next := styles.FaintText.Render("next ›")
	if p.HasNext() {
		next = styles.AccentText.Render("next ›")
	}

	info := fmt.Sprintf("Page %d of %d · %d per page", p.Page, p.PageCount, p.PageSize)
	return strings.Repeat(" ", leftMargin) +
		styles.Text.Render(p.Summary()) + "  " +
		prev + " " + styles.MutedText.Render(info) + " " + next
}
