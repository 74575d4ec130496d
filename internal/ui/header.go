package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderMain renders the full screen: status bar, tabs, title, search line,
// table, pagination and command bar, with toasts over the bottom right.
func (m Model) renderMain() string {
	lines := []string{
		m.renderHeader(),
		m.renderTabs(),
		m.renderTitle(),
		m.renderSearch(),
	}
	lines = append(lines, m.renderGrid()...)

	// The footer always sits on the last lines.
	bodyEnd := max(m.height-footerLines, 0)
	if len(lines) > bodyEnd {
		lines = lines[:bodyEnd]
	}
	for len(lines) < bodyEnd {
		lines = append(lines, "")
	}
	lines = append(lines, m.renderPagination(), m.renderCommandBar())

	screen := strings.Join(lines, "\n")
	return overlayBottomRight(screen, m.renderToasts(), m.width, footerLines)
}

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("tabula", styles.Logo)}

	snap := m.snapshot
	if snap.HasData {
		parts = append(parts, bg.Render(snap.Data.Totals(), styles.Text))
	}

	if snap.Loading {
		parts = append(parts,
			bg.Render(m.spinner.View(), styles.AccentText)+bg.Space()+
				bg.Render("Loading...", styles.WarningText))
	} else if !snap.LastUpdated.IsZero() {
		label := "Updated " + humanizeAgo(m.now().Sub(snap.LastUpdated))
		if !compact {
			label += " (" + snap.LastUpdated.Format("15:04:05") + ")"
		}
		parts = append(parts, bg.Render(label, styles.MutedText))
	}

	if snap.LastError != nil {
		maxErr := 80
		if compact {
			maxErr = 40
		}
		errText := truncate(snap.LastError.Error(), maxErr)
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText)+bg.Space()+
				bg.Render(errText, styles.DangerText))
	}

	return styles.Header.Width(m.width).MaxHeight(1).Render(bg.Join(parts, "  "))
}

// tabLabels returns the tab captions with row counts.
func (m Model) tabLabels() []string {
	labels := make([]string, len(m.sheets))
	for i, s := range m.sheets {
		labels[i] = fmt.Sprintf("%d %s (%d)", i+1, s.Name(), s.Count(m.snapshot))
	}
	return labels
}

// tabSpans returns the [start, end) screen columns of each rendered tab.
// Tabs are padded by one cell on each side and separated by one space.
func tabSpans(labels []string) [][2]int {
	spans := make([][2]int, len(labels))
	x := leftMargin
	for i, label := range labels {
		w := lipgloss.Width(label) + 2
		spans[i] = [2]int{x, x + w}
		x += w + 1
	}
	return spans
}

// tabAt returns the tab under screen column x, or -1.
func tabAt(labels []string, x int) int {
	for i, span := range tabSpans(labels) {
		if x >= span[0] && x < span[1] {
			return i
		}
	}
	return -1
}

func (m Model) renderTabs() string {
	styles := m.theme.Styles()
	labels := m.tabLabels()
	parts := make([]string, len(labels))
	for i, label := range labels {
		if i == m.active {
			parts[i] = styles.TabActive.Render(label)
		} else {
			parts[i] = styles.TabInactive.Render(label)
		}
	}
	return strings.Repeat(" ", leftMargin) + strings.Join(parts, " ")
}

func (m Model) renderTitle() string {
	styles := m.theme.Styles()
	s := m.sheets[m.active]
	return strings.Repeat(" ", leftMargin) +
		styles.Text.Bold(true).Render(s.Title()) + "  " +
		styles.MutedText.Render(truncate(s.Description(), max(m.width-lipgloss.Width(s.Title())-4, 10)))
}

func (m Model) renderSearch() string {
	styles := m.theme.Styles()
	pad := strings.Repeat(" ", leftMargin)
	if m.searching {
		return pad + m.search.View()
	}
	query := m.tabs[m.active].view.Query
	if query == "" {
		return pad + styles.FaintText.Render("/ "+m.sheets[m.active].SearchPlaceholder())
	}
	return pad + styles.AccentText.Render("/ "+query) + "  " + styles.FaintText.Render("esc to clear")
}

// renderCommandBar renders the key hints on the last line.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd
	if m.searching {
		commands = []cmd{{"enter", "Keep search"}, {"esc", "Clear search"}}
	} else {
		for _, b := range m.keys.ShortHelp() {
			h := b.Help()
			commands = append(commands, cmd{h.Key, h.Desc})
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands))
	for _, c := range commands {
		segments = append(segments, bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	return styles.Footer.Width(m.width).MaxHeight(1).Render(bg.Join(segments, "  "))
}
