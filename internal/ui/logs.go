package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tabula/internal/logtail"
)

type logTailMsg struct {
	path  string
	lines []string
}

type logErrorMsg struct {
	err error
}

// fetchLogTail reads the end of the application log off the UI goroutine.
func fetchLogTail(path string, limit int) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, limit)
		if err != nil {
			return logErrorMsg{err: err}
		}
		return logTailMsg{path: path, lines: logtail.FormatLines(lines, true)}
	}
}

// openLogs shows a fetched log tail in a modal.
func (m *Model) openLogs(msg logTailMsg) {
	content := strings.Join(msg.lines, "\n")
	if content == "" {
		content = m.theme.Styles().MutedText.Render("No log entries yet")
	}
	title := "Log · " + truncateMiddle(msg.path, 60)
	m.modal = newBottomTextModal(title, content, "j/k scroll · g/G top/bottom · esc close", m.width, m.height)
}
