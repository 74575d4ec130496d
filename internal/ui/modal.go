package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// textModal shows scrollable read-only text in a bordered box, e.g. the YAML
// of a clicked row or the tail of the application log.
type textModal struct {
	title    string
	footer   string
	viewport viewport.Model
}

// newTextModal sizes the viewport to most of the screen.
func newTextModal(title, content, footer string, width, height int) *textModal {
	w := max(width*3/4, 30)
	h := max(height-8, 5)
	vp := viewport.New(w-4, h)
	vp.SetContent(content)
	return &textModal{title: title, footer: footer, viewport: vp}
}

// newBottomTextModal is a textModal scrolled to its last line.
func newBottomTextModal(title, content, footer string, width, height int) *textModal {
	m := newTextModal(title, content, footer, width, height)
	m.viewport.GotoBottom()
	return m
}

func (m *textModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Escape), key.Matches(k, keys.Click), key.Matches(k, keys.Quit):
			return m, nil, true
		case key.Matches(k, keys.FirstPage):
			m.viewport.GotoTop()
			return m, nil, false
		case key.Matches(k, keys.LastPage):
			m.viewport.GotoBottom()
			return m, nil, false
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd, false
}

func (m *textModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	title := styles.AccentText.Bold(true).Render(m.title)
	footer := styles.FaintText.Render(m.footer)
	body := lipgloss.JoinVertical(lipgloss.Left, title, "", m.viewport.View(), "", footer)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Padding(0, 1).
		Render(body)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
