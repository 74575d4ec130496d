package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/tabula/internal/notify"
)

// toastWidth is the outer width of a toast box.
const toastWidth = 44

// renderToasts stacks the active notifications, newest at the bottom.
func (m Model) renderToasts() string {
	toasts := m.center.Active(m.now())
	if len(toasts) == 0 {
		return ""
	}
	styles := m.theme.Styles()

	boxes := make([]string, 0, len(toasts))
	for _, t := range toasts {
		box := styles.ToastSuccess
		title := styles.SuccessText.Render("✓ " + t.Message)
		if t.Level == notify.LevelError {
			box = styles.ToastError
			title = styles.DangerText.Render("✗ " + t.Message)
		}
		body := title
		if t.Detail != "" {
			body += "\n" + styles.MutedText.Render(truncate(t.Detail, 3*(toastWidth-4)))
		}
		boxes = append(boxes, box.Width(toastWidth-2).Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Right, boxes...)
}

// overlayBottomRight draws block over the right edge of base, ending
// bottomPad lines above the last line. Lines of base under the block are cut
// at the block's left edge.
func overlayBottomRight(base, block string, width, bottomPad int) string {
	if block == "" {
		return base
	}
	lines := strings.Split(base, "\n")
	blockLines := strings.Split(block, "\n")
	blockWidth := lipgloss.Width(block)
	x := max(width-blockWidth-1, 0)

	first := len(lines) - bottomPad - len(blockLines)
	for i, bl := range blockLines {
		y := first + i
		if y < 0 || y >= len(lines) {
			continue
		}
		left := ansi.Truncate(lines[y], x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		lines[y] = left + bl
	}
	return strings.Join(lines, "\n")
}
