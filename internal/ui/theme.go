package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is a named color palette. Colors are hex strings.
type Theme struct {
	Name string

	Background  string // outside modals
	Surface     string // status bar and command bar
	FocusBg     string // active tab
	SelectionBg string // cursor row
	Selection   string // cursor row text
	BorderFocus string // modal border

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style

	// Table
	TableHeader lipgloss.Style
	Selected    lipgloss.Style
	Cursor      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func toast(border string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1)
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	bar := lipgloss.NewStyle().Background(lipgloss.Color(t.Surface)).Padding(0, 1)
	return Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Success).Bold(true),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),

		Header: bar.Foreground(lipgloss.Color(t.Text)),
		Footer: bar.Foreground(lipgloss.Color(t.Muted)),
		Logo:   fg(t.Warning).Bold(true),

		TableHeader: fg(t.Accent).Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.Selection)),
		Cursor: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.Background)).
			Bold(true),
		TabActive: lipgloss.NewStyle().
			Background(lipgloss.Color(t.FocusBg)).
			Foreground(lipgloss.Color(t.Text)).
			Bold(true).
			Padding(0, 1),
		TabInactive: fg(t.Muted).Padding(0, 1),

		ToastSuccess: toast(t.Success),
		ToastError:   toast(t.Danger),
	}
}

// WithBackground returns a copy of Styles whose text styles paint bgColor
// instead of inheriting the terminal background. Used on the bars.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	for _, st := range []*lipgloss.Style{
		&out.Text, &out.MutedText, &out.FaintText, &out.AccentText,
		&out.SuccessText, &out.WarningText, &out.DangerText,
		&out.Header, &out.Footer, &out.Logo, &out.TableHeader, &out.TabInactive,
	} {
		*st = st.Background(bg)
	}
	return out
}

var themes = map[string]Theme{
	// https://github.com/EdenEast/nightfox.nvim
	"Nightfox": {
		Name:        "Nightfox",
		Background:  "#131a24", // bg0
		Surface:     "#192330", // bg1
		FocusBg:     "#29394f", // bg3
		SelectionBg: "#2b3b51", // sel0
		Selection:   "#cdcecf", // fg1
		BorderFocus: "#719cd6", // blue
		Text:        "#cdcecf", // fg1
		Muted:       "#738091", // comment
		Faint:       "#71839b", // fg3
		Accent:      "#719cd6", // blue
		Success:     "#81b29a", // green
		Warning:     "#dbc074", // yellow
		Danger:      "#c94f6d", // red
	},
	// https://github.com/rebelot/kanagawa.nvim
	"Kanagawa": {
		Name:        "Kanagawa",
		Background:  "#16161D", // sumiInk0
		Surface:     "#1F1F28", // sumiInk3
		FocusBg:     "#2A2A37", // sumiInk4
		SelectionBg: "#2D4F67", // waveBlue1
		Selection:   "#DCD7BA", // fujiWhite
		BorderFocus: "#7E9CD8", // crystalBlue
		Text:        "#DCD7BA", // fujiWhite
		Muted:       "#C8C093", // oldWhite
		Faint:       "#727169", // fujiGray
		Accent:      "#7E9CD8", // crystalBlue
		Success:     "#98BB6C", // springGreen
		Warning:     "#E6C384", // carpYellow
		Danger:      "#E46876", // waveRed
	},
	// Tailwind slate and sky
	"Slate": {
		Name:        "Slate",
		Background:  "#020617", // slate-950
		Surface:     "#0f172a", // slate-900
		FocusBg:     "#283548",
		SelectionBg: "#0284c7", // sky-600
		Selection:   "#f8fafc", // slate-50
		BorderFocus: "#38bdf8", // sky-400
		Text:        "#f1f5f9", // slate-100
		Muted:       "#94a3b8", // slate-400
		Faint:       "#64748b", // slate-500
		Accent:      "#38bdf8", // sky-400
		Success:     "#22c55e", // green-500
		Warning:     "#f59e0b", // amber-500
		Danger:      "#ef4444", // red-500
	},
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name, falling back to Nightfox.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["Nightfox"]
}

// NextTheme returns the theme after current in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}
