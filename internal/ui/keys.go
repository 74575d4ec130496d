package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Refresh    key.Binding
	Logs       key.Binding
	Escape     key.Binding

	// Tabs
	NextTab  key.Binding
	PrevTab  key.Binding
	TabUsers key.Binding
	TabPosts key.Binding
	TabTodos key.Binding

	// Cursor
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Click key.Binding
	Sort  key.Binding

	// Paging
	NextPage     key.Binding
	PrevPage     key.Binding
	FirstPage    key.Binding
	LastPage     key.Binding
	GrowPageSize key.Binding
	TrimPageSize key.Binding

	// Search
	Search  key.Binding
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh data"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Application log"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear search / toasts"),
		),

		// Tabs
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous tab"),
		),
		TabUsers: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Users"),
		),
		TabPosts: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Posts"),
		),
		TabTodos: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Todos"),
		),

		// Cursor
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "Row up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "Row down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "Column left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "Column right"),
		),
		Click: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Click cell"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Sort by column"),
		),

		// Paging
		NextPage: key.NewBinding(
			key.WithKeys("n", "pgdown"),
			key.WithHelp("n", "Next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "pgup"),
			key.WithHelp("p", "Previous page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "First page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Last page"),
		),
		GrowPageSize: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Larger pages"),
		),
		TrimPageSize: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Smaller pages"),
		),

		// Search
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Keep search"),
		),
	}
}

// ShortHelp returns key bindings for the command bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Sort, k.Click, k.NextPage, k.PrevPage, k.Refresh, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay, one group per section.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Tabs
		{k.TabUsers, k.TabPosts, k.TabTodos, k.NextTab, k.PrevTab},
		// Table
		{k.Up, k.Down, k.Left, k.Right, k.Click, k.Sort, k.Search},
		// Paging
		{k.NextPage, k.PrevPage, k.FirstPage, k.LastPage, k.GrowPageSize, k.TrimPageSize},
		// General
		{k.Refresh, k.Logs, k.CycleTheme, k.Help, k.Escape, k.Quit},
	}
}

// helpSectionTitles names the FullHelp groups.
var helpSectionTitles = []string{"Tabs", "Table", "Paging", "General"}
