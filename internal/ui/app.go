package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tabula/internal/dashboard"
	"github.com/five82/tabula/internal/notify"
	"github.com/five82/tabula/internal/prefs"
	"github.com/five82/tabula/internal/state"
	"github.com/five82/tabula/internal/table"
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Loader  *state.Loader
	Center  *notify.Center
	Logger  *slog.Logger
	// Copy overrides the clipboard writer used by copy-on-click cells.
	Copy      func(string) error
	ThemeName string
	PageSize  int
	PrefsPath string
	LogFile   string
	Tick      time.Duration
}

// tabState is the per-tab view state and cursor.
type tabState struct {
	view   table.ViewState
	row    int // cursor row within the current page
	col    int
	offset int // first visible row within the page
}

// inspection receives rows handed over by a row click. It is shared by all
// copies of the model.
type inspection struct {
	row     any
	pending bool
}

func (i *inspection) set(row any) {
	i.row = row
	i.pending = true
}

func (i *inspection) take() (any, bool) {
	if !i.pending {
		return nil, false
	}
	row := i.row
	i.row, i.pending = nil, false
	return row, true
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	loader    *state.Loader
	store     *state.Store
	center    *notify.Center
	logger    *slog.Logger
	prefsPath string
	logFile   string
	tick      time.Duration
	now       func() time.Time

	// UI state
	keys     keyMap
	theme    Theme
	width    int
	height   int
	ready    bool
	pageSize int

	// Tabs
	sheets []dashboard.Sheet
	tabs   []tabState
	active int

	// Data state
	snapshot state.Snapshot
	spinner  spinner.Model

	// Search
	searching bool
	search    textinput.Model

	// Overlays
	showHelp  bool
	modal     Modal
	inspected *inspection
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	tick := opts.Tick
	if tick <= 0 {
		tick = DefaultUIInterval
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	center := opts.Center
	if center == nil {
		center = notify.NewCenter(notify.DefaultTTL)
	}

	pageSize := table.NewViewState(opts.PageSize).PageSize

	m := Model{
		ctx:       ctx,
		loader:    opts.Loader,
		center:    center,
		logger:    logger,
		prefsPath: opts.PrefsPath,
		logFile:   opts.LogFile,
		tick:      tick,
		now:       time.Now,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		pageSize:  pageSize,
		inspected: &inspection{},
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	if opts.Loader != nil {
		m.store = opts.Loader.Store
		m.snapshot = m.store.Snapshot()
	}

	m.sheets = dashboard.Sheets(dashboard.Actions{
		Notifier: notify.Multi{center, notify.LogNotifier{Logger: logger}},
		Copy:     opts.Copy,
		Inspect:  m.inspected.set,
	})
	m.tabs = make([]tabState, len(m.sheets))
	for i := range m.tabs {
		m.tabs[i].view = table.NewViewState(pageSize)
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.CharLimit = 100
	m.search = ti
	m.syncSearchPlaceholder()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		tickCmd(m.tick),
		func() tea.Msg { return loadRequestMsg{} },
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(m.width-8, 10)
		m.ready = true
		return m, nil

	case tickMsg:
		m.center.Prune(time.Time(msg))
		return m, tickCmd(m.tick)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadRequestMsg:
		cmd := m.startLoad()
		return m, cmd

	case loadedMsg:
		if m.store != nil {
			m.snapshot = m.store.Snapshot()
		}
		m.clampTabs()
		return m, nil

	case logTailMsg:
		m.openLogs(msg)
		return m, nil

	case logErrorMsg:
		m.center.Error("Log unavailable", msg.err.Error())
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

// startLoad marks a new generation as loading and fetches it in a command.
// Refreshing while a load is in flight supersedes the older load.
func (m *Model) startLoad() tea.Cmd {
	if m.loader == nil || m.store == nil {
		return nil
	}
	gen := m.store.Begin()
	m.snapshot = m.store.Snapshot()
	return loadCmd(m.ctx, m.loader, gen)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		next, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = next
		}
		return m, cmd
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.showHelp = true

	case key.Matches(msg, keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()

	case key.Matches(msg, keys.Refresh):
		cmd := m.startLoad()
		return m, cmd

	case key.Matches(msg, keys.Logs):
		if m.logFile == "" {
			m.center.Error("Log unavailable", "No log file configured")
			return m, nil
		}
		return m, fetchLogTail(m.logFile, LogTailLines)

	case key.Matches(msg, keys.Escape):
		if m.current().view.Query != "" {
			m.applySearch("")
		} else {
			m.center.Dismiss()
		}

	case key.Matches(msg, keys.NextTab):
		m.switchTab(m.active + 1)
	case key.Matches(msg, keys.PrevTab):
		m.switchTab(m.active - 1)
	case key.Matches(msg, keys.TabUsers):
		m.switchTab(0)
	case key.Matches(msg, keys.TabPosts):
		m.switchTab(1)
	case key.Matches(msg, keys.TabTodos):
		m.switchTab(2)

	case key.Matches(msg, keys.Up):
		m.moveRow(-1)
	case key.Matches(msg, keys.Down):
		m.moveRow(1)
	case key.Matches(msg, keys.Left):
		m.moveCol(-1)
	case key.Matches(msg, keys.Right):
		m.moveCol(1)
	case key.Matches(msg, keys.Click):
		tab := m.current()
		m.clickCell(tab.row, tab.col)
	case key.Matches(msg, keys.Sort):
		m.sortColumn(m.current().col)

	case key.Matches(msg, keys.NextPage):
		m.gotoPage(m.current().view.Page + 1)
	case key.Matches(msg, keys.PrevPage):
		m.gotoPage(m.current().view.Page - 1)
	case key.Matches(msg, keys.FirstPage):
		m.gotoPage(1)
	case key.Matches(msg, keys.LastPage):
		m.gotoPage(m.sheet().PageCount(m.snapshot, m.current().view))
	case key.Matches(msg, keys.GrowPageSize):
		m.resizePages(true)
	case key.Matches(msg, keys.TrimPageSize):
		m.resizePages(false)

	case key.Matches(msg, keys.Search):
		m.searching = true
		m.search.SetValue(m.current().view.Query)
		m.search.CursorEnd()
		cmd := m.search.Focus()
		return m, cmd
	}

	return m, nil
}

// handleSearchKey edits the query with live filtering. Enter keeps the
// query, esc clears it.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.applySearch("")
		return m, nil
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.current().view.Query {
		m.applySearch(m.search.Value())
	}
	return m, cmd
}

// handleMouse maps left clicks onto tabs, headers and cells, and the wheel
// onto the row cursor or an open modal.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		next, cmd, _ := m.modal.Update(msg, m.keys)
		m.modal = next
		return m, cmd
	}
	if m.showHelp || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveRow(-1)
	case tea.MouseButtonWheelDown:
		m.moveRow(1)
	case tea.MouseButtonLeft:
		if msg.Y == tabsLine {
			if i := tabAt(m.tabLabels(), msg.X); i >= 0 {
				m.switchTab(i)
			}
			return m, nil
		}
		h := m.layout().hitTest(msg.X, msg.Y)
		switch h.kind {
		case hitHeader:
			m.current().col = h.col
			m.sortColumn(h.col)
		case hitCell:
			tab := m.current()
			tab.row = h.row
			if h.col >= 0 {
				tab.col = h.col
			}
			m.clickCell(h.row, h.col)
		}
	}
	return m, nil
}

func (m *Model) sheet() dashboard.Sheet { return m.sheets[m.active] }

func (m *Model) current() *tabState { return &m.tabs[m.active] }

func (m *Model) switchTab(i int) {
	n := len(m.sheets)
	m.active = ((i % n) + n) % n
	m.syncSearchPlaceholder()
}

func (m *Model) syncSearchPlaceholder() {
	m.search.Placeholder = m.sheet().SearchPlaceholder()
}

// pageRows is the number of rows on the current page.
func (m *Model) pageRows() int {
	return len(m.grid().Rows)
}

func (m *Model) grid() table.Grid[any] {
	return m.sheet().Render(m.snapshot, m.current().view, m.snapshot.Loading)
}

func (m *Model) moveRow(delta int) {
	tab := m.current()
	n := m.pageRows()
	if n == 0 {
		tab.row = 0
		return
	}
	tab.row = clampInt(tab.row+delta, 0, n-1)
	m.syncOffset()
}

func (m *Model) moveCol(delta int) {
	tab := m.current()
	n := len(m.sheet().Headers())
	tab.col = clampInt(tab.col+delta, 0, n-1)
}

// clickCell performs a click on a cell of the current page and opens the
// detail view when the row handler asked for it.
func (m *Model) clickCell(row, col int) {
	if m.sheet().Click(m.snapshot, m.current().view, row, col) == table.ClickIgnored {
		return
	}
	if r, ok := m.inspected.take(); ok {
		m.openDetail(r)
	}
}

func (m *Model) openDetail(row any) {
	content, err := dashboard.DetailYAML(row)
	if err != nil {
		m.center.Error("Detail unavailable", err.Error())
		return
	}
	title := m.sheet().Name() + " · " + dashboard.Describe(row)
	m.modal = newTextModal(title, content, "j/k scroll · esc close", m.width, m.height)
}

func (m *Model) sortColumn(col int) {
	headers := m.sheet().Headers()
	if col < 0 || col >= len(headers) {
		return
	}
	tab := m.current()
	if next, ok := m.sheet().HeaderClick(tab.view, headers[col].Key); ok {
		tab.view = next
		tab.row, tab.offset = 0, 0
	}
}

func (m *Model) gotoPage(page int) {
	tab := m.current()
	next := m.sheet().SetPage(m.snapshot, tab.view, page)
	if next.Page != tab.view.Page {
		tab.row, tab.offset = 0, 0
	}
	tab.view = next
}

func (m *Model) applySearch(query string) {
	tab := m.current()
	tab.view = m.sheet().Search(tab.view, query)
	tab.row, tab.offset = 0, 0
}

// resizePages changes the page size of every tab and remembers it.
func (m *Model) resizePages(forward bool) {
	size := table.NextPageSize(m.pageSize, forward)
	if size == m.pageSize {
		return
	}
	m.pageSize = size
	for i, s := range m.sheets {
		m.tabs[i].view = s.SetPageSize(m.tabs[i].view, size)
		m.tabs[i].row, m.tabs[i].offset = 0, 0
	}
	m.savePrefs()
}

// clampTabs keeps pages and cursors in range after the data changed.
func (m *Model) clampTabs() {
	for i, s := range m.sheets {
		tab := &m.tabs[i]
		tab.view = tab.view.Clamp(s.PageCount(m.snapshot, tab.view))
		rows := len(s.Render(m.snapshot, tab.view, m.snapshot.Loading).Rows)
		tab.row = clampInt(tab.row, 0, max(rows-1, 0))
	}
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, PageSize: m.pageSize}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save preferences failed", "path", m.prefsPath, "error", err)
	}
}

// Messages

type tickMsg time.Time

type loadRequestMsg struct{}

type loadedMsg state.Result

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func loadCmd(ctx context.Context, loader *state.Loader, gen uint64) tea.Cmd {
	return func() tea.Msg {
		return loadedMsg(loader.Finish(ctx, gen))
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	for _, s := range m.sheets {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("sheet %s: %w", s.Key(), err)
		}
	}
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	return err
}
