package dashboard

import (
	"fmt"
	"strings"

	"github.com/five82/tabula/internal/placeholder"
	"github.com/five82/tabula/internal/state"
	"github.com/five82/tabula/internal/table"
)

// Sheet is one dashboard tab: a table over one collection of the dataset.
// It hides the row type so hosts can treat every tab alike.
type Sheet interface {
	Key() string
	Name() string
	Title() string
	Description() string
	SearchPlaceholder() string

	Count(snap state.Snapshot) int
	Headers() []table.Header
	Validate() error

	Render(snap state.Snapshot, view table.ViewState, loading bool) table.Grid[any]
	PageCount(snap state.Snapshot, view table.ViewState) int
	Row(snap state.Snapshot, view table.ViewState, index int) (any, bool)

	// Click dispatches a click on row index (within the current page) and
	// column col.
	Click(snap state.Snapshot, view table.ViewState, index, col int) table.ClickTarget
	HeaderClick(view table.ViewState, key string) (table.ViewState, bool)
	Search(view table.ViewState, query string) table.ViewState
	SetPage(snap state.Snapshot, view table.ViewState, page int) table.ViewState
	SetPageSize(view table.ViewState, size int) table.ViewState

	Stats() table.Stats
}

type sheet[T any] struct {
	key         string
	name        string
	title       string
	description string
	hint        string
	engine      *table.Engine[T, placeholder.Directory]
	rows        func(placeholder.Dataset) []T
}

var _ Sheet = (*sheet[placeholder.User])(nil)

func (s *sheet[T]) Key() string { return s.key }
func (s *sheet[T]) Name() string { return s.name }
func (s *sheet[T]) Title() string { return s.title }
func (s *sheet[T]) Description() string { return s.description }
func (s *sheet[T]) SearchPlaceholder() string { return s.hint }
func (s *sheet[T]) Stats() table.Stats { return s.engine.Stats() }

func (s *sheet[T]) Count(snap state.Snapshot) int {
	return len(s.rows(snap.Data))
}

func (s *sheet[T]) Headers() []table.Header {
	cols := s.engine.Table().Columns
	out := make([]table.Header, len(cols))
	for i, col := range cols {
		out[i] = table.Header{Key: col.Key, Label: col.Header, Width: col.Width, Sortable: col.Sortable}
	}
	return out
}

func (s *sheet[T]) Validate() error {
	if err := table.ValidateColumns(s.engine.Table().Columns); err != nil {
		return fmt.Errorf("%s schema: %w", s.key, err)
	}
	return nil
}

func (s *sheet[T]) Render(snap state.Snapshot, view table.ViewState, loading bool) table.Grid[any] {
	grid := s.engine.Render(s.rows(snap.Data), snap.Directory, view, loading)
	out := table.Grid[any]{
		Headers:    grid.Headers,
		State:      grid.State,
		Message:    grid.Message,
		Pagination: grid.Pagination,
		Rows:       make([]table.GridRow[any], len(grid.Rows)),
	}
	for i, r := range grid.Rows {
		out.Rows[i] = table.GridRow[any]{Source: r.Source, Index: r.Index, Cells: r.Cells, Tone: r.Tone}
	}
	return out
}

func (s *sheet[T]) PageCount(snap state.Snapshot, view table.ViewState) int {
	return table.PageCount(len(s.engine.Arrange(s.rows(snap.Data), view)), view.PageSize)
}

// row returns a row of the current page. While loading no rows are shown,
// so none can be addressed.
func (s *sheet[T]) row(snap state.Snapshot, view table.ViewState, index int) (T, bool) {
	var zero T
	if snap.Loading {
		return zero, false
	}
	page := s.engine.View(s.rows(snap.Data), view)
	if index < 0 || index >= len(page.Rows) {
		return zero, false
	}
	return page.Rows[index], true
}

func (s *sheet[T]) Row(snap state.Snapshot, view table.ViewState, index int) (any, bool) {
	r, ok := s.row(snap, view, index)
	if !ok {
		return nil, false
	}
	return r, true
}

func (s *sheet[T]) Click(snap state.Snapshot, view table.ViewState, index, col int) table.ClickTarget {
	r, ok := s.row(snap, view, index)
	if !ok {
		return table.ClickIgnored
	}
	return s.engine.Click(r, col)
}

func (s *sheet[T]) HeaderClick(view table.ViewState, key string) (table.ViewState, bool) {
	return s.engine.HeaderClick(view, key)
}

func (s *sheet[T]) Search(view table.ViewState, query string) table.ViewState {
	return s.engine.Search(view, query)
}

func (s *sheet[T]) SetPage(snap state.Snapshot, view table.ViewState, page int) table.ViewState {
	return s.engine.SetPage(view, s.rows(snap.Data), page)
}

func (s *sheet[T]) SetPageSize(view table.ViewState, size int) table.ViewState {
	return s.engine.SetPageSize(view, size)
}

// Sheets returns the users, posts and todos tabs in display order.
func Sheets(a Actions) []Sheet {
	return []Sheet{
		&sheet[placeholder.User]{
			key:         "users",
			name:        "Users",
			title:       "User Directory",
			description: "Browse and manage user information from the API",
			hint:        "Search users by name, email, company, or city...",
			engine:      table.NewEngine(Users(a)),
			rows:        func(ds placeholder.Dataset) []placeholder.User { return ds.Users },
		},
		&sheet[placeholder.Post]{
			key:         "posts",
			name:        "Posts",
			title:       "Blog Posts",
			description: "View all blog posts with author information",
			hint:        "Search posts by title or content...",
			engine:      table.NewEngine(Posts(a)),
			rows:        func(ds placeholder.Dataset) []placeholder.Post { return ds.Posts },
		},
		&sheet[placeholder.Todo]{
			key:         "todos",
			name:        "Todos",
			title:       "Task Management",
			description: "Track todos and their completion status",
			hint:        "Search todos by title...",
			engine:      table.NewEngine(Todos(a)),
			rows:        func(ds placeholder.Dataset) []placeholder.Todo { return ds.Todos },
		},
	}
}

// Find returns the sheet whose key matches name, ignoring case.
func Find(sheets []Sheet, name string) (Sheet, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range sheets {
		if s.Key() == name {
			return s, true
		}
	}
	return nil, false
}

// Keys lists the sheet keys, e.g. for CLI completion.
func Keys(sheets []Sheet) []string {
	out := make([]string, len(sheets))
	for i, s := range sheets {
		out[i] = s.Key()
	}
	return out
}
