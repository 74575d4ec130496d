package table

import (
	"slices"
	"strings"
	"sync"
)

// Tone adjusts how a whole row is presented.
type Tone int

const (
	ToneNormal Tone = iota
	ToneMuted
)

// Handlers are invoked when the user interacts with a table. Any may be nil.
type Handlers[T any] struct {
	OnRowClick       func(row T)
	OnPageChange     func(page int)
	OnPageSizeChange func(size int)
	OnSearch         func(query string)
	OnSort           func(key string, dir SortDirection)
}

// Table is the full definition of a tabular view over rows of type T with
// lookup context C.
type Table[T, C any] struct {
	Columns []Column[T, C]

	// Match reports whether row satisfies a non-empty query. A nil Match keeps
	// every row.
	Match func(row T, query string) bool

	EmptyMessage   string
	LoadingMessage string

	RowTone  func(row T) Tone
	Handlers Handlers[T]
}

// Column returns the column with key and its index.
func (t Table[T, C]) Column(key string) (Column[T, C], int, bool) {
	for i, col := range t.Columns {
		if col.Key == key {
			return col, i, true
		}
	}
	return Column[T, C]{}, -1, false
}

// Stats counts how often derived views were recomputed.
type Stats struct {
	Filters int
	Sorts   int
}

// sliceID identifies a slice by its backing array and length. Rows are
// treated as immutable, so identity stands in for equality.
type sliceID[T any] struct {
	first *T
	n     int
}

func identify[T any](rows []T) sliceID[T] {
	if len(rows) == 0 {
		return sliceID[T]{}
	}
	return sliceID[T]{first: &rows[0], n: len(rows)}
}

type filterKey[T any] struct {
	rows  sliceID[T]
	query string
}

type sortKey[T any] struct {
	rows sliceID[T]
	key  string
	dir  SortDirection
}

// Engine derives filtered, sorted and paginated views of a Table. Filter and
// sort results are memoized on their inputs so unrelated re-renders reuse
// them. An Engine is safe for concurrent use.
type Engine[T, C any] struct {
	table Table[T, C]

	mu        sync.Mutex
	filterIn  *filterKey[T]
	filterOut []T
	sortIn    *sortKey[T]
	sortOut   []T
	stats     Stats
}

// NewEngine returns an engine for t.
func NewEngine[T, C any](t Table[T, C]) *Engine[T, C] {
	return &Engine[T, C]{table: t}
}

// Table returns the definition the engine was built with.
func (e *Engine[T, C]) Table() Table[T, C] {
	return e.table
}

// Stats returns the recomputation counters.
func (e *Engine[T, C]) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// Filter returns the rows matching query, reusing the previous result when
// rows and query are unchanged.
func (e *Engine[T, C]) Filter(rows []T, query string) []T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filterLocked(rows, query)
}

func (e *Engine[T, C]) filterLocked(rows []T, query string) []T {
	key := filterKey[T]{rows: identify(rows), query: query}
	if e.filterIn != nil && *e.filterIn == key {
		return e.filterOut
	}
	e.stats.Filters++
	e.filterOut = Filter(rows, key.query, e.table.Match)
	e.filterIn = &key
	return e.filterOut
}

func (e *Engine[T, C]) sortLocked(rows []T, key string, dir SortDirection) []T {
	in := sortKey[T]{rows: identify(rows), key: key, dir: dir}
	if e.sortIn != nil && *e.sortIn == in {
		return e.sortOut
	}
	e.stats.Sorts++
	col, _, ok := e.table.Column(key)
	if !ok || !col.Sortable {
		e.sortOut = rows
	} else {
		e.sortOut = Sort(rows, col.Value, dir)
	}
	e.sortIn = &in
	return e.sortOut
}

// Arrange returns the full filtered and sorted row set for view.
func (e *Engine[T, C]) Arrange(rows []T, view ViewState) []T {
	view = view.Normalize()
	e.mu.Lock()
	defer e.mu.Unlock()
	filtered := e.filterLocked(rows, view.Query)
	return e.sortLocked(filtered, view.SortKey, view.SortDir)
}

// View returns the page of rows selected by view.
func (e *Engine[T, C]) View(rows []T, view ViewState) Page[T] {
	view = view.Normalize()
	return Paginate(e.Arrange(rows, view), view.Page, view.PageSize)
}

// Filter keeps the rows for which match returns true. An empty query or nil
// match returns rows unchanged. The query is matched as typed, surrounding
// spaces included. The input slice is never modified.
func Filter[T any](rows []T, query string, match func(T, string) bool) []T {
	if query == "" || match == nil {
		return rows
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if match(row, query) {
			out = append(out, row)
		}
	}
	return out
}

// Sort returns a stably sorted copy of rows ordered by value. SortNone
// returns rows unchanged.
func Sort[T any](rows []T, value func(T) any, dir SortDirection) []T {
	if dir == SortNone || value == nil || len(rows) < 2 {
		return rows
	}
	type keyed struct {
		row T
		key any
	}
	items := make([]keyed, len(rows))
	for i, row := range rows {
		items[i] = keyed{row: row, key: value(row)}
	}
	slices.SortStableFunc(items, func(a, b keyed) int {
		c := CompareValues(a.key, b.key)
		if dir == SortDescending {
			return -c
		}
		return c
	})
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.row
	}
	return out
}

// ContainsFold reports whether any of fields contains query, ignoring case.
// It is the building block for the usual per-dataset search predicates.
func ContainsFold(query string, fields ...string) bool {
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
