package table

// State selects what the body of a rendered grid shows.
type State int

const (
	StateRows State = iota
	StateLoading
	StateEmpty
)

// Header is a rendered column header.
type Header struct {
	Key      string
	Label    string
	Width    int
	Sortable bool
	Dir      SortDirection // SortNone unless this column drives the sort
}

// Indicator returns the sort arrow for the header, or "".
func (h Header) Indicator() string {
	switch h.Dir {
	case SortAscending:
		return "▲"
	case SortDescending:
		return "▼"
	default:
		return ""
	}
}

// GridRow is one rendered body row.
type GridRow[T any] struct {
	Source T
	Index  int // position within the arranged (filtered and sorted) set
	Cells  []string
	Tone   Tone
}

// Grid is the renderer-neutral result of laying out one page of a table.
type Grid[T any] struct {
	Headers    []Header
	Rows       []GridRow[T]
	State      State
	Message    string // loading or empty-state text
	Pagination Pagination
}

// Render lays out the page of rows selected by view. While loading the body
// is suppressed; an empty filtered set yields the table's empty message.
func (e *Engine[T, C]) Render(rows []T, lookup C, view ViewState, loading bool) Grid[T] {
	view = view.Normalize()
	cols := e.table.Columns

	grid := Grid[T]{Headers: make([]Header, 0, len(cols))}
	for _, col := range cols {
		h := Header{Key: col.Key, Label: col.Header, Width: col.Width, Sortable: col.Sortable}
		if col.Sortable && view.SortKey == col.Key {
			h.Dir = view.SortDir
		}
		grid.Headers = append(grid.Headers, h)
	}

	if loading {
		grid.State = StateLoading
		grid.Message = e.table.LoadingMessage
		if grid.Message == "" {
			grid.Message = "Loading..."
		}
		grid.Pagination = Paginate[T](nil, 1, view.PageSize).Pagination
		return grid
	}

	page := e.View(rows, view)
	grid.Pagination = page.Pagination
	if page.Total == 0 {
		grid.State = StateEmpty
		grid.Message = e.table.EmptyMessage
		if grid.Message == "" {
			grid.Message = "No results."
		}
		return grid
	}

	grid.Rows = make([]GridRow[T], 0, len(page.Rows))
	for i, row := range page.Rows {
		cells := make([]string, len(cols))
		for c, col := range cols {
			cells[c] = col.Cell(row, lookup)
		}
		tone := ToneNormal
		if e.table.RowTone != nil {
			tone = e.table.RowTone(row)
		}
		grid.Rows = append(grid.Rows, GridRow[T]{
			Source: row,
			Index:  page.Start + i,
			Cells:  cells,
			Tone:   tone,
		})
	}
	return grid
}
