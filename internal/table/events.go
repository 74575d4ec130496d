package table

// ClickTarget reports which handler consumed a click.
type ClickTarget int

const (
	ClickIgnored ClickTarget = iota
	ClickCell
	ClickRow
)

// Click dispatches a click on row at column index. A column with OnCellClick
// consumes the click and the row handler is not called. Any other position in
// the row, including indexes outside the schema, goes to OnRowClick.
func (e *Engine[T, C]) Click(row T, column int) ClickTarget {
	cols := e.table.Columns
	if column >= 0 && column < len(cols) && cols[column].OnCellClick != nil {
		cols[column].OnCellClick(row)
		return ClickCell
	}
	if h := e.table.Handlers.OnRowClick; h != nil {
		h(row)
		return ClickRow
	}
	return ClickIgnored
}

// HeaderClick toggles sorting on key. Non-sortable and unknown columns leave
// the view unchanged and report false.
func (e *Engine[T, C]) HeaderClick(view ViewState, key string) (ViewState, bool) {
	col, _, ok := e.table.Column(key)
	if !ok || !col.Sortable {
		return view, false
	}
	next := view.ToggleSort(key)
	if h := e.table.Handlers.OnSort; h != nil {
		h(key, next.SortDir)
	}
	return next, true
}

// Search applies query and returns to the first page.
func (e *Engine[T, C]) Search(view ViewState, query string) ViewState {
	next := view.WithQuery(query)
	if h := e.table.Handlers.OnSearch; h != nil {
		h(query)
	}
	return next
}

// SetPage moves to page, clamped to the pages available for rows.
func (e *Engine[T, C]) SetPage(view ViewState, rows []T, page int) ViewState {
	count := PageCount(len(e.Arrange(rows, view)), view.PageSize)
	next := view.WithPage(page).Clamp(count)
	if next.Page != view.Page {
		if h := e.table.Handlers.OnPageChange; h != nil {
			h(next.Page)
		}
	}
	return next
}

// SetPageSize changes the page size and returns to the first page.
func (e *Engine[T, C]) SetPageSize(view ViewState, size int) ViewState {
	next := view.WithPageSize(size)
	if h := e.table.Handlers.OnPageSizeChange; h != nil {
		h(next.PageSize)
	}
	return next
}
