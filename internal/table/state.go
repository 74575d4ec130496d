package table

// DefaultPageSize is used when a view state carries no usable page size.
const DefaultPageSize = 10

// PageSizes lists the page sizes offered to users, smallest first.
var PageSizes = []int{5, 10, 20, 50, 100}

// SortDirection is the ordering applied to the sort column.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

func (d SortDirection) String() string {
	switch d {
	case SortAscending:
		return "asc"
	case SortDescending:
		return "desc"
	default:
		return "none"
	}
}

// Next returns the direction that follows d when its header is toggled:
// none → ascending → descending → none.
func (d SortDirection) Next() SortDirection {
	switch d {
	case SortNone:
		return SortAscending
	case SortAscending:
		return SortDescending
	default:
		return SortNone
	}
}

// ViewState is owned by the host and describes what part of a table is shown.
// Transition methods return a new value and never modify the receiver.
type ViewState struct {
	Page     int
	PageSize int
	Query    string
	SortKey  string
	SortDir  SortDirection
}

// NewViewState returns the first page with the given page size.
func NewViewState(pageSize int) ViewState {
	return ViewState{Page: 1, PageSize: normalizePageSize(pageSize)}
}

// Normalize enforces Page >= 1 and a positive page size.
func (v ViewState) Normalize() ViewState {
	if v.Page < 1 {
		v.Page = 1
	}
	v.PageSize = normalizePageSize(v.PageSize)
	if v.SortKey == "" {
		v.SortDir = SortNone
	}
	return v
}

// WithQuery sets the search query and returns to the first page.
func (v ViewState) WithQuery(query string) ViewState {
	v.Query = query
	v.Page = 1
	return v.Normalize()
}

// WithPageSize sets the page size and returns to the first page.
func (v ViewState) WithPageSize(size int) ViewState {
	v.PageSize = size
	v.Page = 1
	return v.Normalize()
}

// WithPage moves to page, which is kept at or above 1.
func (v ViewState) WithPage(page int) ViewState {
	v.Page = page
	return v.Normalize()
}

// ToggleSort advances the sort on key. A different key starts ascending.
func (v ViewState) ToggleSort(key string) ViewState {
	if v.SortKey != key {
		v.SortKey = key
		v.SortDir = SortAscending
		return v.Normalize()
	}
	v.SortDir = v.SortDir.Next()
	if v.SortDir == SortNone {
		v.SortKey = ""
	}
	return v.Normalize()
}

// Clamp pulls the page back inside [1, pageCount].
func (v ViewState) Clamp(pageCount int) ViewState {
	v = v.Normalize()
	if pageCount < 1 {
		pageCount = 1
	}
	if v.Page > pageCount {
		v.Page = pageCount
	}
	return v
}

// NextPageSize returns the page size after current in PageSizes, wrapping
// around. Sizes outside the list snap to the nearest larger entry.
func NextPageSize(current int, forward bool) int {
	idx := -1
	for i, size := range PageSizes {
		if size >= current {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = len(PageSizes) - 1
	}
	if PageSizes[idx] != current {
		return PageSizes[idx]
	}
	if forward {
		return PageSizes[(idx+1)%len(PageSizes)]
	}
	return PageSizes[(idx-1+len(PageSizes))%len(PageSizes)]
}

func normalizePageSize(size int) int {
	if size < 1 {
		return DefaultPageSize
	}
	return size
}
