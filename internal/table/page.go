package table

import "fmt"

// Pagination summarizes where a page sits within the filtered row set.
type Pagination struct {
	Page      int // requested page, 1-indexed
	PageSize  int
	PageCount int // at least 1, even for an empty set
	Total     int // rows after filtering
	Start     int // offset of the first displayed row
	End       int // offset one past the last displayed row
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a following page exists.
func (p Pagination) HasNext() bool {
	return p.Page < p.PageCount
}

// Summary renders e.g. "Showing 11-20 of 25".
func (p Pagination) Summary() string {
	if p.Total == 0 || p.Start >= p.End {
		return fmt.Sprintf("Showing 0 of %d", p.Total)
	}
	return fmt.Sprintf("Showing %d-%d of %d", p.Start+1, p.End, p.Total)
}

// Page is one slice of an arranged row set.
type Page[T any] struct {
	Pagination
	Rows []T
}

// PageCount returns ceil(total/size), never less than 1.
func PageCount(total, size int) int {
	size = normalizePageSize(size)
	if total <= 0 {
		return 1
	}
	count := total / size
	if total%size != 0 {
		count++
	}
	return count
}

// Paginate returns rows [(page-1)*size, page*size) clamped to the bounds of
// rows. Pages past the end are empty. The returned slice aliases rows.
func Paginate[T any](rows []T, page, size int) Page[T] {
	size = normalizePageSize(size)
	if page < 1 {
		page = 1
	}
	total := len(rows)
	start := total
	if page-1 <= total/size {
		start = min((page-1)*size, total)
	}
	end := start + min(size, total-start)
	return Page[T]{
		Pagination: Pagination{
			Page:      page,
			PageSize:  size,
			PageCount: PageCount(total, size),
			Total:     total,
			Start:     start,
			End:       end,
		},
		Rows: rows[start:end:end],
	}
}
