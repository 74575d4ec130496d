package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tabula/internal/table"
)

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100
)

// Vertical layout of the main screen. Rows above the table body are fixed so
// mouse clicks can be mapped back to headers and cells.
const (
	headerLine    = 0 // status bar
	tabsLine      = 1
	titleLine     = 2
	searchLine    = 3
	tableTopLine  = 4 // column headers
	tableBodyLine = 6 // first body line, below the rule
	footerLines   = 2 // pagination summary + command bar

	// columnGap separates adjacent columns.
	columnGap = 2
	// leftMargin is the indent of the table and the text above it.
	leftMargin = 1
)

// Timing constants.
const (
	// DefaultUIInterval is the default UI refresh interval.
	DefaultUIInterval = 500 * time.Millisecond

	// LogTailLines is how many log lines the log overlay shows.
	LogTailLines = 300
)

// columnWidth returns the rendered width of a column: its configured width,
// widened to fit the header label and sort arrow.
func columnWidth(h table.Header) int {
	minWidth := lipgloss.Width(h.Label) + 2
	if h.Width > minWidth {
		return h.Width
	}
	return minWidth
}

// rowHeight returns the number of terminal lines a row needs.
func rowHeight(cells []string) int {
	height := 1
	for _, c := range cells {
		if n := strings.Count(c, "\n") + 1; n > height {
			height = n
		}
	}
	return height
}

// bodyWindow selects the rows [start, end) that fit into avail lines while
// keeping the cursor visible. offset is the first row shown last time.
func bodyWindow(heights []int, avail, cursor, offset int) (start, end int) {
	n := len(heights)
	if n == 0 {
		return 0, 0
	}
	cursor = clampInt(cursor, 0, n-1)
	start = clampInt(offset, 0, n-1)
	if cursor < start {
		start = cursor
	}

	used := 0
	for i := start; i <= cursor; i++ {
		used += heights[i]
	}
	for used > avail && start < cursor {
		used -= heights[start]
		start++
	}

	end = start
	used = 0
	for end < n {
		if used+heights[end] > avail && end > start {
			break
		}
		used += heights[end]
		end++
	}
	return start, end
}

// hitKind identifies what a mouse click landed on.
type hitKind int

const (
	hitNone hitKind = iota
	hitHeader
	hitCell
)

// hit is the result of mapping a screen position onto the grid.
type hit struct {
	kind hitKind
	col  int
	row  int // index within the current page
}

// gridLayout records where the header and visible rows were drawn.
type gridLayout struct {
	colX     []int // first screen column of each table column
	colW     []int
	rowStart []int // first screen line of each visible row
	rowEnd   []int // exclusive
	rowIndex []int // page index of each visible row
}

// newGridLayout computes screen positions for headers and the visible rows
// [start, end) of the current page.
func newGridLayout(headers []table.Header, heights []int, start, end int) gridLayout {
	var l gridLayout
	x := leftMargin
	for _, h := range headers {
		w := columnWidth(h)
		l.colX = append(l.colX, x)
		l.colW = append(l.colW, w)
		x += w + columnGap
	}
	y := tableBodyLine
	for i := start; i < end && i < len(heights); i++ {
		l.rowStart = append(l.rowStart, y)
		y += heights[i]
		l.rowEnd = append(l.rowEnd, y)
		l.rowIndex = append(l.rowIndex, i)
	}
	return l
}

// column returns the table column at screen column x, or -1 in a gap.
func (l gridLayout) column(x int) int {
	for i, cx := range l.colX {
		if x >= cx && x < cx+l.colW[i] {
			return i
		}
	}
	return -1
}

// hitTest maps a screen position to a header or cell.
func (l gridLayout) hitTest(x, y int) hit {
	col := l.column(x)
	if y == tableTopLine {
		if col < 0 {
			return hit{}
		}
		return hit{kind: hitHeader, col: col}
	}
	for i := range l.rowStart {
		if y >= l.rowStart[i] && y < l.rowEnd[i] {
			return hit{kind: hitCell, col: col, row: l.rowIndex[i]}
		}
	}
	return hit{}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
