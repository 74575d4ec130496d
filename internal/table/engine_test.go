package table

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
	"testing"
)

type person struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Active  bool   `json:"active"`
	Address struct {
		City string `json:"city"`
	} `json:"address"`
}

type noLookup struct{}

func people(names ...string) []person {
	out := make([]person, len(names))
	for i, name := range names {
		out[i] = person{ID: i + 1, Name: name}
	}
	return out
}

func names(rows []person) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func ids(rows []person) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func matchName(p person, q string) bool {
	return ContainsFold(q, p.Name)
}

func personTable() Table[person, noLookup] {
	return Table[person, noLookup]{
		Columns: []Column[person, noLookup]{
			{Key: "id", Header: "ID", Sortable: true},
			{Key: "name", Header: "Name", Sortable: true},
			{Key: "age", Header: "Age", Sortable: true},
			{Key: "city", Header: "City", Sortable: true, SortValue: func(p person) any { return p.Address.City }},
			{Key: "notes", Header: "Notes"},
		},
		Match:        matchName,
		EmptyMessage: "No people found",
	}
}

func TestFilter_SubsetAndIdempotent(t *testing.T) {
	rows := people("Alice", "Bob", "Cara", "Malik", "alina")
	for _, q := range []string{"", "ali", "A", "zzz", "  bob  "} {
		once := Filter(rows, q, matchName)
		for _, r := range once {
			if !slices.Contains(rows, r) {
				t.Fatalf("Filter(%q) returned %v which is not in input", q, r)
			}
		}
		twice := Filter(once, q, matchName)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("Filter not idempotent for %q: %v vs %v", q, names(once), names(twice))
		}
	}
}

func TestFilter_CaseInsensitiveScenario(t *testing.T) {
	rows := people("Alice", "Bob", "Cara")
	got := Filter(rows, "ali", matchName)
	if want := []string{"Alice"}; !reflect.DeepEqual(names(got), want) {
		t.Fatalf("Filter(ali) = %v, want %v", names(got), want)
	}

	page := Paginate(got, 1, 1)
	if !reflect.DeepEqual(names(page.Rows), []string{"Alice"}) {
		t.Fatalf("page 1 = %v, want [Alice]", names(page.Rows))
	}
	if page.PageCount != 1 {
		t.Fatalf("PageCount = %d, want 1", page.PageCount)
	}
}

func TestFilter_EmptyQueryReturnsInput(t *testing.T) {
	rows := people("a", "b")
	got := Filter(rows, "", matchName)
	if &got[0] != &rows[0] {
		t.Fatalf("Filter with empty query should return the input slice")
	}
}

func TestFilter_MatchesQueryAsTyped(t *testing.T) {
	rows := people("Alice", "Ali Baba", "Bob")
	cases := []struct {
		query string
		want  []string
	}{
		{"ali", []string{"Alice", "Ali Baba"}},
		{"ali ", []string{"Ali Baba"}},
		{"   ", []string{}},
		{" ", []string{"Ali Baba"}},
	}
	for _, tc := range cases {
		got := names(Filter(rows, tc.query, matchName))
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Filter(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestSort_StableForEqualKeys(t *testing.T) {
	rows := []person{
		{ID: 1, Name: "x", Age: 30},
		{ID: 2, Name: "y", Age: 20},
		{ID: 3, Name: "z", Age: 30},
		{ID: 4, Name: "w", Age: 20},
		{ID: 5, Name: "v", Age: 30},
	}
	age := func(p person) any { return p.Age }

	asc := Sort(rows, age, SortAscending)
	if want := []int{2, 4, 1, 3, 5}; !reflect.DeepEqual(ids(asc), want) {
		t.Fatalf("ascending ids = %v, want %v", ids(asc), want)
	}
	desc := Sort(rows, age, SortDescending)
	if want := []int{1, 3, 5, 2, 4}; !reflect.DeepEqual(ids(desc), want) {
		t.Fatalf("descending ids = %v, want %v", ids(desc), want)
	}
	if want := []int{1, 2, 3, 4, 5}; !reflect.DeepEqual(ids(rows), want) {
		t.Fatalf("input mutated: %v", ids(rows))
	}
}

func TestSort_AscendingReversedEqualsDescending(t *testing.T) {
	rows := people("delta", "Alpha", "charlie", "Bravo", "echo")
	name := func(p person) any { return p.Name }

	asc := Sort(rows, name, SortAscending)
	reversed := slices.Clone(asc)
	slices.Reverse(reversed)
	desc := Sort(rows, name, SortDescending)

	if !reflect.DeepEqual(reversed, desc) {
		t.Fatalf("reverse(asc) = %v, desc = %v", names(reversed), names(desc))
	}
	if want := []string{"Alpha", "Bravo", "charlie", "delta", "echo"}; !reflect.DeepEqual(names(asc), want) {
		t.Fatalf("asc = %v, want %v", names(asc), want)
	}
}

func TestSort_NoneKeepsOrder(t *testing.T) {
	rows := people("b", "a")
	got := Sort(rows, func(p person) any { return p.Name }, SortNone)
	if !reflect.DeepEqual(got, rows) {
		t.Fatalf("SortNone reordered rows: %v", names(got))
	}
}

func TestPaginate_CoversFilteredSetExactlyOnce(t *testing.T) {
	rows := make([]person, 23)
	for i := range rows {
		rows[i] = person{ID: i + 1}
	}
	for _, size := range []int{1, 4, 5, 10, 23, 50} {
		count := PageCount(len(rows), size)
		var all []person
		for p := 1; p <= count; p++ {
			all = append(all, Paginate(rows, p, size).Rows...)
		}
		if !reflect.DeepEqual(all, rows) {
			t.Fatalf("size %d: concatenated pages = %v, want %v", size, ids(all), ids(rows))
		}
	}
}

func TestPaginate_EmptySet(t *testing.T) {
	page := Paginate[person](nil, 1, 10)
	if page.PageCount != 1 {
		t.Fatalf("PageCount = %d, want 1", page.PageCount)
	}
	if len(page.Rows) != 0 {
		t.Fatalf("Rows = %v, want empty", page.Rows)
	}
	if page.Summary() != "Showing 0 of 0" {
		t.Fatalf("Summary = %q", page.Summary())
	}
}

func TestPaginate_TwentyFiveTodos(t *testing.T) {
	rows := make([]person, 25)
	for i := range rows {
		rows[i] = person{ID: i + 1}
	}

	page3 := Paginate(rows, 3, 10)
	if page3.PageCount != 3 {
		t.Fatalf("PageCount = %d, want 3", page3.PageCount)
	}
	if want := []int{21, 22, 23, 24, 25}; !reflect.DeepEqual(ids(page3.Rows), want) {
		t.Fatalf("page 3 ids = %v, want %v", ids(page3.Rows), want)
	}
	if page3.Summary() != "Showing 21-25 of 25" {
		t.Fatalf("Summary = %q", page3.Summary())
	}

	page4 := Paginate(rows, 4, 10)
	if len(page4.Rows) != 0 {
		t.Fatalf("page 4 rows = %v, want none", ids(page4.Rows))
	}
	if page4.HasNext() {
		t.Fatalf("page 4 HasNext = true")
	}

	huge := Paginate(rows, int(^uint(0)>>1), 10)
	if len(huge.Rows) != 0 {
		t.Fatalf("huge page rows = %d, want 0", len(huge.Rows))
	}
}

func TestPaginate_HugePageSize(t *testing.T) {
	rows := people("a", "b", "c", "d", "e")
	cases := []struct {
		name      string
		total     int
		page      int
		size      int
		wantCount int
		wantRows  int
	}{
		{"first page holds everything", 5, 1, math.MaxInt, 1, 5},
		{"second page is empty", 5, 2, math.MaxInt, 1, 0},
		{"max page and size", 5, math.MaxInt, math.MaxInt, 1, 0},
		{"near max size", 5, 1, math.MaxInt - 1, 1, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PageCount(tc.total, tc.size); got != tc.wantCount {
				t.Fatalf("PageCount(%d, %d) = %d, want %d", tc.total, tc.size, got, tc.wantCount)
			}
			page := Paginate(rows, tc.page, tc.size)
			if len(page.Rows) != tc.wantRows {
				t.Fatalf("Paginate page %d rows = %d, want %d", tc.page, len(page.Rows), tc.wantRows)
			}
			if page.PageCount != tc.wantCount {
				t.Fatalf("Paginate PageCount = %d, want %d", page.PageCount, tc.wantCount)
			}
		})
	}
}

func TestPaginate_NonPositiveSizeUsesDefault(t *testing.T) {
	rows := make([]person, 15)
	page := Paginate(rows, 0, 0)
	if page.Page != 1 || page.PageSize != DefaultPageSize || len(page.Rows) != DefaultPageSize {
		t.Fatalf("page = %+v, want page 1 size %d", page.Pagination, DefaultPageSize)
	}
}

func TestEngine_MemoizesFilterAndSort(t *testing.T) {
	e := NewEngine(personTable())
	rows := people("Alice", "Bob", "Cara")
	view := NewViewState(10).WithQuery("a").ToggleSort("name")

	e.View(rows, view)
	e.View(rows, view)
	e.View(rows, view.WithPage(2))
	if got := e.Stats(); got.Filters != 1 || got.Sorts != 1 {
		t.Fatalf("Stats after repeated views = %+v, want 1 filter 1 sort", got)
	}

	e.View(rows, view.ToggleSort("name"))
	if got := e.Stats(); got.Filters != 1 || got.Sorts != 2 {
		t.Fatalf("Stats after sort change = %+v, want 1 filter 2 sorts", got)
	}

	e.View(rows, view.WithQuery("b"))
	if got := e.Stats(); got.Filters != 2 {
		t.Fatalf("Stats after query change = %+v, want 2 filters", got)
	}

	fresh := people("Alice", "Bob", "Cara")
	e.View(fresh, view.WithQuery("b"))
	if got := e.Stats(); got.Filters != 3 {
		t.Fatalf("Stats after new rows = %+v, want 3 filters", got)
	}
}

func TestEngine_ViewSortsByNestedAndRawFields(t *testing.T) {
	rows := []person{{ID: 3, Name: "c"}, {ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	rows[0].Address.City = "Austin"
	rows[1].Address.City = "Zurich"
	rows[2].Address.City = "Berlin"

	e := NewEngine(personTable())
	byID := e.View(rows, NewViewState(10).ToggleSort("id"))
	if want := []int{1, 2, 3}; !reflect.DeepEqual(ids(byID.Rows), want) {
		t.Fatalf("by id = %v, want %v", ids(byID.Rows), want)
	}
	byCity := e.View(rows, NewViewState(10).ToggleSort("city").ToggleSort("city"))
	if want := []int{1, 2, 3}; !reflect.DeepEqual(ids(byCity.Rows), want) {
		t.Fatalf("by city desc = %v, want %v", ids(byCity.Rows), want)
	}
}

func TestEngine_UnsortableColumnIgnored(t *testing.T) {
	e := NewEngine(personTable())
	rows := people("b", "a")
	view, ok := e.HeaderClick(NewViewState(10), "notes")
	if ok || view.SortKey != "" {
		t.Fatalf("HeaderClick(notes) = %+v, %v; want unchanged", view, ok)
	}
	got := e.View(rows, ViewState{Page: 1, PageSize: 10, SortKey: "notes", SortDir: SortAscending})
	if !reflect.DeepEqual(names(got.Rows), []string{"b", "a"}) {
		t.Fatalf("unsortable column reordered rows: %v", names(got.Rows))
	}
}

func TestEngine_CellClickDoesNotReachRowHandler(t *testing.T) {
	var cellClicks, rowClicks []int
	tbl := personTable()
	tbl.Columns[1].OnCellClick = func(p person) { cellClicks = append(cellClicks, p.ID) }
	tbl.Handlers.OnRowClick = func(p person) { rowClicks = append(rowClicks, p.ID) }
	e := NewEngine(tbl)

	row := person{ID: 7, Name: "Gus"}
	if got := e.Click(row, 1); got != ClickCell {
		t.Fatalf("Click on handler column = %v, want ClickCell", got)
	}
	if len(rowClicks) != 0 {
		t.Fatalf("row handler fired on cell click: %v", rowClicks)
	}
	if !reflect.DeepEqual(cellClicks, []int{7}) {
		t.Fatalf("cell clicks = %v, want [7]", cellClicks)
	}

	if got := e.Click(row, 0); got != ClickRow {
		t.Fatalf("Click on plain column = %v, want ClickRow", got)
	}
	if got := e.Click(row, 99); got != ClickRow {
		t.Fatalf("Click outside columns = %v, want ClickRow", got)
	}
	if !reflect.DeepEqual(rowClicks, []int{7, 7}) {
		t.Fatalf("row clicks = %v, want [7 7]", rowClicks)
	}
	if len(cellClicks) != 1 {
		t.Fatalf("cell clicks = %v, want one", cellClicks)
	}
}

func TestEngine_ClickWithoutHandlers(t *testing.T) {
	e := NewEngine(Table[person, noLookup]{})
	if got := e.Click(person{}, 0); got != ClickIgnored {
		t.Fatalf("Click = %v, want ClickIgnored", got)
	}
}

func TestEngine_TransitionsFireHandlers(t *testing.T) {
	var events []string
	tbl := personTable()
	tbl.Handlers = Handlers[person]{
		OnPageChange:     func(p int) { events = append(events, fmt.Sprintf("page:%d", p)) },
		OnPageSizeChange: func(s int) { events = append(events, fmt.Sprintf("size:%d", s)) },
		OnSearch:         func(q string) { events = append(events, "search:"+q) },
		OnSort:           func(k string, d SortDirection) { events = append(events, "sort:"+k+":"+d.String()) },
	}
	e := NewEngine(tbl)
	rows := make([]person, 25)

	view := NewViewState(10)
	view = e.SetPage(view, rows, 3)
	if view.Page != 3 {
		t.Fatalf("Page = %d, want 3", view.Page)
	}
	view = e.SetPage(view, rows, 9)
	if view.Page != 3 {
		t.Fatalf("Page after clamp = %d, want 3", view.Page)
	}
	view = e.SetPageSize(view, 20)
	if view.Page != 1 || view.PageSize != 20 {
		t.Fatalf("after SetPageSize view = %+v, want page 1 size 20", view)
	}
	view = e.SetPage(view, rows, 2)
	view = e.Search(view, "x")
	if view.Page != 1 || view.Query != "x" {
		t.Fatalf("after Search view = %+v, want page 1 query x", view)
	}
	view, _ = e.HeaderClick(view, "name")

	want := []string{"page:3", "size:20", "page:2", "search:x", "sort:name:asc"}
	if !reflect.DeepEqual(events, want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
}

func TestRender_States(t *testing.T) {
	tbl := personTable()
	tbl.RowTone = func(p person) Tone {
		if p.Active {
			return ToneMuted
		}
		return ToneNormal
	}
	e := NewEngine(tbl)
	rows := []person{{ID: 1, Name: "Ann", Active: true}, {ID: 2, Name: "Ben"}}

	loading := e.Render(rows, noLookup{}, NewViewState(10), true)
	if loading.State != StateLoading || len(loading.Rows) != 0 || loading.Message == "" {
		t.Fatalf("loading grid = %+v", loading)
	}
	if len(loading.Headers) != len(tbl.Columns) {
		t.Fatalf("loading headers = %d, want %d", len(loading.Headers), len(tbl.Columns))
	}

	empty := e.Render(rows, noLookup{}, NewViewState(10).WithQuery("zzz"), false)
	if empty.State != StateEmpty || empty.Message != "No people found" {
		t.Fatalf("empty grid state=%v message=%q", empty.State, empty.Message)
	}

	grid := e.Render(rows, noLookup{}, NewViewState(10).ToggleSort("name").ToggleSort("name"), false)
	if grid.State != StateRows || len(grid.Rows) != 2 {
		t.Fatalf("grid = %+v", grid)
	}
	if grid.Rows[0].Cells[1] != "Ben" || grid.Rows[1].Tone != ToneMuted {
		t.Fatalf("rows = %+v", grid.Rows)
	}
	if grid.Headers[1].Indicator() != "▼" || grid.Headers[0].Indicator() != "" {
		t.Fatalf("indicators = %q %q", grid.Headers[1].Indicator(), grid.Headers[0].Indicator())
	}
	if grid.Rows[1].Index != 1 {
		t.Fatalf("row index = %d, want 1", grid.Rows[1].Index)
	}
}

func TestRender_EmptySchemaAndRows(t *testing.T) {
	e := NewEngine(Table[person, noLookup]{})
	grid := e.Render(nil, noLookup{}, ViewState{}, false)
	if len(grid.Headers) != 0 || len(grid.Rows) != 0 || grid.State != StateEmpty {
		t.Fatalf("grid = %+v, want header-less empty grid", grid)
	}

	withRows := e.Render(people("a"), noLookup{}, ViewState{}, false)
	if len(withRows.Rows) != 1 || len(withRows.Rows[0].Cells) != 0 {
		t.Fatalf("grid = %+v, want one row without cells", withRows)
	}
}

func TestValidateColumns(t *testing.T) {
	if err := ValidateColumns(personTable().Columns); err != nil {
		t.Fatalf("ValidateColumns returned error: %v", err)
	}
	dup := []Column[person, noLookup]{{Key: "a"}, {Key: "b"}, {Key: "a"}}
	if err := ValidateColumns(dup); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("ValidateColumns(dup) = %v, want ErrDuplicateKey", err)
	}
	blank := []Column[person, noLookup]{{Key: " ", Header: "Blank"}}
	if err := ValidateColumns(blank); !errors.Is(err, ErrEmptyKey) {
		t.Fatalf("ValidateColumns(blank) = %v, want ErrEmptyKey", err)
	}
}

func TestColumnCell_FallsBackToField(t *testing.T) {
	col := Column[person, noLookup]{Key: "address.city"}
	p := person{}
	p.Address.City = "Lisbon"
	if got := col.Cell(p, noLookup{}); got != "Lisbon" {
		t.Fatalf("Cell = %q, want Lisbon", got)
	}
	missing := Column[person, noLookup]{Key: "nope"}
	if got := missing.Cell(p, noLookup{}); got != "" {
		t.Fatalf("Cell(missing) = %q, want empty", got)
	}
}
