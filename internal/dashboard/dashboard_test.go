package dashboard

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/five82/tabula/internal/placeholder"
	"github.com/five82/tabula/internal/state"
	"github.com/five82/tabula/internal/table"
)

type recorder struct {
	calls []string
}

func (r *recorder) Success(m, d string) { r.calls = append(r.calls, "success|"+m+"|"+d) }
func (r *recorder) Error(m, d string) { r.calls = append(r.calls, "error|"+m+"|"+d) }

type harness struct {
	notes     *recorder
	copied    []string
	copyErr   error
	inspected []any
	sheets    []Sheet
}

func newHarness() *harness {
	h := &harness{notes: &recorder{}}
	h.sheets = Sheets(Actions{
		Notifier: h.notes,
		Copy: func(text string) error {
			if h.copyErr != nil {
				return h.copyErr
			}
			h.copied = append(h.copied, text)
			return nil
		},
		Inspect: func(row any) { h.inspected = append(h.inspected, row) },
	})
	return h
}

func (h *harness) sheet(t *testing.T, key string) Sheet {
	t.Helper()
	s, ok := Find(h.sheets, key)
	if !ok {
		t.Fatalf("sheet %q not found", key)
	}
	return s
}

func snapshot() state.Snapshot {
	users := []placeholder.User{
		{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz", Website: "hildegard.org",
			Address: placeholder.Address{City: "Gwenborough"},
			Company: placeholder.Company{Name: "Romaguera-Crona", CatchPhrase: "Multi-layered client-server neural-net"}},
		{ID: 2, Name: "Alice Ng", Username: "ali", Email: "alice@example.com",
			Address: placeholder.Address{City: "Wisokyburgh"},
			Company: placeholder.Company{Name: "Deckow-Crist"}},
		{ID: 3, Name: "Bob Stone", Username: "bob", Email: "bob@example.com",
			Address: placeholder.Address{City: "McKenziehaven"},
			Company: placeholder.Company{Name: "Abernathy Group"}},
	}
	posts := []placeholder.Post{
		{ID: 1, UserID: 1, Title: "sunt aut facere", Body: "quia et suscipit"},
		{ID: 2, UserID: 11, Title: "qui est esse", Body: "est rerum tempore"},
	}
	todos := make([]placeholder.Todo, 25)
	for i := range todos {
		todos[i] = placeholder.Todo{ID: i + 1, UserID: 1, Title: "task", Completed: i%2 == 0}
	}
	todos[0].Title = "delectus aut autem"

	ds := placeholder.Dataset{Users: users, Posts: posts, Todos: todos}
	return state.Snapshot{Data: ds, Directory: placeholder.NewDirectory(users), HasData: true}
}

func TestSheets_ValidSchemas(t *testing.T) {
	h := newHarness()
	if got := Keys(h.sheets); !reflect.DeepEqual(got, []string{"users", "posts", "todos"}) {
		t.Fatalf("Keys = %v", got)
	}
	for _, s := range h.sheets {
		if err := s.Validate(); err != nil {
			t.Fatalf("%s: Validate returned error: %v", s.Key(), err)
		}
	}
	if _, ok := Find(h.sheets, " TODOS "); !ok {
		t.Fatalf("Find should ignore case and spaces")
	}
	if _, ok := Find(h.sheets, "comments"); ok {
		t.Fatalf("Find(comments) = true")
	}
}

func TestUsers_EmailClickCopiesWithoutRowClick(t *testing.T) {
	h := newHarness()
	users := h.sheet(t, "users")
	snap := snapshot()
	view := table.NewViewState(10)

	if got := users.Click(snap, view, 0, 1); got != table.ClickCell {
		t.Fatalf("Click(email) = %v, want ClickCell", got)
	}
	if !reflect.DeepEqual(h.copied, []string{"Sincere@april.biz"}) {
		t.Fatalf("copied = %v", h.copied)
	}
	want := []string{"success|Email copied|Sincere@april.biz copied to clipboard"}
	if !reflect.DeepEqual(h.notes.calls, want) {
		t.Fatalf("notifications = %v, want %v", h.notes.calls, want)
	}
	if len(h.inspected) != 0 {
		t.Fatalf("row handler ran on email click")
	}
}

func TestUsers_WebsiteClickCopiesLink(t *testing.T) {
	h := newHarness()
	users := h.sheet(t, "users")
	users.Click(snapshot(), table.NewViewState(10), 0, 5)
	if !reflect.DeepEqual(h.copied, []string{"https://hildegard.org"}) {
		t.Fatalf("copied = %v", h.copied)
	}

	// No website: nothing to copy, no notification.
	h.copied, h.notes.calls = nil, nil
	users.Click(snapshot(), table.NewViewState(10), 1, 5)
	if len(h.copied) != 0 || len(h.notes.calls) != 0 {
		t.Fatalf("copied=%v notes=%v, want nothing", h.copied, h.notes.calls)
	}
}

func TestUsers_CopyFailureNotifiesError(t *testing.T) {
	h := newHarness()
	h.copyErr = errors.New("no clipboard utility")
	h.sheet(t, "users").Click(snapshot(), table.NewViewState(10), 0, 1)
	if len(h.notes.calls) != 1 || !strings.HasPrefix(h.notes.calls[0], "error|Copy failed|") {
		t.Fatalf("notifications = %v, want copy failure", h.notes.calls)
	}
}

func TestRowClickAnnouncesAndInspects(t *testing.T) {
	h := newHarness()
	snap := snapshot()
	view := table.NewViewState(10)

	if got := h.sheet(t, "users").Click(snap, view, 0, 0); got != table.ClickRow {
		t.Fatalf("Click(name) = %v, want ClickRow", got)
	}
	h.sheet(t, "posts").Click(snap, view, 1, 2)
	h.sheet(t, "todos").Click(snap, view, 0, 0)

	want := []string{
		"success|Row clicked|You clicked on Leanne Graham",
		"success|Row clicked|You clicked on qui est esse",
		"success|Row clicked|You clicked on delectus aut autem",
	}
	if !reflect.DeepEqual(h.notes.calls, want) {
		t.Fatalf("notifications = %v, want %v", h.notes.calls, want)
	}
	if len(h.inspected) != 3 {
		t.Fatalf("inspected = %d rows, want 3", len(h.inspected))
	}
	if _, ok := h.inspected[1].(placeholder.Post); !ok {
		t.Fatalf("inspected[1] = %T, want placeholder.Post", h.inspected[1])
	}

	if got := h.sheet(t, "users").Click(snap, view, 99, 0); got != table.ClickIgnored {
		t.Fatalf("Click past page = %v, want ClickIgnored", got)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		row  any
		want string
	}{
		{placeholder.User{ID: 1, Name: "Ervin"}, "Ervin"},
		{placeholder.User{ID: 4}, "ID: 4"},
		{placeholder.Post{ID: 5, Title: "t"}, "t"},
		{placeholder.Post{ID: 6}, "ID: 6"},
		{placeholder.Todo{ID: 7}, "ID: 7"},
		{42, "42"},
	}
	for _, tt := range tests {
		if got := Describe(tt.row); got != tt.want {
			t.Fatalf("Describe(%v) = %q, want %q", tt.row, got, tt.want)
		}
	}
}

func TestPosts_AuthorResolvesThroughDirectory(t *testing.T) {
	h := newHarness()
	grid := h.sheet(t, "posts").Render(snapshot(), table.NewViewState(10), false)
	if len(grid.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(grid.Rows))
	}
	if got := grid.Rows[0].Cells[3]; got != "Leanne Graham\nSincere@april.biz" {
		t.Fatalf("author = %q", got)
	}
	if got := grid.Rows[1].Cells[3]; got != "User 11" {
		t.Fatalf("unknown author = %q, want User 11", got)
	}
	if grid.Rows[0].Cells[0] != "1" || grid.Rows[0].Cells[2] != "quia et suscipit" {
		t.Fatalf("raw cells = %q", grid.Rows[0].Cells)
	}
}

func TestUsers_SearchScenario(t *testing.T) {
	h := newHarness()
	users := h.sheet(t, "users")
	snap := snapshot()

	view := users.Search(table.NewViewState(10).WithPage(3), "ali")
	if view.Page != 1 {
		t.Fatalf("Page = %d after search, want 1", view.Page)
	}
	grid := users.Render(snap, view, false)
	if len(grid.Rows) != 1 || !strings.HasPrefix(grid.Rows[0].Cells[0], "Alice Ng\n@ali") {
		t.Fatalf("rows = %+v, want only Alice", grid.Rows)
	}
	if grid.Pagination.PageCount != 1 {
		t.Fatalf("PageCount = %d, want 1", grid.Pagination.PageCount)
	}

	byCity := users.Render(snap, users.Search(view, "mckenzie"), false)
	if len(byCity.Rows) != 1 || byCity.Rows[0].Source.(placeholder.User).ID != 3 {
		t.Fatalf("city search rows = %+v", byCity.Rows)
	}

	none := users.Render(snap, users.Search(view, "zzz"), false)
	if none.State != table.StateEmpty || none.Message != "No users found" {
		t.Fatalf("empty state = %v %q", none.State, none.Message)
	}
}

func TestUsers_SortByCompanyName(t *testing.T) {
	h := newHarness()
	users := h.sheet(t, "users")
	view, ok := users.HeaderClick(table.NewViewState(10), "company")
	if !ok {
		t.Fatalf("company should be sortable")
	}
	grid := users.Render(snapshot(), view, false)
	var got []int
	for _, r := range grid.Rows {
		got = append(got, r.Source.(placeholder.User).ID)
	}
	if !reflect.DeepEqual(got, []int{3, 2, 1}) {
		t.Fatalf("company order = %v, want [3 2 1]", got)
	}
	if _, ok := users.HeaderClick(view, "phone"); ok {
		t.Fatalf("phone should not be sortable")
	}
}

func TestTodos_PaginationAndTone(t *testing.T) {
	h := newHarness()
	todos := h.sheet(t, "todos")
	snap := snapshot()

	view := todos.SetPage(snap, table.NewViewState(10), 3)
	grid := todos.Render(snap, view, false)
	if grid.Pagination.PageCount != 3 || len(grid.Rows) != 5 {
		t.Fatalf("page 3: count=%d rows=%d, want 3 and 5", grid.Pagination.PageCount, len(grid.Rows))
	}
	if todos.PageCount(snap, view) != 3 {
		t.Fatalf("PageCount = %d, want 3", todos.PageCount(snap, view))
	}

	first := todos.Render(snap, table.NewViewState(10), false)
	if first.Rows[0].Tone != table.ToneMuted || first.Rows[1].Tone != table.ToneNormal {
		t.Fatalf("tones = %v, %v; want muted then normal", first.Rows[0].Tone, first.Rows[1].Tone)
	}
	if first.Rows[0].Cells[2] != "✓ Completed" || first.Rows[1].Cells[2] != "✗ Pending" {
		t.Fatalf("status cells = %q, %q", first.Rows[0].Cells[2], first.Rows[1].Cells[2])
	}
	if first.Rows[0].Cells[3] != "Leanne Graham\n@Bret" {
		t.Fatalf("assignee = %q", first.Rows[0].Cells[3])
	}

	resized := todos.SetPageSize(view, 20)
	if resized.Page != 1 || resized.PageSize != 20 {
		t.Fatalf("SetPageSize = %+v, want page 1 size 20", resized)
	}
}

func TestSheet_LoadingAndCounts(t *testing.T) {
	h := newHarness()
	snap := snapshot()
	users := h.sheet(t, "users")
	grid := users.Render(snap, table.NewViewState(10), true)
	if grid.State != table.StateLoading || len(grid.Rows) != 0 {
		t.Fatalf("loading grid = %+v", grid)
	}
	if users.Count(snap) != 3 || h.sheet(t, "todos").Count(snap) != 25 {
		t.Fatalf("counts = %d, %d", users.Count(snap), h.sheet(t, "todos").Count(snap))
	}
	if len(users.Headers()) != 6 || users.Headers()[5].Label != "Website" {
		t.Fatalf("headers = %+v", users.Headers())
	}
	if users.SearchPlaceholder() == "" || users.Title() != "User Directory" {
		t.Fatalf("labels missing")
	}
}

func TestSheet_ClickWhileLoadingIgnored(t *testing.T) {
	h := newHarness()
	snap := snapshot()
	snap.Loading = true
	users := h.sheet(t, "users")
	view := table.NewViewState(10)

	if got := users.Click(snap, view, 0, 0); got != table.ClickIgnored {
		t.Fatalf("Click while loading = %v, want ClickIgnored", got)
	}
	if _, ok := users.Row(snap, view, 0); ok {
		t.Fatalf("Row while loading returned a row")
	}
	if len(h.inspected) != 0 {
		t.Fatalf("row handler ran while loading")
	}
}

func TestSheet_RepeatedRendersReuseDerivedRows(t *testing.T) {
	h := newHarness()
	snap := snapshot()
	posts := h.sheet(t, "posts")
	view := table.NewViewState(10).WithQuery("est")
	for range 5 {
		posts.Render(snap, view, false)
	}
	if got := posts.Stats(); got.Filters != 1 || got.Sorts != 1 {
		t.Fatalf("Stats = %+v, want one filter and one sort", got)
	}
}

func TestDetailYAML(t *testing.T) {
	out, err := DetailYAML(snapshot().Data.Users[0])
	if err != nil {
		t.Fatalf("DetailYAML returned error: %v", err)
	}
	for _, want := range []string{"name: Leanne Graham", "catchPhrase: Multi-layered client-server neural-net", "city: Gwenborough"} {
		if !strings.Contains(out, want) {
			t.Fatalf("DetailYAML missing %q:\n%s", want, out)
		}
	}
	if _, err := DetailYAML(nil); err == nil {
		t.Fatalf("DetailYAML(nil) returned nil error")
	}
}
