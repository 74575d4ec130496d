package dashboard

import (
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"

	"github.com/five82/tabula/internal/notify"
	"github.com/five82/tabula/internal/placeholder"
	"github.com/five82/tabula/internal/table"
)

// Actions are the side effects available to the schemas.
type Actions struct {
	Notifier notify.Notifier
	// Copy writes text to the system clipboard. Nil uses atotto/clipboard.
	Copy func(text string) error
	// Inspect is called after a row click has been announced, e.g. to open a
	// detail view. May be nil.
	Inspect func(row any)
}

func (a Actions) copyText(text string) error {
	if a.Copy != nil {
		return a.Copy(text)
	}
	return clipboard.WriteAll(text)
}

func (a Actions) notifier() notify.Notifier {
	if a.Notifier == nil {
		return notify.LogNotifier{}
	}
	return a.Notifier
}

// copyCell copies text and reports the outcome through the notifier.
func (a Actions) copyCell(title, text string) {
	if text == "" {
		return
	}
	if err := a.copyText(text); err != nil {
		a.notifier().Error("Copy failed", err.Error())
		return
	}
	a.notifier().Success(title, text+" copied to clipboard")
}

// rowClick announces a clicked row and hands it to Inspect.
func (a Actions) rowClick(row any) {
	a.notifier().Success("Row clicked", "You clicked on "+Describe(row))
	if a.Inspect != nil {
		a.Inspect(row)
	}
}

// Describe names a row by its name, else its title, else its ID.
func Describe(row any) string {
	switch r := row.(type) {
	case placeholder.User:
		if r.Name != "" {
			return r.Name
		}
		return "ID: " + strconv.Itoa(r.ID)
	case placeholder.Post:
		if r.Title != "" {
			return r.Title
		}
		return "ID: " + strconv.Itoa(r.ID)
	case placeholder.Todo:
		if r.Title != "" {
			return r.Title
		}
		return "ID: " + strconv.Itoa(r.ID)
	default:
		return fmt.Sprint(row)
	}
}

// Users returns the user directory table.
func Users(a Actions) table.Table[placeholder.User, placeholder.Directory] {
	return table.Table[placeholder.User, placeholder.Directory]{
		Columns: []table.Column[placeholder.User, placeholder.Directory]{
			{
				Key:    "name",
				Header: "Name",
				Accessor: func(u placeholder.User, _ placeholder.Directory) string {
					return u.Name + "\n@" + u.Username
				},
				Sortable: true,
				Width:    22,
			},
			{
				Key:    "email",
				Header: "Email",
				Accessor: func(u placeholder.User, _ placeholder.Directory) string {
					return u.Email
				},
				Sortable:    true,
				OnCellClick: func(u placeholder.User) { a.copyCell("Email copied", u.Email) },
				Width:       26,
			},
			{
				Key:    "phone",
				Header: "Phone",
				Width:  22,
			},
			{
				Key:    "company",
				Header: "Company",
				Accessor: func(u placeholder.User, _ placeholder.Directory) string {
					return u.Company.Name + "\n" + u.Company.CatchPhrase
				},
				Sortable:  true,
				SortValue: func(u placeholder.User) any { return u.Company.Name },
				Width:     30,
			},
			{
				Key:    "city",
				Header: "Location",
				Accessor: func(u placeholder.User, _ placeholder.Directory) string {
					return u.Address.City
				},
				Sortable:  true,
				SortValue: func(u placeholder.User) any { return u.Address.City },
				Width:     16,
			},
			{
				Key:         "website",
				Header:      "Website",
				OnCellClick: func(u placeholder.User) { a.copyCell("Link copied", u.WebsiteURL()) },
				Width:       18,
			},
		},
		Match: func(u placeholder.User, q string) bool {
			return table.ContainsFold(q, u.Name, u.Email, u.Company.Name, u.Address.City)
		},
		EmptyMessage: "No users found",
		Handlers: table.Handlers[placeholder.User]{
			OnRowClick: func(u placeholder.User) { a.rowClick(u) },
		},
	}
}

// Posts returns the blog post table. Authors resolve through the directory.
func Posts(a Actions) table.Table[placeholder.Post, placeholder.Directory] {
	return table.Table[placeholder.Post, placeholder.Directory]{
		Columns: []table.Column[placeholder.Post, placeholder.Directory]{
			{Key: "id", Header: "ID", Sortable: true, Width: 5},
			{Key: "title", Header: "Title", Sortable: true, Width: 32},
			{Key: "body", Header: "Content", Width: 44},
			{
				Key:    "userId",
				Header: "Author",
				Accessor: func(p placeholder.Post, dir placeholder.Directory) string {
					if u, ok := dir.User(p.UserID); ok {
						return u.Name + "\n" + u.Email
					}
					return fmt.Sprintf("User %d", p.UserID)
				},
				Sortable: true,
				Width:    24,
			},
		},
		Match: func(p placeholder.Post, q string) bool {
			return table.ContainsFold(q, p.Title, p.Body)
		},
		EmptyMessage: "No posts found",
		Handlers: table.Handlers[placeholder.Post]{
			OnRowClick: func(p placeholder.Post) { a.rowClick(p) },
		},
	}
}

// Todos returns the task table. Completed todos are muted.
func Todos(a Actions) table.Table[placeholder.Todo, placeholder.Directory] {
	return table.Table[placeholder.Todo, placeholder.Directory]{
		Columns: []table.Column[placeholder.Todo, placeholder.Directory]{
			{Key: "id", Header: "ID", Sortable: true, Width: 5},
			{Key: "title", Header: "Task", Sortable: true, Width: 44},
			{
				Key:    "completed",
				Header: "Status",
				Accessor: func(t placeholder.Todo, _ placeholder.Directory) string {
					if t.Completed {
						return "✓ " + t.StatusLabel()
					}
					return "✗ " + t.StatusLabel()
				},
				Sortable: true,
				Width:    12,
			},
			{
				Key:    "userId",
				Header: "Assigned To",
				Accessor: func(t placeholder.Todo, dir placeholder.Directory) string {
					if u, ok := dir.User(t.UserID); ok {
						return u.Name + "\n@" + u.Username
					}
					return fmt.Sprintf("User %d", t.UserID)
				},
				Sortable: true,
				Width:    22,
			},
		},
		Match: func(t placeholder.Todo, q string) bool {
			return table.ContainsFold(q, t.Title)
		},
		EmptyMessage: "No todos found",
		RowTone: func(t placeholder.Todo) table.Tone {
			if t.Completed {
				return table.ToneMuted
			}
			return table.ToneNormal
		},
		Handlers: table.Handlers[placeholder.Todo]{
			OnRowClick: func(t placeholder.Todo) { a.rowClick(t) },
		},
	}
}
