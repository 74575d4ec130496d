// Package table implements a generic, in-memory tabular view: column schemas,
// client-side search, stable sorting, pagination and click dispatch.
//
// # Overview
//
// A [Table] describes rows of type T: the columns to show, a search predicate,
// messages for the loading and empty states and the handlers to call when the
// user interacts with it. An [Engine] turns (rows, view state) into the page of
// rows to display and a renderer-neutral [Grid]. The engine performs no I/O and
// never modifies the rows it is given.
//
// Accessors receive a lookup context C next to each row. Cells that need
// related records (a post's author, a todo's assignee) read them from that
// context instead of closing over ambient state:
//
//	authors := table.Column[Post, Directory]{
//		Key:    "userId",
//		Header: "Author",
//		Accessor: func(p Post, dir Directory) string {
//			if u, ok := dir.User(p.UserID); ok {
//				return u.Name
//			}
//			return fmt.Sprintf("User %d", p.UserID)
//		},
//		Sortable: true,
//	}
//
// # View State
//
// [ViewState] belongs to the host. The engine only derives views from it and
// returns new states from its transition helpers:
//
//   - Search and page size changes return to page 1
//   - Header toggles cycle none → ascending → descending → none
//   - Pages past the end render no rows; [ViewState.Clamp] pulls them back
//
// # Derivation
//
// Rows flow through three stages: filter, sort, paginate. Filter output is
// memoized on the identity of the input slice and the query; sort output on the
// identity of the filtered slice, the sort key and the direction. Callers must
// therefore hand in a new slice whenever the data changes, which is what the
// state store does on every successful load.
//
// Sorting is stable, so rows with equal keys keep their input order, and uses
// [CompareValues], a total order over strings, numbers, booleans and times.
//
// # Interaction
//
// [Engine.Click] routes a click either to the column's OnCellClick (which
// consumes it) or to the row handler. [Engine.HeaderClick] toggles sort only for
// sortable columns.
package table
