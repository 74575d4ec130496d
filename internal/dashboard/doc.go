// Package dashboard defines the three tables shown by tabula: users, posts
// and todos.
//
// Each table is a [table.Table] over a JSONPlaceholder entity with a
// [placeholder.Directory] as lookup context, so posts and todos can show
// their author or assignee. [Sheets] wraps the three tables behind the
// non-generic [Sheet] interface, which the terminal UI and the print command
// drive identically.
//
// Interactions:
//
//   - Clicking a user's email copies it and notifies "Email copied"
//   - Clicking a user's website copies its https link
//   - Clicking anywhere else in a row notifies "Row clicked" and hands the row
//     to Actions.Inspect, which the UI uses to open a YAML detail view
package dashboard
