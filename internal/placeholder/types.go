package placeholder

import "fmt"

// User mirrors an entry of /users.
type User struct {
	ID       int     `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Username string  `json:"username" yaml:"username"`
	Email    string  `json:"email" yaml:"email"`
	Phone    string  `json:"phone" yaml:"phone"`
	Website  string  `json:"website" yaml:"website"`
	Address  Address `json:"address" yaml:"address"`
	Company  Company `json:"company" yaml:"company"`
}

// Address is a user's postal address.
type Address struct {
	Street  string `json:"street" yaml:"street"`
	Suite   string `json:"suite" yaml:"suite"`
	City    string `json:"city" yaml:"city"`
	Zipcode string `json:"zipcode" yaml:"zipcode"`
	Geo     Geo    `json:"geo" yaml:"geo"`
}

// Geo holds coordinates as the API reports them (decimal strings).
type Geo struct {
	Lat string `json:"lat" yaml:"lat"`
	Lng string `json:"lng" yaml:"lng"`
}

// Company describes a user's employer.
type Company struct {
	Name        string `json:"name" yaml:"name"`
	CatchPhrase string `json:"catchPhrase" yaml:"catchPhrase"`
	BS          string `json:"bs" yaml:"bs"`
}

// WebsiteURL returns the user's website as an https link.
func (u User) WebsiteURL() string {
	if u.Website == "" {
		return ""
	}
	return "https://" + u.Website
}

// Post mirrors an entry of /posts.
type Post struct {
	ID     int    `json:"id" yaml:"id"`
	UserID int    `json:"userId" yaml:"userId"`
	Title  string `json:"title" yaml:"title"`
	Body   string `json:"body" yaml:"body"`
}

// Todo mirrors an entry of /todos.
type Todo struct {
	ID        int    `json:"id" yaml:"id"`
	UserID    int    `json:"userId" yaml:"userId"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// StatusLabel renders the completion state.
func (t Todo) StatusLabel() string {
	if t.Completed {
		return "Completed"
	}
	return "Pending"
}

// Dataset is one complete load of all three collections.
type Dataset struct {
	Users []User
	Posts []Post
	Todos []Todo
}

// Counts summarizes the dataset, e.g. "Loaded 10 users, 100 posts, and 200 todos".
func (d Dataset) Counts() string {
	return fmt.Sprintf("Loaded %d users, %d posts, and %d todos", len(d.Users), len(d.Posts), len(d.Todos))
}

// Totals renders the header line "10 users • 100 posts • 200 todos".
func (d Dataset) Totals() string {
	return fmt.Sprintf("%d users • %d posts • %d todos", len(d.Users), len(d.Posts), len(d.Todos))
}

// Directory resolves users by ID. It is handed to column accessors that
// display related users.
type Directory struct {
	byID map[int]User
}

// NewDirectory indexes users. Later duplicates win.
func NewDirectory(users []User) Directory {
	byID := make(map[int]User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return Directory{byID: byID}
}

// User returns the user with id.
func (d Directory) User(id int) (User, bool) {
	u, ok := d.byID[id]
	return u, ok
}
