package placeholder

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// FetchAll requests users, posts and todos concurrently and waits for all
// three. The dataset is returned only when every request succeeded; otherwise
// the error joins one wrapped error per failed collection.
func FetchAll(ctx context.Context, f Fetcher) (Dataset, error) {
	if f == nil {
		return Dataset{}, fmt.Errorf("fetcher is nil")
	}

	var wg sync.WaitGroup
	var ds Dataset
	var usersErr, postsErr, todosErr error
	wg.Add(3)
	go func() {
		defer wg.Done()
		ds.Users, usersErr = f.GetUsers(ctx)
	}()
	go func() {
		defer wg.Done()
		ds.Posts, postsErr = f.GetPosts(ctx)
	}()
	go func() {
		defer wg.Done()
		ds.Todos, todosErr = f.GetTodos(ctx)
	}()
	wg.Wait()

	var errs []error
	if usersErr != nil {
		errs = append(errs, fmt.Errorf("fetch users: %w", usersErr))
	}
	if postsErr != nil {
		errs = append(errs, fmt.Errorf("fetch posts: %w", postsErr))
	}
	if todosErr != nil {
		errs = append(errs, fmt.Errorf("fetch todos: %w", todosErr))
	}
	if err := errors.Join(errs...); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}
