// Package placeholder provides an HTTP client for the JSONPlaceholder demo API.
//
// # Overview
//
// The package defines the read-only client used to load the dashboard's data
// and the entity types mirroring the API's JSON: [User], [Post] and [Todo].
//
// # Client Usage
//
//	client, err := placeholder.NewClient(cfg.APIBase, cfg.Timeout)
//	if err != nil {
//		return err
//	}
//
//	ds, err := placeholder.FetchAll(ctx, client)
//	if err != nil {
//		// err joins one error per failed collection
//	}
//
// # API Endpoints
//
//   - GET /users, /posts, /todos: full collections
//   - GET /users/{id}: a single user
//
// # Request Handling
//
// All requests carry Accept: application/json and User-Agent: tabula/<version>,
// are bounded by the client timeout (10 seconds unless configured) and read at
// most 8 MiB of response body. Errors are wrapped with the step that failed:
//
//   - "execute request: ..." for transport failures, including timeouts
//   - "api /posts returned status 503" for non-2xx responses
//   - "decode response: ..." for malformed JSON
//
// # Concurrent Loading
//
// [FetchAll] issues the three collection requests concurrently and joins them.
// A partial result is never returned: if any request fails the caller gets an
// empty [Dataset] and an aggregate error built with errors.Join.
//
// # Lookup
//
// [Directory] indexes users by ID so column accessors can resolve a post's
// author or a todo's assignee without scanning the users slice.
package placeholder
