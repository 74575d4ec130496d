package placeholder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fetcher defines the read operations used by the dashboard.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	GetUsers(ctx context.Context) ([]User, error)
	GetPosts(ctx context.Context) ([]Post, error)
	GetTodos(ctx context.Context) ([]Todo, error)
	GetUser(ctx context.Context, id int) (User, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to a JSONPlaceholder-compatible HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is the public JSONPlaceholder instance.
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"
	// DefaultTimeout bounds every request.
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 8 << 20
)

// Version is reported in the User-Agent header. It is set by cmd/tabula.
var Version = "dev"

// NewClient builds a Client for baseURL. A non-positive timeout uses
// DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: "tabula/" + Version,
	}, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// GetUsers retrieves every user.
func (c *Client) GetUsers(ctx context.Context) ([]User, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []User
	if err := c.do(ctx, "users", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// GetPosts retrieves every post.
func (c *Client) GetPosts(ctx context.Context) ([]Post, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Post
	if err := c.do(ctx, "posts", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// GetTodos retrieves every todo.
func (c *Client) GetTodos(ctx context.Context) ([]Todo, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Todo
	if err := c.do(ctx, "todos", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// GetUser retrieves a single user.
func (c *Client) GetUser(ctx context.Context, id int) (User, error) {
	if c == nil {
		return User{}, fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return User{}, fmt.Errorf("user id must be positive, got %d", id)
	}
	var payload User
	if err := c.do(ctx, "users/"+strconv.Itoa(id), &payload); err != nil {
		return User{}, err
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, path string, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("api /%s returned status %d", path, resp.StatusCode)
	}
	decoder := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes))
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseBaseURL normalizes the API root so relative paths resolve beneath it.
func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_base %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
