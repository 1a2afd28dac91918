package adminclient

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

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
}

type Group struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
}

// Params are the list parameters sent to a list endpoint. Zero values
// are omitted and left to the server defaults.
type Params struct {
	Page   int
	Limit  int
	Column string
	Sort   string
	Search string
}

func (p Params) Values() url.Values {
	values := url.Values{}
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Column != "" {
		values.Set("column", p.Column)
	}
	if p.Sort != "" {
		values.Set("sort", p.Sort)
	}
	if p.Search != "" {
		values.Set("search", p.Search)
	}
	return values
}

// NetworkError is returned when a request fails before a response is
// received.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("admin API error: status %d: %s", e.StatusCode, e.Message)
}

// Client talks to the JSON API of the admin console.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the API mounted at baseURL, e.g.
// "http://localhost:8080/api". A nil httpClient uses a default with a
// 30 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) ListUsers(ctx context.Context, params Params) (*ListResult[User], error) {
	var result ListResult[User]
	if err := c.get(ctx, "/users", params.Values(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListGroups(ctx context.Context, params Params) (*ListResult[Group], error) {
	var result ListResult[Group]
	if err := c.get(ctx, "/groups", params.Values(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var user User
	if err := c.get(ctx, "/users/"+url.PathEscape(id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetGroup(ctx context.Context, id string) (*Group, error) {
	var group Group
	if err := c.get(ctx, "/groups/"+url.PathEscape(id), nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// UserLister returns a lister over ListUsers that drops stale pages.
func (c *Client) UserLister() *LatestLister[User] {
	return NewLatestLister(c.ListUsers)
}

// GroupLister returns a lister over ListGroups that drops stale pages.
func (c *Client) GroupLister() *LatestLister[Group] {
	return NewLatestLister(c.ListGroups)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Method: req.Method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Method: req.Method, URL: target, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errorResp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errorResp.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
