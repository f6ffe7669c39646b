package clockify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public Clockify REST API root.
const DefaultBaseURL = "https://api.clockify.me/api/v1"

// timeBoundFormat is the UTC timestamp format Clockify expects on the
// start/end query parameters.
const timeBoundFormat = "2006-01-02T15:04:05.000Z"

// Client is the HTTP wrapper for the Clockify REST API. The API key is
// supplied per call so one client can serve many credentials.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new Clockify HTTP client. Clockify throttles free
// accounts at 10 requests per second per key, so outbound calls go
// through a shared limiter.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(10), 10),
	}
}

// CurrentUser resolves the identity behind the API key via GET /user.
func (c *Client) CurrentUser(ctx context.Context, apiKey string) (*User, error) {
	var user User
	if err := c.get(ctx, apiKey, "/user", &user); err != nil {
		return nil, fmt.Errorf("failed to resolve current user: %w", err)
	}
	return &user, nil
}

// Workspaces lists the workspaces visible to the API key via GET /workspaces.
func (c *Client) Workspaces(ctx context.Context, apiKey string) ([]Workspace, error) {
	var workspaces []Workspace
	if err := c.get(ctx, apiKey, "/workspaces", &workspaces); err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return workspaces, nil
}

// TimeEntries lists one page of time entries for a user in a workspace,
// bounded by the UTC start/end of the request.
func (c *Client) TimeEntries(ctx context.Context, apiKey string, req TimeEntriesRequest) ([]TimeEntry, error) {
	params := url.Values{}
	params.Set("start", req.Start.UTC().Format(timeBoundFormat))
	params.Set("end", req.End.UTC().Format(timeBoundFormat))
	params.Set("page", strconv.Itoa(req.Page))
	params.Set("page-size", strconv.Itoa(req.PageSize))

	path := fmt.Sprintf("/workspaces/%s/user/%s/time-entries?%s",
		req.WorkspaceID, req.UserID, params.Encode())

	var entries []TimeEntry
	if err := c.get(ctx, apiKey, path, &entries); err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	return entries, nil
}

// get performs an authenticated GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, apiKey, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("X-Api-Key", apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call clockify API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode clockify response: %w", err)
	}
	return nil
}
