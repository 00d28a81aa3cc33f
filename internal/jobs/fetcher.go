// Package jobs proxies an external job-listings source for the
// vacancy dashboard and the /api/jobs endpoint.
package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnavailable marks a transient failure of the external source;
// callers surface it as an error payload instead of crashing the
// request.
var ErrUnavailable = errors.New("job listings unavailable")

type Listing struct {
	Title       string   `json:"title"`
	Company     string   `json:"company_name"`
	Location    string   `json:"location"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Remote      bool     `json:"remote"`
}

type listingsResponse struct {
	Data []Listing `json:"data"`
}

// Fetcher is the contract the handlers depend on.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Listing, error)
}

// Client fetches listings from a job-board REST API.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ Fetcher = (*Client)(nil)

func NewClient(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: baseURL, client: client}
}

func (c *Client) Fetch(ctx context.Context) ([]Listing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: http %d", ErrUnavailable, res.StatusCode)
	}

	var body listingsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}

	return body.Data, nil
}
