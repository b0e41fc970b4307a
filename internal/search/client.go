// Package search provides a SerpAPI-backed Google search client used to
// discover public candidate profiles.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the SerpAPI endpoint.
const DefaultBaseURL = "https://serpapi.com/search"

// DefaultResultsPerPage is the number of organic results requested per page.
const DefaultResultsPerPage = 10

// Error represents a failure talking to the search API.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("search error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("search error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// OrganicResult is a single organic search hit.
type OrganicResult struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
}

// Results holds the parsed response for one page of search results.
type Results struct {
	OrganicResults    []OrganicResult   `json:"organic_results"`
	SearchInformation SearchInformation `json:"search_information"`
}

// SearchInformation carries result-count metadata from the engine.
type SearchInformation struct {
	TotalResults int64 `json:"total_results"`
}

// Links returns the organic result URLs in rank order.
func (r *Results) Links() []string {
	links := make([]string, 0, len(r.OrganicResults))
	for _, result := range r.OrganicResults {
		if result.Link != "" {
			links = append(links, result.Link)
		}
	}
	return links
}

// Client is a SerpAPI search client. The search is pinned to the Indian
// Google domain since the assistant only sources candidates in India.
type Client struct {
	apiKey         string
	baseURL        string
	resultsPerPage int
	httpClient     *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithResultsPerPage sets the page size requested from the engine.
func WithResultsPerPage(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.resultsPerPage = n
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient creates a search client.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, &Error{Message: "API key is required"}
	}

	client := &Client{
		apiKey:         apiKey,
		baseURL:        DefaultBaseURL,
		resultsPerPage: DefaultResultsPerPage,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Search runs one page of a Google search. start is the zero-based offset of
// the first result, so page N of a 10-per-page search passes start = N*10.
func (c *Client) Search(ctx context.Context, query string, start int) (*Results, error) {
	if query == "" {
		return nil, &Error{Message: "query is empty"}
	}
	if start < 0 {
		start = 0
	}

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("api_key", c.apiKey)
	params.Set("hl", "en")
	params.Set("gl", "in")
	params.Set("google_domain", "google.co.in")
	params.Set("location", "India")
	params.Set("num", strconv.Itoa(c.resultsPerPage))
	params.Set("start", strconv.Itoa(start))
	params.Set("safe", "active")

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &Error{Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	var results Results
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, &Error{Message: "failed to parse response", Cause: err}
	}

	return &results, nil
}
