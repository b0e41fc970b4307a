// Package enrich turns profile URLs into full candidate records. The primary
// path is the Apify profile scraper; a direct-fetch fallback covers
// deployments without an Apify token.
package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jonathan/recruiter-agent/internal/types"
)

// DefaultBaseURL is the Apify API endpoint.
const DefaultBaseURL = "https://api.apify.com"

// DefaultActorID is the profile scraper actor.
const DefaultActorID = "2SyF0bVxmgGr8IVCZ"

// Scraping a batch of profiles routinely takes minutes.
const defaultRunTimeout = 5 * time.Minute

// Error represents a failure talking to the scraping service.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("enrich error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("enrich error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Enricher resolves profile URLs into candidate records. Results may arrive
// in any order and may omit URLs the scraper could not resolve.
type Enricher interface {
	Enrich(ctx context.Context, profileURLs []string) ([]types.ProfileRecord, error)
}

// ApifyClient runs the profile scraper actor synchronously and returns its
// dataset items.
type ApifyClient struct {
	token      string
	actorID    string
	baseURL    string
	httpClient *http.Client
}

// ApifyOption configures an ApifyClient.
type ApifyOption func(*ApifyClient)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(baseURL string) ApifyOption {
	return func(c *ApifyClient) { c.baseURL = baseURL }
}

// WithActorID selects a different scraper actor.
func WithActorID(actorID string) ApifyOption {
	return func(c *ApifyClient) {
		if actorID != "" {
			c.actorID = actorID
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ApifyOption {
	return func(c *ApifyClient) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewApifyClient creates a scraper client.
func NewApifyClient(token string, opts ...ApifyOption) (*ApifyClient, error) {
	if token == "" {
		return nil, &Error{Message: "API token is required"}
	}

	client := &ApifyClient{
		token:      token,
		actorID:    DefaultActorID,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultRunTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Enrich runs the actor on the given profile URLs and returns the scraped
// records.
func (c *ApifyClient) Enrich(ctx context.Context, profileURLs []string) ([]types.ProfileRecord, error) {
	if len(profileURLs) == 0 {
		return nil, nil
	}

	runInput := map[string][]string{
		"profileUrls": profileURLs,
	}
	payload, err := json.Marshal(runInput)
	if err != nil {
		return nil, &Error{Message: "failed to encode run input", Cause: err}
	}

	endpoint := fmt.Sprintf("%s/v2/acts/%s/run-sync-get-dataset-items?token=%s&format=json",
		c.baseURL, c.actorID, url.QueryEscape(c.token))

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, &Error{Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	var records []types.ProfileRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &Error{Message: "failed to parse dataset items", Cause: err}
	}

	return records, nil
}
