// Package profilecache decides which search hits can be served from the
// profile store and which need a fresh scrape.
package profilecache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/recruiter-agent/internal/db"
	"github.com/jonathan/recruiter-agent/internal/types"
)

// Store is the subset of the profile store the cache needs.
type Store interface {
	FreshProfiles(ctx context.Context, linkedinURLs []string, window time.Duration) ([]types.ProfileRecord, error)
	ProfileExists(ctx context.Context, linkedinURL string) (bool, error)
}

// Cache looks up stored profiles for search hits within a freshness window.
type Cache struct {
	store  Store
	window time.Duration
}

// New creates a cache over the given store. A zero window uses the default.
func New(store Store, window time.Duration) *Cache {
	if window <= 0 {
		window = db.DefaultFreshnessWindow
	}
	return &Cache{store: store, window: window}
}

// ExtractProfileURLs filters search result links down to profile URLs and
// canonicalizes them. Regional hosts are folded into the canonical host so a
// profile discovered via in.linkedin.com matches its stored row. Order is
// preserved and duplicates are removed.
func ExtractProfileURLs(links []string) []string {
	urls := make([]string, 0, len(links))
	seen := make(map[string]bool)
	for _, link := range links {
		if !strings.Contains(link, "linkedin.com/in/") {
			continue
		}
		canonical := strings.Replace(link, "in.linkedin.com", "linkedin.com", 1)
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		urls = append(urls, canonical)
	}
	return urls
}

// Lookup splits search result links into profiles served from the store and
// URLs that need scraping. Cached records keep store order; misses keep
// search-rank order.
func (c *Cache) Lookup(ctx context.Context, links []string) (cached []types.ProfileRecord, missing []string, err error) {
	urls := ExtractProfileURLs(links)
	if len(urls) == 0 {
		return nil, nil, nil
	}

	cached, err = c.store.FreshProfiles(ctx, urls, c.window)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up cached profiles: %w", err)
	}

	found := make(map[string]bool, len(cached))
	for _, record := range cached {
		found[record.LinkedinURL] = true
	}

	for _, url := range urls {
		if !found[url] {
			missing = append(missing, url)
		}
	}
	return cached, missing, nil
}

// CompletenessResult is the verdict on a scraped profile before persistence.
type CompletenessResult struct {
	// ShouldStore is false for duplicates and records missing required fields.
	ShouldStore bool
	// IsComplete is true when every optional field is populated too.
	IsComplete bool
	Message    string
}

// CheckCompleteness validates a scraped record against the store. Name,
// location and URL are required; headline, skills and experience only affect
// the completeness flag. A record whose URL is already stored is rejected as
// a duplicate before any field check, so a duplicate always reports as a
// duplicate.
func (c *Cache) CheckCompleteness(ctx context.Context, record *types.ProfileRecord) (*CompletenessResult, error) {
	if record.LinkedinURL != "" {
		exists, err := c.store.ProfileExists(ctx, record.LinkedinURL)
		if err != nil {
			return nil, fmt.Errorf("failed to check for duplicate profile: %w", err)
		}
		if exists {
			return &CompletenessResult{
				ShouldStore: false,
				IsComplete:  false,
				Message:     "this data is duplicate",
			}, nil
		}
	}

	if record.FullName == "" || record.AddressWithCountry == "" || record.LinkedinURL == "" {
		return &CompletenessResult{
			ShouldStore: false,
			IsComplete:  false,
			Message:     "missing required fields",
		}, nil
	}

	if record.Headline == "" || len(record.Skills) == 0 || len(record.Experiences) == 0 {
		return &CompletenessResult{
			ShouldStore: true,
			IsComplete:  false,
			Message:     "some optional fields missing",
		}, nil
	}

	return &CompletenessResult{
		ShouldStore: true,
		IsComplete:  true,
		Message:     "this data is complete",
	}, nil
}
