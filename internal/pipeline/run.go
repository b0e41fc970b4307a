// Package pipeline provides the high-level orchestration for a candidate
// search: extract criteria, build the boolean query, search, reuse stored
// profiles, scrape the rest, then filter and score.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/recruiter-agent/internal/db"
	"github.com/jonathan/recruiter-agent/internal/enrich"
	"github.com/jonathan/recruiter-agent/internal/extraction"
	"github.com/jonathan/recruiter-agent/internal/llm"
	"github.com/jonathan/recruiter-agent/internal/matching"
	"github.com/jonathan/recruiter-agent/internal/profilecache"
	"github.com/jonathan/recruiter-agent/internal/query"
	"github.com/jonathan/recruiter-agent/internal/scoring"
	"github.com/jonathan/recruiter-agent/internal/search"
	"github.com/jonathan/recruiter-agent/internal/types"
)

// UnsupportedRegionError indicates the query targets candidates outside the
// supported country. Sourcing only covers India, so the pipeline refuses
// rather than returning silently wrong results.
type UnsupportedRegionError struct {
	Query string
}

func (e *UnsupportedRegionError) Error() string {
	return "only candidate searches within India are supported"
}

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Searcher is the search client contract the pipeline needs.
type Searcher interface {
	Search(ctx context.Context, query string, start int) (*search.Results, error)
}

// Pipeline holds the collaborators for running candidate searches. The
// caller constructs and owns every client; nil optional fields degrade
// gracefully (no store means every hit is scraped fresh, no session cache
// means every page is recomputed).
type Pipeline struct {
	LLM      llm.Client
	Searcher Searcher
	Enricher enrich.Enricher

	Store    *db.DB              // optional
	Cache    *profilecache.Cache // optional, requires Store
	Sessions *SessionCache       // optional

	ResultsPerPage int
	Verbose        bool
	OnProgress     ProgressCallback
}

// Result is the outcome of one page of a candidate search.
type Result struct {
	Query        string                `json:"query"`
	SearchQuery  string                `json:"search_query"`
	Criteria     *types.SearchCriteria `json:"criteria"`
	Candidates   []types.MatchResult   `json:"candidates"`
	Unmatched    []types.ProfileRecord `json:"unmatched,omitempty"`
	Page         int                   `json:"page"`
	TotalResults int64                 `json:"total_results"`
	FromCache    bool                  `json:"from_cache,omitempty"`
}

// emitProgress calls the progress callback if configured
func (p *Pipeline) emitProgress(step, message string, content any) {
	if p.OnProgress != nil {
		p.OnProgress(ProgressEvent{Step: step, Message: message, Content: content})
	}
}

func (p *Pipeline) verbosef(format string, args ...any) {
	if p.Verbose {
		log.Printf("[VERBOSE] "+format, args...)
	}
}

// Run executes one page of a candidate search for a natural language query.
// page is zero-based.
func (p *Pipeline) Run(ctx context.Context, recruiterQuery string, page int) (*Result, error) {
	if page < 0 {
		page = 0
	}

	// Serve repeated page requests from the session cache
	if p.Sessions != nil {
		if cached, err := p.Sessions.Get(ctx, recruiterQuery, page); err == nil && cached != nil {
			p.verbosef("Serving page %d from session cache", page)
			cached.FromCache = true
			return cached, nil
		}
	}

	// Step 1: extract structured criteria
	p.emitProgress("extract", "Extracting search criteria", nil)
	criteria, err := extraction.ParseRecruiterQuery(ctx, p.LLM, recruiterQuery)
	if err != nil {
		return nil, fmt.Errorf("criteria extraction failed: %w", err)
	}
	p.verbosef("Extracted criteria: title=%q skills=%v location=%v", criteria.JobTitle, criteria.Skills, criteria.Location)

	// Step 2: region gate
	if !criteria.SupportsIndia() {
		return nil, &UnsupportedRegionError{Query: recruiterQuery}
	}

	// Audit trail; failures here never block the search
	if p.Store != nil {
		if _, err := p.Store.InsertPromptLog(ctx, recruiterQuery, criteria); err != nil {
			log.Printf("Warning: failed to log prompt: %v", err)
		}
	}

	// Step 3: build the boolean search query
	searchQuery, targets := query.Build(*criteria)
	p.emitProgress("query", "Built search query", searchQuery)
	p.verbosef("Search query: %s", searchQuery)

	// Step 4: one page of search results
	perPage := p.ResultsPerPage
	if perPage <= 0 {
		perPage = search.DefaultResultsPerPage
	}
	results, err := p.Searcher.Search(ctx, searchQuery, page*perPage)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	links := results.Links()
	p.emitProgress("search", fmt.Sprintf("Found %d results", len(links)), nil)

	// Step 5: split into stored profiles and URLs needing a scrape
	var profiles []types.ProfileRecord
	var missing []string
	if p.Cache != nil {
		profiles, missing, err = p.Cache.Lookup(ctx, links)
		if err != nil {
			return nil, fmt.Errorf("profile lookup failed: %w", err)
		}
	} else {
		missing = profilecache.ExtractProfileURLs(links)
	}
	p.verbosef("Store hits: %d, to scrape: %d", len(profiles), len(missing))

	// Step 6: scrape the misses
	if len(missing) > 0 && p.Enricher != nil {
		p.emitProgress("enrich", fmt.Sprintf("Scraping %d profiles", len(missing)), nil)
		scraped, err := p.Enricher.Enrich(ctx, missing)
		if err != nil {
			// Stored profiles can still produce a useful page
			log.Printf("Warning: profile scraping failed: %v", err)
		} else {
			p.persistScraped(ctx, scraped)
			profiles = append(profiles, scraped...)
		}
	}

	// Step 7: location filter
	matched, unmatched := matching.Partition(targets, profiles)
	p.emitProgress("filter", fmt.Sprintf("%d of %d profiles matched location", len(matched), len(profiles)), nil)

	// Step 8: relevance scoring
	scored := scoring.Score(*criteria, matched)
	p.emitProgress("score", fmt.Sprintf("Scored %d candidates", len(scored)), nil)

	result := &Result{
		Query:        recruiterQuery,
		SearchQuery:  searchQuery,
		Criteria:     criteria,
		Candidates:   scored,
		Unmatched:    unmatched,
		Page:         page,
		TotalResults: results.SearchInformation.TotalResults,
	}

	if p.Sessions != nil {
		if err := p.Sessions.Put(ctx, recruiterQuery, page, result); err != nil {
			log.Printf("Warning: failed to cache search session: %v", err)
		}
	}

	return result, nil
}

// persistScraped stores scraped records that pass the completeness gate.
func (p *Pipeline) persistScraped(ctx context.Context, records []types.ProfileRecord) {
	if p.Store == nil || p.Cache == nil {
		return
	}

	for i := range records {
		verdict, err := p.Cache.CheckCompleteness(ctx, &records[i])
		if err != nil {
			log.Printf("Warning: completeness check failed for %s: %v", records[i].LinkedinURL, err)
			continue
		}
		if !verdict.ShouldStore {
			p.verbosef("Not storing %s: %s", records[i].LinkedinURL, verdict.Message)
			continue
		}
		records[i].IsComplete = verdict.IsComplete
		if err := p.Store.InsertProfile(ctx, records[i], verdict.IsComplete); err != nil {
			log.Printf("Warning: failed to store profile %s: %v", records[i].LinkedinURL, err)
		}
	}
}

// RefreshStale re-scrapes profiles whose stored rows have aged out of the
// freshness window. Used by the background scheduler.
func (p *Pipeline) RefreshStale(ctx context.Context, window time.Duration, limit int) (int, error) {
	if p.Store == nil || p.Enricher == nil {
		return 0, nil
	}

	urls, err := p.Store.StaleProfileURLs(ctx, window, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale profiles: %w", err)
	}
	if len(urls) == 0 {
		return 0, nil
	}

	records, err := p.Enricher.Enrich(ctx, urls)
	if err != nil {
		return 0, fmt.Errorf("failed to re-scrape stale profiles: %w", err)
	}

	stored := 0
	for i := range records {
		if records[i].FullName == "" || records[i].AddressWithCountry == "" || records[i].LinkedinURL == "" {
			continue
		}
		isComplete := records[i].Headline != "" && len(records[i].Skills) > 0 && len(records[i].Experiences) > 0
		if err := p.Store.InsertProfile(ctx, records[i], isComplete); err != nil {
			log.Printf("Warning: failed to refresh profile %s: %v", records[i].LinkedinURL, err)
			continue
		}
		stored++
	}
	return stored, nil
}
