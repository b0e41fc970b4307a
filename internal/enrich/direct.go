package enrich

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/recruiter-agent/internal/fetch"
	"github.com/jonathan/recruiter-agent/internal/types"
)

// defaultConcurrency bounds parallel profile fetches.
const defaultConcurrency = 4

// DirectEnricher fetches public profile pages itself and extracts what it can
// from the HTML. It recovers fewer fields than the managed scraper, so
// records it produces usually stay incomplete, but they are still usable for
// location filtering and scoring.
type DirectEnricher struct {
	options     *fetch.Options
	useBrowser  bool
	concurrency int
	verbose     bool
}

// DirectOption configures a DirectEnricher.
type DirectOption func(*DirectEnricher)

// WithBrowserFallback enables headless-browser rendering for pages that come
// back too short over plain HTTP.
func WithBrowserFallback(enabled bool) DirectOption {
	return func(e *DirectEnricher) { e.useBrowser = enabled }
}

// WithConcurrency bounds the number of parallel fetches.
func WithConcurrency(n int) DirectOption {
	return func(e *DirectEnricher) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithVerbose enables per-URL progress logging.
func WithVerbose(verbose bool) DirectOption {
	return func(e *DirectEnricher) { e.verbose = verbose }
}

// WithFetchOptions overrides HTTP fetch options.
func WithFetchOptions(opts *fetch.Options) DirectOption {
	return func(e *DirectEnricher) {
		if opts != nil {
			e.options = opts
		}
	}
}

// NewDirectEnricher creates a direct-fetch enricher.
func NewDirectEnricher(opts ...DirectOption) *DirectEnricher {
	enricher := &DirectEnricher{
		options:     fetch.DefaultOptions(),
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(enricher)
	}
	return enricher
}

// Enrich fetches the given profile pages concurrently. URLs that fail to
// fetch or parse are skipped rather than failing the batch.
func (e *DirectEnricher) Enrich(ctx context.Context, profileURLs []string) ([]types.ProfileRecord, error) {
	if len(profileURLs) == 0 {
		return nil, nil
	}

	var mu sync.Mutex
	var records []types.ProfileRecord

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.concurrency)

	for _, profileURL := range profileURLs {
		group.Go(func() error {
			record, err := e.fetchProfile(groupCtx, profileURL)
			if err != nil {
				if e.verbose {
					log.Printf("[ENRICH] Skipping %s: %v", profileURL, err)
				}
				return nil
			}
			mu.Lock()
			records = append(records, *record)
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func (e *DirectEnricher) fetchProfile(ctx context.Context, profileURL string) (*types.ProfileRecord, error) {
	result, err := fetch.URL(ctx, profileURL, e.options)
	if err != nil {
		return nil, err
	}

	html := result.HTML
	text, err := fetch.ExtractMainText(html, fetch.ProfilePageSelectors(), fetch.ProfileNoiseSelectors()...)
	if err != nil {
		return nil, err
	}

	if e.useBrowser && fetch.ShouldUseBrowser(text) {
		rendered, err := fetch.BrowserSimple(ctx, profileURL, e.verbose)
		if err == nil {
			html = rendered
		}
	}

	record, err := parseProfileHTML(html)
	if err != nil {
		return nil, err
	}
	record.LinkedinURL = profileURL
	return record, nil
}

// parseProfileHTML pulls the top-card fields out of a public profile page.
func parseProfileHTML(html string) (*types.ProfileRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &Error{Message: "failed to parse profile HTML", Cause: err}
	}

	record := &types.ProfileRecord{
		FullName:           firstText(doc, "h1.top-card-layout__title", "main h1", "h1"),
		Headline:           firstText(doc, "h2.top-card-layout__headline", ".top-card-layout__headline", ".top-card__headline"),
		AddressWithCountry: firstText(doc, ".top-card__subline-item", ".top-card-layout__first-subline .not-first-middot span", ".profile-info-subheader span"),
		About:              firstText(doc, ".core-section-container.summary p", "[data-section='summary'] p", ".summary p"),
	}

	if pic, ok := doc.Find(".top-card-layout__entity-image, .top-card__profile-image, main img.profile-photo").First().Attr("src"); ok {
		record.ProfilePic = pic
	}

	doc.Find("[data-section='skills'] li, .skills-section li").Each(func(_ int, s *goquery.Selection) {
		skill := strings.TrimSpace(s.Text())
		if skill != "" {
			record.Skills = append(record.Skills, skill)
		}
	})

	doc.Find("[data-section='experience'] li, .experience-section li").Each(func(_ int, s *goquery.Selection) {
		title := strings.TrimSpace(s.Find("h3").First().Text())
		company := strings.TrimSpace(s.Find("h4").First().Text())
		if title == "" && company == "" {
			return
		}
		record.Experiences = append(record.Experiences, types.ExperienceEntry{
			Title:    title,
			Subtitle: company,
		})
	})

	return record, nil
}

// firstText returns the trimmed text of the first selector that matches.
func firstText(doc *goquery.Document, selectors ...string) string {
	for _, selector := range selectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			if text := strings.TrimSpace(selection.First().Text()); text != "" {
				return text
			}
		}
	}
	return ""
}
