package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jonathan/recruiter-agent/internal/config"
	"github.com/jonathan/recruiter-agent/internal/db"
	"github.com/jonathan/recruiter-agent/internal/enrich"
	"github.com/jonathan/recruiter-agent/internal/fetch"
	"github.com/jonathan/recruiter-agent/internal/llm"
	"github.com/jonathan/recruiter-agent/internal/pipeline"
	"github.com/jonathan/recruiter-agent/internal/profilecache"
	"github.com/jonathan/recruiter-agent/internal/search"
)

// loadSettings merges a config file (if given), environment variables and
// defaults. CLI flags are applied by each command on top of the result.
func loadSettings(configPath string) (config.Config, error) {
	cfg := config.FromEnv()

	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = loaded.MergeWithDefaults(cfg)
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		ResultsPerPage: 10,
		FreshnessDays:  30,
		Port:           "8080",
	})
	return cfg, nil
}

// newLLMClient creates the Gemini client used for extraction and enhancement.
func newLLMClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	apiKey := cfg.GeminiAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	return llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
}

// newEnricher picks the Apify scraper when a token is configured and falls
// back to direct scraping otherwise.
func newEnricher(cfg config.Config) (enrich.Enricher, error) {
	if cfg.ApifyToken != "" {
		opts := []enrich.ApifyOption{}
		if cfg.ApifyActorID != "" {
			opts = append(opts, enrich.WithActorID(cfg.ApifyActorID))
		}
		return enrich.NewApifyClient(cfg.ApifyToken, opts...)
	}

	log.Println("[WIRING] No Apify token configured, using direct scraping")
	return enrich.NewDirectEnricher(
		enrich.WithBrowserFallback(cfg.UseBrowser),
		enrich.WithVerbose(cfg.Verbose),
		enrich.WithFetchOptions(fetch.DefaultOptions()),
	), nil
}

// buildPipeline wires the full candidate search pipeline from configuration.
// The returned cleanup function closes every opened resource.
func buildPipeline(ctx context.Context, cfg config.Config) (*pipeline.Pipeline, func(), error) {
	cleanups := []func(){}
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	llmClient, err := newLLMClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanups = append(cleanups, func() { _ = llmClient.Close() })

	if cfg.SerpAPIKey == "" {
		cleanup()
		return nil, nil, fmt.Errorf("SERP_API_KEY environment variable is required")
	}
	searcher, err := search.NewClient(cfg.SerpAPIKey, search.WithResultsPerPage(cfg.ResultsPerPage))
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	enricher, err := newEnricher(cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	p := &pipeline.Pipeline{
		LLM:            llmClient,
		Searcher:       searcher,
		Enricher:       enricher,
		ResultsPerPage: cfg.ResultsPerPage,
		Verbose:        cfg.Verbose,
	}

	window := time.Duration(cfg.FreshnessDays) * 24 * time.Hour

	if cfg.DatabaseURL != "" {
		store, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		cleanups = append(cleanups, store.Close)

		if err := store.EnsureSchema(ctx); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to ensure schema: %w", err)
		}

		p.Store = store
		p.Cache = profilecache.New(store, window)
	} else {
		log.Println("[WIRING] No DATABASE_URL configured, profile caching disabled")
	}

	if cfg.RedisURL != "" {
		rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		cleanups = append(cleanups, func() { _ = rdb.Close() })
		p.Sessions = pipeline.NewSessionCache(rdb, pipeline.DefaultSessionTTL)
	}

	return p, cleanup, nil
}
