package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-agent/internal/observability"
	"github.com/jonathan/recruiter-agent/internal/pipeline"
)

var searchCmd = &cobra.Command{
	Use:   "search \"QUERY\"",
	Short: "Run the full candidate search pipeline for a recruiter query",
	Long: `Runs the entire candidate search process: criteria extraction -> query building -> web search -> profile lookup -> enrichment -> location filtering -> relevance scoring.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearchCmd,
}

var (
	searchConfigPath string
	searchPage       int
	searchJSON       bool
	searchVerbose    bool
)

func init() {
	searchCmd.Flags().StringVar(&searchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	searchCmd.Flags().IntVarP(&searchPage, "page", "p", 0, "Result page to fetch (0-based)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Print the full result as JSON")
	searchCmd.Flags().BoolVarP(&searchVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(searchCmd)
}

func runSearchCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadSettings(searchConfigPath)
	if err != nil {
		return err
	}
	if searchVerbose {
		cfg.Verbose = true
	}

	p, cleanup, err := buildPipeline(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if !searchJSON {
		p.OnProgress = func(event pipeline.ProgressEvent) {
			fmt.Printf("[%s] %s\n", event.Step, event.Message)
		}
	}

	result, err := p.Run(ctx, args[0], searchPage)
	if err != nil {
		return err
	}

	if searchJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintCriteria(result.Criteria)
		printer.PrintSearchQuery(result.SearchQuery)
		printer.PrintCandidates(result.Candidates)
		printer.PrintUnmatched(result.Unmatched)
	}

	printSearchResult(result)
	return nil
}

func printSearchResult(result *pipeline.Result) {
	fmt.Printf("\nSearch query: %s\n", result.SearchQuery)
	fmt.Printf("Page %d, %d total results\n\n", result.Page, result.TotalResults)

	if len(result.Candidates) == 0 {
		fmt.Println("No matching candidates on this page.")
		return
	}

	for i, candidate := range result.Candidates {
		fmt.Printf("%d. %s (score %d)\n", i+1, candidate.FullName, candidate.Score)
		if candidate.Headline != "" {
			fmt.Printf("   %s\n", candidate.Headline)
		}
		fmt.Printf("   %s | %s\n", candidate.AddressWithCountry, candidate.LinkedinURL)
	}

	if len(result.Unmatched) > 0 {
		fmt.Printf("\n%d profile(s) did not match the requested locations.\n", len(result.Unmatched))
	}
}
