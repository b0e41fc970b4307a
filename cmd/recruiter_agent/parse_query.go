package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-agent/internal/extraction"
)

var parseQueryCmd = &cobra.Command{
	Use:   "parse-query \"QUERY\"",
	Short: "Extract structured search criteria from a recruiter query",
	Long:  `Uses the LLM to turn a free-form hiring query into structured search criteria (job title, skills, experience, locations, work preference) without running a search.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParseQueryCmd,
}

func init() {
	rootCmd.AddCommand(parseQueryCmd)
}

func runParseQueryCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadSettings("")
	if err != nil {
		return err
	}

	client, err := newLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	criteria, err := extraction.ParseRecruiterQuery(ctx, client, args[0])
	if err != nil {
		return fmt.Errorf("failed to parse query: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(criteria)
}
