package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-agent/internal/query"
	"github.com/jonathan/recruiter-agent/internal/types"
)

var buildQueryCmd = &cobra.Command{
	Use:   "build-query",
	Short: "Build a boolean search query from criteria JSON",
	Long:  `Reads search criteria JSON from --criteria (or stdin) and prints the boolean search query that would be sent to the search engine. Runs fully offline.`,
	RunE:  runBuildQueryCmd,
}

var buildQueryCriteriaPath string

func init() {
	buildQueryCmd.Flags().StringVarP(&buildQueryCriteriaPath, "criteria", "c", "", "Path to criteria JSON file (defaults to stdin)")
	rootCmd.AddCommand(buildQueryCmd)
}

func runBuildQueryCmd(_ *cobra.Command, _ []string) error {
	var data []byte
	var err error

	if buildQueryCriteriaPath != "" {
		data, err = os.ReadFile(buildQueryCriteriaPath)
		if err != nil {
			return fmt.Errorf("failed to read criteria file: %w", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	var criteria types.SearchCriteria
	if err := json.Unmarshal(data, &criteria); err != nil {
		return fmt.Errorf("failed to parse criteria JSON: %w", err)
	}

	searchQuery, _ := query.Build(criteria)
	fmt.Println(searchQuery)
	return nil
}
