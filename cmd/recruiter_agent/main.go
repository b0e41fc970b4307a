// Package main provides the entry point for the recruiter assistant CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "recruiter_agent",
	Short: "Recruiter candidate search assistant",
	Long:  "Recruiter assistant that turns free-form hiring queries into structured candidate searches: criteria extraction, boolean query building, web search, profile enrichment and relevance scoring.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
