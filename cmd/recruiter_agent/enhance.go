package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruiter-agent/internal/extraction"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance \"QUERY\"",
	Short: "Rewrite a rough recruiter query into a cleaner one",
	Long:  `Uses the LLM to rewrite a rough hiring query into a clearer, better structured query suitable for criteria extraction.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEnhanceCmd,
}

func init() {
	rootCmd.AddCommand(enhanceCmd)
}

func runEnhanceCmd(_ *cobra.Command, args []string) error {
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

	enhanced, err := extraction.EnhanceQuery(ctx, client, args[0])
	if err != nil {
		return fmt.Errorf("failed to enhance query: %w", err)
	}

	fmt.Println(enhanced)
	return nil
}
