// Package extraction turns free-form recruiter queries into structured
// search criteria using LLM extraction.
package extraction

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/recruiter-agent/internal/llm"
	"github.com/jonathan/recruiter-agent/internal/prompts"
	"github.com/jonathan/recruiter-agent/internal/schemas"
	"github.com/jonathan/recruiter-agent/internal/types"
)

// ParseRecruiterQuery extracts structured search criteria from a natural
// language hiring query. The caller owns the client lifecycle.
func ParseRecruiterQuery(ctx context.Context, client llm.Client, query string) (*types.SearchCriteria, error) {
	if client == nil {
		return nil, &ExtractorUnavailableError{Message: "no LLM client configured"}
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &ParseError{Message: "query is empty"}
	}

	prompt := buildParsePrompt(query)

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &ExtractorUnavailableError{
			Message: "failed to generate criteria from LLM",
			Cause:   err,
		}
	}

	responseText = llm.CleanJSONBlock(responseText)

	// Validate against the schema before unmarshalling so type mismatches
	// surface as field-level errors rather than decode failures.
	if err := schemas.ValidateSearchCriteria([]byte(responseText)); err != nil {
		return nil, &ParseError{
			Message: "extractor output failed schema validation",
			Cause:   err,
		}
	}

	criteria, err := parseCriteriaResponse(responseText)
	if err != nil {
		return nil, err
	}

	postProcessCriteria(criteria)

	return criteria, nil
}

// EnhanceQuery rewrites a terse recruiter query into a cleaner full-sentence
// prompt without adding new requirements.
func EnhanceQuery(ctx context.Context, client llm.Client, query string) (string, error) {
	if client == nil {
		return "", &ExtractorUnavailableError{Message: "no LLM client configured"}
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return "", &ParseError{Message: "query is empty"}
	}

	template := prompts.MustGet("extraction.json", "enhance-query")
	prompt := prompts.Format(template, map[string]string{
		"Query": query,
	})

	responseText, err := client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", &ExtractorUnavailableError{
			Message: "failed to enhance query",
			Cause:   err,
		}
	}

	enhanced := strings.TrimSpace(responseText)
	if enhanced == "" {
		return query, nil
	}
	return enhanced, nil
}

// buildParsePrompt constructs the extraction prompt
func buildParsePrompt(query string) string {
	template := prompts.MustGet("extraction.json", "parse-recruiter-query")
	return prompts.Format(template, map[string]string{
		"Query": query,
	})
}

// parseCriteriaResponse parses the JSON response into SearchCriteria
func parseCriteriaResponse(jsonText string) (*types.SearchCriteria, error) {
	var criteria types.SearchCriteria
	if err := json.Unmarshal([]byte(jsonText), &criteria); err != nil {
		return nil, &ParseError{
			Message: "failed to parse JSON response",
			Cause:   err,
		}
	}

	return &criteria, nil
}

// postProcessCriteria trims and deduplicates the extracted fields
func postProcessCriteria(criteria *types.SearchCriteria) {
	criteria.JobTitle = strings.TrimSpace(criteria.JobTitle)
	criteria.Skills = dedupeTrimmed(criteria.Skills)
	criteria.Location = types.StringList(dedupeTrimmed(criteria.Location))
	criteria.WorkPreference = strings.ToLower(strings.TrimSpace(criteria.WorkPreference))
	criteria.JobType = strings.ToLower(strings.TrimSpace(criteria.JobType))
}

// dedupeTrimmed trims entries and removes blanks and case-insensitive duplicates,
// preserving first-seen order.
func dedupeTrimmed(values []string) []string {
	if len(values) == 0 {
		return values
	}

	out := make([]string, 0, len(values))
	seen := make(map[string]bool)
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}
