// Package query builds boolean search-engine queries from structured recruiter intent.
package query

import (
	"fmt"
	"strings"

	"github.com/jonathan/recruiter-agent/internal/types"
)

// siteAnchor restricts results to public profile pages on the directory.
const siteAnchor = "site:linkedin.com/in"

// negativeFilters suppress job ads and recruiter posts that pollute
// candidate search results on the same domain.
var negativeFilters = []string{
	`-"job"`, `-"jobs"`, `-"hiring"`, `-"vacancy"`, `-"openings"`, `-"career"`, `-"apply"`,
}

// Build assembles a boolean search query from the extracted criteria and
// returns it together with the target locations for downstream location
// matching. Every criteria field is optional; an absent field simply omits
// its clause. Build never fails.
func Build(criteria types.SearchCriteria) (string, []string) {
	tokens := []string{siteAnchor}

	if title := strings.TrimSpace(criteria.JobTitle); title != "" {
		tokens = append(tokens, fmt.Sprintf("(%s)", phrase(title)))
	}

	for _, skill := range criteria.Skills {
		if skill = strings.TrimSpace(skill); skill != "" {
			tokens = append(tokens, phrase(skill))
		}
	}

	if expTokens := experienceTokens(criteria.Experience.String()); len(expTokens) > 0 {
		tokens = append(tokens, disjunction(expTokens))
	}

	if locTokens := locationTokens(criteria.Location); len(locTokens) > 0 {
		tokens = append(tokens, disjunction(locTokens))
	}

	if pref := strings.TrimSpace(criteria.WorkPreference); pref != "" {
		tokens = append(tokens, phrase(pref))
	}

	if jobType := strings.TrimSpace(criteria.JobType); jobType != "" {
		tokens = append(tokens, phrase(jobType))
	}

	tokens = append(tokens, negativeFilters...)

	return strings.Join(tokens, " "), []string(criteria.Location)
}

// locationTokens expands each target location into exact-phrase alternatives.
// A bare city name also gets an "<City> Area" variant, which is how the
// directory labels metro regions. Duplicates are suppressed, first
// occurrence order preserved.
func locationTokens(locations types.StringList) []string {
	var tokens []string
	seen := make(map[string]bool)

	appendToken := func(token string) {
		if !seen[token] {
			seen[token] = true
			tokens = append(tokens, token)
		}
	}

	for _, loc := range locations {
		loc = strings.TrimSpace(loc)
		if loc == "" {
			continue
		}
		appendToken(phrase(loc))
		appendToken(phrase(loc + " Area"))
	}

	return tokens
}

// phrase wraps a term so the engine matches the literal phrase.
func phrase(term string) string {
	return `"` + term + `"`
}

// disjunction joins alternatives with OR in a parenthesized group. A single
// alternative needs no group.
func disjunction(tokens []string) string {
	if len(tokens) == 1 {
		return tokens[0]
	}
	return "(" + strings.Join(tokens, " OR ") + ")"
}
