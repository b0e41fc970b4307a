package query

import (
	"regexp"
	"strings"
)

// fresherMarkers identify entry-level phrasing in the free-form experience
// string.
var fresherMarkers = []string{"fresher", "entry", "fresh"}

// rangePattern matches a leading number or number range, with an optional
// trailing plus: "2", "2-3", "5+", "10 - 12".
var rangePattern = regexp.MustCompile(`^(\d+)\s*(?:-\s*(\d+))?\s*(\+)?`)

// wordedRange rewrites "2 to 3" style ranges into the hyphenated form so a
// single pattern handles both.
var wordedRange = regexp.MustCompile(`(\d)\s*(?:to|–)\s*(\d)`)

// experienceTokens turns a free-form experience requirement into exact-phrase
// query alternatives. Fresher phrasing yields a single "Fresher" token.
// A numeric value or range yields "<N> years" style variants with duplicates
// suppressed in first-occurrence order. Anything unparseable yields nothing:
// the constraint is dropped rather than failing the query.
func experienceTokens(experience string) []string {
	experience = strings.TrimSpace(strings.ToLower(experience))
	if experience == "" {
		return nil
	}

	for _, marker := range fresherMarkers {
		if strings.Contains(experience, marker) {
			return []string{phrase("Fresher")}
		}
	}

	normalized := normalizeRange(experience)
	m := rangePattern.FindStringSubmatch(normalized)
	if m == nil {
		return nil
	}

	low, high, plus := m[1], m[2], m[3] == "+"

	var variants []string
	if high != "" {
		variants = append(variants, low+"-"+high+" years", low+" years", high+" years")
	} else {
		variants = append(variants, low+" years")
	}
	variants = append(variants, low+"+ years")
	if plus && high != "" {
		variants = append(variants, high+"+ years")
	}

	var tokens []string
	seen := make(map[string]bool)
	for _, v := range variants {
		if !seen[v] {
			seen[v] = true
			tokens = append(tokens, phrase(v))
		}
	}
	return tokens
}

// normalizeRange rewrites worded range forms into the compact "N-M" shape:
// "2 to 3" becomes "2-3". Spaced hyphens are already handled by rangePattern.
func normalizeRange(experience string) string {
	return wordedRange.ReplaceAllString(experience, "$1-$2")
}
