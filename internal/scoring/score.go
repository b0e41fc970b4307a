// Package scoring ranks location-matched candidate profiles by keyword
// relevance to the extracted search criteria.
package scoring

import (
	"sort"
	"strings"

	"github.com/jonathan/recruiter-agent/internal/types"
)

// Weights for scoring components. The values are tuned against recruiter
// feedback on the production corpus; changing them changes result ordering.
const (
	headlineOccurrenceWeight = 15
	aboutOccurrenceWeight    = 10
	skillMatchWeight         = 10
	maxScore                 = 100
)

// Breakdown category names kept stable for API consumers.
const (
	categoryHeadline = "headline_match"
	categoryAbout    = "about_match"
	categorySkills   = "skills_match"
)

// Score computes a relevance score for each matched profile and returns the
// results sorted by score, highest first. The sort is stable: equal scores
// keep their input order. Input records are wrapped, not mutated.
//
// Scoring counts keyword occurrences rather than boolean presence, so a
// profile that repeats the target role scores higher. That rewards emphasis
// at the cost of being gameable by keyword stuffing; the tradeoff is
// deliberate.
func Score(criteria types.SearchCriteria, matched []types.ProfileRecord) []types.MatchResult {
	keywords := titleKeywords(criteria.JobTitle)
	requiredSkills := lowerAll(criteria.Skills)

	results := make([]types.MatchResult, 0, len(matched))
	for _, profile := range matched {
		headline := occurrenceScore(profile.Headline, keywords, headlineOccurrenceWeight)
		about := occurrenceScore(profile.About, keywords, aboutOccurrenceWeight)
		skills := skillScore(profile.Skills, requiredSkills)

		total := headline + about + skills
		if total > maxScore {
			total = maxScore
		}

		results = append(results, types.MatchResult{
			ProfileRecord: profile,
			Score:         total,
			ScoreBreakdown: map[string]int{
				categoryHeadline: headline,
				categoryAbout:    about,
				categorySkills:   skills,
			},
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// titleKeywords tokenizes the job title into lowercase whitespace-separated
// keywords.
func titleKeywords(jobTitle string) []string {
	return strings.Fields(strings.ToLower(jobTitle))
}

// occurrenceScore sums substring occurrence counts of each keyword in the
// text, weighted per occurrence. Missing text contributes zero.
func occurrenceScore(text string, keywords []string, weight int) int {
	if text == "" || len(keywords) == 0 {
		return 0
	}

	lowered := strings.ToLower(text)
	score := 0
	for _, keyword := range keywords {
		score += strings.Count(lowered, keyword) * weight
	}
	return score
}

// skillScore counts exact case-insensitive matches of each required skill
// against the profile's skill titles.
func skillScore(profileSkills types.SkillList, requiredSkills []string) int {
	if len(profileSkills) == 0 || len(requiredSkills) == 0 {
		return 0
	}

	counts := make(map[string]int, len(profileSkills))
	for _, skill := range profileSkills {
		counts[strings.ToLower(skill)]++
	}

	score := 0
	for _, required := range requiredSkills {
		score += counts[required] * skillMatchWeight
	}
	return score
}

func lowerAll(values []string) []string {
	lowered := make([]string, 0, len(values))
	for _, v := range values {
		lowered = append(lowered, strings.ToLower(v))
	}
	return lowered
}
