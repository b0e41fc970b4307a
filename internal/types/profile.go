package types

import (
	"encoding/json"
	"strings"
	"time"
)

// ProfileRecord is a candidate's public profile as returned by the scraping
// service or reconstructed from the store. LinkedinURL is the natural key:
// two records with the same URL are the same candidate.
type ProfileRecord struct {
	FullName           string            `json:"fullName,omitempty"`
	AddressWithCountry string            `json:"addressWithCountry,omitempty"`
	Email              string            `json:"email,omitempty"`
	LinkedinURL        string            `json:"linkedinUrl,omitempty"`
	Headline           string            `json:"headline,omitempty"`
	Skills             SkillList         `json:"skills,omitempty"`
	About              string            `json:"about,omitempty"`
	Experiences        []ExperienceEntry `json:"experiences,omitempty"`
	ProfilePic         string            `json:"profilePic,omitempty"`
	IsComplete         bool              `json:"is_complete,omitempty"`
	CreatedAt          time.Time         `json:"created_at,omitzero"`
}

// ExperienceEntry is a single work-history entry on a profile.
type ExperienceEntry struct {
	Title       string            `json:"title,omitempty"`
	Subtitle    string            `json:"subtitle,omitempty"`
	Metadata    string            `json:"metadata,omitempty"`
	Caption     string            `json:"caption,omitempty"`
	Description []DescriptionItem `json:"description,omitempty"`
}

// DescriptionItem is one free-text block inside a work-history entry.
type DescriptionItem struct {
	Text string `json:"text,omitempty"`
}

// Company returns the employer for an experience entry. The scraper puts it
// in subtitle or, for older profile layouts, in metadata.
func (e *ExperienceEntry) Company() string {
	if e.Subtitle != "" {
		return e.Subtitle
	}
	return e.Metadata
}

// SkillList is the canonical skill shape: a flat list of skill titles.
// Depending on provenance the raw JSON is either a list of {"title": ...}
// objects (scraper output) or a flat list of strings (store rows), so the
// union is normalized here, at the ingestion boundary.
type SkillList []string

// UnmarshalJSON accepts ["Go", ...], [{"title": "Go"}, ...], and null.
// Entries that are neither a string nor an object with a title are skipped.
func (s *SkillList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = nil
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	titles := make([]string, 0, len(raw))
	for _, item := range raw {
		var title string
		if err := json.Unmarshal(item, &title); err == nil {
			if title != "" {
				titles = append(titles, title)
			}
			continue
		}

		var obj struct {
			Title string `json:"title"`
		}
		if err := json.Unmarshal(item, &obj); err == nil && obj.Title != "" {
			titles = append(titles, obj.Title)
		}
	}

	*s = SkillList(titles)
	return nil
}

// MatchResult is a ProfileRecord annotated with its relevance score against
// a query. Derived per search, never persisted; the underlying record is not
// mutated.
type MatchResult struct {
	ProfileRecord
	Score          int            `json:"score"`
	ScoreBreakdown map[string]int `json:"score_breakdown"`
}
