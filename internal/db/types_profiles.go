package db

import (
	"encoding/json"
	"time"

	"github.com/jonathan/recruiter-agent/internal/types"
)

// DefaultFreshnessWindow is how long a stored profile is considered current.
// Older rows are treated as misses and re-scraped.
const DefaultFreshnessWindow = 30 * 24 * time.Hour

// StoredProfile is a row from the profiles table. Nullable columns map to
// pointers; ToRecord applies the display defaults.
type StoredProfile struct {
	ID          int64
	Name        *string
	Location    *string
	Email       *string
	LinkedinURL *string
	Headline    *string
	Skills      []byte
	About       *string
	Experience  []byte
	ProfilePic  *string
	IsComplete  *bool
	CreatedAt   time.Time
}

// ToRecord converts a stored row into a ProfileRecord, substituting defaults
// for missing values so downstream rendering never sees empty rows.
func (p *StoredProfile) ToRecord() types.ProfileRecord {
	record := types.ProfileRecord{
		FullName:           stringOr(p.Name, "Unknown"),
		AddressWithCountry: stringOr(p.Location, "Unknown"),
		Email:              stringOr(p.Email, "-"),
		LinkedinURL:        stringOr(p.LinkedinURL, "-"),
		Headline:           stringOr(p.Headline, "-"),
		About:              stringOr(p.About, ""),
		ProfilePic:         stringOr(p.ProfilePic, ""),
		CreatedAt:          p.CreatedAt,
	}

	if p.IsComplete != nil {
		record.IsComplete = *p.IsComplete
	}

	if len(p.Skills) > 0 {
		// Tolerates both the flat-string and {"title": ...} shapes
		_ = json.Unmarshal(p.Skills, &record.Skills)
	}
	if record.Skills == nil {
		record.Skills = types.SkillList{}
	}

	if len(p.Experience) > 0 {
		_ = json.Unmarshal(p.Experience, &record.Experiences)
	}
	if record.Experiences == nil {
		record.Experiences = []types.ExperienceEntry{}
	}

	return record
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
