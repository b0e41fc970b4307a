package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillList_ObjectShape(t *testing.T) {
	raw := `[{"title": "Python"}, {"title": "Django"}, {"title": ""}]`

	var s SkillList
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.Equal(t, SkillList{"Python", "Django"}, s)
}

func TestSkillList_FlatStringShape(t *testing.T) {
	raw := `["Python", "SQL"]`

	var s SkillList
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.Equal(t, SkillList{"Python", "SQL"}, s)
}

func TestSkillList_MixedShape(t *testing.T) {
	raw := `["Python", {"title": "Django"}, 42]`

	var s SkillList
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	// Unrecognized entries are skipped, not fatal.
	assert.Equal(t, SkillList{"Python", "Django"}, s)
}

func TestProfileRecord_UnmarshalScraperOutput(t *testing.T) {
	raw := `{
		"fullName": "Dhruv Patel",
		"addressWithCountry": "Surat, Gujarat, India",
		"linkedinUrl": "https://linkedin.com/in/dhruv-patel",
		"headline": "Python Developer",
		"skills": [{"title": "Python"}],
		"experiences": [
			{"title": "Developer", "subtitle": "Acme", "caption": "Jan 2022 - Present",
			 "description": [{"text": "Built internal tools"}]}
		]
	}`

	var p ProfileRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, "Dhruv Patel", p.FullName)
	assert.Equal(t, SkillList{"Python"}, p.Skills)
	require.Len(t, p.Experiences, 1)
	assert.Equal(t, "Acme", p.Experiences[0].Company())
}

func TestExperienceEntry_CompanyFallsBackToMetadata(t *testing.T) {
	e := ExperienceEntry{Metadata: "Digital Studio"}
	assert.Equal(t, "Digital Studio", e.Company())

	e.Subtitle = "Creative Media"
	assert.Equal(t, "Creative Media", e.Company())
}
