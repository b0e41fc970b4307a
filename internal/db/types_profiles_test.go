package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/recruiter-agent/internal/types"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestStoredProfile_ToRecord_AppliesDefaults(t *testing.T) {
	empty := ""
	stored := StoredProfile{
		Name:     nil,
		Location: &empty,
		Email:    nil,
	}

	record := stored.ToRecord()

	assert.Equal(t, "Unknown", record.FullName)
	assert.Equal(t, "Unknown", record.AddressWithCountry)
	assert.Equal(t, "-", record.Email)
	assert.Equal(t, "-", record.LinkedinURL)
	assert.Equal(t, "-", record.Headline)
	assert.Equal(t, "", record.About)
	assert.NotNil(t, record.Skills)
	assert.Empty(t, record.Skills)
	assert.NotNil(t, record.Experiences)
	assert.Empty(t, record.Experiences)
	assert.False(t, record.IsComplete)
}

func TestStoredProfile_ToRecord_FullRow(t *testing.T) {
	createdAt := time.Now().Add(-24 * time.Hour)
	stored := StoredProfile{
		ID:          7,
		Name:        strPtr("Priya Sharma"),
		Location:    strPtr("Surat, Gujarat, India"),
		Email:       strPtr("priya@example.com"),
		LinkedinURL: strPtr("https://linkedin.com/in/priya-sharma"),
		Headline:    strPtr("Python Developer"),
		Skills:      []byte(`["Python", "Django"]`),
		About:       strPtr("Backend developer."),
		Experience:  []byte(`[{"title": "Software Engineer", "subtitle": "Acme Corp"}]`),
		IsComplete:  boolPtr(true),
		CreatedAt:   createdAt,
	}

	record := stored.ToRecord()

	assert.Equal(t, "Priya Sharma", record.FullName)
	assert.Equal(t, "Surat, Gujarat, India", record.AddressWithCountry)
	assert.Equal(t, types.SkillList{"Python", "Django"}, record.Skills)
	assert.Len(t, record.Experiences, 1)
	assert.Equal(t, "Acme Corp", record.Experiences[0].Company())
	assert.True(t, record.IsComplete)
	assert.Equal(t, createdAt, record.CreatedAt)
}

func TestStoredProfile_ToRecord_SkillObjectShape(t *testing.T) {
	stored := StoredProfile{
		Skills: []byte(`[{"title": "SQL"}, {"title": "Excel"}]`),
	}

	record := stored.ToRecord()

	assert.Equal(t, types.SkillList{"SQL", "Excel"}, record.Skills)
}

func TestStoredProfile_ToRecord_MalformedJSONIgnored(t *testing.T) {
	stored := StoredProfile{
		Skills:     []byte(`{bad`),
		Experience: []byte(`{bad`),
	}

	record := stored.ToRecord()

	assert.Empty(t, record.Skills)
	assert.Empty(t, record.Experiences)
}
