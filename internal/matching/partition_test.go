package matching

import (
	"testing"

	"github.com/jonathan/recruiter-agent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileAt(name, address string) types.ProfileRecord {
	return types.ProfileRecord{FullName: name, AddressWithCountry: address}
}

func TestPartition_Example(t *testing.T) {
	profiles := []types.ProfileRecord{
		profileAt("a", "Surat, Gujarat, India"),
		profileAt("b", "Mumbai, India"),
		profileAt("c", ""),
	}

	matched, unmatched := Partition([]string{"Surat"}, profiles)

	require.Len(t, matched, 1)
	assert.Equal(t, "a", matched[0].FullName)
	require.Len(t, unmatched, 2)
	assert.Equal(t, "b", unmatched[0].FullName)
	assert.Equal(t, "c", unmatched[1].FullName)
}

func TestPartition_Conservation(t *testing.T) {
	profiles := []types.ProfileRecord{
		profileAt("a", "Surat, Gujarat, India"),
		profileAt("b", "Pune, Maharashtra, India"),
		profileAt("c", "Berlin, Germany"),
		profileAt("d", ""),
		profileAt("e", "Surat, India"),
	}

	matched, unmatched := Partition([]string{"surat", "Pune"}, profiles)

	assert.Equal(t, len(profiles), len(matched)+len(unmatched))

	seen := make(map[string]int)
	for _, p := range matched {
		seen[p.FullName]++
	}
	for _, p := range unmatched {
		seen[p.FullName]++
	}
	for _, p := range profiles {
		assert.Equal(t, 1, seen[p.FullName], "profile %s must appear exactly once", p.FullName)
	}
}

func TestPartition_CountryGate(t *testing.T) {
	// Same city name abroad must not match, regardless of target overlap.
	profiles := []types.ProfileRecord{
		profileAt("abroad", "Surat, Suriname"),
	}

	matched, unmatched := Partition([]string{"Surat"}, profiles)

	assert.Empty(t, matched)
	assert.Len(t, unmatched, 1)
}

func TestPartition_DefaultsToIndia(t *testing.T) {
	profiles := []types.ProfileRecord{
		profileAt("in", "Ahmedabad, Gujarat, India"),
		profileAt("out", "London, United Kingdom"),
	}

	matched, unmatched := Partition(nil, profiles)

	// With no targets, any part equal to "india" matches.
	require.Len(t, matched, 1)
	assert.Equal(t, "in", matched[0].FullName)
	assert.Len(t, unmatched, 1)
}

func TestPartition_ExactPartEqualityNotSubstring(t *testing.T) {
	profiles := []types.ProfileRecord{
		profileAt("greater", "Greater Surat, Gujarat, India"),
	}

	matched, unmatched := Partition([]string{"Surat"}, profiles)

	assert.Empty(t, matched, "substring overlap must not count as a match")
	assert.Len(t, unmatched, 1)
}

func TestPartition_CaseAndWhitespaceNormalized(t *testing.T) {
	profiles := []types.ProfileRecord{
		profileAt("p", "  SURAT ,  Gujarat ,  INDIA "),
	}

	matched, _ := Partition([]string{" surat "}, profiles)

	assert.Len(t, matched, 1)
}

func TestPartition_EmptyInput(t *testing.T) {
	matched, unmatched := Partition([]string{"Surat"}, nil)

	assert.Empty(t, matched)
	assert.Empty(t, unmatched)
}
