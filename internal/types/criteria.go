// Package types provides type definitions for structured data used throughout the recruiter-agent system.
package types

import (
	"encoding/json"
	"strconv"
	"strings"
)

// SearchCriteria is the structured recruiter intent extracted from a natural
// language hiring query. All fields are optional; an absent field means the
// search is not constrained on that dimension. Values are opaque strings
// produced by the upstream extractor and are never mutated downstream.
type SearchCriteria struct {
	JobTitle       string     `json:"job_title,omitempty"`
	Skills         []string   `json:"skills,omitempty"`
	Experience     Experience `json:"experience,omitempty"`
	Location       StringList `json:"location,omitempty"`
	WorkPreference string     `json:"work_preference,omitempty"`
	JobType        string     `json:"job_type,omitempty"`
	IsIndian       *bool      `json:"is_indian,omitempty"`
	IsValid        *bool      `json:"is_valid,omitempty"`
}

// Experience is a free-form experience requirement: a number ("3"), a range
// ("2-3"), a suffix form ("5+"), or the literal "fresher". The extractor
// sometimes emits a bare JSON number, so unmarshalling accepts both shapes.
type Experience string

// UnmarshalJSON accepts a JSON string or number.
func (e *Experience) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*e = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*e = Experience(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*e = Experience(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

// String returns the experience value as a plain string.
func (e Experience) String() string {
	return string(e)
}

// StringList is a JSON value that may arrive as a single string or as a list
// of strings. The extractor emits both shapes for location depending on how
// many cities the query names.
type StringList []string

// UnmarshalJSON accepts "x", ["x","y"], and null.
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*l = nil
		} else {
			*l = StringList{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = StringList(many)
	return nil
}

// SupportsIndia reports whether the extracted intent targets the supported
// country. A nil IsIndian is treated as supported (the extractor did not
// flag the query).
func (c *SearchCriteria) SupportsIndia() bool {
	return c.IsIndian == nil || *c.IsIndian
}
