package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompt(t *testing.T) {
	prompt, err := Get("extraction.json", "parse-recruiter-query")

	require.NoError(t, err)
	assert.Contains(t, prompt, "job_title")
	assert.Contains(t, prompt, "{{.Query}}")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("extraction.json", "no-such-prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-prompt")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "whatever")

	require.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("extraction.json", "missing-key")
	})
}

func TestFormat(t *testing.T) {
	result := Format("extract from: {{.Query}}", map[string]string{"Query": "python dev"})

	assert.Equal(t, "extract from: python dev", result)
	assert.False(t, strings.Contains(result, "{{"))
}
