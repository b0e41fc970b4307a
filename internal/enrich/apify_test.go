package enrich

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApifyClient_RequiresToken(t *testing.T) {
	_, err := NewApifyClient("")
	require.Error(t, err)

	var enrichErr *Error
	assert.ErrorAs(t, err, &enrichErr)
}

func TestApifyEnrich_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "run-sync-get-dataset-items")
		assert.Equal(t, "secret-token", r.URL.Query().Get("token"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var input map[string][]string
		require.NoError(t, json.Unmarshal(body, &input))
		assert.Equal(t, []string{
			"https://linkedin.com/in/priya-sharma",
			"https://linkedin.com/in/rahul-mehta",
		}, input["profileUrls"])

		w.Header().Set("Content-Type", "application/json")
		// The scraper does not preserve input order
		_, _ = w.Write([]byte(`[
			{
				"fullName": "Rahul Mehta",
				"linkedinUrl": "https://linkedin.com/in/rahul-mehta",
				"headline": "Python Developer",
				"addressWithCountry": "Mumbai, Maharashtra, India",
				"skills": [{"title": "Python"}, {"title": "Django"}]
			},
			{
				"fullName": "Priya Sharma",
				"linkedinUrl": "https://linkedin.com/in/priya-sharma",
				"headline": "Data Analyst",
				"addressWithCountry": "Surat, Gujarat, India",
				"skills": ["SQL", "Excel"]
			}
		]`))
	}))
	defer server.Close()

	client, err := NewApifyClient("secret-token", WithBaseURL(server.URL))
	require.NoError(t, err)

	records, err := client.Enrich(context.Background(), []string{
		"https://linkedin.com/in/priya-sharma",
		"https://linkedin.com/in/rahul-mehta",
	})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Rahul Mehta", records[0].FullName)
	assert.Equal(t, []string{"Python", "Django"}, []string(records[0].Skills))
	assert.Equal(t, "Priya Sharma", records[1].FullName)
	assert.Equal(t, []string{"SQL", "Excel"}, []string(records[1].Skills))
}

func TestApifyEnrich_EmptyInput(t *testing.T) {
	client, err := NewApifyClient("secret-token")
	require.NoError(t, err)

	records, err := client.Enrich(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestApifyEnrich_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer server.Close()

	client, err := NewApifyClient("secret-token", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Enrich(context.Background(), []string{"https://linkedin.com/in/anyone"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "402")
}

func TestApifyEnrich_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client, err := NewApifyClient("secret-token", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Enrich(context.Background(), []string{"https://linkedin.com/in/anyone"})
	require.Error(t, err)

	var enrichErr *Error
	assert.ErrorAs(t, err, &enrichErr)
}
