package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/recruiter-agent/internal/config"
	"github.com/jonathan/recruiter-agent/internal/extraction"
	"github.com/jonathan/recruiter-agent/internal/llm"
	"github.com/jonathan/recruiter-agent/internal/pipeline"
	"github.com/jonathan/recruiter-agent/internal/search"
	"github.com/jonathan/recruiter-agent/internal/types"
)

type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) GenerateContent(context.Context, string, llm.ModelTier) (string, error) {
	return f.response, f.err
}

func (f *fakeLLM) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	return f.response, f.err
}

func (f *fakeLLM) Close() error { return nil }

type fakeSearcher struct {
	results *search.Results
	err     error
}

func (f *fakeSearcher) Search(context.Context, string, int) (*search.Results, error) {
	return f.results, f.err
}

type fakeEnricher struct {
	records []types.ProfileRecord
	err     error
}

func (f *fakeEnricher) Enrich(context.Context, []string) ([]types.ProfileRecord, error) {
	return f.records, f.err
}

const criteriaResponse = `{
	"job_title": "Python Developer",
	"skills": ["Python"],
	"experience": "2",
	"location": ["Surat"],
	"is_indian": true
}`

func testServer(t *testing.T, client llm.Client) *Server {
	t.Helper()

	p := &pipeline.Pipeline{
		LLM: client,
		Searcher: &fakeSearcher{results: &search.Results{
			OrganicResults: []search.OrganicResult{
				{Position: 1, Link: "https://linkedin.com/in/priya-sharma"},
			},
			SearchInformation: search.SearchInformation{TotalResults: 12},
		}},
		Enricher: &fakeEnricher{records: []types.ProfileRecord{
			{
				FullName:           "Priya Sharma",
				AddressWithCountry: "Surat, Gujarat, India",
				LinkedinURL:        "https://linkedin.com/in/priya-sharma",
				Skills:             types.SkillList{"Python"},
			},
		}},
		ResultsPerPage: 10,
	}

	s, err := New(Config{
		Port:      "0",
		LLM:       client,
		Pipeline:  p,
		JWT:       &config.JWTConfig{Secret: "test-secret", ExpirationHours: 1},
		Passwords: &config.PasswordConfig{BcryptCost: 10},
	})
	require.NoError(t, err)
	return s
}

func authHeader(t *testing.T, s *Server) string {
	t.Helper()
	token, err := s.jwtService.GenerateToken(uuid.New())
	require.NoError(t, err)
	return "Bearer " + token
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	id := uuid.New()

	token, err := svc.GenerateToken(id)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.GetRecruiterID())
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	other := NewJWTService(&config.JWTConfig{Secret: "other-secret", ExpirationHours: 1})

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusConflict, HTTPStatus(&ErrEmailAlreadyExists{Email: "a@b.com"}))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(&ErrInvalidCredentials{}))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(&ErrAccountsUnavailable{}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "query", Message: "required"}))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(&pipeline.UnsupportedRegionError{Query: "devs in berlin"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&extraction.ParseError{Message: "bad"}))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(&extraction.ExtractorUnavailableError{Message: "down"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}

func TestHandleRegister_NoStoreConfigured(t *testing.T) {
	s := testServer(t, &fakeLLM{})

	body, _ := json.Marshal(types.RegisterRequest{
		Name:     "Priya Sharma",
		Email:    "priya@example.com",
		Password: "s3cret-pass",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleLogin_NoStoreConfigured(t *testing.T) {
	s := testServer(t, &fakeLLM{})

	body, _ := json.Marshal(types.LoginRequest{Email: "priya@example.com", Password: "s3cret-pass"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := testServer(t, &fakeLLM{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHandleSearch_RequiresAuth(t *testing.T) {
	s := testServer(t, &fakeLLM{response: criteriaResponse})

	body, _ := json.Marshal(types.SearchRequest{Query: "python dev surat"})
	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleSearch_Success(t *testing.T) {
	s := testServer(t, &fakeLLM{response: criteriaResponse})

	body, _ := json.Marshal(types.SearchRequest{Query: "python dev surat"})
	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(body))
	req.Header.Set("Authorization", authHeader(t, s))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.MatchedResults, 1)
	assert.Equal(t, "Priya Sharma", resp.MatchedResults[0].FullName)
	assert.Equal(t, int64(12), resp.TotalResults)
}

func TestHandleSearch_UnsupportedRegion(t *testing.T) {
	s := testServer(t, &fakeLLM{response: `{
		"job_title": "Go Developer",
		"skills": ["Go"],
		"location": ["Berlin"],
		"is_indian": false
	}`})

	body, _ := json.Marshal(types.SearchRequest{Query: "go devs in berlin"})
	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(body))
	req.Header.Set("Authorization", authHeader(t, s))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleParseQuery_Success(t *testing.T) {
	s := testServer(t, &fakeLLM{response: criteriaResponse})

	body, _ := json.Marshal(types.ParseQueryRequest{Query: "python dev surat"})
	req := httptest.NewRequest(http.MethodPost, "/parse-query", bytes.NewReader(body))
	req.Header.Set("Authorization", authHeader(t, s))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var criteria types.SearchCriteria
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &criteria))
	assert.Equal(t, "Python Developer", criteria.JobTitle)
}

func TestHandleParseQuery_ValidationError(t *testing.T) {
	s := testServer(t, &fakeLLM{response: criteriaResponse})

	req := httptest.NewRequest(http.MethodPost, "/parse-query", bytes.NewReader([]byte(`{"query": ""}`)))
	req.Header.Set("Authorization", authHeader(t, s))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEnhance_Success(t *testing.T) {
	s := testServer(t, &fakeLLM{response: "Senior Python Developer in Surat with Django experience"})

	body, _ := json.Marshal(types.EnhanceRequest{Query: "python surat"})
	req := httptest.NewRequest(http.MethodPost, "/enhance", bytes.NewReader(body))
	req.Header.Set("Authorization", authHeader(t, s))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Senior Python Developer")
}

func TestCORSPreflight(t *testing.T) {
	s := testServer(t, &fakeLLM{})

	req := httptest.NewRequest(http.MethodOptions, "/search", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
