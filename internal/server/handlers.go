package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/recruiter-agent/internal/extraction"
	"github.com/jonathan/recruiter-agent/internal/types"
)

// handleParseQuery handles POST /parse-query. It extracts structured search
// criteria from a free-form recruiter query without running a search.
func (s *Server) handleParseQuery(w http.ResponseWriter, r *http.Request) {
	var req types.ParseQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, extractValidationError(err))
		return
	}

	criteria, err := extraction.ParseRecruiterQuery(r.Context(), s.llm, req.Query)
	if err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, criteria)
}

// handleEnhance handles POST /enhance. It rewrites a rough recruiter query
// into a cleaner one.
func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	var req types.EnhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, extractValidationError(err))
		return
	}

	enhanced, err := extraction.EnhanceQuery(r.Context(), s.llm, req.Query)
	if err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"enhanced_query": enhanced})
}

// handleSearch handles POST /search. It runs the full candidate search
// pipeline for the authenticated recruiter.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req types.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, extractValidationError(err))
		return
	}

	result, err := s.pipeline.Run(r.Context(), req.Query, req.Page)
	if err != nil {
		errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, &types.SearchResponse{
		ParsedCriteria:   result.Criteria,
		MatchedResults:   result.Candidates,
		UnmatchedResults: result.Unmatched,
		CurrentPage:      result.Page,
		TotalResults:     result.TotalResults,
	})
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func jsonResponse(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[SERVER] Failed to encode response: %v", err)
	}
}

func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}
