package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	Query string `json:"query" validate:"required,min=1"`
	Page  int    `json:"page" validate:"min=0"`
}

// ParseQueryRequest is the body of POST /parse-query.
type ParseQueryRequest struct {
	Query string `json:"query" validate:"required,min=1"`
}

// EnhanceRequest is the body of POST /enhance.
type EnhanceRequest struct {
	Query string `json:"query" validate:"required,min=1"`
}

// SearchResponse is the paginated result of a search run.
type SearchResponse struct {
	ParsedCriteria   *SearchCriteria `json:"parsed_data"`
	MatchedResults   []MatchResult   `json:"matched_results"`
	UnmatchedResults []ProfileRecord `json:"unmatched_results"`
	CurrentPage      int             `json:"current_page"`
	TotalResults     int64           `json:"total_results,omitempty"`
}

// RegisterRequest creates a recruiter account with password authentication.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Recruiter is a recruiter account for API responses.
type Recruiter struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse carries the account plus its authentication token.
type LoginResponse struct {
	Recruiter *Recruiter `json:"recruiter"`
	Token     string     `json:"token"`
}

// Validate validates the SearchRequest using the validator.
func (r *SearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ParseQueryRequest using the validator.
func (r *ParseQueryRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the EnhanceRequest using the validator.
func (r *EnhanceRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
