package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/recruiter-agent/internal/extraction"
	"github.com/jonathan/recruiter-agent/internal/pipeline"
)

// ErrEmailAlreadyExists indicates that a recruiter with the given email
// already exists.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("recruiter with email %s already exists", e.Email)
}

// ErrInvalidCredentials indicates that the provided credentials are invalid.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrAccountsUnavailable indicates that recruiter accounts are not available
// because no database is configured.
type ErrAccountsUnavailable struct{}

func (e *ErrAccountsUnavailable) Error() string {
	return "recruiter accounts require a configured database"
}

// ErrValidation indicates that request validation failed.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus maps a service error to an HTTP status code.
func HTTPStatus(err error) int {
	var emailExists *ErrEmailAlreadyExists
	var invalidCreds *ErrInvalidCredentials
	var accountsUnavailable *ErrAccountsUnavailable
	var validation *ErrValidation
	var unsupportedRegion *pipeline.UnsupportedRegionError
	var parseErr *extraction.ParseError
	var unavailable *extraction.ExtractorUnavailableError

	switch {
	case errors.As(err, &emailExists):
		return http.StatusConflict
	case errors.As(err, &invalidCreds):
		return http.StatusUnauthorized
	case errors.As(err, &accountsUnavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &unsupportedRegion):
		return http.StatusUnprocessableEntity
	case errors.As(err, &parseErr):
		return http.StatusBadRequest
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
