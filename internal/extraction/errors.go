package extraction

import "fmt"

// ExtractorUnavailableError indicates the LLM extractor could not be reached
// or was not configured. Callers should surface this rather than fall back to
// guessed criteria.
type ExtractorUnavailableError struct {
	Message string
	Cause   error
}

func (e *ExtractorUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extractor unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extractor unavailable: %s", e.Message)
}

func (e *ExtractorUnavailableError) Unwrap() error {
	return e.Cause
}

// ParseError represents an error parsing the extractor response
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
