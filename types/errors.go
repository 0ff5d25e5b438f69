package types

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound is returned when a document id does not match any
	// uploaded document session.
	ErrSessionNotFound = errors.New("document not found")

	// ErrIndexNotReady is returned when a question is asked against a session
	// whose embedding index was never built.
	ErrIndexNotReady = errors.New("no document index available, upload a document first")

	// ErrRateLimited marks an embedding request rejected by the provider for
	// throttling. Wrapped errors matching it are eligible for retry.
	ErrRateLimited = errors.New("embedding service rate limited")
)

// ExtractionError reports a document whose bytes could not be turned into text.
type ExtractionError struct {
	Filename string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Filename, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// RateLimitError is surfaced after the embedding retry budget is exhausted.
type RateLimitError struct {
	Attempts int
	Err      error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("embedding rate limit exceeded after %d attempts: %v", e.Attempts, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// GenerationError reports a completion service failure. Generation is never
// retried; only embedding calls carry a retry budget.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("answer generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
