package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrEmptyCorpus is returned when IDF statistics are requested over a corpus with no items
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrCorpusNotFound is returned when the corpus directory cannot be found
	ErrCorpusNotFound = errors.New("corpus not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoMatch is returned when a question shares no token with any document
	ErrNoMatch = errors.New("no match")
)

// EmptyCorpusError represents an empty corpus error with context
type EmptyCorpusError struct {
	Scope string // which corpus was empty, e.g. "documents" or "sentences"
}

func (e *EmptyCorpusError) Error() string {
	if e.Scope != "" {
		return fmt.Sprintf("cannot compute IDF over empty %s corpus", e.Scope)
	}
	return "cannot compute IDF over empty corpus"
}

func (e *EmptyCorpusError) Is(target error) bool {
	return target == ErrEmptyCorpus
}

// NewEmptyCorpusError creates a new EmptyCorpusError
func NewEmptyCorpusError(scope ...string) *EmptyCorpusError {
	err := &EmptyCorpusError{}
	if len(scope) > 0 {
		err.Scope = scope[0]
	}
	return err
}

// CorpusNotFoundError represents a missing corpus directory with context
type CorpusNotFoundError struct {
	Path string
}

func (e *CorpusNotFoundError) Error() string {
	return fmt.Sprintf("corpus directory '%s' not found", e.Path)
}

func (e *CorpusNotFoundError) Is(target error) bool {
	return target == ErrCorpusNotFound
}

// NewCorpusNotFoundError creates a new CorpusNotFoundError
func NewCorpusNotFoundError(path string) *CorpusNotFoundError {
	return &CorpusNotFoundError{Path: path}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
