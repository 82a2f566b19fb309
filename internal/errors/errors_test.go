package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestEmptyCorpusError(t *testing.T) {
	err := NewEmptyCorpusError()

	expectedMsg := "cannot compute IDF over empty corpus"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	// Test with scope
	err2 := NewEmptyCorpusError("sentences")
	expectedMsg2 := "cannot compute IDF over empty sentences corpus"
	if err2.Error() != expectedMsg2 {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg2, err2.Error())
	}

	if !errors.Is(err, ErrEmptyCorpus) {
		t.Error("Expected error to match ErrEmptyCorpus sentinel")
	}
	if errors.Is(err, ErrCorpusNotFound) {
		t.Error("Error should not match ErrCorpusNotFound")
	}
}

func TestCorpusNotFoundError(t *testing.T) {
	err := NewCorpusNotFoundError("/tmp/missing")

	expectedMsg := "corpus directory '/tmp/missing' not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrCorpusNotFound) {
		t.Error("Expected error to match ErrCorpusNotFound sentinel")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("file_matches", "must be at least 1")

	expectedMsg := "validation error for field 'file_matches': must be at least 1"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	err2 := NewValidationError("", "general failure")
	expectedMsg2 := "validation error: general failure"
	if err2.Error() != expectedMsg2 {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg2, err2.Error())
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Expected error to match ErrInvalidInput sentinel")
	}
}

func TestWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("building document table: %w", NewEmptyCorpusError("documents"))

	if !errors.Is(wrapped, ErrEmptyCorpus) {
		t.Error("Expected wrapped error to match ErrEmptyCorpus sentinel")
	}

	var corpusErr *EmptyCorpusError
	if !errors.As(wrapped, &corpusErr) {
		t.Fatal("Expected errors.As to extract EmptyCorpusError")
	}
	if corpusErr.Scope != "documents" {
		t.Errorf("Expected scope 'documents', got '%s'", corpusErr.Scope)
	}
}
