// Package testing provides utilities and helpers for testing the question answering pipeline.
package testing

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewTestLogger returns a logger entry that discards its output
func NewTestLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger.WithField("service", "test")
}

// WriteCorpus writes files (name -> content) into a fresh temporary directory
// and returns its path. The directory is removed when the test ends.
func WriteCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750), "Failed to create corpus subdirectory")
		require.NoError(t, os.WriteFile(path, []byte(content), 0600), "Failed to write corpus file %s", name)
	}
	return dir
}

// SampleCorpus returns a small corpus of documents about programming languages and animals
func SampleCorpus() map[string]string {
	return map[string]string{
		"python.txt": "Python is a programming language created by Guido van Rossum.\n" +
			"Python emphasizes code readability. Python was first released in 1991.",
		"go.txt": "Go is a programming language designed at Google.\n" +
			"Go was designed by Robert Griesemer, Rob Pike, and Ken Thompson. " +
			"Go has goroutines for concurrency.",
		"cats.md": "# Cats\n\nThe domestic cat is a small carnivorous mammal.\n" +
			"Cats sleep for most of the day.\n\n- Cats purr when content.\n",
		"notes.csv": "python,go,cats",
	}
}

// AssertSentencesFrom verifies that every answer sentence is contained in one of the documents
func AssertSentencesFrom(t *testing.T, sentences []string, documents map[string]string) {
	t.Helper()
	for _, sentence := range sentences {
		found := false
		for _, text := range documents {
			if containsNormalizedSpace(text, sentence) {
				found = true
				break
			}
		}
		assert.True(t, found, "Sentence %q does not come from the corpus", sentence)
	}
}
