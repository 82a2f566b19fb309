// Package config provides configuration structures for the question answering pipeline.
// It defines how many matches each ranking stage returns and how the corpus is read and tokenized.
package config

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Defaults used when a setting is left unset
const (
	DefaultFileMatches     = 1
	DefaultSentenceMatches = 1
	DefaultLogLevel        = "warn"
)

// DefaultExtensions lists the corpus file extensions read when none are configured
var DefaultExtensions = []string{".txt", ".md"}

// Settings contains all configuration options for answering a question.
type Settings struct {
	FileMatches     int      `json:"file_matches"`     // Number of top documents whose sentences are considered
	SentenceMatches int      `json:"sentence_matches"` // Number of sentences returned as the answer
	Extensions      []string `json:"extensions"`       // Corpus file extensions to load, e.g. ".txt"
	Stem            bool     `json:"stem"`             // Reduce tokens to their English stem
	LogLevel        string   `json:"log_level"`        // logrus level name
}

// Validate checks the settings and returns one message per problem found
func (settings *Settings) Validate() []string {
	var conflicts []string

	if settings.FileMatches < 1 {
		conflicts = append(conflicts, "file_matches must be at least 1, got "+strconv.Itoa(settings.FileMatches))
	}
	if settings.SentenceMatches < 1 {
		conflicts = append(conflicts, "sentence_matches must be at least 1, got "+strconv.Itoa(settings.SentenceMatches))
	}

	conflicts = append(conflicts, checkDuplicates("extensions", settings.Extensions)...)
	for _, ext := range settings.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			conflicts = append(conflicts, "Extension '"+ext+"' must start with a dot")
		}
	}

	if _, err := logrus.ParseLevel(settings.LogLevel); err != nil {
		conflicts = append(conflicts, "Invalid log_level '"+settings.LogLevel+"'")
	}

	return conflicts
}

// checkDuplicates checks for duplicate values in a slice and returns error messages
func checkDuplicates(fieldName string, values []string) []string {
	var errors []string
	seen := make(map[string]bool)

	for _, value := range values {
		if seen[value] {
			errors = append(errors, "Duplicate value '"+value+"' found in "+fieldName)
		}
		seen[value] = true
	}

	return errors
}

// ApplyDefaults applies default values to the settings
func (settings *Settings) ApplyDefaults() {
	if settings.FileMatches == 0 {
		settings.FileMatches = DefaultFileMatches
	}
	if settings.SentenceMatches == 0 {
		settings.SentenceMatches = DefaultSentenceMatches
	}
	if settings.Extensions == nil {
		settings.Extensions = append([]string{}, DefaultExtensions...)
	}
	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}
}
