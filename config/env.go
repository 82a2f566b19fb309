package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables read by Load
const (
	EnvFileMatches     = "QUESTIONS_FILE_MATCHES"
	EnvSentenceMatches = "QUESTIONS_SENTENCE_MATCHES"
	EnvExtensions      = "QUESTIONS_EXTENSIONS"
	EnvStem            = "QUESTIONS_STEM"
	EnvLogLevel        = "QUESTIONS_LOG_LEVEL"
)

// Load loads settings from environment variables with defaults
func Load() *Settings {
	settings := &Settings{
		FileMatches:     GetIntEnv(EnvFileMatches, DefaultFileMatches),
		SentenceMatches: GetIntEnv(EnvSentenceMatches, DefaultSentenceMatches),
		Extensions:      GetListEnv(EnvExtensions, DefaultExtensions),
		Stem:            GetBoolEnv(EnvStem, false),
		LogLevel:        GetStringEnv(EnvLogLevel, DefaultLogLevel),
	}
	settings.ApplyDefaults()
	return settings
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// GetListEnv reads a comma separated list, trimming blanks around items
func GetListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return append([]string{}, defaultValue...)
	}
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
