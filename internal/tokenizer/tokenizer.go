package tokenizer

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/gcbaptista/go-questions/model"
)

// punctuationRegex matches runs of punctuation and symbol characters.
var punctuationRegex = regexp.MustCompile(`[\p{P}\p{S}]+`)

// Normalize case-folds text and strips punctuation.
// It is idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	// 1. Canonical composition so "é" and "é" fold alike
	processedText := norm.NFC.String(text)

	// 2. Case fold (Caser is stateful, so one per call)
	processedText = cases.Fold().String(processedText)

	// 3. Drop punctuation and symbols; "don't" becomes "dont"
	processedText = punctuationRegex.ReplaceAllString(processedText, "")

	// removing marks between a base and a combining rune can leave a decomposed pair
	return norm.NFC.String(processedText)
}

// Options configures a Tokenizer
type Options struct {
	Stem bool // reduce tokens to their English snowball stem
}

// Tokenizer turns raw text into normalized, stopword-free tokens
type Tokenizer struct {
	stem      bool
	stopwords map[string]struct{}
}

// New creates a Tokenizer using the English stopword list
func New(opts Options) *Tokenizer {
	return &Tokenizer{
		stem:      opts.Stem,
		stopwords: englishStopwords,
	}
}

// Tokenize returns the words of text in order, duplicates kept.
// The result is never nil.
func (t *Tokenizer) Tokenize(text string) []string {
	words := strings.Fields(Normalize(text))

	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if _, isStopword := t.stopwords[word]; isStopword {
			continue
		}
		if t.stem {
			word = english.Stem(word, false)
			if word == "" {
				continue
			}
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// Func is an adapter that allows using plain functions as tokenizers
type Func func(string) []string

// Tokenize implements the engine's tokenizer contract for function types
func (f Func) Tokenize(text string) []string {
	return f(text)
}

var defaultTokenizer = New(Options{})

// Tokenize tokenizes text with the default, non-stemming tokenizer
func Tokenize(text string) []string {
	return defaultTokenizer.Tokenize(text)
}

// QuerySet tokenizes a question into its set of unique words
func (t *Tokenizer) QuerySet(question string) model.Query {
	return model.NewQuery(t.Tokenize(question))
}
