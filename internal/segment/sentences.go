// Package segment splits raw document text into candidate sentences.
//
// Text is first cut into passages on line breaks, then each passage is cut after
// sentence terminators ('.', '!', '?') that are followed by whitespace. A period
// does not end a sentence after a known abbreviation, an initial, a dotted
// abbreviation such as "e.g." or when the next word starts in lower case.
package segment

import (
	"strings"
	"unicode"
)

// abbreviations never end a sentence when followed by a period.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {}, "st": {},
	"vs": {}, "inc": {}, "ltd": {}, "co": {}, "corp": {}, "no": {}, "fig": {},
	"gen": {}, "gov": {}, "sen": {}, "rep": {}, "col": {}, "lt": {}, "capt": {}, "mt": {},
	"jan": {}, "feb": {}, "mar": {}, "apr": {}, "jun": {}, "jul": {}, "aug": {},
	"sep": {}, "sept": {}, "oct": {}, "nov": {}, "dec": {}, "approx": {}, "dept": {},
}

// Passages splits text on line breaks, keeping only non-blank passages.
func Passages(text string) []string {
	passages := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			passages = append(passages, trimmed)
		}
	}
	return passages
}

// Sentences returns the trimmed, non-empty sentences of text in document order.
func Sentences(text string) []string {
	sentences := make([]string, 0)
	for _, passage := range Passages(text) {
		sentences = append(sentences, splitPassage(passage)...)
	}
	return sentences
}

func splitPassage(passage string) []string {
	runes := []rune(passage)
	sentences := make([]string, 0)
	start := 0

	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}

		// swallow "?!", "..." and closing quotes or brackets
		end := i + 1
		for end < len(runes) && (isTerminal(runes[end]) || isCloser(runes[end])) {
			end++
		}

		boundary := end == len(runes) || unicode.IsSpace(runes[end])
		if boundary && runes[i] == '.' && end-i == 1 {
			boundary = periodEndsSentence(runes[start:i], runes[end:])
		}
		if boundary {
			sentences = appendSentence(sentences, runes[start:end])
			start = end
		}
		i = end - 1
	}
	return appendSentence(sentences, runes[start:])
}

// periodEndsSentence decides whether a lone period between before and after is a boundary
func periodEndsSentence(before, after []rune) bool {
	fields := strings.Fields(string(before))
	if len(fields) == 0 {
		return true
	}
	word := strings.ToLower(strings.TrimLeftFunc(fields[len(fields)-1], isOpener))

	if _, ok := abbreviations[word]; ok {
		return false
	}
	if strings.Contains(word, ".") {
		return false
	}
	if r := []rune(word); len(r) == 1 && unicode.IsLetter(r[0]) {
		return false
	}

	next := strings.TrimLeftFunc(string(after), func(r rune) bool {
		return unicode.IsSpace(r) || isOpener(r)
	})
	for _, r := range next {
		return !unicode.IsLower(r)
	}
	return true
}

func appendSentence(sentences []string, runes []rune) []string {
	if sentence := strings.TrimSpace(string(runes)); sentence != "" {
		sentences = append(sentences, sentence)
	}
	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '}', '”', '’', '»':
		return true
	}
	return false
}

func isOpener(r rune) bool {
	switch r {
	case '"', '\'', '(', '[', '{', '“', '‘', '«':
		return true
	}
	return false
}
