package model

import "sort"

// TokenizedItem is the ordered token sequence of a document or a sentence.
// Duplicates are retained since term frequency depends on them.
type TokenizedItem []string

// Corpus maps an item identifier (a filename, or the sentence text itself) to its tokens.
type Corpus map[string]TokenizedItem

// IDs returns the corpus identifiers in ascending order.
// Every consumer that iterates a corpus to produce ranked output goes through IDs,
// so results never depend on map iteration order.
func (c Corpus) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Query is the de-duplicated set of tokens of a question.
type Query map[string]struct{}

// NewQuery builds a Query from a token sequence, dropping duplicates.
func NewQuery(tokens []string) Query {
	q := make(Query, len(tokens))
	for _, token := range tokens {
		q[token] = struct{}{}
	}
	return q
}

// Contains reports whether word is part of the query.
func (q Query) Contains(word string) bool {
	_, ok := q[word]
	return ok
}

// Words returns the query words in ascending order.
func (q Query) Words() []string {
	words := make([]string, 0, len(q))
	for w := range q {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// IDFTable maps a word to its inverse document frequency over one corpus snapshot.
type IDFTable map[string]float64

// Lookup returns the IDF of word, or 0 when the word was never seen in the corpus.
func (t IDFTable) Lookup(word string) float64 {
	return t[word]
}
