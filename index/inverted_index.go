package index

import (
	"sort"

	"github.com/gcbaptista/go-questions/model"
)

// InvertedIndex maps a term (token) to the set of corpus items containing that term.
// It is built once over a corpus snapshot and is read-only afterwards.
type InvertedIndex struct {
	Index     map[string]PostingSet
	ItemCount int // number of items in the snapshot, N in log(N / df)
}

// Build creates the inverted index of a corpus in a single pass over its items.
// Each (term, item) pair is recorded once no matter how often the term repeats.
func Build(corpus model.Corpus) *InvertedIndex {
	ii := &InvertedIndex{
		Index:     make(map[string]PostingSet),
		ItemCount: len(corpus),
	}
	for id, tokens := range corpus {
		for _, token := range tokens {
			postings, exists := ii.Index[token]
			if !exists {
				postings = make(PostingSet)
				ii.Index[token] = postings
			}
			postings.Add(id)
		}
	}
	return ii
}

// DocumentFrequency returns the number of items containing term, 0 when unseen.
func (ii *InvertedIndex) DocumentFrequency(term string) int {
	return len(ii.Index[term])
}

// Terms returns every indexed term in ascending order.
func (ii *InvertedIndex) Terms() []string {
	terms := make([]string, 0, len(ii.Index))
	for term := range ii.Index {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
