package search

import (
	"math"

	"github.com/gcbaptista/go-questions/index"
	"github.com/gcbaptista/go-questions/internal/errors"
	"github.com/gcbaptista/go-questions/model"
)

// IDFCalculator derives inverse document frequencies from an inverted index
type IDFCalculator struct {
	invertedIndex *index.InvertedIndex
}

// NewIDFCalculator creates a new IDF calculator
func NewIDFCalculator(invIndex *index.InvertedIndex) *IDFCalculator {
	return &IDFCalculator{invertedIndex: invIndex}
}

// calculateIDF calculates the inverse document frequency
// IDF = ln(N / df) where N = total items, df = items containing term
func (calc *IDFCalculator) calculateIDF(term string) float64 {
	totalItems := float64(calc.invertedIndex.ItemCount)
	if totalItems == 0 {
		return 0.0
	}

	docFreq := calc.invertedIndex.DocumentFrequency(term)
	if docFreq == 0 {
		return 0.0
	}

	return math.Log(totalItems / float64(docFreq))
}

// Table returns the IDF of every indexed term. Each term is visited exactly once.
func (calc *IDFCalculator) Table() model.IDFTable {
	table := make(model.IDFTable, len(calc.invertedIndex.Index))
	for term := range calc.invertedIndex.Index {
		table[term] = calc.calculateIDF(term)
	}
	return table
}

// ComputeIDF builds the IDF table of a corpus snapshot.
// The table holds exactly the words occurring in at least one item.
// An empty corpus yields an EmptyCorpusError and no table.
func ComputeIDF(corpus model.Corpus) (model.IDFTable, error) {
	if len(corpus) == 0 {
		return nil, errors.NewEmptyCorpusError()
	}
	return NewIDFCalculator(index.Build(corpus)).Table(), nil
}
