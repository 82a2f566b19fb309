package engine

import (
	"github.com/gcbaptista/go-questions/internal/segment"
	"github.com/gcbaptista/go-questions/model"
)

// sentenceCorpus splits the given documents into sentences and tokenizes each.
// Sentences without any token are dropped; identical sentence texts share one entry.
func (e *Engine) sentenceCorpus(fileIDs []string) model.Corpus {
	sentences := make(model.Corpus)
	for _, id := range fileIDs {
		text, ok := e.docs.Get(id)
		if !ok {
			e.logger.WithField("file", id).Warn("Ranked document missing from store")
			continue
		}
		for _, sentence := range segment.Sentences(text) {
			if tokens := e.tokenizer.Tokenize(sentence); len(tokens) > 0 {
				sentences[sentence] = tokens
			}
		}
	}
	return sentences
}
