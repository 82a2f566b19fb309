package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gcbaptista/go-questions/config"
	internalErrors "github.com/gcbaptista/go-questions/internal/errors"
	"github.com/gcbaptista/go-questions/internal/search"
	"github.com/gcbaptista/go-questions/model"
	"github.com/gcbaptista/go-questions/store"
)

// Tokenizer turns raw text into the ordered tokens the rankers score
type Tokenizer interface {
	Tokenize(text string) []string
}

// Engine answers questions against one corpus snapshot.
// Documents are tokenized and their IDF table is built once in New;
// every call to Answer builds its own sentence corpus and sentence IDF table.
type Engine struct {
	settings  *config.Settings
	tokenizer Tokenizer
	logger    *logrus.Entry
	docs      *store.DocumentStore
	fileWords model.Corpus
	fileIDFs  model.IDFTable
}

// Answer is the outcome of one question
type Answer struct {
	QueryID   string   // correlates log lines of this question
	Query     []string // unique query words, sorted
	Files     []string // top documents, ranked
	Sentences []string // top sentences, ranked
}

// New tokenizes every document of docs and builds the document IDF table.
func New(docs *store.DocumentStore, settings *config.Settings, tokenizer Tokenizer, logger *logrus.Entry) (*Engine, error) {
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		return nil, internalErrors.NewValidationError("settings", strings.Join(conflicts, "; "))
	}

	fileWords := make(model.Corpus, docs.Len())
	for _, id := range docs.IDs() {
		text, _ := docs.Get(id)
		fileWords[id] = tokenizer.Tokenize(text)
	}

	fileIDFs, err := search.ComputeIDF(fileWords)
	if err != nil {
		if errors.Is(err, internalErrors.ErrEmptyCorpus) {
			return nil, internalErrors.NewEmptyCorpusError("documents")
		}
		return nil, fmt.Errorf("failed to compute document IDFs: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"documents": len(fileWords),
		"words":     len(fileIDFs),
	}).Info("Document statistics built")

	return &Engine{
		settings:  settings,
		tokenizer: tokenizer,
		logger:    logger,
		docs:      docs,
		fileWords: fileWords,
		fileIDFs:  fileIDFs,
	}, nil
}

// Answer returns the sentences of the corpus that best answer question.
// A question sharing no scoring word with the corpus yields ErrNoMatch.
func (e *Engine) Answer(ctx context.Context, question string) (*Answer, error) {
	answer := &Answer{QueryID: uuid.NewString()}
	log := e.logger.WithField("query_id", answer.QueryID)

	query := model.NewQuery(e.tokenizer.Tokenize(question))
	answer.Query = query.Words()
	log.WithField("words", answer.Query).Debug("Question tokenized")
	if len(query) == 0 {
		log.Warn("Question has no searchable words")
		return nil, internalErrors.ErrNoMatch
	}

	fileHits := search.RankFiles(query, e.fileWords, e.fileIDFs, e.settings.FileMatches)
	for rank, hit := range fileHits {
		log.WithFields(logrus.Fields{"rank": rank + 1, "file": hit.ID, "score": hit.Score}).Debug("Document matched")
	}
	if len(fileHits) == 0 {
		log.Info("No document matches the question")
		return nil, internalErrors.ErrNoMatch
	}
	for _, hit := range fileHits {
		answer.Files = append(answer.Files, hit.ID)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sentences := e.sentenceCorpus(answer.Files)
	if len(sentences) == 0 {
		log.Info("Top documents contain no sentences")
		return nil, internalErrors.ErrNoMatch
	}

	sentenceIDFs, err := search.ComputeIDF(sentences)
	if err != nil {
		return nil, fmt.Errorf("failed to compute sentence IDFs: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sentenceHits := search.RankSentences(query, sentences, sentenceIDFs, e.settings.SentenceMatches)
	for rank, hit := range sentenceHits {
		log.WithFields(logrus.Fields{
			"rank":    rank + 1,
			"score":   hit.Score,
			"density": hit.Density,
		}).Debugf("Sentence matched: %s", hit.ID)
	}
	if len(sentenceHits) == 0 {
		log.WithField("sentences", len(sentences)).Info("No sentence of the top documents scores above zero")
		return nil, internalErrors.ErrNoMatch
	}
	for _, hit := range sentenceHits {
		answer.Sentences = append(answer.Sentences, hit.ID)
	}

	log.WithFields(logrus.Fields{
		"files":     len(answer.Files),
		"sentences": len(answer.Sentences),
	}).Info("Question answered")
	return answer, nil
}

// DocumentCount returns the number of documents in the snapshot
func (e *Engine) DocumentCount() int {
	return len(e.fileWords)
}
