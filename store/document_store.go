package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gcbaptista/go-questions/internal/errors"
)

// DocumentStore holds the raw text of every corpus document keyed by filename.
// It is filled once at load time and only read afterwards.
type DocumentStore struct {
	Docs map[string]string
}

// NewDocumentStore creates an empty store
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{Docs: make(map[string]string)}
}

// Add stores the text of a document, replacing any previous text under the same id
func (ds *DocumentStore) Add(id, text string) {
	ds.Docs[id] = text
}

// Get returns the raw text of a document
func (ds *DocumentStore) Get(id string) (string, bool) {
	text, ok := ds.Docs[id]
	return text, ok
}

// IDs returns the document ids in ascending order
func (ds *DocumentStore) IDs() []string {
	ids := make([]string, 0, len(ds.Docs))
	for id := range ds.Docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of documents
func (ds *DocumentStore) Len() int {
	return len(ds.Docs)
}

// Load reads every file of dir whose extension is in extensions (all files when empty).
// Subdirectories are skipped. Markdown files are reduced to their plain text.
func Load(dir string, extensions []string, logger *logrus.Entry) (*DocumentStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewCorpusNotFoundError(dir)
		}
		return nil, fmt.Errorf("failed to stat corpus directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, errors.NewCorpusNotFoundError(dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus directory %s: %w", dir, err)
	}

	accepted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		accepted[strings.ToLower(ext)] = true
	}

	ds := NewDocumentStore()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if len(accepted) > 0 && !accepted[ext] {
			logger.WithField("file", name).Debug("Skipping file with unsupported extension")
			continue
		}

		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path) // #nosec G304 -- path comes from the corpus directory listing
		if err != nil {
			return nil, fmt.Errorf("failed to read document %s: %w", path, err)
		}

		text := string(data)
		if isMarkdown(ext) {
			text = MarkdownText(data)
		}
		ds.Add(name, text)
		logger.WithFields(logrus.Fields{"file": name, "bytes": len(data)}).Debug("Loaded document")
	}

	logger.WithFields(logrus.Fields{"dir": dir, "documents": ds.Len()}).Info("Corpus loaded")
	return ds, nil
}

func isMarkdown(ext string) bool {
	return ext == ".md" || ext == ".markdown"
}
