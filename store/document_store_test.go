package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-questions/internal/errors"
	testutil "github.com/gcbaptista/go-questions/internal/testing"
	"github.com/gcbaptista/go-questions/store"
)

func TestLoad(t *testing.T) {
	dir := testutil.WriteCorpus(t, testutil.SampleCorpus())
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0750))

	ds, err := store.Load(dir, []string{".txt", ".md"}, testutil.NewTestLogger())
	require.NoError(t, err)

	assert.Equal(t, []string{"cats.md", "go.txt", "python.txt"}, ds.IDs())
	assert.Equal(t, 3, ds.Len())

	text, ok := ds.Get("python.txt")
	require.True(t, ok)
	assert.Equal(t, testutil.SampleCorpus()["python.txt"], text, "plain text is loaded verbatim")

	markdown, ok := ds.Get("cats.md")
	require.True(t, ok)
	assert.NotContains(t, markdown, "#")
	assert.NotContains(t, markdown, "- Cats")
	assert.Contains(t, markdown, "The domestic cat is a small carnivorous mammal. Cats sleep for most of the day.")

	_, ok = ds.Get("notes.csv")
	assert.False(t, ok, "files with other extensions are skipped")
}

func TestLoad_AllExtensions(t *testing.T) {
	dir := testutil.WriteCorpus(t, testutil.SampleCorpus())

	ds, err := store.Load(dir, nil, testutil.NewTestLogger())
	require.NoError(t, err)
	assert.Equal(t, 4, ds.Len())
}

func TestLoad_ExtensionCaseInsensitive(t *testing.T) {
	dir := testutil.WriteCorpus(t, map[string]string{"UPPER.TXT": "Loud text."})

	ds, err := store.Load(dir, []string{".txt"}, testutil.NewTestLogger())
	require.NoError(t, err)
	assert.Equal(t, []string{"UPPER.TXT"}, ds.IDs())
}

func TestLoad_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	ds, err := store.Load(missing, nil, testutil.NewTestLogger())
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, errors.ErrCorpusNotFound)
}

func TestLoad_PathIsFile(t *testing.T) {
	dir := testutil.WriteCorpus(t, map[string]string{"single.txt": "Only one."})

	_, err := store.Load(filepath.Join(dir, "single.txt"), nil, testutil.NewTestLogger())
	assert.ErrorIs(t, err, errors.ErrCorpusNotFound)
}

func TestLoad_EmptyDirectory(t *testing.T) {
	ds, err := store.Load(t.TempDir(), nil, testutil.NewTestLogger())
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
	assert.Empty(t, ds.IDs())
}

func TestDocumentStore(t *testing.T) {
	ds := store.NewDocumentStore()
	ds.Add("b.txt", "second")
	ds.Add("a.txt", "first")
	ds.Add("b.txt", "replaced")

	assert.Equal(t, []string{"a.txt", "b.txt"}, ds.IDs())
	text, ok := ds.Get("b.txt")
	assert.True(t, ok)
	assert.Equal(t, "replaced", text)

	_, ok = ds.Get("c.txt")
	assert.False(t, ok)
}
