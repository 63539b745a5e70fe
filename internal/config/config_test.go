package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stiksxgod/infsearch/internal/testutil"
)

func TestDefaults(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "data/corpus.txt", cfg.Corpus.Path)
	assert.Equal(t, "data/urls.txt", cfg.Corpus.Urls)
	assert.Empty(t, cfg.Corpus.MarkdownDir)
	assert.Equal(t, "data/index_data.txt", cfg.Index.Data)
	assert.Equal(t, "data/docs_map.txt", cfg.Index.Docs)
	assert.Equal(t, 10, cfg.Search.Limit)
}

func TestLoadFromString(t *testing.T) {
	toml := `
[corpus]
path = "corpus/news.txt"
urls = "corpus/news_urls.txt"

[index]
data = "out/index.txt"

[search]
limit = 25
`

	cfg, err := LoadFromString(toml)
	require.NoError(t, err)

	assert.Equal(t, "corpus/news.txt", cfg.Corpus.Path)
	assert.Equal(t, "corpus/news_urls.txt", cfg.Corpus.Urls)
	assert.Equal(t, "out/index.txt", cfg.Index.Data)
	// Unset keys keep their defaults.
	assert.Equal(t, "data/docs_map.txt", cfg.Index.Docs)
	assert.Equal(t, 25, cfg.Search.Limit)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "search.toml", "[corpus]\npath = \"x.txt\"\n")

	cfg, err := LoadFromFile(dir + "/search.toml")
	require.NoError(t, err)
	assert.Equal(t, "x.txt", cfg.Corpus.Path)

	_, err = LoadFromFile(dir + "/missing.toml")
	assert.Error(t, err)
}

func TestLoadFromStringInvalid(t *testing.T) {
	_, err := LoadFromString("[corpus\npath=")
	assert.Error(t, err)
}

func TestUpdateFromEnv(t *testing.T) {
	_ = os.Setenv("INFSEARCH_CORPUS_PATH", "env-corpus.txt")
	_ = os.Setenv("INFSEARCH_CORPUS_MARKDOWN__DIR", "docs")
	_ = os.Setenv("INFSEARCH_SEARCH_LIMIT", "5")
	t.Cleanup(func() {
		_ = os.Unsetenv("INFSEARCH_CORPUS_PATH")
		_ = os.Unsetenv("INFSEARCH_CORPUS_MARKDOWN__DIR")
		_ = os.Unsetenv("INFSEARCH_SEARCH_LIMIT")
	})

	cfg := NewDefaultConfig()
	cfg.UpdateFromEnv()

	assert.Equal(t, "env-corpus.txt", cfg.Corpus.Path)
	assert.Equal(t, "docs", cfg.Corpus.MarkdownDir)
	assert.Equal(t, 5, cfg.Search.Limit)
}

func TestSetIgnoresBadValues(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Set("search.limit", "not-a-number")
	assert.Equal(t, 10, cfg.Search.Limit)

	cfg.Set("search.limit", "-3")
	assert.Equal(t, 10, cfg.Search.Limit)

	cfg.Set("nonsense", "x")
	cfg.Set("corpus.unknown", "x")
	assert.Equal(t, "data/corpus.txt", cfg.Corpus.Path)
}
