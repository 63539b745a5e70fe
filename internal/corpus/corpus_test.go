package corpus

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stiksxgod/infsearch/internal/testutil"
)

func collect(t *testing.T, iterate func(func(Document) error) error) []Document {
	t.Helper()
	var docs []Document
	require.NoError(t, iterate(func(d Document) error {
		docs = append(docs, d)
		return nil
	}))
	return docs
}

func TestEachLine(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "corpus.txt", "Россия и США\n\nэкономика\n")
	testutil.WriteFile(t, dir, "urls.txt", "http://a\nhttp://b\n")

	docs := collect(t, func(fn func(Document) error) error {
		return EachLine(filepath.Join(dir, "corpus.txt"), filepath.Join(dir, "urls.txt"), fn)
	})

	require.Len(t, docs, 3)
	assert.Equal(t, Document{Text: "Россия и США", Label: "http://a"}, docs[0])
	// Blank lines are valid empty documents.
	assert.Equal(t, Document{Text: "", Label: "http://b"}, docs[1])
	// Past the URL list the label is left empty for the builder.
	assert.Equal(t, Document{Text: "экономика", Label: ""}, docs[2])
}

func TestEachLineMissingURLList(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "corpus.txt", "кот\n")

	docs := collect(t, func(fn func(Document) error) error {
		return EachLine(filepath.Join(dir, "corpus.txt"), filepath.Join(dir, "urls.txt"), fn)
	})
	require.Len(t, docs, 1)
	assert.Empty(t, docs[0].Label)
}

func TestEachLineMissingCorpus(t *testing.T) {
	err := EachLine("no/such/corpus.txt", "no/such/urls.txt", func(Document) error { return nil })
	assert.Error(t, err)
}

func TestStripMarkdown(t *testing.T) {
	text, err := StripMarkdown([]byte("# Заголовок\n\nПервый *абзац* со [ссылкой](http://x).\n\n- кот\n- собака\n"))
	require.NoError(t, err)
	assert.Equal(t, "Заголовок Первый абзац со ссылкой. кот собака", text)
}

func TestStripMarkdownEntities(t *testing.T) {
	text, err := StripMarkdown([]byte("кошки &amp; собаки"))
	require.NoError(t, err)
	assert.Equal(t, "кошки & собаки", text)
}

func TestEachMarkdownSortedOrder(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "b.md", "собака")
	testutil.WriteFile(t, dir, "a.md", "кот")
	testutil.WriteFile(t, dir, "notes.txt", "пропустить")
	testutil.WriteFile(t, dir, "sub/c.md", "мышь")

	docs := collect(t, func(fn func(Document) error) error {
		return EachMarkdown(dir, fn)
	})

	require.Len(t, docs, 3)
	assert.Equal(t, "a.md", docs[0].Label)
	assert.Equal(t, "кот", docs[0].Text)
	assert.Equal(t, "b.md", docs[1].Label)
	assert.Equal(t, "sub/c.md", docs[2].Label)
}
