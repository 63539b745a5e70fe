package corpus

import (
	"bytes"
	"fmt"
	htmlutil "html"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
	),
)

var (
	reBlockTag   = regexp.MustCompile(`(?is)</(?:p|div|h[1-6]|li|tr|blockquote|pre)>`)
	reTag        = regexp.MustCompile(`(?s)<[^>]*>`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// StripMarkdown renders markdown source and strips the resulting HTML
// down to plain text suitable for analysis.
func StripMarkdown(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	text := buf.String()
	// Keep block boundaries as separators so adjacent blocks don't
	// merge into a single token.
	text = reBlockTag.ReplaceAllString(text, " ")
	text = reTag.ReplaceAllString(text, "")
	text = htmlutil.UnescapeString(text)
	text = reWhitespace.ReplaceAllString(text, " ")

	return strings.TrimSpace(text), nil
}

// EachMarkdown walks dir and yields one document per .md file in sorted
// path order, so document ids are stable across rebuilds. The relative
// file path is the document label.
func EachMarkdown(dir string, fn func(Document) error) error {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk '%s': %w", dir, err)
	}
	sort.Strings(paths)

	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read '%s': %w", path, err)
		}
		text, err := StripMarkdown(src)
		if err != nil {
			return fmt.Errorf("failed to process '%s': %w", path, err)
		}

		label := path
		if rel, relErr := filepath.Rel(dir, path); relErr == nil {
			label = filepath.ToSlash(rel)
		}
		if err := fn(Document{Text: text, Label: label}); err != nil {
			return err
		}
	}
	return nil
}
