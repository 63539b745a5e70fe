// Package corpus reads document collections for indexing: the default
// line-oriented corpus with a parallel URL list, and directories of
// markdown files stripped to plain text.
package corpus

import (
	"bufio"
	"fmt"
	"os"
)

// Document is one unit of indexable text with its display label.
type Document struct {
	Text  string
	Label string
}

// EachLine streams the corpus one document per line, aligning labels
// from the URL list by line number. A blank line is a valid empty
// document. Documents beyond the URL list get an empty label, which the
// index builder replaces with its synthetic form. A missing URL list is
// not an error.
func EachLine(corpusPath, urlsPath string, fn func(Document) error) error {
	urls, err := readLines(urlsPath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	f, err := os.Open(corpusPath)
	if err != nil {
		return fmt.Errorf("failed to open corpus '%s': %w", corpusPath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for scanner.Scan() {
		doc := Document{Text: scanner.Text()}
		if line < len(urls) {
			doc.Label = urls[line]
		}
		if err := fn(doc); err != nil {
			return err
		}
		line++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read corpus '%s': %w", corpusPath, err)
	}
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
