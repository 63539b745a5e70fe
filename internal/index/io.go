package index

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// On-disk formats:
//
//	index data:  <term>:<docId>,<tf>;<docId>,<tf>;…;\n
//	docs map:    <docId>|<label>\n
//
// Both are UTF-8 text, one entry per line. Loaders skip malformed lines
// and malformed postings; only file-level errors propagate.

// WriteData writes the inverted index in sorted term order.
func (idx *Index) WriteData(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, term := range idx.Terms() {
		bw.WriteString(term)
		bw.WriteByte(':')
		for _, p := range idx.postings[term] {
			fmt.Fprintf(bw, "%d,%d;", p.DocID, p.TF)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadData loads postings from r into the index.
func (idx *Index) ReadData(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			continue
		}
		term := line[:colon]
		if term == "" {
			continue
		}
		for _, pair := range strings.Split(line[colon+1:], ";") {
			comma := strings.IndexByte(pair, ',')
			if comma < 0 {
				continue
			}
			docID, err := strconv.Atoi(pair[:comma])
			if err != nil || docID < 0 {
				continue
			}
			tf, err := strconv.Atoi(pair[comma+1:])
			if err != nil || tf < 0 {
				continue
			}
			idx.Insert(term, docID, tf)
		}
	}
	return scanner.Err()
}

// WriteDocs writes the document map in ascending id order.
func (idx *Index) WriteDocs(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, id := range idx.DocIDs() {
		fmt.Fprintf(bw, "%d|%s\n", id, idx.labels[id])
	}
	return bw.Flush()
}

// ReadDocs loads the document map from r.
func (idx *Index) ReadDocs(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		pipe := strings.IndexByte(line, '|')
		if pipe < 0 {
			continue
		}
		id, err := strconv.Atoi(line[:pipe])
		if err != nil || id < 0 {
			continue
		}
		idx.labels[id] = line[pipe+1:]
	}
	return scanner.Err()
}

// Save writes both index files, creating parent directories as needed.
func (idx *Index) Save(dataPath, docsPath string) error {
	if err := writeWith(dataPath, idx.WriteData); err != nil {
		return err
	}
	return writeWith(docsPath, idx.WriteDocs)
}

// Load reads both index files into a fresh index.
func Load(dataPath, docsPath string) (*Index, error) {
	idx := New()
	if err := readWith(dataPath, idx.ReadData); err != nil {
		return nil, err
	}
	if err := readWith(docsPath, idx.ReadDocs); err != nil {
		return nil, err
	}
	return idx, nil
}

func writeWith(path string, write func(io.Writer) error) error {
	if parent := filepath.Dir(path); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("failed to create directory '%s': %w", parent, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create '%s': %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}
	return nil
}

func readWith(path string, read func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open '%s': %w", path, err)
	}
	defer f.Close()

	if err := read(f); err != nil {
		return fmt.Errorf("failed to read '%s': %w", path, err)
	}
	return nil
}
