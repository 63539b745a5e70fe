package index

import (
	"strconv"

	"github.com/stiksxgod/infsearch/internal/analyzer"
)

func syntheticLabel(docID int) string {
	return "Doc #" + strconv.Itoa(docID)
}

// Builder assigns document ids in order of arrival and turns analyzed
// documents into postings.
type Builder struct {
	idx    *Index
	nextID int
}

// NewBuilder returns a builder over a fresh index.
func NewBuilder() *Builder {
	return &Builder{idx: New()}
}

// Add analyzes one document, records its postings and label, and
// returns the assigned document id. An empty label gets the synthetic
// "Doc #<id>" form.
func (b *Builder) Add(text, label string) int {
	docID := b.nextID
	b.nextID++

	tokens := analyzer.Analyze(text)

	// Per-document frequencies, preserving first-appearance order so
	// posting insertion stays deterministic.
	counts := make(map[string]int, len(tokens))
	unique := make([]string, 0, len(tokens))
	for _, term := range tokens {
		if _, seen := counts[term]; !seen {
			unique = append(unique, term)
		}
		counts[term]++
	}

	for _, term := range unique {
		b.idx.Insert(term, docID, counts[term])
	}

	if label == "" {
		label = syntheticLabel(docID)
	}
	b.idx.AddDoc(docID, label, len(tokens))

	return docID
}

// DocCount returns the number of documents added so far.
func (b *Builder) DocCount() int {
	return b.nextID
}

// Index returns the built index.
func (b *Builder) Index() *Index {
	return b.idx
}
