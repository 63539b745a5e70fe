// Package index implements the inverted index: build-time insertion,
// term lookup, the document map, and the line-oriented on-disk format.
package index

import "sort"

// Posting records one term occurrence count in one document.
type Posting struct {
	DocID int
	TF    int
}

// Index maps stemmed terms to posting lists ordered by ascending DocID.
// It is grown by the builder, serialized once, and reloaded read-only by
// the searcher; there is no in-place mutation after load.
type Index struct {
	postings map[string][]Posting
	labels   map[int]string
	lengths  map[int]int
}

// New returns an empty index.
func New() *Index {
	return &Index{
		postings: make(map[string][]Posting),
		labels:   make(map[int]string),
		lengths:  make(map[int]int),
	}
}

// Insert appends a posting to the term's list. Callers must supply
// strictly increasing docIDs per term; postings with stale docIDs are
// ignored to preserve the ordering invariant.
func (idx *Index) Insert(term string, docID, tf int) {
	list := idx.postings[term]
	if n := len(list); n > 0 && list[n-1].DocID >= docID {
		return
	}
	idx.postings[term] = append(list, Posting{DocID: docID, TF: tf})
}

// Lookup returns the posting list for term. The second result is false
// when the term is absent; an unknown term is not an error.
func (idx *Index) Lookup(term string) ([]Posting, bool) {
	list, ok := idx.postings[term]
	return list, ok
}

// TermCount returns the number of unique terms.
func (idx *Index) TermCount() int {
	return len(idx.postings)
}

// DocCount returns the number of documents known to the index.
func (idx *Index) DocCount() int {
	return len(idx.labels)
}

// AddDoc records a document's display label and analyzed token count.
func (idx *Index) AddDoc(docID int, label string, length int) {
	idx.labels[docID] = label
	idx.lengths[docID] = length
}

// Label returns the URL-or-label for docID, or a synthetic fallback.
func (idx *Index) Label(docID int) string {
	if label, ok := idx.labels[docID]; ok {
		return label
	}
	return syntheticLabel(docID)
}

// DocLength returns the analyzed token count of docID, or 0 if unknown.
func (idx *Index) DocLength(docID int) int {
	return idx.lengths[docID]
}

// Terms returns all terms in sorted order.
func (idx *Index) Terms() []string {
	terms := make([]string, 0, len(idx.postings))
	for term := range idx.postings {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// DocIDs returns all document ids in ascending order.
func (idx *Index) DocIDs() []int {
	ids := make([]int, 0, len(idx.labels))
	for id := range idx.labels {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
