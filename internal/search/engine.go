// Package search implements the boolean query engine: "|" combines
// groups of "&"-ed terms, groups intersect posting lists, and the final
// candidate set is ranked by TF-IDF against the whole query.
package search

import (
	"strings"

	"github.com/stiksxgod/infsearch/internal/analyzer"
	"github.com/stiksxgod/infsearch/internal/index"
)

// Result is one ranked document.
type Result struct {
	DocID int
	Score float64
}

// Engine answers queries against a loaded index.
type Engine struct {
	idx *index.Index
}

// NewEngine returns an engine over idx.
func NewEngine(idx *index.Index) *Engine {
	return &Engine{idx: idx}
}

// Search evaluates the boolean query and returns all matching documents
// ranked by descending TF-IDF score. Degenerate queries (empty, only
// separators, no analyzable terms) return an empty slice.
func (e *Engine) Search(query string) []Result {
	return e.Rank(e.Execute(query), query)
}

// Execute evaluates the boolean expression and returns the matching
// document ids in ascending order.
func (e *Engine) Execute(query string) []int {
	var final []int

	for _, group := range strings.Split(query, "|") {
		groupDocs, usable := e.evalGroup(group)
		if !usable {
			continue
		}
		final = union(final, groupDocs)
	}
	return final
}

// evalGroup intersects the posting docID sets of the group's and_terms.
// The second result is false when the group has no usable terms.
func (e *Engine) evalGroup(group string) ([]int, bool) {
	var docs []int
	usable := false

	for _, raw := range strings.Split(group, "&") {
		tokens := analyzer.Analyze(raw)
		if len(tokens) == 0 {
			continue
		}
		// Only the first analyzed token of an and_term is used.
		term := tokens[0]

		termDocs := e.termDocs(term)
		if !usable {
			docs = termDocs
			usable = true
			continue
		}
		docs = intersect(docs, termDocs)
	}
	return docs, usable
}

func (e *Engine) termDocs(term string) []int {
	postings, ok := e.idx.Lookup(term)
	if !ok {
		return nil
	}
	docs := make([]int, len(postings))
	for i, p := range postings {
		docs[i] = p.DocID
	}
	return docs
}

// intersect merges two ascending unique id lists into their ordered
// intersection.
func intersect(a, b []int) []int {
	result := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case b[j] < a[i]:
			j++
		default:
			result = append(result, a[i])
			i++
			j++
		}
	}
	return result
}

// union merges two ascending unique id lists into their ordered union.
func union(a, b []int) []int {
	result := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			result = append(result, a[i])
			i++
		case b[j] < a[i]:
			result = append(result, b[j])
			j++
		default:
			result = append(result, a[i])
			i++
			j++
		}
	}
	result = append(result, a[i:]...)
	result = append(result, b[j:]...)
	return result
}
