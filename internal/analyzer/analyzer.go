// Package analyzer turns raw text into the canonical term sequence used
// by both the indexer and the query engine: Unicode-letter segmentation,
// lowercasing, then Russian stemming.
package analyzer

import (
	"unicode"

	"github.com/stiksxgod/infsearch/internal/stemmer"
)

// Analyze splits text into tokens and returns their stemmed forms in
// input order. A token is a maximal run of Unicode letters; every other
// code point, including the hyphen, terminates the current token and is
// discarded.
func Analyze(text string) []string {
	terms := make([]string, 0, len(text)/8+1)
	token := make([]rune, 0, 16)

	flush := func() {
		if len(token) == 0 {
			return
		}
		terms = append(terms, stemmer.Stem(string(token)))
		token = token[:0]
	}

	for _, r := range text {
		if unicode.IsLetter(r) {
			token = append(token, unicode.ToLower(r))
			continue
		}
		flush()
	}
	flush()

	return terms
}
