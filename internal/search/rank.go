package search

import (
	"math"
	"sort"

	"github.com/stiksxgod/infsearch/internal/analyzer"
)

// Rank scores the candidate documents with TF-IDF over the re-analyzed
// original query and returns them in descending score order. Ties keep
// the candidate order, which is ascending docID.
//
//	score(d) = Σ_t tf(t,d) · log10(N / (df(t)+1))
func (e *Engine) Rank(docs []int, query string) []Result {
	terms := analyzer.Analyze(query)
	total := float64(e.idx.DocCount())

	results := make([]Result, 0, len(docs))
	for _, docID := range docs {
		score := 0.0
		for _, term := range terms {
			postings, ok := e.idx.Lookup(term)
			if !ok {
				continue
			}
			tf := 0
			for _, p := range postings {
				if p.DocID == docID {
					tf = p.TF
					break
				}
				if p.DocID > docID {
					break
				}
			}
			if tf == 0 {
				continue
			}
			idf := math.Log10(total / (float64(len(postings)) + 1))
			score += float64(tf) * idf
		}
		results = append(results, Result{DocID: docID, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
