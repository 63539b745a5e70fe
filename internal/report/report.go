// Package report renders a batch of queries and their ranked results
// into a plain-text dump through a Handlebars template.
package report

import (
	"fmt"
	"strconv"

	"github.com/aymerick/raymond"

	"github.com/stiksxgod/infsearch/internal/index"
	"github.com/stiksxgod/infsearch/internal/search"
	"github.com/stiksxgod/infsearch/internal/utils"
)

// DefaultQueries is the canned query set used when no query file is given.
var DefaultQueries = []string{
	"россия & сша",
	"путин | медведев",
	"экономика",
}

// Row is one rendered result line.
type Row struct {
	DocID int
	Score float64
	Label string
}

// QueryResult holds the outcome of one dumped query.
type QueryResult struct {
	Query string
	Total int
	Rows  []Row
}

// The dump is plain text, so fields render with triple-stash to skip
// HTML escaping (queries contain "&").
const reportTemplate = `Search dump: {{queryCount}} queries against {{docCount}} documents

{{#each queries}}Query> {{{query}}}
Found {{total}} documents:
{{#each results}}[{{docid}}] (score: {{fmtScore score}}) {{{label}}}
{{/each}}
{{/each}}`

func init() {
	safeRegisterHelper("fmtScore", func(score float64) string {
		return strconv.FormatFloat(score, 'g', 6, 64)
	})
}

func safeRegisterHelper(name string, helper interface{}) {
	defer func() {
		if r := recover(); r != nil {
			// Helper already registered, that's OK
		}
	}()
	raymond.RegisterHelper(name, helper)
}

// Run evaluates each query against the engine, keeping at most limit
// result rows per query.
func Run(eng *search.Engine, idx *index.Index, queries []string, limit int) []QueryResult {
	out := make([]QueryResult, 0, len(queries))
	for _, q := range queries {
		results := eng.Search(q)

		qr := QueryResult{Query: q, Total: len(results)}
		for i, r := range results {
			if limit > 0 && i >= limit {
				break
			}
			qr.Rows = append(qr.Rows, Row{DocID: r.DocID, Score: r.Score, Label: idx.Label(r.DocID)})
		}
		out = append(out, qr)
	}
	return out
}

// Render expands the dump template over the query results.
func Render(docCount int, results []QueryResult) (string, error) {
	queries := make([]map[string]interface{}, 0, len(results))
	for _, qr := range results {
		rows := make([]map[string]interface{}, 0, len(qr.Rows))
		for _, row := range qr.Rows {
			rows = append(rows, map[string]interface{}{
				"docid": row.DocID,
				"score": row.Score,
				"label": row.Label,
			})
		}
		queries = append(queries, map[string]interface{}{
			"query":   qr.Query,
			"total":   qr.Total,
			"results": rows,
		})
	}

	ctx := map[string]interface{}{
		"queryCount": len(results),
		"docCount":   docCount,
		"queries":    queries,
	}

	out, err := raymond.Render(reportTemplate, ctx)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return out, nil
}

// Write renders the report and writes it to path.
func Write(path string, docCount int, results []QueryResult) error {
	out, err := Render(docCount, results)
	if err != nil {
		return err
	}
	return utils.WriteFile(path, []byte(out))
}
