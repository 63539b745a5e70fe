package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/stiksxgod/infsearch/internal/config"
	"github.com/stiksxgod/infsearch/internal/corpus"
	"github.com/stiksxgod/infsearch/internal/index"
	"github.com/stiksxgod/infsearch/internal/report"
	"github.com/stiksxgod/infsearch/internal/search"
	"github.com/stiksxgod/infsearch/internal/utils"
)

func main() {
	// Define subcommands
	indexCmd := flag.NewFlagSet("index", flag.ExitOnError)
	indexConfig := indexCmd.String("config", "search.toml", "Path to config file")
	indexMarkdown := indexCmd.String("markdown", "", "Index a directory of markdown files instead of the line corpus")

	searchCmd := flag.NewFlagSet("search", flag.ExitOnError)
	searchConfig := searchCmd.String("config", "search.toml", "Path to config file")

	dumpCmd := flag.NewFlagSet("dump", flag.ExitOnError)
	dumpConfig := dumpCmd.String("config", "search.toml", "Path to config file")
	dumpQueries := dumpCmd.String("queries", "", "File with one query per line (default: built-in set)")
	dumpOut := dumpCmd.String("out", "dump_output.txt", "Output file for the dump")

	packCmd := flag.NewFlagSet("pack", flag.ExitOnError)
	packOut := packCmd.String("out", "solution.zip", "Output archive")

	if len(os.Args) < 2 {
		fmt.Println("Usage: infsearch [command]")
		fmt.Println("Commands:")
		fmt.Println("  index      Build the index from the corpus")
		fmt.Println("  search     Run the search engine (interactive)")
		fmt.Println("  dump       Run a query batch and save the output")
		fmt.Println("  pack       Zip the project files")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "index":
		indexCmd.Parse(os.Args[2:])
		handleIndex(*indexConfig, *indexMarkdown, indexCmd.Arg(0))

	case "search":
		searchCmd.Parse(os.Args[2:])
		handleSearch(*searchConfig)

	case "dump":
		dumpCmd.Parse(os.Args[2:])
		handleDump(*dumpConfig, *dumpQueries, *dumpOut)

	case "pack":
		packCmd.Parse(os.Args[2:])
		handlePack(*packOut)

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func loadConfig(path string) *config.Config {
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		log.Printf("Warning: could not load config file: %v. Using defaults.", err)
		cfg = config.NewDefaultConfig()
		cfg.UpdateFromEnv()
	}
	return cfg
}

func handleIndex(configPath, markdownDir, corpusPath string) {
	cfg := loadConfig(configPath)
	if corpusPath != "" {
		cfg.Corpus.Path = corpusPath
	}
	if markdownDir != "" {
		cfg.Corpus.MarkdownDir = markdownDir
	}

	fmt.Println("Building index...")
	start := time.Now()

	builder := index.NewBuilder()
	add := func(doc corpus.Document) error {
		docID := builder.Add(doc.Text, doc.Label)
		if (docID+1)%1000 == 0 {
			fmt.Printf("Processed %d documents\r", docID+1)
		}
		return nil
	}

	var err error
	if cfg.Corpus.MarkdownDir != "" {
		err = corpus.EachMarkdown(cfg.Corpus.MarkdownDir, add)
	} else {
		err = corpus.EachLine(cfg.Corpus.Path, cfg.Corpus.Urls, add)
	}
	if err != nil {
		log.Fatalf("Failed to read corpus: %v", err)
	}

	idx := builder.Index()
	fmt.Printf("\nIndex built in %.3f seconds.\n", time.Since(start).Seconds())
	fmt.Printf("Total documents: %d\n", idx.DocCount())
	fmt.Printf("Total unique terms: %d\n", idx.TermCount())

	fmt.Printf("Saving index to '%s'...\n", cfg.Index.Data)
	if err := idx.Save(cfg.Index.Data, cfg.Index.Docs); err != nil {
		log.Fatalf("Failed to save index: %v", err)
	}
	fmt.Println("Done.")
}

func loadIndex(cfg *config.Config) *index.Index {
	fmt.Println("Loading index...")
	idx, err := index.Load(cfg.Index.Data, cfg.Index.Docs)
	if err != nil {
		log.Fatalf("Failed to load index: %v", err)
	}
	if idx.TermCount() == 0 {
		log.Fatalf("Index is empty. Run the indexer first.")
	}
	return idx
}

func handleSearch(configPath string) {
	cfg := loadConfig(configPath)
	idx := loadIndex(cfg)
	eng := search.NewEngine(idx)

	fmt.Printf("Index loaded. %d terms, %d docs.\n", idx.TermCount(), idx.DocCount())
	fmt.Println("Enter query (or 'exit'):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nQuery> ")
		if !scanner.Scan() {
			break
		}
		query := scanner.Text()
		if query == "exit" {
			break
		}

		start := time.Now()
		results := eng.Search(query)
		elapsed := time.Since(start)

		fmt.Printf("Found %d documents in %.6f sec:\n", len(results), elapsed.Seconds())

		limit := cfg.Search.Limit
		for i, r := range results {
			if i >= limit {
				break
			}
			fmt.Printf("[%d] (score: %g) %s\n", r.DocID, r.Score, idx.Label(r.DocID))
		}
		if len(results) > limit {
			fmt.Printf("... and %d more.\n", len(results)-limit)
		}
	}
}

func handleDump(configPath, queriesPath, outPath string) {
	cfg := loadConfig(configPath)
	idx := loadIndex(cfg)
	eng := search.NewEngine(idx)

	queries := report.DefaultQueries
	if queriesPath != "" {
		content, err := utils.ReadToString(queriesPath)
		if err != nil {
			log.Fatalf("Failed to read queries: %v", err)
		}
		queries = nil
		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || line == "exit" {
				continue
			}
			queries = append(queries, line)
		}
	}

	fmt.Println("Creating execution dump...")
	results := report.Run(eng, idx, queries, cfg.Search.Limit)
	if err := report.Write(outPath, idx.DocCount(), results); err != nil {
		log.Fatalf("Failed to write dump: %v", err)
	}
	fmt.Printf("Dump created in '%s'\n", outPath)
}

func handlePack(outPath string) {
	fmt.Println("Packing project...")
	excludes := []string{
		".git", "bin", "data", "archive", "dump_output.txt", outPath,
	}
	if err := utils.ZipDir(".", outPath, excludes); err != nil {
		log.Fatalf("Failed to pack project: %v", err)
	}
	fmt.Printf("Project packed into '%s'\n", outPath)
}
