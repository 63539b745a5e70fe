package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// CorpusConfig describes where indexable documents come from
type CorpusConfig struct {
	Path        string `toml:"path"`
	Urls        string `toml:"urls"`
	MarkdownDir string `toml:"markdown-dir"`
}

// DefaultCorpusConfig returns a corpus config with defaults
func DefaultCorpusConfig() CorpusConfig {
	return CorpusConfig{
		Path: "data/corpus.txt",
		Urls: "data/urls.txt",
	}
}

// IndexConfig describes where the persistent index lives
type IndexConfig struct {
	Data string `toml:"data"`
	Docs string `toml:"docs"`
}

// DefaultIndexConfig returns an index config with defaults
func DefaultIndexConfig() IndexConfig {
	return IndexConfig{
		Data: "data/index_data.txt",
		Docs: "data/docs_map.txt",
	}
}

// SearchConfig contains query-time settings
type SearchConfig struct {
	Limit int `toml:"limit"`
}

// DefaultSearchConfig returns search settings with defaults
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Limit: 10,
	}
}

// Config is the top-level configuration
type Config struct {
	Corpus CorpusConfig `toml:"corpus"`
	Index  IndexConfig  `toml:"index"`
	Search SearchConfig `toml:"search"`
}

// NewDefaultConfig returns a config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Corpus: DefaultCorpusConfig(),
		Index:  DefaultIndexConfig(),
		Search: DefaultSearchConfig(),
	}
}

// LoadFromFile loads configuration from a search.toml file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return LoadFromString(string(data))
}

// LoadFromString loads configuration from a TOML string
func LoadFromString(content string) (*Config, error) {
	cfg := NewDefaultConfig()
	if err := toml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.UpdateFromEnv()
	return cfg, nil
}

// UpdateFromEnv updates config from environment variables
// Variables starting with INFSEARCH_ are used
// INFSEARCH_CORPUS_PATH -> corpus.path
// INFSEARCH_CORPUS_MARKDOWN__DIR -> corpus.markdown-dir
func (c *Config) UpdateFromEnv() {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "INFSEARCH_") {
			continue
		}

		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimPrefix(parts[0], "INFSEARCH_")
		value := parts[1]

		configKey := strings.ToLower(key)
		configKey = strings.ReplaceAll(configKey, "__", "-")
		configKey = strings.ReplaceAll(configKey, "_", ".")

		c.Set(configKey, value)
	}
}

// Set sets a configuration value using dot notation (e.g., "corpus.path")
func (c *Config) Set(key, value string) {
	parts := strings.SplitN(key, ".", 2)
	if len(parts) != 2 {
		return
	}

	switch parts[0] {
	case "corpus":
		c.setCorpusValue(parts[1], value)
	case "index":
		c.setIndexValue(parts[1], value)
	case "search":
		c.setSearchValue(parts[1], value)
	}
}

func (c *Config) setCorpusValue(key, value string) {
	switch strings.ToLower(key) {
	case "path":
		c.Corpus.Path = value
	case "urls":
		c.Corpus.Urls = value
	case "markdown-dir":
		c.Corpus.MarkdownDir = value
	}
}

func (c *Config) setIndexValue(key, value string) {
	switch strings.ToLower(key) {
	case "data":
		c.Index.Data = value
	case "docs":
		c.Index.Docs = value
	}
}

func (c *Config) setSearchValue(key, value string) {
	switch strings.ToLower(key) {
	case "limit":
		if limit, err := strconv.Atoi(value); err == nil && limit > 0 {
			c.Search.Limit = limit
		}
	}
}
