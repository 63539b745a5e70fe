package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TempData creates a temporary directory with a data/ subdirectory, the
// layout the indexer and searcher expect.
func TempData(t *testing.T) string {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "data"), 0755))
	return tmpDir
}

// WriteFile writes content to a file in the test directory
func WriteFile(t *testing.T, dir, path, content string) {
	fullPath := filepath.Join(dir, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
	require.NoError(t, os.WriteFile(fullPath, []byte(content), 0644))
}

// ReadFile reads content from a test file
func ReadFile(t *testing.T, dir, path string) string {
	fullPath := filepath.Join(dir, path)
	content, err := os.ReadFile(fullPath)
	require.NoError(t, err)
	return string(content)
}

// FileExists checks if a file exists
func FileExists(t *testing.T, path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
