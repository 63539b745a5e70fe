package utils

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadToString(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("кот"), 0o644))

	got, err := ReadToString(path)
	require.NoError(t, err)
	assert.Equal(t, "кот", got)

	_, err = ReadToString(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestWriteFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data", "out", "index.txt")

	require.NoError(t, WriteFile(path, []byte("x")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(got))
}

func TestZipDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteFile(filepath.Join(dir, "main.go"), []byte("package main")))
	require.NoError(t, WriteFile(filepath.Join(dir, "data", "corpus.txt"), []byte("кот")))
	require.NoError(t, WriteFile(filepath.Join(dir, ".git", "HEAD"), []byte("ref")))

	dest := filepath.Join(dir, "solution.zip")
	require.NoError(t, ZipDir(dir, dest, []string{".git", "data"}))

	r, err := zip.OpenReader(dest)
	require.NoError(t, err)
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"main.go"}, names)
}
