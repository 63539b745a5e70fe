package utils

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ZipDir archives the tree rooted at root into dest, storing paths
// relative to root. Entries matching any exclude prefix (or exact name)
// are skipped, as is the destination archive itself.
func ZipDir(root, dest string, excludes []string) error {
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create '%s': %w", dest, err)
	}
	zw := zip.NewWriter(out)

	destAbs, _ := filepath.Abs(dest)

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if abs, absErr := filepath.Abs(path); absErr == nil && abs == destAbs {
			return nil
		}
		for _, ex := range excludes {
			if rel == ex || strings.HasPrefix(rel, ex+"/") {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}
		if d.IsDir() {
			return nil
		}

		in, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open '%s': %w", path, err)
		}
		defer in.Close()

		w, err := zw.Create(rel)
		if err != nil {
			return fmt.Errorf("failed to add '%s': %w", rel, err)
		}
		_, err = io.Copy(w, in)
		return err
	})

	if walkErr != nil {
		zw.Close()
		out.Close()
		return fmt.Errorf("failed to pack '%s': %w", root, walkErr)
	}
	if err := zw.Close(); err != nil {
		out.Close()
		return fmt.Errorf("failed to finish '%s': %w", dest, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to finish '%s': %w", dest, err)
	}
	return nil
}
