package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	sortByName = "name"
	sortByType = "type"
)

// collectFiles walks root and returns the absolute paths of every file the
// filter accepts, in walk order. Symlinks count only when they resolve to a
// regular file; links to directories are neither listed nor followed.
func collectFiles(root string, filter *Filter) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", root, err)
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != absRoot && !filter.ShouldDescend(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil || !target.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}
		if filter.ShouldInclude(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", absRoot, err)
	}
	return files, nil
}

// sortFiles orders files in place. Only "type" (any case) sorts by extension
// first; every other mode sorts by base filename. Both sorts are stable.
func sortFiles(files []string, mode string) {
	if strings.EqualFold(mode, sortByType) {
		sort.SliceStable(files, func(i, j int) bool {
			ei, ej := filepath.Ext(files[i]), filepath.Ext(files[j])
			if ei != ej {
				return ei < ej
			}
			return filepath.Base(files[i]) < filepath.Base(files[j])
		})
		return
	}
	sort.SliceStable(files, func(i, j int) bool {
		return filepath.Base(files[i]) < filepath.Base(files[j])
	})
}
