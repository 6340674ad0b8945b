package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// excludedSegments are build-output directory names that are never bundled.
var excludedSegments = []string{"bin", "obj", "debug"}

// Filter handles file filtering logic
type Filter struct {
	baseDir         string
	outputName      string
	extensions      map[string]bool
	gitIgnore       *ignore.GitIgnore
	excludePatterns []string
}

// NewFilter creates a filter for files under dir. Files named like output are
// rejected, and only extensions in the given set are accepted. When
// respectGitIgnore is set, the .gitignore at dir (if any) is honored as well.
func NewFilter(
	dir string,
	output string,
	extensions map[string]bool,
	respectGitIgnore bool,
	excludePatterns []string,
) (*Filter, error) {
	for _, pat := range excludePatterns {
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pat)
		}
	}

	f := &Filter{
		baseDir:         dir,
		extensions:      extensions,
		excludePatterns: excludePatterns,
	}
	if output != "" {
		f.outputName = filepath.Base(output)
	}

	if respectGitIgnore {
		gitIgnorePath := filepath.Join(dir, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			gitIgnore, err := ignore.CompileIgnoreFile(gitIgnorePath)
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", gitIgnorePath, err)
			}
			f.gitIgnore = gitIgnore
		}
	}

	return f, nil
}

// ShouldDescend reports whether the walker should enter the directory at path.
func (f *Filter) ShouldDescend(path string) bool {
	rel, ok := f.relPath(path)
	if !ok || rel == "." {
		return true
	}
	if hasExcludedSegment(rel) {
		return false
	}
	if f.gitIgnore != nil && f.gitIgnore.MatchesPath(rel+"/") {
		return false
	}
	return !f.matchesAnyPattern(rel)
}

// ShouldInclude returns true if the file at path belongs in the bundle
func (f *Filter) ShouldInclude(path string) bool {
	rel, ok := f.relPath(path)
	if !ok {
		return false
	}

	if hasExcludedSegment(rel) {
		return false
	}

	// Never bundle the output into itself
	if f.outputName != "" && strings.HasSuffix(path, f.outputName) {
		return false
	}

	if !f.extensions[strings.ToLower(filepath.Ext(path))] {
		return false
	}

	if f.gitIgnore != nil && f.gitIgnore.MatchesPath(rel) {
		return false
	}

	return !f.matchesAnyPattern(rel)
}

// relPath returns path relative to the base directory with forward slashes.
func (f *Filter) relPath(path string) (string, bool) {
	rel, err := filepath.Rel(f.baseDir, path)
	if err != nil {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func hasExcludedSegment(rel string) bool {
	for _, part := range strings.Split(rel, "/") {
		for _, seg := range excludedSegments {
			if strings.EqualFold(part, seg) {
				return true
			}
		}
	}
	return false
}

func (f *Filter) matchesAnyPattern(rel string) bool {
	for _, pattern := range f.excludePatterns {
		matched, err := doublestar.Match(pattern, rel)
		if err == nil && matched {
			return true
		}
	}
	return false
}
