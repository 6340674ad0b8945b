package main

import (
	"sort"
	"strings"
)

const allLanguages = "all"

// builtinLanguages maps a language token to the extension bundled for it.
var builtinLanguages = map[string]string{
	"cs":         ".cs",
	"csharp":     ".cs",
	"java":       ".java",
	"py":         ".py",
	"python":     ".py",
	"js":         ".js",
	"javascript": ".js",
	"ts":         ".ts",
	"typescript": ".ts",
	"html":       ".html",
	"css":        ".css",
	"cpp":        ".cpp",
	"h":          ".h",
	"sql":        ".sql",
	"json":       ".json",
}

// languageTable is an immutable token -> extension lookup. Tokens are matched
// case-insensitively.
type languageTable struct {
	byToken map[string]string
}

// newLanguageTable builds the table from the built-in entries plus extra ones
// (usually the languages section of a .bundle file). Extra entries override
// built-ins with the same token; extensions without a leading dot get one.
func newLanguageTable(extra map[string]string) *languageTable {
	byToken := make(map[string]string, len(builtinLanguages)+len(extra))
	for token, ext := range builtinLanguages {
		byToken[token] = ext
	}
	for token, ext := range extra {
		token = strings.ToLower(strings.TrimSpace(token))
		ext = strings.ToLower(strings.TrimSpace(ext))
		if token == "" || ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		byToken[token] = ext
	}
	return &languageTable{byToken: byToken}
}

// Lookup returns the extension registered for token.
func (t *languageTable) Lookup(token string) (string, bool) {
	ext, ok := t.byToken[strings.ToLower(token)]
	return ext, ok
}

// Extensions returns every distinct extension in the table, sorted.
func (t *languageTable) Extensions() []string {
	seen := make(map[string]bool, len(t.byToken))
	exts := make([]string, 0, len(t.byToken))
	for _, ext := range t.byToken {
		if seen[ext] {
			continue
		}
		seen[ext] = true
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Resolve turns a --language argument into the set of extensions to bundle.
// Unknown tokens are dropped without error, so the result may be empty.
func (t *languageTable) Resolve(language string) map[string]bool {
	selected := make(map[string]bool)
	if strings.ToLower(language) == allLanguages {
		for _, ext := range t.Extensions() {
			selected[ext] = true
		}
		return selected
	}
	for _, token := range strings.Split(language, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if ext, ok := t.Lookup(token); ok {
			selected[ext] = true
		}
	}
	return selected
}
