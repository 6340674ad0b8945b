package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageTableLookup(t *testing.T) {
	table := newLanguageTable(nil)

	tests := []struct {
		token string
		want  string
		ok    bool
	}{
		{"cs", ".cs", true},
		{"CSharp", ".cs", true},
		{"PY", ".py", true},
		{"typescript", ".ts", true},
		{"json", ".json", true},
		{"go", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := table.Lookup(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLanguageTableExtensionsAreDistinct(t *testing.T) {
	exts := newLanguageTable(nil).Extensions()
	assert.Equal(t, []string{".cpp", ".cs", ".css", ".h", ".html", ".java", ".js", ".json", ".py", ".sql", ".ts"}, exts)
}

func TestLanguageTableResolve(t *testing.T) {
	table := newLanguageTable(nil)

	tests := []struct {
		name     string
		language string
		want     []string
	}{
		{"single token", "cs", []string{".cs"}},
		{"aliases collapse", "cs,csharp", []string{".cs"}},
		{"whitespace and case", " Java , PY ", []string{".java", ".py"}},
		{"empty entries dropped", "js,,", []string{".js"}},
		{"unknown tokens dropped", "cobol,ts", []string{".ts"}},
		{"only unknown", "cobol", nil},
		{"all", "ALL", table.Extensions()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Resolve(tt.language)
			assert.Len(t, got, len(tt.want))
			for _, ext := range tt.want {
				assert.True(t, got[ext], "expected %s in %v", ext, got)
			}
		})
	}
}

func TestLanguageTableExtraEntries(t *testing.T) {
	table := newLanguageTable(map[string]string{
		"Go":   "go",
		"cs":   ".csx",
		"  ":   ".skip",
		"rust": "",
	})

	ext, ok := table.Lookup("go")
	assert.True(t, ok)
	assert.Equal(t, ".go", ext)

	ext, _ = table.Lookup("cs")
	assert.Equal(t, ".csx", ext)

	_, ok = table.Lookup("rust")
	assert.False(t, ok)

	// The built-in table is left alone.
	ext, _ = newLanguageTable(nil).Lookup("cs")
	assert.Equal(t, ".cs", ext)
}
