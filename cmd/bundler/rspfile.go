package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-shellwords"
)

const responseFileName = "options.rsp"

// expandResponseFiles replaces every "@path" argument with the tokens read
// from path. Blank lines and lines starting with '#' are skipped; each other
// line is split shell-style, so quoted values stay whole. Tokens read from a
// response file are not expanded again.
func expandResponseFiles(args []string) ([]string, error) {
	expanded := make([]string, 0, len(args))
	for _, arg := range args {
		if len(arg) < 2 || !strings.HasPrefix(arg, "@") {
			expanded = append(expanded, arg)
			continue
		}
		tokens, err := readResponseFile(arg[1:])
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, tokens...)
	}
	return expanded, nil
}

func readResponseFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open response file: %w", err)
	}
	defer f.Close()

	var tokens []string
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words, err := shellwords.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		tokens = append(tokens, words...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read response file %s: %w", path, err)
	}
	return tokens, nil
}

// rspOptions are the answers collected by create-rsp.
type rspOptions struct {
	Language         string
	Output           string
	Note             bool
	Sort             string
	RemoveEmptyLines bool
	Author           string
}

// Lines renders the response file, one token or flag/value pair per line.
// Every typed value is quoted so shell metacharacters and spaces in an answer
// read back as that single value.
func (o rspOptions) Lines() []string {
	lines := []string{
		"bundle",
		"--language " + quoteArg(compactLanguageList(o.Language)),
		"--output " + quoteArg(o.Output),
	}
	if o.Note {
		lines = append(lines, "--note")
	}
	if o.RemoveEmptyLines {
		lines = append(lines, "--remove-empty-lines")
	}
	lines = append(lines, "--sort "+quoteArg(o.Sort))
	if o.Author != "" {
		lines = append(lines, "--author "+quoteArg(o.Author))
	}
	return lines
}

// compactLanguageList turns "cs, java" into "cs,java".
func compactLanguageList(language string) string {
	parts := strings.Split(language, ",")
	kept := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ",")
}

func quoteArg(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

func writeResponseFile(path string, opts rspOptions) error {
	data := strings.Join(opts.Lines(), "\n") + "\n"
	if err := atomicWriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
