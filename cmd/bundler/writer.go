package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

const utf8BOM = "\ufeff"

// bundleLayout controls how source files are rendered into the bundle.
type bundleLayout struct {
	Root             string
	Author           string
	Note             bool
	RemoveEmptyLines bool
}

// writeBundle renders files into w: an optional author header, then each
// file with an optional source note and a trailing blank separator line.
func writeBundle(w io.Writer, files []string, layout bundleLayout) error {
	bw := bufio.NewWriter(w)

	if layout.Author != "" {
		fmt.Fprintf(bw, "// Author: %s\n\n", layout.Author)
	}

	for _, file := range files {
		if layout.Note {
			rel, err := filepath.Rel(layout.Root, file)
			if err != nil {
				rel = file
			}
			fmt.Fprintf(bw, "// --- Source: %s ---\n", rel)
		}

		if err := copyFileLines(bw, file, layout.RemoveEmptyLines); err != nil {
			// Keep what was already rendered on disk.
			_ = bw.Flush()
			return err
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}

// copyFileLines writes every line of path to w, terminated by "\n".
func copyFileLines(w *bufio.Writer, path string, removeEmpty bool) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer src.Close()

	r := bufio.NewReader(src)
	first := true
	for {
		line, err := readLine(r)
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if errors.Is(err, io.EOF) && line == "" {
			return nil
		}
		if first {
			line = strings.TrimPrefix(line, utf8BOM)
			first = false
		}
		if !(removeEmpty && strings.TrimSpace(line) == "") {
			w.WriteString(line)
			w.WriteString("\n")
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}

// readLine reads up to the next "\n", "\r\n" or lone "\r" and returns the line
// without its terminator. io.EOF is returned with the final unterminated line.
func readLine(r *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		b, err := r.ReadByte()
		if err != nil {
			return sb.String(), err
		}
		switch b {
		case '\n':
			return sb.String(), nil
		case '\r':
			if next, err := r.Peek(1); err == nil && next[0] == '\n' {
				_, _ = r.ReadByte()
			}
			return sb.String(), nil
		}
		sb.WriteByte(b)
	}
}

// writeBundleFile creates (or truncates) path and renders the bundle into it.
// An advisory <path>.lock keeps two runs from writing the same bundle at once.
// When tee is non-nil it receives a copy of everything written.
func writeBundleFile(path string, files []string, layout bundleLayout, tee io.Writer) (err error) {
	lockPath := path + ".lock"
	lock := flock.New(lockPath)
	acquired, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", path, err)
	}
	if !acquired {
		return fmt.Errorf("another bundle is already being written to %s", path)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lockPath)
	}()

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	var w io.Writer = out
	if tee != nil {
		w = io.MultiWriter(out, tee)
	}
	return writeBundle(w, files, layout)
}
