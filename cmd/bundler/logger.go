package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// isTerminal reports whether w is a TTY that should receive colored output.
// NO_COLOR disables color everywhere.
func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newColor(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// consoleLogger writes timestamped diagnostics, "[HH:MM:SS] [LEVEL] message".
// Debug messages are dropped unless verbose is set.
type consoleLogger struct {
	writer  io.Writer
	verbose bool
	debug   *color.Color
	warn    *color.Color
}

func newConsoleLogger(w io.Writer, verbose bool) *consoleLogger {
	useColor := isTerminal(w)
	return &consoleLogger{
		writer:  w,
		verbose: verbose,
		debug:   newColor(useColor, color.FgHiBlack),
		warn:    newColor(useColor, color.FgYellow),
	}
}

func (l *consoleLogger) Debugf(format string, args ...any) {
	if l == nil || !l.verbose {
		return
	}
	l.log(l.debug, "DEBUG", format, args...)
}

func (l *consoleLogger) Warnf(format string, args ...any) {
	if l == nil {
		return
	}
	l.log(l.warn, "WARN", format, args...)
}

func (l *consoleLogger) log(c *color.Color, level string, format string, args ...any) {
	if l.writer == nil {
		return
	}
	ts := time.Now().Format("15:04:05")
	c.Fprintf(l.writer, "[%s] [%s] %s\n", ts, level, fmt.Sprintf(format, args...))
}

// reporter prints the user-facing result lines of a command.
type reporter struct {
	out     io.Writer
	success *color.Color
	notice  *color.Color
	failure *color.Color
}

func newReporter(w io.Writer) *reporter {
	useColor := isTerminal(w)
	return &reporter{
		out:     w,
		success: newColor(useColor, color.FgGreen),
		notice:  newColor(useColor, color.FgYellow),
		failure: newColor(useColor, color.FgRed),
	}
}

func (r *reporter) Success(format string, args ...any) {
	r.success.Fprintln(r.out, fmt.Sprintf(format, args...))
}

func (r *reporter) Notice(msg string) {
	r.notice.Fprintln(r.out, msg)
}

func (r *reporter) Failure(msg string) {
	r.failure.Fprintln(r.out, msg)
}

func (r *reporter) Plain(format string, args ...any) {
	fmt.Fprintln(r.out, fmt.Sprintf(format, args...))
}
