package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errInputClosed = errors.New("input closed before a required answer was given")

type promptState int

const (
	promptAwaiting promptState = iota
	promptValid
	promptInvalid
)

// prompt is one question of an interactive flow. Feed moves it from
// Awaiting to Valid or Invalid; an Invalid prompt is re-asked.
type prompt struct {
	Question string
	Retry    string
	Required bool

	state promptState
	value string
}

// Feed records one line of input and returns the resulting state.
func (p *prompt) Feed(line string) promptState {
	line = strings.TrimSpace(line)
	if p.Required && line == "" {
		p.state = promptInvalid
		return p.state
	}
	p.value = line
	p.state = promptValid
	return p.state
}

// Value is the accepted answer; it is only meaningful once the prompt is Valid.
func (p *prompt) Value() string {
	return p.value
}

// prompter asks prompts on out and reads answers from in, one line each.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// Ask runs p until it reaches the Valid state. End of input accepts an
// optional prompt with an empty answer and fails a required one.
func (pr *prompter) Ask(p *prompt) (string, error) {
	p.state = promptAwaiting
	fmt.Fprint(pr.out, p.Question)
	for {
		line, err := readLine(pr.in)
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		eof := errors.Is(err, io.EOF)
		if eof && line == "" && p.Required {
			fmt.Fprintln(pr.out)
			return "", errInputClosed
		}

		switch p.Feed(line) {
		case promptValid:
			return p.Value(), nil
		case promptInvalid:
			if eof {
				fmt.Fprintln(pr.out)
				return "", errInputClosed
			}
			retry := p.Retry
			if retry == "" {
				retry = p.Question
			}
			fmt.Fprint(pr.out, retry)
		}
	}
}

// Confirm asks a y/n question. Only "y" in either case is a yes.
func (pr *prompter) Confirm(question string) (bool, error) {
	answer, err := pr.Ask(&prompt{Question: question})
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}
