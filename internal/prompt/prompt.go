// Package prompt asks the user a single free-text question.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrCancelled is returned when the user aborts instead of answering.
var ErrCancelled = errors.New("prompt cancelled")

// Prompter shows question and blocks until one line of input arrives.
type Prompter interface {
	Ask(ctx context.Context, question string) (string, error)
}

// LinePrompter reads answers line by line from any reader.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Ask returns the line exactly as typed, minus its line terminator.
// Surrounding spaces are kept.
func (p *LinePrompter) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprintf(p.out, "? %s ", question)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("no answer given: %w", io.ErrUnexpectedEOF)
		}
		return "", fmt.Errorf("read answer: %w", err)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
