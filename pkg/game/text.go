package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// TextIO implements the IO port over plain line-based text streams.
type TextIO struct {
	Reader *bufio.Reader
	Writer io.Writer
}

// NewTextIO creates an IO port for standard text streams. Nil arguments
// default to Stdin/Stdout.
func NewTextIO(r io.Reader, w io.Writer) *TextIO {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &TextIO{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
}

func (t *TextIO) AskYesNo(ctx context.Context, prompt string) (bool, error) {
	answer, err := t.AskFreeText(ctx, prompt)
	if err != nil {
		return false, err
	}
	return Affirmative(answer), nil
}

func (t *TextIO) AskFreeText(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if prompt != "" {
		if _, err := fmt.Fprintln(t.Writer, prompt); err != nil {
			return "", fmt.Errorf("write prompt: %w", err)
		}
	}
	line, err := t.Reader.ReadString('\n')
	// A final line without a trailing newline is still an answer.
	if err != nil && !(err == io.EOF && line != "") {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (t *TextIO) EmitLine(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(t.Writer, line); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}
