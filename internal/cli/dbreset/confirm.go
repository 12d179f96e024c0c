package dbreset

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ConfirmQuestion is asked before any file is touched.
const ConfirmQuestion = "This will backup and clear test JSON files. Continue? [y/N]: "

// Confirmer decides whether the reset may proceed.
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// AutoConfirmer always agrees.
type AutoConfirmer struct{}

func (AutoConfirmer) Confirm(context.Context, string) (bool, error) {
	return true, nil
}

// PromptConfirmer asks on Out and reads one line from In. Only "y" and "yes"
// (any case) count as agreement; end of input is a refusal. Cancelling ctx
// abandons the read and returns ctx.Err().
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer
}

type promptAnswer struct {
	line string
	err  error
}

func (p PromptConfirmer) Confirm(ctx context.Context, question string) (bool, error) {
	if _, err := fmt.Fprint(p.Out, question); err != nil {
		return false, err
	}

	// Buffered so the reader goroutine can finish after a cancel.
	answers := make(chan promptAnswer, 1)
	go func() {
		line, err := bufio.NewReader(p.In).ReadString('\n')
		answers <- promptAnswer{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.Out)
		return false, ctx.Err()
	case answer := <-answers:
		if errors.Is(answer.err, io.EOF) {
			fmt.Fprintln(p.Out)
		} else if answer.err != nil {
			return false, answer.err
		}
		return isAffirmative(answer.line), nil
	}
}

func isAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
