package doit

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DestroyQuestion is asked before a container is stopped and removed.
const DestroyQuestion = "Are you sure you want to destroy 🔥 (and murder 🔪) this container and all of its happy friends?"

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

type promptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptConfirmer returns a Confirmer that writes the question to out and
// reads the answer from in. The default answer is no.
func NewPromptConfirmer(in io.Reader, out io.Writer) Confirmer {
	return &promptConfirmer{in: bufio.NewReader(in), out: out}
}

// Confirm shows question with a (y/N) hint until it gets a usable answer.
// An empty line or end of input counts as no.
func (p *promptConfirmer) Confirm(ctx context.Context, question string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "%s (y/N) ", question)
		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("couldn't read from stdin: %w", err)
		}
		eof := err != nil
		if eof {
			fmt.Fprintln(p.out)
		}

		answer, ok := parseAnswer(line)
		slog.InfoContext(ctx, "promptConfirmer.Confirm", "answer", answer, "ok", ok, "eof", eof)
		if ok || eof {
			return answer, nil
		}
		fmt.Fprintln(p.out, "Please answer yes or no.")
	}
}

// parseAnswer returns the answer and whether the input was recognized.
// Blank input is recognized as the default, no.
func parseAnswer(line string) (answer bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return false, true
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}

// AlwaysConfirm is a Confirmer that answers yes without asking.
type AlwaysConfirm struct{}

func (AlwaysConfirm) Confirm(context.Context, string) (bool, error) {
	return true, nil
}
