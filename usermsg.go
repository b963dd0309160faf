package doit

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
)

// UserMessenger shows progress, banners and failures to the person at the terminal.
type UserMessenger interface {
	// Message prints a progress line.
	Message(ctx context.Context, msg string)
	// Banner prints a prominent success line.
	Banner(ctx context.Context, msg string)
	// Failure prints a diagnostic to the error stream.
	Failure(ctx context.Context, msg string)
}

type terminalMessenger struct {
	out    io.Writer
	errOut io.Writer

	dim    lipgloss.Style
	bold   lipgloss.Style
	failed lipgloss.Style
}

// NewTerminalMessenger returns a UserMessenger writing progress and banners
// to out and failures to errOut. Styling is dropped when a writer is not a
// terminal.
func NewTerminalMessenger(out, errOut io.Writer) UserMessenger {
	outR := lipgloss.NewRenderer(writerOrDiscard(out))
	errR := lipgloss.NewRenderer(writerOrDiscard(errOut))
	return &terminalMessenger{
		out:    out,
		errOut: errOut,
		dim:    outR.NewStyle().Foreground(lipgloss.Color("8")),
		bold:   outR.NewStyle().Bold(true),
		failed: errR.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (tm *terminalMessenger) Message(ctx context.Context, msg string) {
	if tm.out == nil {
		slog.DebugContext(ctx, "userMsg (no writer)", "msg", msg)
		return
	}
	fmt.Fprintln(tm.out, tm.dim.Render(msg))
}

func (tm *terminalMessenger) Banner(ctx context.Context, msg string) {
	if tm.out == nil {
		slog.DebugContext(ctx, "userMsg banner (no writer)", "msg", msg)
		return
	}
	fmt.Fprintln(tm.out, tm.bold.Render(msg))
}

func (tm *terminalMessenger) Failure(ctx context.Context, msg string) {
	if tm.errOut == nil {
		slog.DebugContext(ctx, "userMsg failure (no writer)", "msg", msg)
		return
	}
	fmt.Fprintln(tm.errOut, tm.failed.Render(msg))
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

type nullMessenger struct{}

func NewNullMessenger() UserMessenger {
	return &nullMessenger{}
}

func (nm *nullMessenger) Message(ctx context.Context, msg string) {
	slog.DebugContext(ctx, "userMsg (null messenger)", "msg", msg)
}

func (nm *nullMessenger) Banner(ctx context.Context, msg string) {
	slog.DebugContext(ctx, "userMsg banner (null messenger)", "msg", msg)
}

func (nm *nullMessenger) Failure(ctx context.Context, msg string) {
	slog.DebugContext(ctx, "userMsg failure (null messenger)", "msg", msg)
}
