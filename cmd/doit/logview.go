package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// logFormatter renders the JSON records written by initSlog as one
// readable line each.
type logFormatter struct {
	out      io.Writer
	minLevel slog.Level
	loc      *time.Location

	levels map[slog.Level]lipgloss.Style
	attrs  lipgloss.Style
	msg    lipgloss.Style
}

func newLogFormatter(out io.Writer, minLevel slog.Level) *logFormatter {
	r := lipgloss.NewRenderer(out)
	return &logFormatter{
		out:      out,
		minLevel: minLevel,
		loc:      time.Local,
		levels: map[slog.Level]lipgloss.Style{
			slog.LevelDebug: r.NewStyle().Foreground(lipgloss.Color("7")),
			slog.LevelInfo:  r.NewStyle().Foreground(lipgloss.Color("6")),
			slog.LevelWarn:  r.NewStyle().Foreground(lipgloss.Color("11")),
			slog.LevelError: r.NewStyle().Foreground(lipgloss.Color("9")),
		},
		attrs: r.NewStyle().Foreground(lipgloss.Color("8")),
		msg:   r.NewStyle().Bold(true),
	}
}

// Format writes one record. Records below minLevel are skipped. Lines that
// are not JSON records are written through unchanged.
func (f *logFormatter) Format(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		_, err := fmt.Fprintln(f.out, line)
		return err
	}

	levelName, _ := rec[slog.LevelKey].(string)
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		level = slog.LevelInfo
	}
	if level < f.minLevel {
		return nil
	}

	var parts []string
	if ts, ok := rec[slog.TimeKey].(string); ok {
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			ts = t.In(f.loc).Format(time.DateTime)
		}
		parts = append(parts, ts)
	}
	levelText := level.String()
	parts = append(parts, f.levelStyle(level).Render(levelText)+strings.Repeat(" ", max(0, 5-len(levelText))))
	if msg, ok := rec[slog.MessageKey].(string); ok {
		parts = append(parts, f.msg.Render(msg))
	}

	delete(rec, slog.LevelKey)
	delete(rec, slog.TimeKey)
	delete(rec, slog.MessageKey)
	if attrs := formatAttrs(rec); attrs != "" {
		parts = append(parts, f.attrs.Render(attrs))
	}

	_, err := fmt.Fprintln(f.out, strings.Join(parts, " "))
	return err
}

func (f *logFormatter) levelStyle(level slog.Level) lipgloss.Style {
	switch {
	case level >= slog.LevelError:
		return f.levels[slog.LevelError]
	case level >= slog.LevelWarn:
		return f.levels[slog.LevelWarn]
	case level >= slog.LevelInfo:
		return f.levels[slog.LevelInfo]
	}
	return f.levels[slog.LevelDebug]
}

// formatAttrs renders attrs as key=value pairs sorted by key. Strings are
// quoted only when they contain spaces.
func formatAttrs(attrs map[string]any) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte('=')
		switch v := attrs[k].(type) {
		case string:
			if strings.ContainsAny(v, " \t\n") {
				fmt.Fprintf(&b, "%q", v)
			} else {
				b.WriteString(v)
			}
		default:
			enc, err := json.Marshal(v)
			if err != nil {
				fmt.Fprintf(&b, "%v", v)
				continue
			}
			b.Write(enc)
		}
	}
	return b.String()
}
