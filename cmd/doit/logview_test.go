package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `{"time":"2026-03-01T10:00:00.5Z","level":"INFO","msg":"Workflow.runPlan","step":"create"}
{"time":"2026-03-01T10:00:01Z","level":"DEBUG","msg":"ContainerSvc.Names","cmd":"docker container list --all"}
{"time":"2026-03-01T10:00:02Z","level":"ERROR","msg":"Workflow.runPlan","step":"start","error":"exit status 125"}
not json at all
`

func TestLogFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := newLogFormatter(&buf, slog.LevelDebug)
	f.loc = time.UTC

	for _, line := range strings.Split(sampleLog, "\n") {
		require.NoError(t, f.Format(line))
	}

	assert.Equal(t, strings.Join([]string{
		"2026-03-01 10:00:00 INFO  Workflow.runPlan step=create",
		`2026-03-01 10:00:01 DEBUG ContainerSvc.Names cmd="docker container list --all"`,
		`2026-03-01 10:00:02 ERROR Workflow.runPlan error="exit status 125" step=start`,
		"not json at all",
		"",
	}, "\n"), buf.String())
}

func TestLogFormatterMinLevel(t *testing.T) {
	var buf bytes.Buffer
	f := newLogFormatter(&buf, slog.LevelWarn)
	f.loc = time.UTC

	for _, line := range strings.Split(sampleLog, "\n") {
		require.NoError(t, f.Format(line))
	}
	out := buf.String()
	assert.NotContains(t, out, "step=create")
	assert.NotContains(t, out, "ContainerSvc.Names")
	assert.Contains(t, out, "step=start")
}

func TestFormatAttrs(t *testing.T) {
	assert.Equal(t, "", formatAttrs(map[string]any{}))
	assert.Equal(t,
		`a=1 b=true c=["x","y"] d=plain`,
		formatAttrs(map[string]any{"d": "plain", "c": []any{"x", "y"}, "b": true, "a": float64(1)}))
}

func TestLogsCmd(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "doit.log")
	require.NoError(t, os.WriteFile(logFile, []byte(sampleLog), 0644))

	var stdout bytes.Buffer
	cmd := &LogsCmd{Level: "info"}
	err := cmd.Run(&Context{
		Context: context.Background(),
		LogFile: logFile,
		Stdout:  &stdout,
	})
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "INFO  Workflow.runPlan step=create")
	assert.Contains(t, out, "ERROR Workflow.runPlan")
	assert.NotContains(t, out, "ContainerSvc.Names")
}

func TestLogsCmdMissingFile(t *testing.T) {
	cmd := &LogsCmd{Level: "debug"}
	err := cmd.Run(&Context{
		Context: context.Background(),
		LogFile: filepath.Join(t.TempDir(), "missing.log"),
		Stdout:  &bytes.Buffer{},
	})
	assert.Error(t, err)
}
