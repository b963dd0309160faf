// Package enginetest provides a fake container engine binary for tests.
//
// The fake is a small shell script that records every invocation's
// arguments, optionally prints canned output, and exits with a chosen
// status per subcommand.
package enginetest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

const callSeparator = "---"

// Engine is a fake engine binary living in a test's temp dir.
type Engine struct {
	// Path is the absolute path of the fake binary.
	Path string

	logPath string
}

type config struct {
	exits   map[string]int
	outputs map[string]string
}

// Option configures the fake engine.
type Option func(*config)

// FailOn makes invocations whose first argument is verb exit with code.
func FailOn(verb string, code int) Option {
	return func(c *config) {
		c.exits[verb] = code
	}
}

// Prints makes invocations whose first argument is verb print text on stdout.
func Prints(verb, text string) Option {
	return func(c *config) {
		c.outputs[verb] = text
	}
}

// New writes a fake engine script into t.TempDir().
func New(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	cfg := &config{
		exits:   map[string]int{},
		outputs: map[string]string{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	dir := t.TempDir()
	e := &Engine{
		Path:    filepath.Join(dir, "fake-engine"),
		logPath: filepath.Join(dir, "calls.log"),
	}
	if err := os.WriteFile(e.Path, []byte(script(e.logPath, cfg)), 0755); err != nil {
		t.Fatalf("failed to write fake engine: %v", err)
	}
	return e
}

// Calls returns the argument vectors of every invocation so far, in order.
func (e *Engine) Calls(t *testing.T) [][]string {
	t.Helper()
	data, err := os.ReadFile(e.logPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("failed to read fake engine log: %v", err)
	}

	var calls [][]string
	var cur []string
	for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
		if line == callSeparator {
			calls = append(calls, cur)
			cur = nil
			continue
		}
		cur = append(cur, line)
	}
	return calls
}

// Verbs returns the first argument of every invocation so far, in order.
func (e *Engine) Verbs(t *testing.T) []string {
	t.Helper()
	var verbs []string
	for _, call := range e.Calls(t) {
		if len(call) > 0 {
			verbs = append(verbs, call[0])
		}
	}
	return verbs
}

func script(logPath string, cfg *config) string {
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	b.WriteString("{\n")
	b.WriteString("  for a in \"$@\"; do printf '%s\\n' \"$a\"; done\n")
	fmt.Fprintf(&b, "  printf '%%s\\n' '%s'\n", callSeparator)
	fmt.Fprintf(&b, "} >> %s\n", quote(logPath))

	b.WriteString("case \"$1\" in\n")
	for _, verb := range sortedKeys(cfg.outputs, cfg.exits) {
		fmt.Fprintf(&b, "  %s)\n", quote(verb))
		if text, ok := cfg.outputs[verb]; ok {
			fmt.Fprintf(&b, "    printf '%%s\\n' %s\n", quote(text))
		}
		fmt.Fprintf(&b, "    exit %d\n", cfg.exits[verb])
		b.WriteString("    ;;\n")
	}
	b.WriteString("esac\n")
	b.WriteString("exit 0\n")
	return b.String()
}

func sortedKeys(a map[string]string, b map[string]int) []string {
	seen := map[string]bool{}
	var keys []string
	for k := range a {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for k := range b {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// quote wraps s in single quotes for /bin/sh.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
