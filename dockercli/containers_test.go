package dockercli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/banksean/doit/dockercli/options"
	"github.com/banksean/doit/enginetest"
	"github.com/creack/pty"
)

func newTestSvc(engine *enginetest.Engine) (*ContainerSvc, *bytes.Buffer) {
	var out bytes.Buffer
	return &ContainerSvc{
		Binary: engine.Path,
		Stdin:  strings.NewReader(""),
		Stdout: &out,
		Stderr: &out,
	}, &out
}

func TestContainerSvc_Argv(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		call func(*ContainerSvc) error
		want []string
	}{
		{
			name: "create",
			call: func(c *ContainerSvc) error {
				return c.Create(ctx, &options.CreateContainer{
					Name:           "mybox",
					ProcessOptions: options.ProcessOptions{TTY: true, Interactive: true},
				}, "fedora:latest", []string{"bash"})
			},
			want: []string{"create", "--name", "mybox", "-t", "-i", "fedora:latest", "bash"},
		},
		{
			name: "start",
			call: func(c *ContainerSvc) error { return c.Start(ctx, nil, "mybox") },
			want: []string{"start", "mybox"},
		},
		{
			name: "stop",
			call: func(c *ContainerSvc) error { return c.Stop(ctx, nil, "mybox") },
			want: []string{"stop", "mybox"},
		},
		{
			name: "delete",
			call: func(c *ContainerSvc) error { return c.Delete(ctx, &options.DeleteContainer{}, "mybox") },
			want: []string{"rm", "mybox"},
		},
		{
			name: "exec",
			call: func(c *ContainerSvc) error {
				return c.Exec(ctx, nil, "mybox", "dnf", "install", "-y", "vim")
			},
			want: []string{"exec", "mybox", "dnf", "install", "-y", "vim"},
		},
		{
			name: "exec as user",
			call: func(c *ContainerSvc) error {
				return c.Exec(ctx, &options.ExecContainer{
					ProcessOptions: options.ProcessOptions{User: "jane"},
				}, "mybox", "id")
			},
			want: []string{"exec", "--user", "jane", "mybox", "id"},
		},
		{
			name: "list",
			call: func(c *ContainerSvc) error { return c.List(ctx, &options.ListContainers{All: true}) },
			want: []string{"container", "list", "--all"},
		},
		{
			name: "attach",
			call: func(c *ContainerSvc) error { return c.Attach(ctx, nil, "mybox") },
			want: []string{"attach", "mybox"},
		},
		{
			name: "name with spaces is one argument",
			call: func(c *ContainerSvc) error { return c.Start(ctx, nil, "my box") },
			want: []string{"start", "my box"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := enginetest.New(t)
			svc, _ := newTestSvc(engine)
			if err := tt.call(svc); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			calls := engine.Calls(t)
			if len(calls) != 1 {
				t.Fatalf("expected 1 call, got %d: %v", len(calls), calls)
			}
			if !reflect.DeepEqual(calls[0], tt.want) {
				t.Errorf("argv = %#v, want %#v", calls[0], tt.want)
			}
		})
	}
}

func TestContainerSvc_ExitStatus(t *testing.T) {
	engine := enginetest.New(t, enginetest.FailOn("start", 3))
	svc, _ := newTestSvc(engine)

	err := svc.Start(context.Background(), nil, "mybox")
	if err == nil {
		t.Fatal("expected error from failing start")
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *exec.ExitError in chain, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 3 {
		t.Errorf("exit code = %d, want 3", exitErr.ExitCode())
	}
}

func TestContainerSvc_SpawnFailure(t *testing.T) {
	svc := &ContainerSvc{
		Binary: filepath.Join(t.TempDir(), "no-such-engine"),
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
	}

	err := svc.Start(context.Background(), nil, "mybox")
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		t.Fatalf("spawn failure must not look like an exit status: %v", err)
	}
	if !strings.Contains(err.Error(), "launching") {
		t.Errorf("error should say the binary could not be launched, got: %v", err)
	}
}

func TestContainerSvc_ListStreamsOutput(t *testing.T) {
	engine := enginetest.New(t, enginetest.Prints("container", "CONTAINER ID   NAMES"))
	svc, out := newTestSvc(engine)

	if err := svc.List(context.Background(), &options.ListContainers{All: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "CONTAINER ID   NAMES") {
		t.Errorf("expected listing on stdout, got %q", out.String())
	}
}

func TestContainerSvc_Names(t *testing.T) {
	engine := enginetest.New(t, enginetest.Prints("container", "alpha\nbeta\n\ngamma"))
	svc, _ := newTestSvc(engine)

	names, err := svc.Names(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
	calls := engine.Calls(t)
	wantArgv := []string{"container", "list", "--all", "--format", "{{.Names}}"}
	if !reflect.DeepEqual(calls[0], wantArgv) {
		t.Errorf("argv = %#v, want %#v", calls[0], wantArgv)
	}
}

func TestContainerSvc_AttachThroughPTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pseudo-terminals unavailable: %v", err)
	}
	ptmx.Close()
	tty.Close()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	w.Close()

	engine := enginetest.New(t)
	svc, _ := newTestSvc(engine)
	svc.Stdin = r
	if !needsPTY(svc.Stdin) {
		t.Fatal("a pipe should need a pseudo-terminal")
	}

	if err := svc.Attach(context.Background(), nil, "mybox"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verbs := engine.Verbs(t); !reflect.DeepEqual(verbs, []string{"attach"}) {
		t.Errorf("verbs = %v, want [attach]", verbs)
	}
}

func TestNeedsPTY(t *testing.T) {
	if needsPTY(strings.NewReader("")) {
		t.Error("non-file readers are passed through")
	}
	if needsPTY(nil) {
		t.Error("nil stdin is passed through")
	}
}
