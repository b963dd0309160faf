// Package dockercli drives a docker-compatible container engine through its
// command line interface.
//
// Every call spawns the engine binary with a typed argument vector, blocks
// until it exits and reports the outcome as an error. A child that ran and
// exited unsuccessfully yields an error wrapping *exec.ExitError; any other
// error means the binary could not be launched at all.
package dockercli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/banksean/doit/dockercli/options"
	"github.com/creack/pty"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// DefaultBinary is the engine command used when none is configured.
const DefaultBinary = "docker"

// ContainerSvc is a service interface to interact with containers of a
// docker-compatible engine.
type ContainerSvc struct {
	// Binary is the engine command, looked up on PATH if not absolute.
	Binary string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewContainerSvc returns a ContainerSvc for binary wired to this process's stdio.
func NewContainerSvc(binary string) *ContainerSvc {
	if binary == "" {
		binary = DefaultBinary
	}
	return &ContainerSvc{
		Binary: binary,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Create creates a new container from imageName with the given options and init args.
func (c *ContainerSvc) Create(ctx context.Context, opts *options.CreateContainer, imageName string, initArgs []string) error {
	args := append([]string{"create"}, options.ToArgs(opts)...)
	args = append(args, imageName)
	return c.run(ctx, "ContainerSvc.Create", append(args, initArgs...))
}

// Start starts a stopped or newly created container.
func (c *ContainerSvc) Start(ctx context.Context, opts *options.StartContainer, name string) error {
	args := append([]string{"start"}, options.ToArgs(opts)...)
	return c.run(ctx, "ContainerSvc.Start", append(args, name))
}

// Stop stops a running container.
func (c *ContainerSvc) Stop(ctx context.Context, opts *options.StopContainer, name string) error {
	args := append([]string{"stop"}, options.ToArgs(opts)...)
	return c.run(ctx, "ContainerSvc.Stop", append(args, name))
}

// Delete removes a container.
func (c *ContainerSvc) Delete(ctx context.Context, opts *options.DeleteContainer, name string) error {
	args := append([]string{"rm"}, options.ToArgs(opts)...)
	return c.run(ctx, "ContainerSvc.Delete", append(args, name))
}

// Exec runs command with cmdArgs inside a running container, streaming its output.
func (c *ContainerSvc) Exec(ctx context.Context, opts *options.ExecContainer, name, command string, cmdArgs ...string) error {
	args := append([]string{"exec"}, options.ToArgs(opts)...)
	args = append(args, name, command)
	return c.run(ctx, "ContainerSvc.Exec", append(args, cmdArgs...))
}

// List streams the engine's container listing to Stdout.
func (c *ContainerSvc) List(ctx context.Context, opts *options.ListContainers) error {
	args := append([]string{"container", "list"}, options.ToArgs(opts)...)
	return c.run(ctx, "ContainerSvc.List", args)
}

// Names returns the names of all containers, running or not.
func (c *ContainerSvc) Names(ctx context.Context) ([]string, error) {
	args := append([]string{"container", "list"}, options.ToArgs(&options.ListContainers{
		All:    true,
		Format: "{{.Names}}",
	})...)
	cmd := exec.CommandContext(ctx, c.Binary, args...)
	slog.DebugContext(ctx, "ContainerSvc.Names", "cmd", strings.Join(cmd.Args, " "))
	output, err := cmd.Output()
	if err != nil {
		return nil, err
	}
	var ret []string
	for _, line := range strings.Split(string(output), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			ret = append(ret, line)
		}
	}
	return ret, nil
}

// Attach connects Stdin, Stdout and Stderr to the container's main process
// and blocks until the user detaches or the process exits.
//
// The engine refuses to attach a TTY container to a non-terminal stdin, so
// when Stdin is a file that is not a terminal the child is given a
// pseudo-terminal and the streams are copied through it.
func (c *ContainerSvc) Attach(ctx context.Context, opts *options.AttachContainer, name string) error {
	args := append([]string{"attach"}, options.ToArgs(opts)...)
	args = append(args, name)
	cmd := exec.CommandContext(ctx, c.Binary, args...)
	slog.InfoContext(ctx, "ContainerSvc.Attach", "cmd", strings.Join(cmd.Args, " "))

	if !needsPTY(c.Stdin) {
		slog.InfoContext(ctx, "ContainerSvc.Attach: normal terminal passthrough")
		cmd.Stdin = c.Stdin
		cmd.Stdout = c.Stdout
		cmd.Stderr = c.Stderr
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("launching %s: %w", c.Binary, err)
		}
		return c.wait(ctx, "ContainerSvc.Attach", cmd)
	}

	slog.InfoContext(ctx, "ContainerSvc.Attach: using pseudo-terminal")
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("launching %s: %w", c.Binary, err)
	}
	defer ptmx.Close()

	go io.Copy(ptmx, c.Stdin)
	var output errgroup.Group
	output.Go(func() error {
		// Reading a pty whose child has exited fails with EIO on Linux.
		_, err := io.Copy(c.Stdout, ptmx)
		if err != nil {
			slog.DebugContext(ctx, "ContainerSvc.Attach: output copy ended", "error", err)
		}
		return nil
	})

	err = c.wait(ctx, "ContainerSvc.Attach", cmd)
	output.Wait()
	return err
}

func (c *ContainerSvc) run(ctx context.Context, op string, args []string) error {
	cmd := exec.CommandContext(ctx, c.Binary, args...)
	slog.InfoContext(ctx, op, "cmd", strings.Join(cmd.Args, " "))
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	if err := cmd.Start(); err != nil {
		slog.ErrorContext(ctx, op, "error", err)
		return fmt.Errorf("launching %s: %w", c.Binary, err)
	}
	return c.wait(ctx, op, cmd)
}

func (c *ContainerSvc) wait(ctx context.Context, op string, cmd *exec.Cmd) error {
	if err := cmd.Wait(); err != nil {
		slog.ErrorContext(ctx, op+" wait", "error", err)
		return fmt.Errorf("%s: %w", strings.Join(cmd.Args, " "), err)
	}
	return nil
}

func needsPTY(stdin io.Reader) bool {
	f, ok := stdin.(*os.File)
	return ok && !term.IsTerminal(int(f.Fd()))
}
