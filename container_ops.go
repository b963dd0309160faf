package doit

import (
	"context"
	"io"

	"github.com/banksean/doit/dockercli"
	"github.com/banksean/doit/dockercli/options"
)

// ContainerOps are the engine invocations a Workflow is built from. Each call
// blocks until the engine process exits.
type ContainerOps interface {
	Create(ctx context.Context, opts *options.CreateContainer, image string, args []string) error
	Start(ctx context.Context, opts *options.StartContainer, name string) error
	Stop(ctx context.Context, opts *options.StopContainer, name string) error
	Delete(ctx context.Context, opts *options.DeleteContainer, name string) error
	Exec(ctx context.Context, opts *options.ExecContainer, name, cmd string, args ...string) error
	Attach(ctx context.Context, opts *options.AttachContainer, name string) error
	List(ctx context.Context, opts *options.ListContainers) error
}

var _ ContainerOps = (*dockercli.ContainerSvc)(nil)

// NewDockerContainerOps returns ContainerOps that invoke binary with the given stdio.
func NewDockerContainerOps(binary string, stdin io.Reader, stdout, stderr io.Writer) ContainerOps {
	svc := dockercli.NewContainerSvc(binary)
	svc.Stdin = stdin
	svc.Stdout = stdout
	svc.Stderr = stderr
	return svc
}
