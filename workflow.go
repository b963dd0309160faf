// Package doit automates a personal development container workflow on top
// of a container engine's command line: create and provision a container,
// work inside it, list containers and destroy them.
//
// Every operation is a fixed sequence of engine invocations run one after
// another. The first failing invocation ends the sequence and is reported
// as a *StepError.
package doit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/banksean/doit/dockercli/options"
)

// ShutdownPolicy says what happens to a container after a work session.
type ShutdownPolicy string

const (
	ShutdownYes    ShutdownPolicy = "yes"
	ShutdownNo     ShutdownPolicy = "no"
	ShutdownHellNo ShutdownPolicy = "hell no"
)

// ShutdownPolicies lists the accepted values, default first.
var ShutdownPolicies = []ShutdownPolicy{ShutdownNo, ShutdownYes, ShutdownHellNo}

// ParseShutdownPolicy validates s. The empty string means ShutdownNo.
func ParseShutdownPolicy(s string) (ShutdownPolicy, error) {
	if s == "" {
		return ShutdownNo, nil
	}
	for _, p := range ShutdownPolicies {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid shutdown policy %q: must be one of yes, no, \"hell no\"", s)
}

// StopsContainer reports whether the container is stopped when work ends.
func (p ShutdownPolicy) StopsContainer() bool {
	return p == ShutdownYes
}

// NewOpts configures Workflow.New.
type NewOpts struct {
	Name string
	// Image defaults to DefaultImage.
	Image string
	// Shell is the container's entrypoint. Defaults to DefaultShell.
	Shell string
	// Install is the base install command. Defaults to DefaultInstallCommand().
	Install []string
	// User is an account to create inside the container. Empty skips the step.
	User string
}

// WorkOpts configures Workflow.Work.
type WorkOpts struct {
	Name     string
	Shutdown ShutdownPolicy
}

// DestroyOpts configures Workflow.Destroy.
type DestroyOpts struct {
	Name string
	// Yes skips the confirmation prompt.
	Yes bool
}

// Workflow runs the container lifecycle operations.
type Workflow struct {
	ops       ContainerOps
	messenger UserMessenger
	confirmer Confirmer
}

// NewWorkflow returns a Workflow. A nil messenger discards user messages and
// a nil confirmer declines every confirmation.
func NewWorkflow(ops ContainerOps, messenger UserMessenger, confirmer Confirmer) *Workflow {
	if messenger == nil {
		messenger = NewNullMessenger()
	}
	return &Workflow{
		ops:       ops,
		messenger: messenger,
		confirmer: confirmer,
	}
}

// action is one step of a workflow plan.
type action struct {
	step Step
	run  func(ctx context.Context) error
}

// runPlan runs actions in order and stops at the first failure.
func (w *Workflow) runPlan(ctx context.Context, plan []action) error {
	for _, a := range plan {
		slog.InfoContext(ctx, "Workflow.runPlan", "step", a.step)
		if err := a.run(ctx); err != nil {
			slog.ErrorContext(ctx, "Workflow.runPlan", "step", a.step, "error", err)
			return &StepError{Step: a.step, Err: err}
		}
	}
	return nil
}

// New creates the container, starts it, runs the base install and, if
// opts.User is set, creates that account inside it.
func (w *Workflow) New(ctx context.Context, opts NewOpts) error {
	if opts.Name == "" {
		return errors.New("container name is required")
	}
	if opts.Image == "" {
		opts.Image = DefaultImage
	}
	if opts.Shell == "" {
		opts.Shell = DefaultShell
	}
	if len(opts.Install) == 0 {
		opts.Install = DefaultInstallCommand()
	}
	if err := ValidateImage(opts.Image); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Workflow.New", "opts", opts)

	w.messenger.Message(ctx, fmt.Sprintf("Creating a new container from scratch, with my bare %d cores!", runtime.NumCPU()))

	if err := w.runPlan(ctx, w.newPlan(opts)); err != nil {
		return err
	}

	w.messenger.Banner(ctx, fmt.Sprintf("✨✨✨ Container created and ready: %s ✨✨✨", opts.Name))
	return nil
}

func (w *Workflow) newPlan(opts NewOpts) []action {
	plan := []action{
		{StepCreate, func(ctx context.Context) error {
			return w.ops.Create(ctx, &options.CreateContainer{
				Name: opts.Name,
				ProcessOptions: options.ProcessOptions{
					TTY:         true,
					Interactive: true,
				},
			}, opts.Image, []string{opts.Shell})
		}},
		{StepStart, func(ctx context.Context) error {
			return w.ops.Start(ctx, nil, opts.Name)
		}},
		{StepInstall, func(ctx context.Context) error {
			return w.ops.Exec(ctx, nil, opts.Name, opts.Install[0], opts.Install[1:]...)
		}},
	}
	if opts.User != "" {
		useradd := UserAddCommand(opts.User)
		plan = append(plan, action{StepUser, func(ctx context.Context) error {
			return w.ops.Exec(ctx, nil, opts.Name, useradd[0], useradd[1:]...)
		}})
	}
	return plan
}

// Work starts the container and attaches the terminal to it. It returns once
// the user detaches or the container's process exits. With ShutdownYes the
// container is stopped afterwards.
func (w *Workflow) Work(ctx context.Context, opts WorkOpts) error {
	if opts.Name == "" {
		return errors.New("container name is required")
	}
	slog.InfoContext(ctx, "Workflow.Work", "opts", opts)

	w.messenger.Message(ctx, fmt.Sprintf("Look at you busy bee, let's get you ready working on ✨ %s ✨", opts.Name))

	plan := []action{
		{StepStart, func(ctx context.Context) error {
			return w.ops.Start(ctx, nil, opts.Name)
		}},
		{StepAttach, func(ctx context.Context) error {
			return w.ops.Attach(ctx, nil, opts.Name)
		}},
	}
	if opts.Shutdown.StopsContainer() {
		plan = append(plan, action{StepStop, func(ctx context.Context) error {
			return w.ops.Stop(ctx, nil, opts.Name)
		}})
	}
	return w.runPlan(ctx, plan)
}

// List streams the engine's listing of all containers, including stopped ones.
func (w *Workflow) List(ctx context.Context) error {
	return w.runPlan(ctx, []action{
		{StepList, func(ctx context.Context) error {
			return w.ops.List(ctx, &options.ListContainers{All: true})
		}},
	})
}

// Destroy asks for confirmation, then stops and removes the container. A
// declined confirmation returns ErrDeclined without touching the engine.
func (w *Workflow) Destroy(ctx context.Context, opts DestroyOpts) error {
	if opts.Name == "" {
		return errors.New("container name is required")
	}
	slog.InfoContext(ctx, "Workflow.Destroy", "opts", opts)

	if !opts.Yes {
		ok, err := w.confirm(ctx, DestroyQuestion)
		if err != nil {
			return err
		}
		if !ok {
			return ErrDeclined
		}
	}

	err := w.runPlan(ctx, []action{
		{StepStop, func(ctx context.Context) error {
			return w.ops.Stop(ctx, nil, opts.Name)
		}},
		{StepDelete, func(ctx context.Context) error {
			return w.ops.Delete(ctx, nil, opts.Name)
		}},
	})
	if err != nil {
		return err
	}

	w.messenger.Banner(ctx, fmt.Sprintf("Deleted container %s 🔥🔥🔥", opts.Name))
	return nil
}

func (w *Workflow) confirm(ctx context.Context, question string) (bool, error) {
	if w.confirmer == nil {
		return false, nil
	}
	return w.confirmer.Confirm(ctx, question)
}
