package doit

import (
	"errors"
	"fmt"
	"os/exec"
)

// Process exit codes.
const (
	ExitOK = 0
	// ExitInternal covers spawn failures and anything that is not a step failure.
	ExitInternal = 1
	// ExitFailed is used when an engine command fails or destroy is declined.
	ExitFailed = 2
)

// ErrDeclined is returned when the user answers no to a confirmation prompt.
var ErrDeclined = errors.New("declined by user")

// Step names one logical engine invocation within a workflow.
type Step string

const (
	StepCreate  Step = "create"
	StepStart   Step = "start"
	StepInstall Step = "install"
	StepUser    Step = "user"
	StepAttach  Step = "attach"
	StepList    Step = "list"
	StepStop    Step = "stop"
	StepDelete  Step = "delete"
)

// StepError reports that a workflow step failed.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	if e.Spawn() {
		return fmt.Sprintf("could not launch the container engine for the %s step: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("%s step failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Spawn reports whether the engine binary could not be launched, as opposed
// to running and exiting unsuccessfully.
func (e *StepError) Spawn() bool {
	var exitErr *exec.ExitError
	return !errors.As(e.Err, &exitErr)
}

// Diagnostic is the short line shown to the user for this failure.
func (e *StepError) Diagnostic() string {
	if e.Spawn() {
		return e.Error()
	}
	return fmt.Sprintf("Failed to run %s command!", e.Step)
}

// ExitCode maps an error returned by a workflow operation to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, ErrDeclined) {
		return ExitFailed
	}
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		if stepErr.Spawn() {
			return ExitInternal
		}
		return ExitFailed
	}
	return ExitInternal
}
