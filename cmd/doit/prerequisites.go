package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/banksean/doit/dockercli"
)

type diagnosticCheck struct {
	Name string
	Run  func(context.Context, *dockercli.SystemSvc) error
}

var diagnosticChecks = []diagnosticCheck{
	{
		Name: "Container engine command is installed",
		Run: func(ctx context.Context, sys *dockercli.SystemSvc) error {
			path, err := sys.LookPath()
			if err != nil {
				return fmt.Errorf("could not find %q on PATH. Install docker or podman, or pass --engine", sys.Binary)
			}
			slog.InfoContext(ctx, "verifyPrerequisites", "path", path)
			return nil
		},
	},
	{
		Name: "Container engine answers version queries",
		Run: func(ctx context.Context, sys *dockercli.SystemSvc) error {
			version, err := sys.Version(ctx)
			if err != nil {
				return fmt.Errorf("%q version failed: %w", sys.Binary, err)
			}
			if version == "" {
				return fmt.Errorf("%q version printed nothing", sys.Binary)
			}
			slog.InfoContext(ctx, "verifyPrerequisites", "version", version)
			return nil
		},
	},
}

type checkResult struct {
	Name string
	Err  error
}

// verifyPrerequisites runs every check, stopping early only when the engine
// binary is missing, since nothing after that can pass.
func verifyPrerequisites(ctx context.Context, sys *dockercli.SystemSvc) []checkResult {
	var results []checkResult
	for i, check := range diagnosticChecks {
		err := check.Run(ctx, sys)
		results = append(results, checkResult{Name: check.Name, Err: err})
		if err != nil {
			slog.ErrorContext(ctx, "diagnosticCheck failed", "name", check.Name, "error", err)
			if i == 0 {
				break
			}
			continue
		}
		slog.InfoContext(ctx, "diagnosticCheck passed", "name", check.Name)
	}
	return results
}
