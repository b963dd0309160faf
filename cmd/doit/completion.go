package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/banksean/doit/dockercli"
	"github.com/posener/complete"
)

// containerPredictor completes container names from the engine's listing.
func containerPredictor() complete.Predictor {
	return complete.PredictFunc(func(args complete.Args) []string {
		return containerNames(context.Background(), engineFromArgs(args.All))
	})
}

func containerNames(ctx context.Context, engine string) []string {
	names, err := dockercli.NewContainerSvc(engine).Names(ctx)
	if err != nil {
		slog.DebugContext(ctx, "containerNames", "engine", engine, "error", err)
		return nil
	}
	return names
}

// engineFromArgs finds an --engine flag on a partially typed command line.
func engineFromArgs(args []string) string {
	for i, a := range args {
		if v, ok := strings.CutPrefix(a, "--engine="); ok {
			return v
		}
		if a == "--engine" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return dockercli.DefaultBinary
}
