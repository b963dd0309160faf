package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/banksean/doit/dockercli"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(cctx *Context) error {
	ctx := cctx.Context
	slog.InfoContext(ctx, "DoctorCmd.Run", "engine", cctx.Engine)

	failed := 0
	for _, r := range verifyPrerequisites(ctx, dockercli.NewSystemSvc(cctx.Engine)) {
		if r.Err != nil {
			failed++
			cctx.messenger.Failure(ctx, fmt.Sprintf("✗ %s: %v", r.Name, r.Err))
			continue
		}
		cctx.messenger.Message(ctx, "✓ "+r.Name)
	}
	if failed > 0 {
		return errors.New("prerequisites check failed")
	}
	cctx.messenger.Banner(ctx, "All good, go build something.")
	return nil
}
