package main

import (
	"log/slog"

	"github.com/banksean/doit"
)

type WorkCmd struct {
	Shutdown string `default:"no" enum:"yes,no,hell no" placeholder:"<yes|no|hell no>" help:"stop the container when you detach from it"`
	Name     string `arg:"" predictor:"container" help:"name of the container to work in"`
}

func (c *WorkCmd) Run(cctx *Context) error {
	ctx := cctx.Context
	slog.InfoContext(ctx, "WorkCmd.Run", "cmd", *c)

	shutdown, err := doit.ParseShutdownPolicy(c.Shutdown)
	if err != nil {
		return err
	}
	return cctx.workflow(nil).Work(ctx, doit.WorkOpts{
		Name:     c.Name,
		Shutdown: shutdown,
	})
}
