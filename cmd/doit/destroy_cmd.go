package main

import (
	"log/slog"

	"github.com/banksean/doit"
)

type DestroyCmd struct {
	Yes  bool   `short:"y" help:"do not ask for confirmation"`
	Name string `arg:"" predictor:"container" help:"name of the container to destroy"`
}

func (c *DestroyCmd) Run(cctx *Context) error {
	ctx := cctx.Context
	slog.InfoContext(ctx, "DestroyCmd.Run", "cmd", *c)

	confirmer := doit.NewPromptConfirmer(cctx.Stdin, cctx.Stdout)
	return cctx.workflow(confirmer).Destroy(ctx, doit.DestroyOpts{
		Name: c.Name,
		Yes:  c.Yes,
	})
}
