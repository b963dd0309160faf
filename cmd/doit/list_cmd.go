package main

import "log/slog"

type ListCmd struct{}

func (c *ListCmd) Run(cctx *Context) error {
	slog.InfoContext(cctx.Context, "ListCmd.Run")
	return cctx.workflow(nil).List(cctx.Context)
}
