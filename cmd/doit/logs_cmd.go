package main

import (
	"fmt"
	"log/slog"

	"github.com/nxadm/tail"
)

type LogsCmd struct {
	Follow bool   `short:"f" help:"keep printing records as they are written"`
	Level  string `default:"debug" enum:"debug,info,warn,error" placeholder:"<debug|info|warn|error>" help:"hide records below this level"`
}

func (c *LogsCmd) Run(cctx *Context) error {
	ctx := cctx.Context

	var minLevel slog.Level
	if err := minLevel.UnmarshalText([]byte(c.Level)); err != nil {
		return err
	}
	formatter := newLogFormatter(cctx.Stdout, minLevel)

	t, err := tail.TailFile(cctx.LogFile, tail.Config{
		Follow:        c.Follow,
		ReOpen:        c.Follow,
		MustExist:     true,
		CompleteLines: true,
		Logger:        tail.DiscardingLogger,
	})
	if err != nil {
		return fmt.Errorf("reading log file: %w", err)
	}
	defer t.Cleanup()

	for {
		select {
		case <-ctx.Done():
			return t.Stop()
		case line, ok := <-t.Lines:
			if !ok {
				return t.Wait()
			}
			if line.Err != nil {
				return line.Err
			}
			if err := formatter.Format(line.Text); err != nil {
				return err
			}
		}
	}
}
