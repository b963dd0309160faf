package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/banksean/doit"
	"github.com/banksean/doit/dockercli"
	"github.com/goombaio/namegenerator"
)

type NewCmd struct {
	Image    string `short:"i" default:"fedora:latest" placeholder:"<container-image-name>" help:"name of container image to use"`
	Shell    string `short:"s" default:"bash" placeholder:"<shell-command>" help:"command the container runs, and that work attaches to"`
	Install  string `placeholder:"<command>" help:"command that installs the base packages, replacing the default dnf install"`
	User     string `short:"u" placeholder:"<user-name>" help:"account to create in the container. Defaults to your user name on this host"`
	SkipUser bool   `help:"do not create a user account in the container"`
	Name     string `arg:"" optional:"" help:"name of the container to create. A random one is picked if unset"`
}

func (c *NewCmd) Run(cctx *Context) error {
	ctx := cctx.Context
	slog.InfoContext(ctx, "NewCmd.Run", "cmd", *c)

	if c.Name == "" {
		seed := time.Now().UTC().UnixNano()
		c.Name = namegenerator.NewNameGenerator(seed).Generate()
		cctx.messenger.Message(ctx, fmt.Sprintf("No name given, calling this one %s", c.Name))
	}

	opts := doit.NewOpts{
		Name:  c.Name,
		Image: c.Image,
		Shell: c.Shell,
	}
	if c.Install != "" {
		install, err := dockercli.ParseCommand(c.Install)
		if err != nil {
			return err
		}
		opts.Install = install
	}
	if !c.SkipUser {
		opts.User = c.User
		if opts.User == "" {
			opts.User = doit.HostUser()
		}
	}

	return cctx.workflow(nil).New(ctx, opts)
}
