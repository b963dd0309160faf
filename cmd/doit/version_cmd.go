package main

import (
	"encoding/json"
	"fmt"

	"github.com/banksean/doit/version"
	"gopkg.in/yaml.v3"
)

type VersionCmd struct {
	Format string `default:"text" enum:"text,json,yaml" placeholder:"<text|json|yaml>" help:"output format"`
}

func (c *VersionCmd) Run(cctx *Context) error {
	info := version.Get()
	switch c.Format {
	case "json":
		enc := json.NewEncoder(cctx.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "yaml":
		enc := yaml.NewEncoder(cctx.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(info); err != nil {
			return err
		}
		return enc.Close()
	}
	fmt.Fprint(cctx.Stdout, info.String())
	return nil
}
