// Package version reports build metadata stamped in with -ldflags, falling
// back to what the Go toolchain records in the binary.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

var (
	// These will be set via -ldflags during build
	Version   string
	GitRepo   string
	GitCommit string
	BuildTime string
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version,omitempty" yaml:"version,omitempty"`
	GitRepo   string `json:"gitRepo,omitempty" yaml:"gitRepo,omitempty"`
	GitCommit string `json:"gitCommit,omitempty" yaml:"gitCommit,omitempty"`
	BuildTime string `json:"buildTime,omitempty" yaml:"buildTime,omitempty"`
	Modified  bool   `json:"modified,omitempty" yaml:"modified,omitempty"`
	GoVersion string `json:"goVersion,omitempty" yaml:"goVersion,omitempty"`
}

// Get returns the version information
func Get() Info {
	ret := Info{
		Version:   Version,
		GitRepo:   GitRepo,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		ret = ret.withBuildInfo(buildInfo)
	}
	return ret
}

// withBuildInfo fills fields that were not stamped at link time.
func (v Info) withBuildInfo(bi *debug.BuildInfo) Info {
	v.GoVersion = bi.GoVersion
	if v.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		v.Version = bi.Main.Version
	}
	if v.GitRepo == "" {
		v.GitRepo = bi.Main.Path
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if v.GitCommit == "" {
				v.GitCommit = setting.Value
			}
		case "vcs.time":
			if v.BuildTime == "" {
				v.BuildTime = setting.Value
			}
		case "vcs.modified":
			v.Modified = setting.Value == "true"
		}
	}
	return v
}

// String formats v as one line per known field.
func (v Info) String() string {
	var b strings.Builder
	line := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s: %s\n", label, value)
		}
	}
	version := v.Version
	if version == "" {
		version = "devel"
	}
	line("Version", version)
	line("Git Repository", v.GitRepo)
	line("Git Commit", v.GitCommit)
	line("Build Time", v.BuildTime)
	if v.Modified {
		line("Modified", "true")
	}
	line("Go Version", v.GoVersion)
	return b.String()
}
