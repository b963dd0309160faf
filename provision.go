package doit

import (
	"fmt"
	"os/user"

	"github.com/google/go-containerregistry/pkg/name"
)

const (
	// DefaultImage is the base image for new containers.
	DefaultImage = "fedora:latest"
	// DefaultShell is the entrypoint of new containers, the process that
	// attach connects to.
	DefaultShell = "bash"
	// UserShell is the login shell given to provisioned accounts. It is
	// installed by the base install.
	UserShell = "/usr/bin/fish"
)

// BasePackages are installed into every new container.
var BasePackages = []string{
	"@development-tools",
	"gpg",
	"which",
	"curl",
	"wget",
	"vim",
	"fish",
	"openssh",
	"sshfs",
}

// DefaultInstallCommand is the base install run inside a new container.
func DefaultInstallCommand() []string {
	return append([]string{"dnf", "install", "-y"}, BasePackages...)
}

// UserAddCommand creates account inside a container with a home directory,
// the fish shell and sudo rights through the wheel group.
func UserAddCommand(account string) []string {
	return []string{
		"useradd",
		"--create-home",
		"--shell", UserShell,
		"--groups", "wheel",
		account,
	}
}

// HostUser returns the name of the invoking user, or "" when it is unknown
// or root, since root already exists in every container.
func HostUser() string {
	u, err := user.Current()
	if err != nil || u.Username == "root" {
		return ""
	}
	return u.Username
}

// ValidateImage checks that image is a well formed image reference, such as
// "fedora:latest" or "quay.io/fedora/fedora:41". It does not contact a
// registry.
func ValidateImage(image string) error {
	if _, err := name.ParseReference(image); err != nil {
		return fmt.Errorf("invalid image reference %q: %w", image, err)
	}
	return nil
}
