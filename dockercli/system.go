package dockercli

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// SystemSvc is a service interface to interact with the engine itself.
type SystemSvc struct {
	Binary string
}

// NewSystemSvc returns a SystemSvc for binary.
func NewSystemSvc(binary string) *SystemSvc {
	if binary == "" {
		binary = DefaultBinary
	}
	return &SystemSvc{Binary: binary}
}

// LookPath returns the resolved path of the engine binary, or an error if it is not installed.
func (s *SystemSvc) LookPath() (string, error) {
	return exec.LookPath(s.Binary)
}

// Version returns the engine's client version string, or an error. It fails
// when the engine cannot reach its backing service.
func (s *SystemSvc) Version(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, s.Binary, "version", "--format", "{{.Client.Version}}")
	slog.InfoContext(ctx, "SystemSvc.Version", "cmd", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: %s", err, strings.TrimSpace(string(output)))
	}
	return strings.TrimSpace(string(output)), nil
}
