package dockercli

import (
	"context"
	"strings"
	"testing"

	"github.com/banksean/doit/enginetest"
)

func TestSystemSvc_Version(t *testing.T) {
	engine := enginetest.New(t, enginetest.Prints("version", "27.3.1"))
	svc := NewSystemSvc(engine.Path)

	got, err := svc.Version(context.Background())
	if err != nil {
		t.Fatalf("Version() error: %v", err)
	}
	if got != "27.3.1" {
		t.Errorf("Version() = %q, want %q", got, "27.3.1")
	}
}

func TestSystemSvc_VersionFailureIncludesOutput(t *testing.T) {
	engine := enginetest.New(t,
		enginetest.Prints("version", "Cannot connect to the Docker daemon"),
		enginetest.FailOn("version", 1),
	)
	svc := NewSystemSvc(engine.Path)

	_, err := svc.Version(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Cannot connect") {
		t.Errorf("error should carry engine output, got: %v", err)
	}
}

func TestNewSystemSvc_DefaultBinary(t *testing.T) {
	if got := NewSystemSvc("").Binary; got != DefaultBinary {
		t.Errorf("Binary = %q, want %q", got, DefaultBinary)
	}
	if got := NewContainerSvc("").Binary; got != DefaultBinary {
		t.Errorf("Binary = %q, want %q", got, DefaultBinary)
	}
}
