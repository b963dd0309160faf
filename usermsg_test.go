package doit

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalMessenger_Streams(t *testing.T) {
	var out, errOut bytes.Buffer
	m := NewTerminalMessenger(&out, &errOut)
	ctx := context.Background()

	m.Message(ctx, "working")
	m.Banner(ctx, "done")
	m.Failure(ctx, "Failed to run start command!")

	// Buffers are not terminals, so nothing is styled.
	assert.Equal(t, "working\ndone\n", out.String())
	assert.Equal(t, "Failed to run start command!\n", errOut.String())
}

func TestTerminalMessenger_NilWriters(t *testing.T) {
	m := NewTerminalMessenger(nil, nil)
	ctx := context.Background()
	assert.NotPanics(t, func() {
		m.Message(ctx, "a")
		m.Banner(ctx, "b")
		m.Failure(ctx, "c")
	})
}
