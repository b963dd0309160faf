package dockercli

import (
	"errors"
	"fmt"

	"github.com/google/shlex"
)

// ErrEmptyCommand is returned by ParseCommand for a command string with no words.
var ErrEmptyCommand = errors.New("empty command")

// ParseCommand splits a command string into an argument vector using shell
// quoting rules, so `useradd -c "Jane Doe" jane` yields four arguments.
// No shell is involved; quotes only group words.
func ParseCommand(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, fmt.Errorf("parsing command %q: %w", s, err)
	}
	if len(args) == 0 {
		return nil, ErrEmptyCommand
	}
	return args, nil
}
