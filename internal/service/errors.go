package service

import (
	"fmt"
	"strings"

	"github.com/iamkroot/trakt-scrobbler/internal/platform"
)

// CommandFailedError reports a service-manager command that exited with a
// non-zero status. Failed commands are never retried.
type CommandFailedError struct {
	Operation Operation
	Platform  platform.Profile
	Command   string
	ExitCode  int
	// Output is the command's captured stdout, unmodified.
	Output string
	Stderr string
}

func (e *CommandFailedError) Error() string {
	msg := fmt.Sprintf("%s on %s: %q exited with status %d", e.Operation, e.Platform, e.Command, e.ExitCode)
	if detail := strings.TrimSpace(e.Stderr); detail != "" {
		msg += ": " + detail
	}
	return msg
}
