package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iamkroot/trakt-scrobbler/internal/platform"
	"github.com/iamkroot/trakt-scrobbler/internal/service"
)

// Exit codes for failures that have no external command status to forward.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUnsupported = 2
	ExitConfig      = 3
)

// ExitCode maps an error returned by the command tree onto a process exit
// code. A failed service-manager command forwards its own exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var failed *service.CommandFailedError
	if errors.As(err, &failed) {
		if failed.ExitCode > 0 {
			return failed.ExitCode
		}
		return ExitFailure
	}
	if errors.Is(err, platform.ErrUnsupported) {
		return ExitUnsupported
	}
	var cfgErr *platform.ConfigError
	if errors.As(err, &cfgErr) {
		return ExitConfig
	}
	return ExitFailure
}

// Report writes err to the error stream, including any output captured from a failed
// command, and returns the exit code for it.
func (a *App) Report(err error) int {
	if err == nil {
		return ExitOK
	}
	var failed *service.CommandFailedError
	if errors.As(err, &failed) {
		if out := strings.TrimRight(failed.Output, "\n"); out != "" {
			fmt.Fprintln(a.Out, out)
		}
	}
	fmt.Fprintln(a.Err, a.red("Error:"), err)
	return ExitCode(err)
}
