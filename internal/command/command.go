// Package command runs external service-manager commands and captures
// their outcome.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Result is the outcome of one external command.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes a command and waits for it to exit. A non-zero exit is
// reported through Result.ExitCode, not as an error; the error is reserved
// for commands that could not be run at all.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Timeout bounds each command when positive. Zero waits forever.
	Timeout time.Duration
	logger  *zap.Logger
}

// NewExecRunner creates an ExecRunner with the given timeout.
func NewExecRunner(timeout time.Duration, logger *zap.Logger) *ExecRunner {
	return &ExecRunner{
		Timeout: timeout,
		logger:  logger.Named("exec"),
	}
}

// Run starts name with args and blocks until it exits.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("running command", zap.String("cmd", Format(name, args...)))
	err := cmd.Run()

	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		return res, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, fmt.Errorf("running %s: %w", Format(name, args...), ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		r.logger.Debug("command exited non-zero",
			zap.String("cmd", Format(name, args...)),
			zap.Int("exit_code", res.ExitCode))
		return res, nil
	}
	return res, fmt.Errorf("running %s: %w", Format(name, args...), err)
}

// Format renders a command line for logs and error messages.
func Format(name string, args ...string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}
