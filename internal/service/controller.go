// Package service controls the scrobbler through the host's native service
// manager. Each (profile, operation) pair maps to one action in a dispatch
// table; pairs without an entry are unsupported on that platform.
package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/iamkroot/trakt-scrobbler/internal/autostart"
	"github.com/iamkroot/trakt-scrobbler/internal/command"
	"github.com/iamkroot/trakt-scrobbler/internal/platform"
)

// Operation names a logical service operation.
type Operation string

const (
	OpStart   Operation = "start"
	OpStop    Operation = "stop"
	OpStatus  Operation = "status"
	OpEnable  Operation = "autostart enable"
	OpDisable Operation = "autostart disable"
)

type request struct {
	restart bool
}

// action performs one operation. The returned string is the operation's
// textual result: captured status output, or the artifact path on enable.
type action func(ctx context.Context, c *Controller, req request) (string, error)

var actions = map[platform.Profile]map[Operation]action{
	platform.LaunchAgent: {
		OpStart:   launchdStart,
		OpStop:    launchdStop,
		OpStatus:  launchdStatus,
		OpEnable:  launchdEnable,
		OpDisable: launchdDisable,
	},
	platform.SystemdUser: {
		OpStart:   systemdStart,
		OpStop:    systemdStop,
		OpStatus:  systemdStatus,
		OpEnable:  systemdEnable,
		OpDisable: systemdDisable,
	},
	platform.WindowsStartup: {
		OpEnable:  startupEnable,
		OpDisable: startupDisable,
	},
}

// Controller executes service operations for a single, fixed profile.
// Calls are synchronous and must not run concurrently: every call targets
// the same artifact path.
type Controller struct {
	profile platform.Profile
	env     platform.Env
	runner  command.Runner
	uid     int
	logger  *zap.Logger
}

// New creates a Controller for profile. The profile is never re-resolved.
func New(profile platform.Profile, env platform.Env, runner command.Runner, logger *zap.Logger) *Controller {
	return &Controller{
		profile: profile,
		env:     env,
		runner:  runner,
		uid:     os.Getuid(),
		logger:  logger.Named("service"),
	}
}

// Profile returns the profile the controller dispatches on.
func (c *Controller) Profile() platform.Profile { return c.profile }

// Start starts the scrobbler, or restarts it when restart is set.
func (c *Controller) Start(ctx context.Context, restart bool) error {
	_, err := c.dispatch(ctx, OpStart, request{restart: restart})
	return err
}

// Stop stops the scrobbler.
func (c *Controller) Stop(ctx context.Context) error {
	_, err := c.dispatch(ctx, OpStop, request{})
	return err
}

// Status returns the service manager's report verbatim.
func (c *Controller) Status(ctx context.Context) (string, error) {
	return c.dispatch(ctx, OpStatus, request{})
}

// EnableAutostart installs the autostart artifact and registers it with the
// service manager. It returns the artifact path. If activation fails after
// the artifact was written, the artifact is left in place.
func (c *Controller) EnableAutostart(ctx context.Context) (string, error) {
	return c.dispatch(ctx, OpEnable, request{})
}

// DisableAutostart deregisters the scrobbler from autostart.
func (c *Controller) DisableAutostart(ctx context.Context) error {
	_, err := c.dispatch(ctx, OpDisable, request{})
	return err
}

func (c *Controller) dispatch(ctx context.Context, op Operation, req request) (string, error) {
	act, ok := actions[c.profile][op]
	if !ok {
		return "", &platform.UnsupportedError{Operation: string(op), Platform: c.profile.String()}
	}
	c.logger.Debug("dispatching",
		zap.String("operation", string(op)),
		zap.Stringer("platform", c.profile))
	return act(ctx, c, req)
}

// run executes a service-manager command and converts a non-zero exit into
// a *CommandFailedError.
func (c *Controller) run(ctx context.Context, op Operation, name string, args ...string) (command.Result, error) {
	res, err := c.runner.Run(ctx, name, args...)
	if err != nil {
		return res, fmt.Errorf("%s: %w", op, err)
	}
	if res.ExitCode != 0 {
		return res, &CommandFailedError{
			Operation: op,
			Platform:  c.profile,
			Command:   command.Format(name, args...),
			ExitCode:  res.ExitCode,
			Output:    res.Stdout,
			Stderr:    res.Stderr,
		}
	}
	return res, nil
}

// runAll runs commands in order and stops at the first failure.
func (c *Controller) runAll(ctx context.Context, op Operation, cmds [][]string) error {
	for _, args := range cmds {
		if _, err := c.run(ctx, op, args[0], args[1:]...); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) artifactPath() (string, error) {
	return platform.ArtifactPath(c.profile, c.env)
}

// installArtifact renders the artifact for the controller's profile and
// writes it, creating parent directories as needed.
func (c *Controller) installArtifact() (string, error) {
	path, err := c.artifactPath()
	if err != nil {
		return "", err
	}
	content := autostart.Render(c.profile, autostart.NewDescriptor())
	if err := writeArtifact(path, []byte(content)); err != nil {
		return "", err
	}
	c.logger.Debug("wrote autostart artifact", zap.String("path", path))
	return path, nil
}

func (c *Controller) removeArtifact() (string, error) {
	path, err := c.artifactPath()
	if err != nil {
		return "", err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.logger.Info("autostart artifact already absent", zap.String("path", path))
			return path, nil
		}
		return "", fmt.Errorf("removing %s: %w", path, err)
	}
	c.logger.Debug("removed autostart artifact", zap.String("path", path))
	return path, nil
}
