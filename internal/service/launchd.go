package service

import (
	"context"
	"fmt"

	"github.com/iamkroot/trakt-scrobbler/internal/autostart"
)

func launchdStart(ctx context.Context, c *Controller, req request) (string, error) {
	if req.restart {
		// kickstart addresses services by domain target, not bare label.
		target := fmt.Sprintf("gui/%d/%s", c.uid, autostart.Label())
		_, err := c.run(ctx, OpStart, "launchctl", "kickstart", "-k", target)
		return "", err
	}
	_, err := c.run(ctx, OpStart, "launchctl", "start", autostart.Label())
	return "", err
}

func launchdStop(ctx context.Context, c *Controller, _ request) (string, error) {
	_, err := c.run(ctx, OpStop, "launchctl", "stop", autostart.Label())
	return "", err
}

func launchdStatus(ctx context.Context, c *Controller, _ request) (string, error) {
	res, err := c.run(ctx, OpStatus, "launchctl", "list", autostart.Label())
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}

func launchdEnable(ctx context.Context, c *Controller, _ request) (string, error) {
	path, err := c.installArtifact()
	if err != nil {
		return "", err
	}
	if _, err := c.run(ctx, OpEnable, "launchctl", "load", "-w", path); err != nil {
		return "", err
	}
	return path, nil
}

func launchdDisable(ctx context.Context, c *Controller, _ request) (string, error) {
	path, err := c.artifactPath()
	if err != nil {
		return "", err
	}
	_, err = c.run(ctx, OpDisable, "launchctl", "unload", "-w", path)
	return path, err
}
