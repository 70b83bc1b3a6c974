package service

import (
	"context"

	"github.com/iamkroot/trakt-scrobbler/internal/platform"
)

func systemctl(args ...string) []string {
	return append([]string{"systemctl", "--user"}, args...)
}

func systemdStart(ctx context.Context, c *Controller, req request) (string, error) {
	verb := "start"
	if req.restart {
		verb = "restart"
	}
	return "", c.runAll(ctx, OpStart, [][]string{systemctl(verb, platform.ServiceName)})
}

func systemdStop(ctx context.Context, c *Controller, _ request) (string, error) {
	return "", c.runAll(ctx, OpStop, [][]string{systemctl("stop", platform.ServiceName)})
}

func systemdStatus(ctx context.Context, c *Controller, _ request) (string, error) {
	args := systemctl("status", platform.ServiceName)
	res, err := c.run(ctx, OpStatus, args[0], args[1:]...)
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}

func systemdEnable(ctx context.Context, c *Controller, _ request) (string, error) {
	path, err := c.installArtifact()
	if err != nil {
		return "", err
	}
	err = c.runAll(ctx, OpEnable, [][]string{
		systemctl("daemon-reload"),
		systemctl("enable", platform.ServiceName),
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

func systemdDisable(ctx context.Context, c *Controller, _ request) (string, error) {
	return "", c.runAll(ctx, OpDisable, [][]string{systemctl("disable", platform.ServiceName)})
}
