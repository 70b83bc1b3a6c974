package service

import "context"

// The Startup folder needs no service-manager call: Windows runs every
// script found there at login.

func startupEnable(_ context.Context, c *Controller, _ request) (string, error) {
	return c.installArtifact()
}

func startupDisable(_ context.Context, c *Controller, _ request) (string, error) {
	return c.removeArtifact()
}
