//go:build !windows

package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/iamkroot/trakt-scrobbler/internal/platform"
)

// writeArtifact replaces path atomically so launchd and systemd never read a
// half-written descriptor.
func writeArtifact(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &platform.ConfigError{Precondition: "writable directory " + dir, Err: err}
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
