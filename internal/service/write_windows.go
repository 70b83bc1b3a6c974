//go:build windows

package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iamkroot/trakt-scrobbler/internal/platform"
)

// renameio does not build on windows; the script is small enough that a
// single WriteFile is fine.
func writeArtifact(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &platform.ConfigError{Precondition: "writable directory " + dir, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
