//go:build unix

package platform

import "golang.org/x/sys/unix"

// IsElevated reports whether the process runs as root. Per-user agents and
// user units belong to the invoking user, so root usually means sudo was
// used by mistake.
func IsElevated() bool {
	return unix.Geteuid() == 0
}
