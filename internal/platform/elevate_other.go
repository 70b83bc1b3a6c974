//go:build !unix && !windows

package platform

// IsElevated always reports false on hosts without a privilege model.
func IsElevated() bool { return false }
