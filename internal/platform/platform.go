// Package platform resolves the host operating system into one of the
// supported service-manager profiles and locates the autostart artifact
// each profile reads at login.
package platform

import (
	"fmt"
	"runtime"
)

// Profile identifies the native service manager used on the host.
type Profile int

const (
	LaunchAgent    Profile = iota // macOS launchd per-user agent
	SystemdUser                   // systemd user session
	WindowsStartup                // Windows Startup folder script
)

func (p Profile) String() string {
	switch p {
	case LaunchAgent:
		return "launchd"
	case SystemdUser:
		return "systemd"
	case WindowsStartup:
		return "windows"
	default:
		return fmt.Sprintf("profile(%d)", int(p))
	}
}

// Resolve maps an operating system identifier, as reported by runtime.GOOS,
// onto a Profile. Unknown identifiers yield an *UnsupportedError.
func Resolve(goos string) (Profile, error) {
	switch goos {
	case "darwin":
		return LaunchAgent, nil
	case "linux":
		return SystemdUser, nil
	case "windows":
		return WindowsStartup, nil
	default:
		return 0, &UnsupportedError{Platform: goos}
	}
}

// Current resolves the profile of the running host.
func Current() (Profile, error) {
	return Resolve(runtime.GOOS)
}
