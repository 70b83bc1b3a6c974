// Package autostart renders the artifact each service manager reads to
// launch the scrobbler at login: a launchd property list, a systemd user
// unit, or a Windows Startup batch script.
package autostart

import "github.com/iamkroot/trakt-scrobbler/internal/platform"

const (
	serviceLabel       = "com.iamkroot.trakt-scrobbler"
	serviceDescription = "Trakt Scrobbler Service"
	defaultTarget      = "default.target"
)

// Descriptor describes the background process an artifact launches.
type Descriptor struct {
	Name        string   // unit and script identifier
	Label       string   // launchd label
	Description string   // unit description
	Program     []string // argv of the background process

	// launchd flags
	RunAtLoad      bool
	LaunchOnlyOnce bool
	KeepAlive      bool

	// WantedBy is the systemd target the unit is installed into.
	WantedBy string
}

// NewDescriptor returns the descriptor for the scrobbler started by
// "trakts run".
func NewDescriptor() Descriptor {
	return Descriptor{
		Name:           platform.ServiceName,
		Label:          serviceLabel,
		Description:    serviceDescription,
		Program:        []string{"trakts", "run"},
		RunAtLoad:      true,
		LaunchOnlyOnce: true,
		KeepAlive:      true,
		WantedBy:       defaultTarget,
	}
}

// Label returns the launchd label used to address the agent.
func Label() string { return serviceLabel }
