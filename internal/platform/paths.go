package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// ServiceName is the file stem shared by every autostart artifact.
const ServiceName = "trakt-scrobbler"

// Env is the slice of the process environment needed to locate artifacts.
type Env interface {
	Getenv(key string) string
	UserHomeDir() (string, error)
}

// OSEnv reads the real process environment.
type OSEnv struct{}

func (OSEnv) Getenv(key string) string { return os.Getenv(key) }

func (OSEnv) UserHomeDir() (string, error) { return os.UserHomeDir() }

// ArtifactPath returns where the autostart artifact for p lives. The path is
// computed on every call so environment changes are picked up.
func ArtifactPath(p Profile, env Env) (string, error) {
	switch p {
	case LaunchAgent:
		home, err := homeDir(env)
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "LaunchAgents", ServiceName+".plist"), nil
	case SystemdUser:
		home, err := homeDir(env)
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "systemd", "user", ServiceName+".service"), nil
	case WindowsStartup:
		appData := env.Getenv("APPDATA")
		if appData == "" {
			return "", &ConfigError{Precondition: "APPDATA environment variable"}
		}
		return filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs", "Startup", ServiceName+".bat"), nil
	default:
		return "", &UnsupportedError{Operation: "autostart", Platform: p.String()}
	}
}

func homeDir(env Env) (string, error) {
	home, err := env.UserHomeDir()
	if err != nil {
		return "", &ConfigError{Precondition: "user home directory", Err: err}
	}
	if home == "" {
		return "", &ConfigError{Precondition: "user home directory", Err: errors.New("empty path")}
	}
	return home, nil
}
