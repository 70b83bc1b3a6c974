package platform_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamkroot/trakt-scrobbler/internal/mocks"
	"github.com/iamkroot/trakt-scrobbler/internal/platform"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		goos    string
		want    platform.Profile
		wantErr bool
	}{
		{"darwin", platform.LaunchAgent, false},
		{"linux", platform.SystemdUser, false},
		{"windows", platform.WindowsStartup, false},
		{"freebsd", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got, err := platform.Resolve(tt.goos)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, platform.ErrUnsupported)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfileString(t *testing.T) {
	assert.Equal(t, "launchd", platform.LaunchAgent.String())
	assert.Equal(t, "systemd", platform.SystemdUser.String())
	assert.Equal(t, "windows", platform.WindowsStartup.String())
	assert.Equal(t, "profile(7)", platform.Profile(7).String())
}

func TestArtifactPath(t *testing.T) {
	home := filepath.Join("home", "kroot")
	env := mocks.NewEnv(home)
	env.Vars["APPDATA"] = filepath.Join("C:", "Users", "kroot", "AppData", "Roaming")

	tests := []struct {
		profile platform.Profile
		want    string
	}{
		{platform.LaunchAgent, filepath.Join(home, "Library", "LaunchAgents", "trakt-scrobbler.plist")},
		{platform.SystemdUser, filepath.Join(home, ".config", "systemd", "user", "trakt-scrobbler.service")},
		{platform.WindowsStartup, filepath.Join(env.Vars["APPDATA"], "Microsoft", "Windows", "Start Menu", "Programs", "Startup", "trakt-scrobbler.bat")},
	}
	for _, tt := range tests {
		t.Run(tt.profile.String(), func(t *testing.T) {
			got, err := platform.ArtifactPath(tt.profile, env)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArtifactPath_MissingAppData(t *testing.T) {
	_, err := platform.ArtifactPath(platform.WindowsStartup, mocks.NewEnv("/home/kroot"))

	var cfgErr *platform.ConfigError
	require.True(t, errors.As(err, &cfgErr), "got %v", err)
	assert.Contains(t, cfgErr.Error(), "APPDATA")
}

func TestArtifactPath_MissingHome(t *testing.T) {
	env := mocks.NewEnv("")
	env.HomeErr = errors.New("no passwd entry")

	for _, p := range []platform.Profile{platform.LaunchAgent, platform.SystemdUser} {
		_, err := platform.ArtifactPath(p, env)
		var cfgErr *platform.ConfigError
		require.True(t, errors.As(err, &cfgErr), "%s: got %v", p, err)
		assert.Equal(t, "user home directory", cfgErr.Precondition)
	}
}

func TestUnsupportedError(t *testing.T) {
	err := &platform.UnsupportedError{Operation: "start", Platform: "windows"}
	assert.Equal(t, "start is not supported on windows", err.Error())
	assert.True(t, errors.Is(err, platform.ErrUnsupported))
}
