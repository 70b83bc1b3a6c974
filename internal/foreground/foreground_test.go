package foreground

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeProbe struct {
	pids []int32
	err  error
}

func (f fakeProbe) Running(context.Context) ([]int32, error) { return f.pids, f.err }

func TestRun_InvokesEntry(t *testing.T) {
	called := false
	r := New(zap.NewNop(), func(ctx context.Context) error {
		called = true
		return nil
	}, nil)

	require.NoError(t, r.Run(context.Background()))
	assert.True(t, called)
}

func TestRun_PropagatesEntryError(t *testing.T) {
	boom := errors.New("trakt token expired")
	r := New(zap.NewNop(), func(context.Context) error { return boom }, nil)

	assert.ErrorIs(t, r.Run(context.Background()), boom)
}

func TestRun_ContextCancellationReachesEntry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := New(zap.NewNop(), func(ctx context.Context) error {
		cancel()
		<-ctx.Done()
		return nil
	}, nil)

	require.NoError(t, r.Run(ctx))
}

func TestRun_WarnsAboutRunningInstance(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	r := New(zap.New(core), func(context.Context) error { return nil }, fakeProbe{pids: []int32{4242}})

	require.NoError(t, r.Run(context.Background()))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Another scrobbler instance is already running", entry.Message)
	assert.Equal(t, int32(4242), entry.ContextMap()["pid"])
}

func TestRun_ProbeErrorIsIgnored(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	r := New(zap.New(core), func(context.Context) error { return nil }, fakeProbe{err: errors.New("permission denied")})

	require.NoError(t, r.Run(context.Background()))
	assert.Zero(t, logs.Len())
}

func TestProcessProbe_Matches(t *testing.T) {
	p := NewProcessProbe("trakts")
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"trakts", "run"}, true},
		{[]string{"/usr/local/bin/trakts", "run"}, true},
		{[]string{"trakts.exe", "run"}, true},
		{[]string{"trakts", "status"}, false},
		{[]string{"trakts"}, false},
		{[]string{"python", "trakts", "run"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.matches(tt.args), "%q", tt.args)
	}
}

func TestProcessProbe_SkipsSelf(t *testing.T) {
	p := NewProcessProbe("trakts")

	pids, err := p.Running(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, pids, p.self)
}
