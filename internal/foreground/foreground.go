// Package foreground runs the scrobbler in the current process, bypassing
// the service manager. It is used by "trakts run", which is also the
// command every autostart artifact launches.
package foreground

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// EntryFunc is the scrobbler entry point. It must return once ctx is done.
type EntryFunc func(ctx context.Context) error

// Runner invokes the injected entry point with signal-driven cancellation.
type Runner struct {
	logger *zap.Logger
	entry  EntryFunc
	probe  InstanceProbe
}

// New creates a Runner for entry. A nil probe skips the duplicate check.
func New(logger *zap.Logger, entry EntryFunc, probe InstanceProbe) *Runner {
	return &Runner{
		logger: logger.Named("foreground"),
		entry:  entry,
		probe:  probe,
	}
}

// Run blocks until the entry point returns. SIGINT and SIGTERM cancel the
// context handed to the entry point.
func (r *Runner) Run(ctx context.Context) error {
	r.warnIfRunning(ctx)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r.logger.Info("Starting scrobbler in foreground", zap.Int("pid", os.Getpid()))
	err := r.entry(ctx)
	if err != nil {
		r.logger.Error("Scrobbler exited with error", zap.Error(err))
		return err
	}
	r.logger.Info("Scrobbler stopped")
	return nil
}

func (r *Runner) warnIfRunning(ctx context.Context) {
	if r.probe == nil {
		return
	}
	pids, err := r.probe.Running(ctx)
	if err != nil {
		r.logger.Debug("Instance probe failed", zap.Error(err))
		return
	}
	for _, pid := range pids {
		r.logger.Warn("Another scrobbler instance is already running",
			zap.Int32("pid", pid))
	}
}
