// Package cli builds the trakts command tree and maps results onto output
// and exit codes.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/iamkroot/trakt-scrobbler/internal/config"
	"github.com/iamkroot/trakt-scrobbler/internal/platform"
)

// Controller is the service-control surface the commands drive.
type Controller interface {
	Profile() platform.Profile
	Start(ctx context.Context, restart bool) error
	Stop(ctx context.Context) error
	Status(ctx context.Context) (string, error)
	EnableAutostart(ctx context.Context) (string, error)
	DisableAutostart(ctx context.Context) error
}

// App carries the capabilities injected into the command tree. Factories
// run after flags are parsed so they can see the loaded configuration.
type App struct {
	Out     io.Writer
	Err     io.Writer
	Version string

	// NewLogger builds the logger from configuration and returns a func
	// releasing its sinks. Nil means zap.NewNop.
	NewLogger func(cfg *config.Config) (*zap.Logger, func(), error)
	// NewController builds the service controller on first use.
	NewController func(cfg *config.Config, logger *zap.Logger) (Controller, error)
	// Foreground runs the scrobbler in the current process.
	Foreground func(ctx context.Context, logger *zap.Logger) error
	// Elevated reports whether the process runs with admin rights.
	Elevated func() bool

	cfg         *config.Config
	logger      *zap.Logger
	closeLogger func()
	controller  Controller

	green  func(a ...interface{}) string
	yellow func(a ...interface{}) string
	red    func(a ...interface{}) string
}

// NewApp creates an App writing to the process's stdout and stderr.
func NewApp(version string) *App {
	return &App{
		Out:      os.Stdout,
		Err:      os.Stderr,
		Version:  version,
		Elevated: platform.IsElevated,
		green:    color.New(color.FgGreen, color.Bold).SprintFunc(),
		yellow:   color.New(color.FgYellow).SprintFunc(),
		red:      color.New(color.FgRed).SprintFunc(),
	}
}

// NewAppForTesting creates an App without colors that writes to out and errOut.
func NewAppForTesting(out, errOut io.Writer) *App {
	noColor := func(a ...interface{}) string { return fmt.Sprint(a...) }
	return &App{
		Out:      out,
		Err:      errOut,
		Version:  "test",
		Elevated: func() bool { return false },
		green:    noColor,
		yellow:   noColor,
		red:      noColor,
	}
}

// setup loads configuration and builds the logger. The controller is left
// to service() so "run" never touches the service manager.
func (a *App) setup(configPath string, overrides config.CLIOverrides) error {
	if configPath == "" {
		configPath = config.Locate()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	overrides.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	a.logger = zap.NewNop()
	if a.NewLogger != nil {
		if a.logger, a.closeLogger, err = a.NewLogger(cfg); err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
	}
	a.logger.Debug("Configuration loaded",
		zap.String("path", configPath),
		zap.String("log_level", cfg.Logging.Level),
		zap.Duration("command_timeout", cfg.Service.CommandTimeout.Duration))

	a.cfg = cfg
	a.controller = nil
	return nil
}

// service builds the controller the first time a command needs it.
func (a *App) service() (Controller, error) {
	if a.controller == nil {
		if a.NewController == nil {
			return nil, fmt.Errorf("service controller unavailable")
		}
		ctrl, err := a.NewController(a.cfg, a.Logger())
		if err != nil {
			return nil, err
		}
		a.controller = ctrl
	}
	if a.Elevated != nil && a.Elevated() {
		a.logger.Warn("Running elevated; the scrobbler is a per-user service and should be managed without sudo or admin rights",
			zap.Stringer("platform", a.controller.Profile()))
	}
	return a.controller, nil
}

// Close flushes the logger and releases its sinks.
func (a *App) Close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.closeLogger != nil {
		a.closeLogger()
		a.closeLogger = nil
	}
}

// Logger returns the logger built during setup.
func (a *App) Logger() *zap.Logger {
	if a.logger == nil {
		return zap.NewNop()
	}
	return a.logger
}
