// Package main is the entry point for trakts, the command-line front-end
// that controls the trakt-scrobbler background service.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iamkroot/trakt-scrobbler/internal/cli"
	"github.com/iamkroot/trakt-scrobbler/internal/command"
	"github.com/iamkroot/trakt-scrobbler/internal/config"
	"github.com/iamkroot/trakt-scrobbler/internal/foreground"
	"github.com/iamkroot/trakt-scrobbler/internal/platform"
	"github.com/iamkroot/trakt-scrobbler/internal/service"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	app := cli.NewApp(version)
	app.NewLogger = initLogger
	app.NewController = newController
	app.Foreground = runForeground

	err := cli.NewRootCmd(app).ExecuteContext(context.Background())
	code := app.Report(err)
	app.Close()
	os.Exit(code)
}

// newController resolves the host platform once and binds a controller to it.
func newController(cfg *config.Config, logger *zap.Logger) (cli.Controller, error) {
	profile, err := platform.Current()
	if err != nil {
		return nil, err
	}
	runner := command.NewExecRunner(cfg.Service.CommandTimeout.Duration, logger)
	return service.New(profile, platform.OSEnv{}, runner, logger), nil
}

func runForeground(ctx context.Context, logger *zap.Logger) error {
	r := foreground.New(logger, scrobble(logger), foreground.NewProcessProbe("trakts"))
	return r.Run(ctx)
}

// scrobble is the hook the player monitors attach to. It blocks until the
// runner cancels ctx.
func scrobble(logger *zap.Logger) foreground.EntryFunc {
	return func(ctx context.Context) error {
		logger.Info("Scrobbler running", zap.String("version", version))
		<-ctx.Done()
		return nil
	}
}

// initLogger creates a zap logger based on the configuration.
// Console output goes to stderr so command output on stdout stays clean;
// a JSON log file is added when configured. The returned func closes it.
func initLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	var level zapcore.Level
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.WarnLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	cores := []zapcore.Core{consoleCore}
	closeFn := func() {}

	if cfg.Logging.File != "" {
		file, err := os.OpenFile(cfg.Logging.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		closeFn = func() { _ = file.Close() }
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(file),
			level,
		)
		cores = append(cores, fileCore)
	}

	return zap.New(zapcore.NewTee(cores...)).Named("trakts"), closeFn, nil
}
