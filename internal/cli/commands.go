package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iamkroot/trakt-scrobbler/internal/config"
)

// NewRootCmd assembles the command tree from an explicit list of
// subcommands bound to app.
func NewRootCmd(app *App) *cobra.Command {
	var (
		configPath string
		verbose    bool
	)
	root := &cobra.Command{
		Use:           "trakts",
		Short:         "Control the trakt-scrobbler background service",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(configPath, config.CLIOverrides{Verbose: verbose})
		},
	}
	root.SetOut(app.Out)
	root.SetErr(app.Err)
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to trakts.yaml (default: search standard locations)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	for _, cmd := range []*cobra.Command{
		newStartCmd(app),
		newStopCmd(app),
		newStatusCmd(app),
		newRunCmd(app),
		newAutostartCmd(app),
	} {
		root.AddCommand(cmd)
	}
	return root
}

func newStartCmd(app *App) *cobra.Command {
	var restart bool
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Starts the trakt-scrobbler service. If already running, does nothing.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.service()
			if err != nil {
				return err
			}
			if err := ctrl.Start(cmd.Context(), restart); err != nil {
				return err
			}
			if restart {
				fmt.Fprintln(app.Out, app.green("The monitors have restarted."))
			} else {
				fmt.Fprintln(app.Out, app.green("The monitors have started."))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&restart, "restart", "r", false, "Restart the service")
	return cmd
}

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stops the trakt-scrobbler service.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.service()
			if err != nil {
				return err
			}
			if err := ctrl.Stop(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, app.green("The monitors are stopped."))
			return nil
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Shows the status of the trakt-scrobbler service.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.service()
			if err != nil {
				return err
			}
			status, err := ctrl.Status(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(app.Out, status)
			if !strings.HasSuffix(status, "\n") {
				fmt.Fprintln(app.Out)
			}
			return nil
		},
	}
}

func newRunCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the scrobbler in the foreground.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Foreground == nil {
				return fmt.Errorf("foreground runner unavailable")
			}
			return app.Foreground(cmd.Context(), app.Logger())
		},
	}
}

func newAutostartCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autostart",
		Short: "Controls the autostart behaviour of the scrobbler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "enable",
			Short: "Installs and enables the autostart service.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctrl, err := app.service()
				if err != nil {
					return err
				}
				path, err := ctrl.EnableAutostart(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(app.Out, app.green("Autostart Service has been enabled."),
					"The scrobbler will now run automatically when computer starts.")
				fmt.Fprintln(app.Out, "Installed", path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "disable",
			Short: "Disables the autostart service.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctrl, err := app.service()
				if err != nil {
					return err
				}
				if err := ctrl.DisableAutostart(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(app.Out, app.yellow("Autostart Service has been disabled."))
				return nil
			},
		},
	)
	return cmd
}
