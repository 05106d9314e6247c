// Package cmd provides Cobra CLI commands for shortcutctl.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/shortcutctl/internal/cli"
	"github.com/bnema/shortcutctl/internal/domain/build"
)

var (
	app        *cli.App
	configPath string
	rootCmd    = &cobra.Command{
		Use:   "shortcutctl",
		Short: "Manage accessibility shortcut bindings",
		Long: `shortcutctl binds accessibility features to shortcut modes.

A feature can be reached through the accessibility button or gesture
(software), by holding both volume keys (hardware), or by triple-tapping
the screen. Bindings live in a shared settings store as colon-separated
target lists and per-feature switches.

A <feature> argument is either a name from the [features] config table
or a raw component name such as com.example/.ReaderService.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "schema":
				return nil
			}

			// PersistentPostRun is skipped when a command fails
			if app != nil {
				_ = app.Close()
			}

			var err error
			app, err = cli.NewApp(configPath)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
				app = nil
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/shortcutctl/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	rootCmd.Version = info.String()
}
