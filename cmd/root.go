// Package cmd holds the picoarch command tree.
package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/CristiGvl/picoArch/internal/config"
	"github.com/CristiGvl/picoArch/internal/logging"
	"github.com/CristiGvl/picoArch/internal/settings"
)

var rootArgs struct {
	ConfigPath string
	Debug      bool
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree. Running it without a subcommand
// starts the webserver.
func NewRootCommand() *cobra.Command {
	command := &cobra.Command{
		Use:           "picoarch",
		Short:         "Reports the host operating system and manages machine-wide settings.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          serveCmdRun,
	}

	command.PersistentFlags().StringVar(&rootArgs.ConfigPath, "config", config.DefaultLocation, "the location of the configuration file")
	command.PersistentFlags().BoolVar(&rootArgs.Debug, "debug", false, "enable debug logging")

	command.AddCommand(newServeCommand(), newInfoCommand(), newSettingCommand())
	return command
}

// loadConfig reads the configuration and installs the logger it describes.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	c, err := config.FromFile(rootArgs.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := logging.Configure(cmd.ErrOrStderr(), c.Log, c.Debug || rootArgs.Debug); err != nil {
		return nil, err
	}
	log.WithField("path", c.Path()).Debug("loaded configuration")
	return c, nil
}

// settingsBackend returns the backend selected in the configuration.
func settingsBackend(c *config.Configuration) (settings.Backend, error) {
	return settings.NewBackend(c.Settings.Backend)
}
