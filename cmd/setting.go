package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CristiGvl/picoArch/internal/settings"
)

func newSettingCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "setting",
		Short: "Read or write a machine-wide setting.",
	}
	command.AddCommand(
		&cobra.Command{
			Use:   "get <name>",
			Short: "Print a setting. Missing settings print an empty line.",
			Args:  cobra.ExactArgs(1),
			RunE:  settingGetCmdRun,
		},
		&cobra.Command{
			Use:   "set <name> <value>",
			Short: "Write a setting, creating the namespace if needed.",
			Args:  cobra.ExactArgs(2),
			RunE:  settingSetCmdRun,
		},
	)
	return command
}

func openStore(cmd *cobra.Command) (*settings.Store, error) {
	c, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	backend, err := settingsBackend(c)
	if err != nil {
		return nil, err
	}
	return settings.New(backend), nil
}

func settingGetCmdRun(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), store.Get(args[0]))
	return nil
}

func settingSetCmdRun(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	return store.Set(args[0], args[1])
}
