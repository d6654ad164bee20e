package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/CristiGvl/picoArch/api"
	"github.com/CristiGvl/picoArch/internal/platform"
	"github.com/CristiGvl/picoArch/internal/settings"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API.",
		Args:  cobra.NoArgs,
		RunE:  serveCmdRun,
	}
}

func serveCmdRun(cmd *cobra.Command, _ []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Validate platform support. The in-memory store works anywhere.
	if err := platform.ValidateSupport(); err != nil {
		if c.Settings.Backend != settings.BackendMemory {
			return err
		}
		log.WithError(err).Warn("running without a native settings store")
	}

	backend, err := settingsBackend(c)
	if err != nil {
		return err
	}
	server := api.NewServer(c.Api, backend)

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		if err := server.Shutdown(); err != nil {
			log.WithError(err).Error("error during shutdown")
		}
	}()

	log.WithFields(log.Fields{
		"address": c.Api.Address(),
		"backend": c.Settings.Backend,
	}).Info("starting picoArch server")
	return server.Start(c.Api.Address())
}
