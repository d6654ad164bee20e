package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CristiGvl/picoArch/internal/system"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the operating system name and platform.",
		Args:  cobra.NoArgs,
		RunE:  infoCmdRun,
	}
}

func infoCmdRun(cmd *cobra.Command, _ []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, c.Api.RequestTimeout)
	defer cancel()

	info, err := system.NewReader().GetInfo(ctx)
	if err != nil {
		return err
	}

	label := color.New(color.FgCyan, color.Bold).SprintFunc()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", label("OS:      "), info.OSName)
	fmt.Fprintf(out, "%s %s\n", label("Platform:"), info.Platform)
	if info.NativeMachine != "" {
		fmt.Fprintf(out, "%s %s\n", label("Native:  "), info.NativeMachine)
	}
	if info.Version != nil {
		fmt.Fprintf(out, "%s %d.%d.%d (%s)\n", label("Version: "), info.Version.Major, info.Version.Minor, info.Version.Build, info.Version.ProductType)
	}
	if info.Host != nil {
		if info.Host.Caption != "" {
			fmt.Fprintf(out, "%s %s\n", label("Caption: "), info.Host.Caption)
		}
		fmt.Fprintf(out, "%s %s\n", label("Hostname:"), info.Host.Hostname)
		fmt.Fprintf(out, "%s %s\n", label("Uptime:  "), time.Duration(info.Host.Uptime)*time.Second)
	}
	return nil
}
