package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/argha-paul/alarm-clock/internal/config"
	"github.com/argha-paul/alarm-clock/internal/service/console"
	"github.com/argha-paul/alarm-clock/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// pollInterval overrides the configured scheduler poll period.
	pollInterval time.Duration

	// rootCmd represents the base command running the interactive alarm clock.
	rootCmd = &cobra.Command{
		Use:   "alarm-clock",
		Short: "Interactive weekly alarm clock.",
		Long: `Interactive alarm clock for the terminal.

Alarms are bound to a time of day and a weekday. A background checker polls
the host clock and rings matching alarms; a ringing alarm can be snoozed by
5 minutes up to 3 times or dismissed. Alarms live in memory for the lifetime
of the process.

Type 'help' at the prompt for the available commands.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return console.Run(ctx, &console.Options{
				ConfigPath:   configPath,
				PollInterval: pollInterval,
			})
		},
	}

	// initConfigCmd writes a settings file populated with the defaults.
	initConfigCmd = &cobra.Command{
		Use:   "init-config",
		Short: "Write a settings file with default values.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Save(configPath, config.Default()); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote default settings to %s\n", configPath)

			return nil
		},
	}
)

// Execute runs the alarm-clock CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)
	rootCmd.AddCommand(initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().
		DurationVarP(&pollInterval, "poll-interval", "p", 0, "override the scheduler poll interval (1s-30s)")
}
