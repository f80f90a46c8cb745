// Package cmd contains the cobra commands of the ecs-state-check CLI.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ecs-state-check/ecs-state-check/internal/config"
	"github.com/ecs-state-check/ecs-state-check/internal/constants"
	"github.com/ecs-state-check/ecs-state-check/internal/logger"
	"github.com/ecs-state-check/ecs-state-check/internal/output"

	"github.com/spf13/cobra"
)

var (
	configPath    string
	debug         bool
	timeout       time.Duration
	timeoutCancel context.CancelFunc
)

var rootCmd = &cobra.Command{
	Use:   constants.ProjectName,
	Short: constants.ProjectName,
	Long: fmt.Sprintf(`%s - %s
Alert on ECS tasks that stopped unhealthy or unexpectedly`,
		constants.ProjectName, *constants.GetVersion()),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		printHeader(cmd)

		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}
		logger.Initialize(constants.CLI, logLevel)

		if timeout <= 0 {
			return nil
		}

		// NOTICE: this runs after flags are parsed but before the command runs
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		timeoutCancel = cancel
		cmd.SetContext(ctx)

		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if timeoutCancel != nil {
			timeoutCancel()
		}
	},
}

// Execute runs the root command and handles cleanup of timeout context.
func Execute() {
	err := rootCmd.Execute()
	if timeoutCancel != nil {
		timeoutCancel()
	}

	if err != nil {
		output.Errorf("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to an optional YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debugging logs")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute,
		"Timeout for command execution (e.g., 30s, 2m), 0 to disable")
}

func printHeader(cmd *cobra.Command) {
	output.Header(output.Bold(constants.ProjectName + " " + cmd.CalledAs()))
}

// loadConfig reads the CLI configuration from the environment and the optional --config file.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

// RootCmd returns the root command for use by tools like doc generators.
func RootCmd() *cobra.Command {
	return rootCmd
}
