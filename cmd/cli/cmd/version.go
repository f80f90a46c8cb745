package cmd

import (
	"github.com/ecs-state-check/ecs-state-check/internal/constants"
	"github.com/ecs-state-check/ecs-state-check/internal/output"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version of the CLI",
	Run: func(_ *cobra.Command, _ []string) {
		output.KeyValue("CLI version", *constants.GetVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
