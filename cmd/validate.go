package cmd

import (
	"github.com/spf13/cobra"

	"github.com/codefind/codefind-cli/internal/logging"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate merged configuration against the JSON Schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			logging.Error("Error: " + err.Error())
			return err
		}
		logging.Success("Configuration is valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
