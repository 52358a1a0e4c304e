package cmd

import (
	"github.com/spf13/cobra"

	"github.com/codefind/codefind-cli/internal/config"
	"github.com/codefind/codefind-cli/internal/logging"
	"github.com/codefind/codefind-cli/internal/ui/console"
)

func init() {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Prompt for search parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				logging.Error("Error: " + err.Error())
				return err
			}
			req, err := console.PromptRequest(defaultRequest(config.Get()))
			if err != nil {
				return err
			}
			return runSearch(req)
		},
	}
	rootCmd.AddCommand(cmd)
}
