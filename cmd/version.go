package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/initia-labs/bridgeinfo/api/handler/status"
	"github.com/initia-labs/bridgeinfo/config"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", status.NormalizeVersion(config.Version), config.CommitHash)
			return err
		},
	}
}
