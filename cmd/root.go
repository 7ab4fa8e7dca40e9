package cmd

import (
	"github.com/spf13/cobra"

	"github.com/initia-labs/bridgeinfo/config"
)

// SetVersion records build information injected through ldflags.
func SetVersion(version, commit string) {
	config.SetBuildInfo(version, commit)
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "bridgeinfo",
		Short:        "Bridge info JSON-RPC server",
		SilenceUsage: true,
	}

	cmd.AddCommand(apiCmd())
	cmd.AddCommand(migrateCmd())
	cmd.AddCommand(schemaCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}
