package cmd

import (
	"fmt"

	"ariga.io/atlas-provider-gorm/gormschema"
	"github.com/spf13/cobra"

	"github.com/initia-labs/bridgeinfo/types"
)

func schemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the database schema derived from the GORM models",
		Long: `
Print the database schema derived from the GORM models.

Atlas reads this output as the desired state when running "migrate diff" (see atlas.hcl).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			models := make([]any, 0, len(types.AllTables))
			for _, table := range types.AllTables {
				models = append(models, table.Model)
			}

			stmts, err := gormschema.New("postgres").Load(models...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), stmts)
			return err
		},
	}

	return cmd
}
