package main

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/database/migration"
	"github.com/spf13/cobra"
)

func seedCmd(open opener) *cobra.Command {
	var seedFile string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert payers and students from a YAML fixture",
		Long: `Insert payers and students from a YAML fixture.

Rows that already exist are left untouched, so the command can be re-run.

Examples:
  tuitionctl seed
  tuitionctl seed --file ./configs/seed.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := migration.LoadSeedFile(seedFile)
			if err != nil {
				return err
			}

			return withApp(cmd, open, func(ctx context.Context, a *app) error {
				seeder := migration.NewSeeder(a.manager.DB(), a.logger, a.timeProvider)
				result, err := seeder.Apply(ctx, data)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Created %d users and %d students\n", result.UsersCreated, result.StudentsCreated)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&seedFile, "file", "f", "configs/seed.yaml", "seed fixture path")

	return cmd
}
