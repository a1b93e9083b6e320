package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func migrateCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations and indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, a *app) error {
				migrations := a.manager.MigrationManager()
				if err := migrations.MigrateAll(ctx); err != nil {
					return fmt.Errorf("migration failed: %w", err)
				}

				version, err := migrations.GetCurrentVersion(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Schema at version %s\n", version)
				return nil
			})
		},
	}
}
