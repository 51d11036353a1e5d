package main

import (
	"context"
	"fmt"

	"github.com/dalemusser/ukrconnect/internal/app/system/indexes"
	"github.com/dalemusser/ukrconnect/internal/app/system/seed"
	"github.com/dalemusser/ukrconnect/internal/app/system/validators"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Create collections and indexes, then load starter content into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(cmd.Context(), func(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
			if err := validators.EnsureAll(ctx, db); err != nil {
				return fmt.Errorf("ensure validators: %w", err)
			}
			if err := indexes.EnsureAll(ctx, db); err != nil {
				return fmt.Errorf("ensure indexes: %w", err)
			}
			rep, err := seed.Run(ctx, db, logger)
			if err != nil {
				return err
			}
			if rep.Skipped {
				fmt.Fprintln(cmd.OutOrStdout(), "Database already has translations; nothing seeded.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d records.\n", rep.Total())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
