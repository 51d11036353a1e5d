package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/dalemusser/ukrconnect/internal/app/system/seed"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Print record counts for each content collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(cmd.Context(), func(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
			counts, err := seed.Counts(ctx, db)
			if err != nil {
				return err
			}
			names := lo.Keys(counts)
			slices.Sort(names)
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %d\n", name, counts[name])
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
