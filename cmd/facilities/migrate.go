package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/facilities/internal/db"
	"github.com/gyeh/facilities/internal/exitcode"
	"github.com/gyeh/facilities/internal/logging"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply Postgres schema migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	n, err := db.ApplyMigrations(ctx, pool, log)
	if err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(exitcode.TransformError)
	}

	log.Info().Int("applied", n).Msg("schema is current")
	return nil
}
