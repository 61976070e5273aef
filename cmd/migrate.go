package cmd

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"contacts-be/internal/config"
	"contacts-be/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		setLogging(resolveLogLevel(cfg.LogLevel))

		ctx := context.Background()
		db, err := database.NewConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()

		log.Info().Msg("running migrations")
		if err := database.RunMigrations(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		log.Info().Msg("migrations complete")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
