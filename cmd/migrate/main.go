package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/alx-travel-app/backend/internal/infrastructure/clients/postgres"
	"github.com/alx-travel-app/backend/internal/infrastructure/observability"
	"github.com/alx-travel-app/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()

	if err := pgClient.Migrate(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply schema")
	}

	log.Info().Str("database", cfg.Database.Database).Msg("Schema applied")
}
