package main

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog/log"

	"github.com/alx-travel-app/backend/internal/adapters/cache"
	"github.com/alx-travel-app/backend/internal/adapters/database"
	"github.com/alx-travel-app/backend/internal/adapters/security"
	"github.com/alx-travel-app/backend/internal/application/services"
	"github.com/alx-travel-app/backend/internal/domain/repositories"
	"github.com/alx-travel-app/backend/internal/infrastructure/clients/postgres"
	"github.com/alx-travel-app/backend/internal/infrastructure/clients/redis"
	"github.com/alx-travel-app/backend/internal/infrastructure/observability"
	"github.com/alx-travel-app/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	ctx := context.Background()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
		}
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()

	if err := pgClient.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply schema")
	}

	var propertyRepo repositories.PropertyRepository = database.NewPropertyAdapter(pgClient)
	var evictor services.HostCacheEvictor
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, seeding without property cache")
		} else {
			defer redisClient.Close()
			cached := database.NewCachedPropertyAdapter(propertyRepo, cache.NewRedisAdapter(redisClient))
			propertyRepo = cached
			evictor = cached
		}
	}

	userService := services.NewUserService(
		database.NewUserAdapter(pgClient),
		security.NewBcryptHasher(cfg.Security.BcryptCost),
		evictor,
	)
	propertyService := services.NewPropertyService(propertyRepo)

	seeder := services.NewSeeder(userService, propertyService, gofakeit.New(cfg.Seed.RandomSeed), cfg.Seed.PropertyCount)
	result, err := seeder.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	fmt.Printf("Seeded %d properties for host %s\n", len(result.Properties), result.Host.Username)
}
