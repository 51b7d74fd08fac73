package services

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/alx-travel-app/backend/internal/domain/entities"
	"github.com/alx-travel-app/backend/internal/infrastructure/observability"
)

const (
	SeedHostUsername = "host_user"
	SeedHostEmail    = "host_user@email.com"
	SeedHostPassword = "hostpassword"

	// DefaultSeedPropertyCount is how many properties one run appends
	DefaultSeedPropertyCount = 20

	minSeedPriceCents = 15000
	maxSeedPriceCents = 50000
)

// SeedResult describes what a seeding run wrote
type SeedResult struct {
	Host        *entities.User
	HostCreated bool
	Properties  []*entities.Property
}

// Seeder populates storage with a fixed host and synthetic properties.
// The host is get-or-created; properties are appended on every run.
type Seeder struct {
	users      *UserService
	properties *PropertyService
	faker      *gofakeit.Faker
	count      int
}

// NewSeeder creates a seeder drawing all random data from faker.
// A count below 1 uses DefaultSeedPropertyCount.
func NewSeeder(users *UserService, properties *PropertyService, faker *gofakeit.Faker, count int) *Seeder {
	if count < 1 {
		count = DefaultSeedPropertyCount
	}
	return &Seeder{
		users:      users,
		properties: properties,
		faker:      faker,
		count:      count,
	}
}

// Run seeds the host and its properties
func (s *Seeder) Run(ctx context.Context) (*SeedResult, error) {
	ctx, span := observability.StartSpan(ctx, "seed.run")
	defer span.End()

	logger := observability.LoggerFromContext(ctx)
	logger.Info().Msg("Starting data seeding.....")

	host, created, err := s.users.GetOrCreate(ctx, &entities.User{
		Username: SeedHostUsername,
		Email:    SeedHostEmail,
		Password: SeedHostPassword,
		Role:     entities.UserRoleHost,
	})
	if err != nil {
		return nil, observability.RecordError(span, fmt.Errorf("failed to get or create host: %w", err))
	}
	logger.Info().Str("host_id", host.ID).Bool("created", created).Msg("Host user ready")

	result := &SeedResult{Host: host, HostCreated: created}
	for i := 0; i < s.count; i++ {
		property := s.fakeProperty(host.ID)
		if err := s.properties.Create(ctx, property); err != nil {
			return result, observability.RecordError(span, fmt.Errorf("failed to create property %d of %d: %w", i+1, s.count, err))
		}
		result.Properties = append(result.Properties, property)
	}

	span.SetAttributes(
		attribute.String("seed.host_id", host.ID),
		attribute.Int("seed.properties", len(result.Properties)),
	)
	logger.Info().Int("properties", len(result.Properties)).Msg("Data seeding completed successfully")

	return result, nil
}

func (s *Seeder) fakeProperty(hostID string) *entities.Property {
	return &entities.Property{
		HostID:        hostID,
		Name:          s.faker.Company(),
		Description:   s.faker.Sentence(s.faker.IntRange(6, 12)) + " " + s.faker.Sentence(s.faker.IntRange(6, 12)),
		Location:      s.faker.City(),
		PricePerNight: s.fakePrice(),
	}
}

// fakePrice draws a whole number of cents so the price always has exactly
// two decimal places and stays within [150.00, 500.00]
func (s *Seeder) fakePrice() decimal.Decimal {
	cents := s.faker.IntRange(minSeedPriceCents, maxSeedPriceCents)
	return decimal.New(int64(cents), -2)
}
