package services_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/alx-travel-app/backend/internal/application/services"
	"github.com/alx-travel-app/backend/internal/domain/entities"
)

func newTestSeeder(store *memoryStore, seed uint64, count int) *services.Seeder {
	users := services.NewUserService(&memoryUserRepo{s: store}, newTestHasher(), nil)
	properties := services.NewPropertyService(&memoryPropertyRepo{s: store})
	return services.NewSeeder(users, properties, gofakeit.New(seed), count)
}

func TestSeeder_RunIsAdditiveForProperties(t *testing.T) {
	store := newMemoryStore()
	ctx := context.Background()

	first, err := newTestSeeder(store, 7, 0).Run(ctx)
	require.NoError(t, err)
	assert.True(t, first.HostCreated)
	assert.Len(t, first.Properties, services.DefaultSeedPropertyCount)

	second, err := newTestSeeder(store, 8, 0).Run(ctx)
	require.NoError(t, err)
	assert.False(t, second.HostCreated)
	assert.Equal(t, first.Host.ID, second.Host.ID)

	users, _ := (&memoryUserRepo{s: store}).Count(ctx)
	props, _ := (&memoryPropertyRepo{s: store}).Count(ctx)
	assert.Equal(t, 1, users)
	assert.Equal(t, 2*services.DefaultSeedPropertyCount, props)
}

func TestSeeder_Host(t *testing.T) {
	store := newMemoryStore()

	result, err := newTestSeeder(store, 1, 3).Run(context.Background())
	require.NoError(t, err)

	host, err := (&memoryUserRepo{s: store}).GetByUsername(context.Background(), services.SeedHostUsername)
	require.NoError(t, err)
	assert.Equal(t, result.Host.ID, host.ID)
	assert.Equal(t, services.SeedHostEmail, host.Email)
	assert.Equal(t, entities.UserRoleHost, host.Role)
	assert.Empty(t, host.Password)
	assert.NotEqual(t, services.SeedHostPassword, host.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(host.PasswordHash), []byte(services.SeedHostPassword)))
}

func TestSeeder_PropertyFields(t *testing.T) {
	store := newMemoryStore()

	result, err := newTestSeeder(store, 99, 50).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Properties, 50)

	low := decimal.RequireFromString("150.00")
	high := decimal.RequireFromString("500.00")
	for _, p := range result.Properties {
		assert.Equal(t, result.Host.ID, p.HostID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.NotEmpty(t, p.Location)
		assert.True(t, p.PricePerNight.GreaterThanOrEqual(low), "price %s below range", p.PricePerNight)
		assert.True(t, p.PricePerNight.LessThanOrEqual(high), "price %s above range", p.PricePerNight)
		assert.True(t, p.PricePerNight.Equal(p.PricePerNight.Round(2)), "price %s has more than two places", p.PricePerNight)
		assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	}
}

func TestSeeder_SameSeedSameData(t *testing.T) {
	a, err := newTestSeeder(newMemoryStore(), 42, 5).Run(context.Background())
	require.NoError(t, err)
	b, err := newTestSeeder(newMemoryStore(), 42, 5).Run(context.Background())
	require.NoError(t, err)

	for i := range a.Properties {
		assert.Equal(t, a.Properties[i].Name, b.Properties[i].Name)
		assert.Equal(t, a.Properties[i].Location, b.Properties[i].Location)
		assert.True(t, a.Properties[i].PricePerNight.Equal(b.Properties[i].PricePerNight))
	}
}
