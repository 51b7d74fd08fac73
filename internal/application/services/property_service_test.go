package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alx-travel-app/backend/internal/application/services"
	"github.com/alx-travel-app/backend/internal/domain/entities"
	apperrors "github.com/alx-travel-app/backend/pkg/errors"
)

func newTestProperty(hostID string) *entities.Property {
	return &entities.Property{
		HostID:        hostID,
		Name:          "Harbour Loft",
		Description:   "Bright loft. Walk to the harbour.",
		Location:      "Cape Town",
		PricePerNight: decimal.RequireFromString("180.50"),
	}
}

// steppingClock returns start, start+step, start+2*step, ...
func steppingClock(start time.Time, step time.Duration) services.Clock {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}

func seedHost(t *testing.T, store *memoryStore) *entities.User {
	t.Helper()
	host := &entities.User{ID: "host-1", Username: "host", Email: "host@example.com", PasswordHash: "hash", Role: entities.UserRoleHost}
	require.NoError(t, (&memoryUserRepo{s: store}).Create(context.Background(), host))
	return host
}

func TestPropertyService_Create(t *testing.T) {
	store := newMemoryStore()
	host := seedHost(t, store)
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	service := services.NewPropertyService(&memoryPropertyRepo{s: store}).WithClock(steppingClock(start, time.Minute))

	property := newTestProperty(host.ID)
	require.NoError(t, service.Create(context.Background(), property))

	assert.NotEmpty(t, property.ID)
	assert.Equal(t, start, property.CreatedAt)
	assert.Equal(t, property.CreatedAt, property.UpdatedAt)

	stored, err := service.GetByID(context.Background(), property.ID)
	require.NoError(t, err)
	assert.Equal(t, property.Name, stored.Name)
}

func TestPropertyService_CreateValidation(t *testing.T) {
	store := newMemoryStore()
	host := seedHost(t, store)
	service := services.NewPropertyService(&memoryPropertyRepo{s: store})

	property := newTestProperty(host.ID)
	property.Location = ""

	err := service.Create(context.Background(), property)
	assert.True(t, apperrors.IsValidation(err))

	count, err := service.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestPropertyService_UpdateRefreshesUpdatedAt(t *testing.T) {
	store := newMemoryStore()
	host := seedHost(t, store)
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	service := services.NewPropertyService(&memoryPropertyRepo{s: store}).WithClock(steppingClock(start, time.Hour))
	ctx := context.Background()

	property := newTestProperty(host.ID)
	require.NoError(t, service.Create(ctx, property))
	createdAt := property.CreatedAt

	property.PricePerNight = decimal.RequireFromString("210.00")
	require.NoError(t, service.Update(ctx, property))
	firstUpdate := property.UpdatedAt

	require.NoError(t, service.Update(ctx, property))

	stored, err := service.GetByID(ctx, property.ID)
	require.NoError(t, err)
	assert.Equal(t, createdAt, stored.CreatedAt)
	assert.True(t, firstUpdate.After(createdAt))
	assert.True(t, stored.UpdatedAt.After(firstUpdate))
	assert.True(t, stored.PricePerNight.Equal(decimal.RequireFromString("210")))
}

func TestPropertyService_UpdateMissing(t *testing.T) {
	store := newMemoryStore()
	host := seedHost(t, store)
	service := services.NewPropertyService(&memoryPropertyRepo{s: store})

	property := newTestProperty(host.ID)
	assert.True(t, apperrors.IsValidation(service.Update(context.Background(), property)), "missing id")

	property.ID = "does-not-exist"
	assert.True(t, apperrors.IsNotFound(service.Update(context.Background(), property)))
}

func TestPropertyService_Delete(t *testing.T) {
	store := newMemoryStore()
	host := seedHost(t, store)
	service := services.NewPropertyService(&memoryPropertyRepo{s: store})
	ctx := context.Background()

	property := newTestProperty(host.ID)
	require.NoError(t, service.Create(ctx, property))
	require.NoError(t, service.Delete(ctx, property.ID))

	_, err := service.GetByID(ctx, property.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestPropertyService_CreateStampsStoredPrecision(t *testing.T) {
	store := newMemoryStore()
	host := seedHost(t, store)
	service := services.NewPropertyService(&memoryPropertyRepo{s: store})

	property := newTestProperty(host.ID)
	require.NoError(t, service.Create(context.Background(), property))

	assert.Equal(t, property.CreatedAt, property.CreatedAt.Truncate(time.Microsecond))
	assert.Equal(t, time.UTC, property.CreatedAt.Location())
}
