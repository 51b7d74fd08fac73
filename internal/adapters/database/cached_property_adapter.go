package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alx-travel-app/backend/internal/domain/entities"
	"github.com/alx-travel-app/backend/internal/domain/providers"
	"github.com/alx-travel-app/backend/internal/domain/repositories"
	"github.com/alx-travel-app/backend/internal/infrastructure/observability"
)

// propertyByIDTTL is how long a single property stays cached, in seconds
const propertyByIDTTL = 300

func propertyCacheKey(id string) string {
	return fmt.Sprintf("property:%s", id)
}

// CachedPropertyAdapter wraps a PropertyRepository with a read-through cache.
// Cache failures are logged and never fail the call.
type CachedPropertyAdapter struct {
	adapter repositories.PropertyRepository
	cache   providers.CacheProvider
}

// NewCachedPropertyAdapter creates a new cached property adapter
func NewCachedPropertyAdapter(adapter repositories.PropertyRepository, cache providers.CacheProvider) *CachedPropertyAdapter {
	return &CachedPropertyAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// Create creates a property; nothing is cached until the first read
func (a *CachedPropertyAdapter) Create(ctx context.Context, property *entities.Property) error {
	return a.adapter.Create(ctx, property)
}

// GetByID retrieves a property by ID with caching
func (a *CachedPropertyAdapter) GetByID(ctx context.Context, id string) (*entities.Property, error) {
	logger := observability.LoggerFromContext(ctx)
	cacheKey := propertyCacheKey(id)

	cached, err := a.cache.Get(ctx, cacheKey)
	if err == nil {
		var property entities.Property
		if err := json.Unmarshal(cached, &property); err == nil {
			return &property, nil
		}
		logger.Warn().Err(err).Str("property_id", id).Msg("Discarding undecodable cached property")
	} else if !errors.Is(err, providers.ErrCacheMiss) {
		logger.Warn().Err(err).Str("property_id", id).Msg("Property cache read failed")
	}

	property, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(property); err == nil {
		if err := a.cache.Set(ctx, cacheKey, data, propertyByIDTTL); err != nil {
			logger.Warn().Err(err).Str("property_id", id).Msg("Failed to cache property")
		}
	}

	return property, nil
}

// ListByHost is not cached
func (a *CachedPropertyAdapter) ListByHost(ctx context.Context, hostID string) ([]*entities.Property, error) {
	return a.adapter.ListByHost(ctx, hostID)
}

// Update updates a property and evicts its cache entry
func (a *CachedPropertyAdapter) Update(ctx context.Context, property *entities.Property) error {
	if err := a.adapter.Update(ctx, property); err != nil {
		return err
	}
	a.evict(ctx, property.ID)
	return nil
}

// Delete deletes a property and evicts its cache entry
func (a *CachedPropertyAdapter) Delete(ctx context.Context, id string) error {
	if err := a.adapter.Delete(ctx, id); err != nil {
		return err
	}
	a.evict(ctx, id)
	return nil
}

// Count is not cached
func (a *CachedPropertyAdapter) Count(ctx context.Context) (int, error) {
	return a.adapter.Count(ctx)
}

// EvictHost removes the cache entries of every property owned by hostID.
// Deleting a host cascades to its properties without passing through Delete.
func (a *CachedPropertyAdapter) EvictHost(ctx context.Context, hostID string) error {
	properties, err := a.adapter.ListByHost(ctx, hostID)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(properties))
	for _, p := range properties {
		ids = append(ids, p.ID)
	}
	a.evict(ctx, ids...)
	return nil
}

func (a *CachedPropertyAdapter) evict(ctx context.Context, ids ...string) {
	if len(ids) == 0 {
		return
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = propertyCacheKey(id)
	}
	if err := a.cache.Delete(ctx, keys...); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Strs("keys", keys).Msg("Failed to evict cached properties")
	}
}
