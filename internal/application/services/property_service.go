package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/alx-travel-app/backend/internal/domain/entities"
	"github.com/alx-travel-app/backend/internal/domain/repositories"
	apperrors "github.com/alx-travel-app/backend/pkg/errors"
)

// PropertyService handles business logic for listings
type PropertyService struct {
	repo repositories.PropertyRepository
	now  Clock
}

// NewPropertyService creates a new property service
func NewPropertyService(repo repositories.PropertyRepository) *PropertyService {
	return &PropertyService{repo: repo, now: utcNow}
}

// WithClock replaces the time source used for created_at and updated_at
func (s *PropertyService) WithClock(clock Clock) *PropertyService {
	s.now = clock
	return s
}

// Create validates and stores a new property
func (s *PropertyService) Create(ctx context.Context, property *entities.Property) error {
	if property.ID == "" {
		property.ID = uuid.New().String()
	}
	if property.CreatedAt.IsZero() {
		property.CreatedAt = s.now()
	}
	property.UpdatedAt = property.CreatedAt

	if err := property.Validate(); err != nil {
		return err
	}
	return s.repo.Create(ctx, property)
}

// GetByID retrieves a property by ID
func (s *PropertyService) GetByID(ctx context.Context, id string) (*entities.Property, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByHost retrieves the properties owned by a host
func (s *PropertyService) ListByHost(ctx context.Context, hostID string) ([]*entities.Property, error) {
	return s.repo.ListByHost(ctx, hostID)
}

// Update validates and saves a property, refreshing updated_at on every write
func (s *PropertyService) Update(ctx context.Context, property *entities.Property) error {
	if property.ID == "" {
		return apperrors.NewValidationError("property id is required")
	}
	if err := property.Validate(); err != nil {
		return err
	}
	property.UpdatedAt = s.now()
	return s.repo.Update(ctx, property)
}

// Delete removes a property; storage cascades to its bookings and reviews
func (s *PropertyService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Count returns the number of stored properties
func (s *PropertyService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
