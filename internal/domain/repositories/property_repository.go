package repositories

import (
	"context"

	"github.com/alx-travel-app/backend/internal/domain/entities"
)

// PropertyRepository defines the interface for property data operations
type PropertyRepository interface {
	// Create creates a new property
	Create(ctx context.Context, property *entities.Property) error

	// GetByID retrieves a property by ID
	GetByID(ctx context.Context, id string) (*entities.Property, error)

	// ListByHost retrieves the properties owned by a host
	ListByHost(ctx context.Context, hostID string) ([]*entities.Property, error)

	// Update updates a property
	Update(ctx context.Context, property *entities.Property) error

	// Delete deletes a property along with its bookings and reviews
	Delete(ctx context.Context, id string) error

	// Count returns the number of properties
	Count(ctx context.Context) (int, error)
}
