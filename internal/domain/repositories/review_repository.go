package repositories

import (
	"context"

	"github.com/alx-travel-app/backend/internal/domain/entities"
)

// ReviewRepository defines the interface for review operations
type ReviewRepository interface {
	// Create creates a new review
	Create(ctx context.Context, review *entities.Review) error

	// GetByID retrieves a review by ID
	GetByID(ctx context.Context, id string) (*entities.Review, error)

	// ListByProperty retrieves reviews for a property
	ListByProperty(ctx context.Context, propertyID string) ([]*entities.Review, error)

	// ListByUser retrieves reviews by a user
	ListByUser(ctx context.Context, userID string) ([]*entities.Review, error)

	// Update updates a review
	Update(ctx context.Context, review *entities.Review) error

	// Delete deletes a review
	Delete(ctx context.Context, id string) error
}
