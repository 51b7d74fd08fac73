package repositories

import (
	"context"

	"github.com/alx-travel-app/backend/internal/domain/entities"
)

// BookingRepository defines the interface for booking data operations
type BookingRepository interface {
	// Create creates a new booking
	Create(ctx context.Context, booking *entities.Booking) error

	// GetByID retrieves a booking by ID
	GetByID(ctx context.Context, id string) (*entities.Booking, error)

	// ListByProperty retrieves bookings of a property
	ListByProperty(ctx context.Context, propertyID string) ([]*entities.Booking, error)

	// ListByUser retrieves bookings made by a user
	ListByUser(ctx context.Context, userID string) ([]*entities.Booking, error)

	// Update updates a booking
	Update(ctx context.Context, booking *entities.Booking) error

	// Delete deletes a booking along with its payments
	Delete(ctx context.Context, id string) error
}
