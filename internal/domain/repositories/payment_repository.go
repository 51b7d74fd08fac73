package repositories

import (
	"context"

	"github.com/alx-travel-app/backend/internal/domain/entities"
)

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	// Create creates a new payment
	Create(ctx context.Context, payment *entities.Payment) error

	// GetByID retrieves a payment by ID
	GetByID(ctx context.Context, id string) (*entities.Payment, error)

	// ListByBooking retrieves payments recorded against a booking
	ListByBooking(ctx context.Context, bookingID string) ([]*entities.Payment, error)

	// Update updates a payment
	Update(ctx context.Context, payment *entities.Payment) error

	// Delete deletes a payment
	Delete(ctx context.Context, id string) error
}
