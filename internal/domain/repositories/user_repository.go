package repositories

import (
	"context"

	"github.com/alx-travel-app/backend/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entities.User) error

	// GetOrCreate returns the user with user.Username, inserting user when absent.
	// The boolean reports whether a row was inserted.
	GetOrCreate(ctx context.Context, user *entities.User) (*entities.User, bool, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*entities.User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*entities.User, error)

	// Update updates a user
	Update(ctx context.Context, user *entities.User) error

	// Delete deletes a user along with its properties, bookings and reviews
	Delete(ctx context.Context, id string) error

	// Count returns the number of users
	Count(ctx context.Context) (int, error)
}
