package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/alx-travel-app/backend/internal/domain/entities"
	"github.com/alx-travel-app/backend/internal/domain/repositories"
	apperrors "github.com/alx-travel-app/backend/pkg/errors"
)

// BookingService handles reservations. Overlapping or inverted date ranges
// are accepted as given.
type BookingService struct {
	repo repositories.BookingRepository
	now  Clock
}

// NewBookingService creates a new booking service
func NewBookingService(repo repositories.BookingRepository) *BookingService {
	return &BookingService{repo: repo, now: utcNow}
}

func normalizeBooking(booking *entities.Booking) {
	if !booking.StartDate.IsZero() {
		booking.StartDate = entities.TruncateDate(booking.StartDate)
	}
	if !booking.EndDate.IsZero() {
		booking.EndDate = entities.TruncateDate(booking.EndDate)
	}
}

// Create validates and stores a new booking
func (s *BookingService) Create(ctx context.Context, booking *entities.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = s.now()
	}
	normalizeBooking(booking)
	if err := booking.Validate(); err != nil {
		return err
	}
	return s.repo.Create(ctx, booking)
}

// GetByID retrieves a booking by ID
func (s *BookingService) GetByID(ctx context.Context, id string) (*entities.Booking, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByProperty retrieves the bookings of a property
func (s *BookingService) ListByProperty(ctx context.Context, propertyID string) ([]*entities.Booking, error) {
	return s.repo.ListByProperty(ctx, propertyID)
}

// ListByUser retrieves the bookings made by a user
func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*entities.Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Update validates and saves a booking
func (s *BookingService) Update(ctx context.Context, booking *entities.Booking) error {
	if booking.ID == "" {
		return apperrors.NewValidationError("booking id is required")
	}
	normalizeBooking(booking)
	if err := booking.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, booking)
}

// Delete removes a booking; storage cascades to its payments
func (s *BookingService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
