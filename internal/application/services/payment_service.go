package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/alx-travel-app/backend/internal/domain/entities"
	"github.com/alx-travel-app/backend/internal/domain/repositories"
	apperrors "github.com/alx-travel-app/backend/pkg/errors"
)

// PaymentService records payments as passive ledger entries
type PaymentService struct {
	repo repositories.PaymentRepository
	now  Clock
}

// NewPaymentService creates a new payment service
func NewPaymentService(repo repositories.PaymentRepository) *PaymentService {
	return &PaymentService{repo: repo, now: utcNow}
}

// Create validates and stores a new payment
func (s *PaymentService) Create(ctx context.Context, payment *entities.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = s.now()
	}
	if err := payment.Validate(); err != nil {
		return err
	}
	return s.repo.Create(ctx, payment)
}

// GetByID retrieves a payment by ID
func (s *PaymentService) GetByID(ctx context.Context, id string) (*entities.Payment, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByBooking retrieves the payments of a booking
func (s *PaymentService) ListByBooking(ctx context.Context, bookingID string) ([]*entities.Payment, error) {
	return s.repo.ListByBooking(ctx, bookingID)
}

// Update validates and saves a payment
func (s *PaymentService) Update(ctx context.Context, payment *entities.Payment) error {
	if payment.ID == "" {
		return apperrors.NewValidationError("payment id is required")
	}
	if err := payment.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, payment)
}

// Delete removes a payment
func (s *PaymentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
