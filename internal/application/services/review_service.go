package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/alx-travel-app/backend/internal/domain/entities"
	"github.com/alx-travel-app/backend/internal/domain/repositories"
	apperrors "github.com/alx-travel-app/backend/pkg/errors"
)

// ReviewService handles property reviews. Reviewers need not have booked
// the property.
type ReviewService struct {
	repo repositories.ReviewRepository
	now  Clock
}

// NewReviewService creates a new review service
func NewReviewService(repo repositories.ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo, now: utcNow}
}

// Create validates the rating bounds and stores a new review
func (s *ReviewService) Create(ctx context.Context, review *entities.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = s.now()
	}
	if err := review.Validate(); err != nil {
		return err
	}
	return s.repo.Create(ctx, review)
}

// GetByID retrieves a review by ID
func (s *ReviewService) GetByID(ctx context.Context, id string) (*entities.Review, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByProperty retrieves the reviews of a property
func (s *ReviewService) ListByProperty(ctx context.Context, propertyID string) ([]*entities.Review, error) {
	return s.repo.ListByProperty(ctx, propertyID)
}

// Update validates and saves a review
func (s *ReviewService) Update(ctx context.Context, review *entities.Review) error {
	if review.ID == "" {
		return apperrors.NewValidationError("review id is required")
	}
	if err := review.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, review)
}

// Delete removes a review
func (s *ReviewService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
