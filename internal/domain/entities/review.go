package entities

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/alx-travel-app/backend/pkg/errors"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user's rating and comment on a property
type Review struct {
	ID         string    `json:"review_id" db:"id"`
	PropertyID string    `json:"property_id" db:"property_id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Rating     int       `json:"rating" db:"rating"`
	Comment    string    `json:"comment" db:"comment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Validate checks mandatory fields and the rating bounds
func (r *Review) Validate() error {
	if r.PropertyID == "" {
		return apperrors.NewValidationError("property is required")
	}
	if r.UserID == "" {
		return apperrors.NewValidationError("user is required")
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		return apperrors.NewValidationError(fmt.Sprintf("rating must be between %d and %d", MinRating, MaxRating))
	}
	if strings.TrimSpace(r.Comment) == "" {
		return apperrors.NewValidationError("comment is required")
	}
	return nil
}
