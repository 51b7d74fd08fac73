package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/alx-travel-app/backend/internal/domain/entities"
	"github.com/alx-travel-app/backend/internal/domain/repositories"
	"github.com/alx-travel-app/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/alx-travel-app/backend/pkg/errors"
)

var reviewColumns = []interface{}{
	"id", "property_id", "user_id", "rating", "comment", "created_at",
}

// ReviewAdapter implements the ReviewRepository interface
type ReviewAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewReviewAdapter creates a new review adapter
func NewReviewAdapter(client *postgres.Client) repositories.ReviewRepository {
	return &ReviewAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new review
func (a *ReviewAdapter) Create(ctx context.Context, review *entities.Review) error {
	record := goqu.Record{
		"id":          review.ID,
		"property_id": review.PropertyID,
		"user_id":     review.UserID,
		"rating":      review.Rating,
		"comment":     review.Comment,
		"created_at":  review.CreatedAt,
	}

	query, args, err := a.db.Insert("reviews").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return translateError(err, "create review")
	}

	return nil
}

// GetByID retrieves a review by ID
func (a *ReviewAdapter) GetByID(ctx context.Context, id string) (*entities.Review, error) {
	query, args, err := a.db.Select(reviewColumns...).
		From("reviews").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	review, err := scanReview(a.client.DB().QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("review with id %s not found", id))
	}
	if err != nil {
		return nil, translateError(err, "get review")
	}

	return review, nil
}

// ListByProperty retrieves reviews for a property, newest first
func (a *ReviewAdapter) ListByProperty(ctx context.Context, propertyID string) ([]*entities.Review, error) {
	return a.list(ctx, goqu.Ex{"property_id": propertyID})
}

// ListByUser retrieves reviews by a user, newest first
func (a *ReviewAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.Review, error) {
	return a.list(ctx, goqu.Ex{"user_id": userID})
}

func (a *ReviewAdapter) list(ctx context.Context, where goqu.Ex) ([]*entities.Review, error) {
	query, args, err := a.db.Select(reviewColumns...).
		From("reviews").
		Where(where).
		Order(goqu.I("created_at").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "list reviews")
	}
	defer rows.Close()

	reviews := []*entities.Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan review", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate reviews", err)
	}

	return reviews, nil
}

func scanReview(row rowScanner) (*entities.Review, error) {
	review := &entities.Review{}
	err := row.Scan(
		&review.ID,
		&review.PropertyID,
		&review.UserID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return review, nil
}

// Update updates a review
func (a *ReviewAdapter) Update(ctx context.Context, review *entities.Review) error {
	record := goqu.Record{
		"property_id": review.PropertyID,
		"user_id":     review.UserID,
		"rating":      review.Rating,
		"comment":     review.Comment,
	}

	query, args, err := a.db.Update("reviews").
		Set(record).
		Where(goqu.Ex{"id": review.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	return execAffectingOne(ctx, a.client, query, args, "update review", "review", review.ID)
}

// Delete deletes a review
func (a *ReviewAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("reviews").Where(goqu.Ex{"id": id}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	return execAffectingOne(ctx, a.client, query, args, "delete review", "review", id)
}
