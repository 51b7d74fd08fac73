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

var bookingColumns = []interface{}{
	"id", "property_id", "user_id", "start_date", "end_date",
	"total_price", "status", "created_at",
}

// BookingAdapter implements the BookingRepository interface
type BookingAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewBookingAdapter creates a new booking adapter
func NewBookingAdapter(client *postgres.Client) repositories.BookingRepository {
	return &BookingAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new booking
func (a *BookingAdapter) Create(ctx context.Context, booking *entities.Booking) error {
	record := goqu.Record{
		"id":          booking.ID,
		"property_id": booking.PropertyID,
		"user_id":     booking.UserID,
		"start_date":  booking.StartDate.Format(entities.DateLayout),
		"end_date":    booking.EndDate.Format(entities.DateLayout),
		"total_price": booking.TotalPrice,
		"status":      booking.Status,
		"created_at":  booking.CreatedAt,
	}

	query, args, err := a.db.Insert("bookings").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return translateError(err, "create booking")
	}

	return nil
}

// GetByID retrieves a booking by ID
func (a *BookingAdapter) GetByID(ctx context.Context, id string) (*entities.Booking, error) {
	query, args, err := a.db.Select(bookingColumns...).
		From("bookings").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	booking, err := scanBooking(a.client.DB().QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("booking with id %s not found", id))
	}
	if err != nil {
		return nil, translateError(err, "get booking")
	}

	return booking, nil
}

// ListByProperty retrieves bookings of a property ordered by start date
func (a *BookingAdapter) ListByProperty(ctx context.Context, propertyID string) ([]*entities.Booking, error) {
	return a.list(ctx, goqu.Ex{"property_id": propertyID})
}

// ListByUser retrieves bookings made by a user ordered by start date
func (a *BookingAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.Booking, error) {
	return a.list(ctx, goqu.Ex{"user_id": userID})
}

func (a *BookingAdapter) list(ctx context.Context, where goqu.Ex) ([]*entities.Booking, error) {
	query, args, err := a.db.Select(bookingColumns...).
		From("bookings").
		Where(where).
		Order(goqu.I("start_date").Asc(), goqu.I("created_at").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "list bookings")
	}
	defer rows.Close()

	bookings := []*entities.Booking{}
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan booking", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate bookings", err)
	}

	return bookings, nil
}

func scanBooking(row rowScanner) (*entities.Booking, error) {
	booking := &entities.Booking{}
	err := row.Scan(
		&booking.ID,
		&booking.PropertyID,
		&booking.UserID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.TotalPrice,
		&booking.Status,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	booking.StartDate = entities.TruncateDate(booking.StartDate)
	booking.EndDate = entities.TruncateDate(booking.EndDate)
	return booking, nil
}

// Update updates a booking
func (a *BookingAdapter) Update(ctx context.Context, booking *entities.Booking) error {
	record := goqu.Record{
		"property_id": booking.PropertyID,
		"user_id":     booking.UserID,
		"start_date":  booking.StartDate.Format(entities.DateLayout),
		"end_date":    booking.EndDate.Format(entities.DateLayout),
		"total_price": booking.TotalPrice,
		"status":      booking.Status,
	}

	query, args, err := a.db.Update("bookings").
		Set(record).
		Where(goqu.Ex{"id": booking.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	return execAffectingOne(ctx, a.client, query, args, "update booking", "booking", booking.ID)
}

// Delete deletes a booking; the schema cascades to payments
func (a *BookingAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("bookings").Where(goqu.Ex{"id": id}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	return execAffectingOne(ctx, a.client, query, args, "delete booking", "booking", id)
}
