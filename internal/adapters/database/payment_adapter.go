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

var paymentColumns = []interface{}{
	"id", "booking_id", "amount", "payment_date", "payment_method",
}

// PaymentAdapter implements the PaymentRepository interface
type PaymentAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPaymentAdapter creates a new payment adapter
func NewPaymentAdapter(client *postgres.Client) repositories.PaymentRepository {
	return &PaymentAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new payment
func (a *PaymentAdapter) Create(ctx context.Context, payment *entities.Payment) error {
	record := goqu.Record{
		"id":             payment.ID,
		"booking_id":     payment.BookingID,
		"amount":         payment.Amount,
		"payment_date":   payment.PaymentDate,
		"payment_method": payment.PaymentMethod,
	}

	query, args, err := a.db.Insert("payments").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return translateError(err, "create payment")
	}

	return nil
}

// GetByID retrieves a payment by ID
func (a *PaymentAdapter) GetByID(ctx context.Context, id string) (*entities.Payment, error) {
	query, args, err := a.db.Select(paymentColumns...).
		From("payments").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	payment, err := scanPayment(a.client.DB().QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("payment with id %s not found", id))
	}
	if err != nil {
		return nil, translateError(err, "get payment")
	}

	return payment, nil
}

// ListByBooking retrieves payments against a booking ordered by payment date
func (a *PaymentAdapter) ListByBooking(ctx context.Context, bookingID string) ([]*entities.Payment, error) {
	query, args, err := a.db.Select(paymentColumns...).
		From("payments").
		Where(goqu.Ex{"booking_id": bookingID}).
		Order(goqu.I("payment_date").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "list payments")
	}
	defer rows.Close()

	payments := []*entities.Payment{}
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan payment", err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate payments", err)
	}

	return payments, nil
}

func scanPayment(row rowScanner) (*entities.Payment, error) {
	payment := &entities.Payment{}
	err := row.Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Amount,
		&payment.PaymentDate,
		&payment.PaymentMethod,
	)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// Update updates a payment
func (a *PaymentAdapter) Update(ctx context.Context, payment *entities.Payment) error {
	record := goqu.Record{
		"booking_id":     payment.BookingID,
		"amount":         payment.Amount,
		"payment_method": payment.PaymentMethod,
	}

	query, args, err := a.db.Update("payments").
		Set(record).
		Where(goqu.Ex{"id": payment.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	return execAffectingOne(ctx, a.client, query, args, "update payment", "payment", payment.ID)
}

// Delete deletes a payment
func (a *PaymentAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("payments").Where(goqu.Ex{"id": id}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	return execAffectingOne(ctx, a.client, query, args, "delete payment", "payment", id)
}
