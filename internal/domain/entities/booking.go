package entities

import (
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/alx-travel-app/backend/pkg/errors"
)

// BookingStatus represents the state of a reservation
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCanceled  BookingStatus = "canceled"
)

// Valid reports whether the status is one of the enumerated values
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCanceled:
		return true
	}
	return false
}

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// Booking is a reservation of a property by a user.
// Date order and overlap with other bookings are not checked.
type Booking struct {
	ID         string          `json:"booking_id" db:"id"`
	PropertyID string          `json:"property_id" db:"property_id"`
	UserID     string          `json:"user_id" db:"user_id"`
	StartDate  time.Time       `json:"start_date" db:"start_date"`
	EndDate    time.Time       `json:"end_date" db:"end_date"`
	TotalPrice decimal.Decimal `json:"total_price" db:"total_price"`
	Status     BookingStatus   `json:"status" db:"status"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
}

// Validate checks mandatory and enumerated fields
func (b *Booking) Validate() error {
	if b.PropertyID == "" {
		return apperrors.NewValidationError("property is required")
	}
	if b.UserID == "" {
		return apperrors.NewValidationError("user is required")
	}
	if b.StartDate.IsZero() {
		return apperrors.NewValidationError("start date is required")
	}
	if b.EndDate.IsZero() {
		return apperrors.NewValidationError("end date is required")
	}
	if b.TotalPrice.IsNegative() {
		return apperrors.NewValidationError("total price must not be negative")
	}
	if err := validateMoney("total price", b.TotalPrice); err != nil {
		return err
	}
	if b.Status == "" {
		return apperrors.NewValidationError("status is required")
	}
	if !b.Status.Valid() {
		return apperrors.NewValidationError("status must be one of pending, confirmed, canceled")
	}
	return nil
}

// TruncateDate drops the time-of-day component, keeping the calendar date in UTC
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
