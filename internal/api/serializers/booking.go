package serializers

import (
	"encoding/json"

	"github.com/alx-travel-app/backend/internal/domain/entities"
)

// BookingRepresentation is the flat external form of a booking row.
// Property and user are referenced by ID.
type BookingRepresentation struct {
	BookingID  string `json:"booking_id"`
	PropertyID string `json:"property_id"`
	UserID     string `json:"user_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	TotalPrice string `json:"total_price"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

// Booking maps a booking to its representation
func Booking(b *entities.Booking) BookingRepresentation {
	return BookingRepresentation{
		BookingID:  b.ID,
		PropertyID: b.PropertyID,
		UserID:     b.UserID,
		StartDate:  b.StartDate.Format(entities.DateLayout),
		EndDate:    b.EndDate.Format(entities.DateLayout),
		TotalPrice: b.TotalPrice.StringFixed(2),
		Status:     string(b.Status),
		CreatedAt:  formatTimestamp(b.CreatedAt),
	}
}

// Bookings maps a slice of bookings, preserving order
func Bookings(bookings []*entities.Booking) []BookingRepresentation {
	out := make([]BookingRepresentation, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, Booking(b))
	}
	return out
}

// MarshalBooking encodes a booking as JSON
func MarshalBooking(b *entities.Booking) ([]byte, error) {
	return json.Marshal(Booking(b))
}

// MarshalBookings encodes a slice of bookings as a JSON array
func MarshalBookings(bookings []*entities.Booking) ([]byte, error) {
	return json.Marshal(Bookings(bookings))
}
