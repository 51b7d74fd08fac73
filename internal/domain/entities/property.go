package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/alx-travel-app/backend/pkg/errors"
)

// Property is a listing owned by a host
type Property struct {
	ID            string          `json:"property_id" db:"id"`
	HostID        string          `json:"host_id" db:"host_id"`
	Name          string          `json:"name" db:"name"`
	Description   string          `json:"description" db:"description"`
	Location      string          `json:"location" db:"location"`
	PricePerNight decimal.Decimal `json:"pricepernight" db:"price_per_night"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// Validate checks mandatory fields
func (p *Property) Validate() error {
	if p.HostID == "" {
		return apperrors.NewValidationError("host is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return apperrors.NewValidationError("name is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return apperrors.NewValidationError("description is required")
	}
	if strings.TrimSpace(p.Location) == "" {
		return apperrors.NewValidationError("location is required")
	}
	if p.PricePerNight.IsNegative() {
		return apperrors.NewValidationError("price per night must not be negative")
	}
	if err := validateMoney("price per night", p.PricePerNight); err != nil {
		return err
	}
	return nil
}

// MaxMoney is the largest value a NUMERIC(10,2) column accepts
var MaxMoney = decimal.RequireFromString("99999999.99")

func validateMoney(field string, d decimal.Decimal) error {
	if d.GreaterThan(MaxMoney) {
		return apperrors.NewValidationError(field + " exceeds the maximum amount")
	}
	if !d.Equal(d.Round(2)) {
		return apperrors.NewValidationError(field + " must have at most 2 decimal places")
	}
	return nil
}
