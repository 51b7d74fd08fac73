package entities

import (
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/alx-travel-app/backend/pkg/errors"
)

// PaymentMethod is how a payment was made
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodPayPal     PaymentMethod = "paypal"
	PaymentMethodStripe     PaymentMethod = "stripe"
)

// Valid reports whether the method is one of the enumerated values
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodPayPal, PaymentMethodStripe:
		return true
	}
	return false
}

// Payment is a passive ledger entry against a booking
type Payment struct {
	ID            string          `json:"payment_id" db:"id"`
	BookingID     string          `json:"booking_id" db:"booking_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	PaymentDate   time.Time       `json:"payment_date" db:"payment_date"`
	PaymentMethod PaymentMethod   `json:"payment_method" db:"payment_method"`
}

// Validate checks mandatory and enumerated fields
func (p *Payment) Validate() error {
	if p.BookingID == "" {
		return apperrors.NewValidationError("booking is required")
	}
	if p.Amount.IsNegative() {
		return apperrors.NewValidationError("amount must not be negative")
	}
	if err := validateMoney("amount", p.Amount); err != nil {
		return err
	}
	if p.PaymentMethod == "" {
		return apperrors.NewValidationError("payment method is required")
	}
	if !p.PaymentMethod.Valid() {
		return apperrors.NewValidationError("payment method must be one of credit_card, paypal, stripe")
	}
	return nil
}
