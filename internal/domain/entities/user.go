package entities

import (
	"strings"
	"time"

	apperrors "github.com/alx-travel-app/backend/pkg/errors"
)

// UserRole classifies an account
type UserRole string

const (
	UserRoleGuest UserRole = "guest"
	UserRoleHost  UserRole = "host"
	UserRoleAdmin UserRole = "admin"
)

// Valid reports whether the role is one of the enumerated values
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleGuest, UserRoleHost, UserRoleAdmin:
		return true
	}
	return false
}

// User represents an account on the platform
type User struct {
	ID           string    `json:"user_id" db:"id"`
	Username     string    `json:"username" db:"username"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	PhoneNumber  string    `json:"phone_number" db:"phone_number"`
	Role         UserRole  `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	// Password is a plaintext value waiting to be hashed on the next save.
	// It is never persisted.
	Password string `json:"-" db:"-"`
}

// MaxPasswordBytes is the longest plaintext bcrypt accepts
const MaxPasswordBytes = 72

// NeedsHashing reports whether a plaintext password is pending
func (u *User) NeedsHashing() bool {
	return u.Password != ""
}

// Validate checks mandatory and enumerated fields
func (u *User) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return apperrors.NewValidationError("email is required")
	}
	if !strings.Contains(u.Email, "@") {
		return apperrors.NewValidationError("email is not a valid address")
	}
	if strings.TrimSpace(u.Username) == "" {
		return apperrors.NewValidationError("username is required")
	}
	if u.PasswordHash == "" && u.Password == "" {
		return apperrors.NewValidationError("password is required")
	}
	if len(u.Password) > MaxPasswordBytes {
		return apperrors.NewValidationError("password must be at most 72 bytes")
	}
	if u.Role == "" {
		return apperrors.NewValidationError("role is required")
	}
	if !u.Role.Valid() {
		return apperrors.NewValidationError("role must be one of guest, host, admin")
	}
	return nil
}
