package database

import (
	"errors"

	// postgres dialect for every goqu.New("postgres", ...) in this package
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	apperrors "github.com/alx-travel-app/backend/pkg/errors"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

var constraintMessages = map[string]string{
	"users_email_key":    "a user with this email already exists",
	"users_username_key": "a user with this username already exists",
}

// translateError maps Postgres constraint failures onto the application
// error taxonomy; anything else becomes an internal error
func translateError(err error, action string) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return apperrors.NewInternalError("failed to "+action, err)
	}

	switch pqErr.Code.Name() {
	case "unique_violation":
		if msg, ok := constraintMessages[pqErr.Constraint]; ok {
			return apperrors.NewConflictError(msg)
		}
		return apperrors.NewConflictError("duplicate value violates " + pqErr.Constraint)
	case "not_null_violation":
		return apperrors.NewValidationError(pqErr.Column + " is required")
	case "check_violation":
		return apperrors.NewValidationError("value violates " + pqErr.Constraint)
	case "foreign_key_violation":
		return apperrors.NewValidationError("referenced row does not exist (" + pqErr.Constraint + ")")
	case "invalid_text_representation":
		return apperrors.NewValidationError("malformed value: " + pqErr.Message)
	}

	return apperrors.NewInternalError("failed to "+action, err)
}
