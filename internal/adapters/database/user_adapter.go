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

var userColumns = []interface{}{
	"id", "username", "first_name", "last_name", "email",
	"password_hash", "phone_number", "role", "created_at",
}

// UserAdapter implements the UserRepository interface
type UserAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewUserAdapter creates a new user adapter
func NewUserAdapter(client *postgres.Client) repositories.UserRepository {
	return &UserAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

func userRecord(user *entities.User) goqu.Record {
	return goqu.Record{
		"id":            user.ID,
		"username":      user.Username,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"phone_number":  user.PhoneNumber,
		"role":          user.Role,
		"created_at":    user.CreatedAt,
	}
}

// Create creates a new user
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	query, args, err := a.db.Insert("users").Rows(userRecord(user)).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return translateError(err, "create user")
	}

	return nil
}

// GetOrCreate inserts the user unless the username is taken, then reads the
// stored row back. The insert and its conflict check are a single statement.
func (a *UserAdapter) GetOrCreate(ctx context.Context, user *entities.User) (*entities.User, bool, error) {
	query, args, err := a.db.Insert("users").
		Rows(userRecord(user)).
		OnConflict(goqu.DoNothing()).
		ToSQL()
	if err != nil {
		return nil, false, apperrors.NewInternalError("failed to build insert query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return nil, false, translateError(err, "create user")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, false, apperrors.NewInternalError("failed to get rows affected", err)
	}

	stored, err := a.GetByUsername(ctx, user.Username)
	if apperrors.IsNotFound(err) {
		// the insert was skipped because another column collided
		return nil, false, apperrors.NewConflictError("a user with this email already exists")
	}
	if err != nil {
		return nil, false, err
	}

	return stored, rowsAffected > 0, nil
}

// GetByID retrieves a user by ID
func (a *UserAdapter) GetByID(ctx context.Context, id string) (*entities.User, error) {
	return a.getByField(ctx, "id", id)
}

// GetByEmail retrieves a user by email
func (a *UserAdapter) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return a.getByField(ctx, "email", email)
}

// GetByUsername retrieves a user by username
func (a *UserAdapter) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	return a.getByField(ctx, "username", username)
}

func (a *UserAdapter) getByField(ctx context.Context, field, value string) (*entities.User, error) {
	query, args, err := a.db.Select(userColumns...).
		From("users").
		Where(goqu.Ex{field: value}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	user, err := scanUser(a.client.DB().QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user with %s %s not found", field, value))
	}
	if err != nil {
		return nil, translateError(err, "get user")
	}

	return user, nil
}

func scanUser(row rowScanner) (*entities.User, error) {
	user := &entities.User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.PhoneNumber,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Update updates a user. created_at is never rewritten.
func (a *UserAdapter) Update(ctx context.Context, user *entities.User) error {
	record := goqu.Record{
		"username":      user.Username,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"phone_number":  user.PhoneNumber,
		"role":          user.Role,
	}

	query, args, err := a.db.Update("users").
		Set(record).
		Where(goqu.Ex{"id": user.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	return execAffectingOne(ctx, a.client, query, args, "update user", "user", user.ID)
}

// Delete deletes a user; the schema cascades to properties, bookings and reviews
func (a *UserAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("users").Where(goqu.Ex{"id": id}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	return execAffectingOne(ctx, a.client, query, args, "delete user", "user", id)
}

// Count returns the number of users
func (a *UserAdapter) Count(ctx context.Context) (int, error) {
	return count(ctx, a.client, a.db, "users")
}
