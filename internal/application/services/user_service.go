package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/alx-travel-app/backend/internal/domain/entities"
	"github.com/alx-travel-app/backend/internal/domain/providers"
	"github.com/alx-travel-app/backend/internal/domain/repositories"
	apperrors "github.com/alx-travel-app/backend/pkg/errors"
)

// HostCacheEvictor drops cached rows that a host deletion removes by cascade
type HostCacheEvictor interface {
	EvictHost(ctx context.Context, hostID string) error
}

// UserService handles account persistence and password hashing
type UserService struct {
	repo    repositories.UserRepository
	hasher  providers.PasswordHasher
	evictor HostCacheEvictor
	now     Clock
}

// NewUserService creates a new user service. evictor may be nil.
func NewUserService(repo repositories.UserRepository, hasher providers.PasswordHasher, evictor HostCacheEvictor) *UserService {
	return &UserService{
		repo:    repo,
		hasher:  hasher,
		evictor: evictor,
		now:     utcNow,
	}
}

// prepare runs on every save: it validates the user and hashes a pending
// plaintext password. A user without a pending plaintext keeps its hash.
func (s *UserService) prepare(user *entities.User) error {
	user.Email = strings.TrimSpace(user.Email)
	if user.Username == "" {
		user.Username = user.Email
	}

	if err := user.Validate(); err != nil {
		return err
	}

	if user.NeedsHashing() {
		hash, err := s.hasher.Hash(user.Password)
		if apperrors.IsValidation(err) {
			return err
		}
		if err != nil {
			return apperrors.NewInternalError("failed to hash password", err)
		}
		user.PasswordHash = hash
		user.Password = ""
	}

	return nil
}

// Create validates, hashes and stores a new user
func (s *UserService) Create(ctx context.Context, user *entities.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now()
	}
	if err := s.prepare(user); err != nil {
		return err
	}
	return s.repo.Create(ctx, user)
}

// GetOrCreate returns the user matching user.Username, creating it when absent
func (s *UserService) GetOrCreate(ctx context.Context, user *entities.User) (*entities.User, bool, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now()
	}
	if err := s.prepare(user); err != nil {
		return nil, false, err
	}
	return s.repo.GetOrCreate(ctx, user)
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id string) (*entities.User, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByEmail retrieves a user by email
func (s *UserService) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return s.repo.GetByEmail(ctx, strings.TrimSpace(email))
}

// Update validates and saves a user, hashing a new plaintext password if set
func (s *UserService) Update(ctx context.Context, user *entities.User) error {
	if user.ID == "" {
		return apperrors.NewValidationError("user id is required")
	}
	if err := s.prepare(user); err != nil {
		return err
	}
	return s.repo.Update(ctx, user)
}

// SetPassword replaces a user's password
func (s *UserService) SetPassword(ctx context.Context, id, plaintext string) error {
	if plaintext == "" {
		return apperrors.NewValidationError("password is required")
	}
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.Password = plaintext
	return s.Update(ctx, user)
}

// CheckPassword reports whether plaintext matches the stored hash
func (s *UserService) CheckPassword(user *entities.User, plaintext string) bool {
	if user == nil || user.PasswordHash == "" {
		return false
	}
	return s.hasher.Compare(user.PasswordHash, plaintext) == nil
}

// Delete removes a user. Storage cascades the delete to the user's
// properties, bookings and reviews.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if s.evictor != nil {
		if err := s.evictor.EvictHost(ctx, id); err != nil {
			return err
		}
	}
	return s.repo.Delete(ctx, id)
}
