package services_test

import (
	"context"
	"sort"
	"sync"

	"github.com/alx-travel-app/backend/internal/domain/entities"
	apperrors "github.com/alx-travel-app/backend/pkg/errors"
)

// memoryStore is an in-memory stand-in for the users and properties tables
// with the unique username and email keys
type memoryStore struct {
	mu         sync.Mutex
	users      map[string]entities.User
	properties map[string]entities.Property
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:      map[string]entities.User{},
		properties: map[string]entities.Property{},
	}
}

type memoryUserRepo struct{ s *memoryStore }

type memoryPropertyRepo struct{ s *memoryStore }

func (r *memoryUserRepo) Create(ctx context.Context, user *entities.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return apperrors.NewConflictError("a user with this email already exists")
		}
		if u.Username == user.Username {
			return apperrors.NewConflictError("a user with this username already exists")
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepo) GetOrCreate(ctx context.Context, user *entities.User) (*entities.User, bool, error) {
	if existing, err := r.GetByUsername(ctx, user.Username); err == nil {
		return existing, false, nil
	}
	if err := r.Create(ctx, user); err != nil {
		return nil, false, err
	}
	stored, err := r.GetByID(ctx, user.ID)
	return stored, true, err
}

func (r *memoryUserRepo) find(match func(u entities.User) bool) (*entities.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (r *memoryUserRepo) GetByID(ctx context.Context, id string) (*entities.User, error) {
	return r.find(func(u entities.User) bool { return u.ID == id })
}

func (r *memoryUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.find(func(u entities.User) bool { return u.Email == email })
}

func (r *memoryUserRepo) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.find(func(u entities.User) bool { return u.Username == username })
}

func (r *memoryUserRepo) Update(ctx context.Context, user *entities.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.users[user.ID]
	if !ok {
		return apperrors.NewNotFoundError("user not found")
	}
	updated := *user
	updated.CreatedAt = existing.CreatedAt
	r.s.users[user.ID] = updated
	return nil
}

func (r *memoryUserRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return apperrors.NewNotFoundError("user not found")
	}
	delete(r.s.users, id)
	return nil
}

func (r *memoryUserRepo) Count(ctx context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.users), nil
}

func (r *memoryPropertyRepo) Create(ctx context.Context, property *entities.Property) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[property.HostID]; !ok {
		return apperrors.NewValidationError("referenced row does not exist")
	}
	r.s.properties[property.ID] = *property
	return nil
}

func (r *memoryPropertyRepo) GetByID(ctx context.Context, id string) (*entities.Property, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.properties[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("property not found")
	}
	return &p, nil
}

func (r *memoryPropertyRepo) ListByHost(ctx context.Context, hostID string) ([]*entities.Property, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entities.Property{}
	for _, p := range r.s.properties {
		if p.HostID == hostID {
			p := p
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryPropertyRepo) Update(ctx context.Context, property *entities.Property) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.properties[property.ID]
	if !ok {
		return apperrors.NewNotFoundError("property not found")
	}
	updated := *property
	updated.CreatedAt = existing.CreatedAt
	r.s.properties[property.ID] = updated
	return nil
}

func (r *memoryPropertyRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.properties[id]; !ok {
		return apperrors.NewNotFoundError("property not found")
	}
	delete(r.s.properties, id)
	return nil
}

func (r *memoryPropertyRepo) Count(ctx context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.properties), nil
}
