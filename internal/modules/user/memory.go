package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// InMemoryRepository keeps records in a map guarded by a RWMutex. It backs
// the tests and serves as the store when no database is configured.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*User
}

// NewInMemoryRepository creates an empty in-memory user repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[uuid.UUID]*User)}
}

func (r *InMemoryRepository) Save(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u.clone()
	return nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u.clone(), nil
}

func (r *InMemoryRepository) FindByBirthDateRange(_ context.Context, from, to Date) ([]*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var users []*User
	for _, u := range r.users {
		if !u.BirthDate.Before(from) && !u.BirthDate.After(to) {
			users = append(users, u.clone())
		}
	}
	return users, nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}
