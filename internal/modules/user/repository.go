package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for user record storage.
type Repository interface {
	// Save inserts the record when its id is unset, assigning a fresh id,
	// and fully overwrites the stored record otherwise.
	Save(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	// FindByBirthDateRange returns every record whose birth date lies in
	// [from, to], both ends included.
	FindByBirthDateRange(ctx context.Context, from, to Date) ([]*User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
