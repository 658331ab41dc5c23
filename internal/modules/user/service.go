package user

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the interface for user-related business logic.
type Service interface {
	CreateUser(ctx context.Context, req ModificationRequest) (*User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req ModificationRequest) error
	UpdateUserEmail(ctx context.Context, id uuid.UUID, email string) error
	DeleteUserByID(ctx context.Context, id uuid.UUID) error
	FindByBirthDateRange(ctx context.Context, from, to Date) ([]*User, error)
}

// ModificationRequest holds the data for creating or fully replacing a user.
// It is consumed once per call and never persisted directly.
type ModificationRequest struct {
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	BirthDate Date    `json:"birth_date"`
	Address   *string `json:"address,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

func (r ModificationRequest) toUser() *User {
	return &User{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		BirthDate: r.BirthDate,
		Address:   r.Address,
		Phone:     r.Phone,
	}
}

// BirthDateRangeFilter holds the bounds for a birth date range query.
type BirthDateRangeFilter struct {
	FromDate Date
	ToDate   Date
}
