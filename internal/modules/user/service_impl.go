package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type service struct {
	repo   Repository
	minAge int
	now    func() time.Time
}

// NewService creates a new user service. minAge is the minimum eligible age
// in years, fixed for the process lifetime.
func NewService(repo Repository, minAge int) Service {
	return &service{repo: repo, minAge: minAge, now: time.Now}
}

func (s *service) CreateUser(ctx context.Context, req ModificationRequest) (*User, error) {
	if err := s.checkAge(req.BirthDate); err != nil {
		return nil, err
	}

	u := req.toUser()
	if err := s.repo.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) UpdateUser(ctx context.Context, id uuid.UUID, req ModificationRequest) error {
	// The age check deliberately precedes the existence check: an underage
	// birth date is reported even when the id does not exist.
	if err := s.checkAge(req.BirthDate); err != nil {
		return err
	}
	if _, err := s.getExisting(ctx, id); err != nil {
		return err
	}

	// Update is a full replace: fields absent from the request are cleared,
	// not retained from the stored record.
	u := req.toUser()
	u.ID = id
	return s.repo.Save(ctx, u)
}

func (s *service) UpdateUserEmail(ctx context.Context, id uuid.UUID, email string) error {
	u, err := s.getExisting(ctx, id)
	if err != nil {
		return err
	}
	u.Email = email
	return s.repo.Save(ctx, u)
}

func (s *service) DeleteUserByID(ctx context.Context, id uuid.UUID) error {
	if _, err := s.getExisting(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) FindByBirthDateRange(ctx context.Context, from, to Date) ([]*User, error) {
	return s.repo.FindByBirthDateRange(ctx, from, to)
}

// checkAge rejects a birth date whose minAge-th anniversary falls strictly
// after today. Today is evaluated at call time.
func (s *service) checkAge(birthDate Date) error {
	today := DateOf(s.now())
	if birthDate.AddYears(s.minAge).After(today) {
		return &AgeRestrictionError{MinAge: s.minAge}
	}
	return nil
}

func (s *service) getExisting(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}
	return u, nil
}
