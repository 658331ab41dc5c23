package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRepo counts writes so tests can assert fail-fast behavior.
type recordingRepo struct {
	*InMemoryRepository
	saves   int
	deletes int
}

func newRecordingRepo() *recordingRepo {
	return &recordingRepo{InMemoryRepository: NewInMemoryRepository()}
}

func (r *recordingRepo) Save(ctx context.Context, u *User) error {
	r.saves++
	return r.InMemoryRepository.Save(ctx, u)
}

func (r *recordingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.deletes++
	return r.InMemoryRepository.Delete(ctx, id)
}

// newTestService fixes "today" so age eligibility is deterministic.
func newTestService(repo Repository, minAge int, today Date) *service {
	return &service{
		repo:   repo,
		minAge: minAge,
		now:    func() time.Time { return time.Date(today.t.Year(), today.t.Month(), today.t.Day(), 12, 0, 0, 0, time.UTC) },
	}
}

func validRequest() ModificationRequest {
	return ModificationRequest{
		Email:     "e@gmail.com",
		FirstName: "n",
		LastName:  "r",
		BirthDate: NewDate(2003, time.July, 28),
	}
}

func TestCreateUser(t *testing.T) {
	today := NewDate(2024, time.January, 1)

	t.Run("creates user when data is correct", func(t *testing.T) {
		repo := newRecordingRepo()
		svc := newTestService(repo, 18, today)
		req := validRequest()

		u, err := svc.CreateUser(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, u)

		assert.NotEqual(t, uuid.Nil, u.ID)
		assert.Equal(t, req.Email, u.Email)
		assert.Equal(t, req.FirstName, u.FirstName)
		assert.Equal(t, req.LastName, u.LastName)
		assert.True(t, req.BirthDate.Equal(u.BirthDate))
		assert.Equal(t, 1, repo.saves)
	})

	t.Run("rejects underage user without touching the store", func(t *testing.T) {
		repo := newRecordingRepo()
		svc := newTestService(repo, 18, today)
		req := validRequest()
		req.BirthDate = NewDate(2009, time.October, 10)

		_, err := svc.CreateUser(context.Background(), req)

		var ageErr *AgeRestrictionError
		require.ErrorAs(t, err, &ageErr)
		assert.Equal(t, 18, ageErr.MinAge)
		assert.EqualError(t, err, "user must be more than 18 age")
		assert.Equal(t, 0, repo.saves)
	})

	t.Run("accepts user turning the minimum age today", func(t *testing.T) {
		svc := newTestService(newRecordingRepo(), 18, today)
		req := validRequest()
		req.BirthDate = NewDate(2006, time.January, 1)

		_, err := svc.CreateUser(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("rejects user one day short of the minimum age", func(t *testing.T) {
		svc := newTestService(newRecordingRepo(), 18, today)
		req := validRequest()
		req.BirthDate = NewDate(2006, time.January, 2)

		_, err := svc.CreateUser(context.Background(), req)
		var ageErr *AgeRestrictionError
		assert.ErrorAs(t, err, &ageErr)
	})

	t.Run("clamps a Feb 29 birth date to Feb 28 in non-leap years", func(t *testing.T) {
		req := validRequest()
		req.BirthDate = NewDate(2004, time.February, 29)

		svc := newTestService(newRecordingRepo(), 18, NewDate(2022, time.February, 28))
		_, err := svc.CreateUser(context.Background(), req)
		assert.NoError(t, err)

		svc = newTestService(newRecordingRepo(), 18, NewDate(2022, time.February, 27))
		_, err = svc.CreateUser(context.Background(), req)
		var ageErr *AgeRestrictionError
		assert.ErrorAs(t, err, &ageErr)
	})
}

func TestUpdateUser(t *testing.T) {
	today := NewDate(2024, time.January, 1)

	t.Run("fully replaces all fields", func(t *testing.T) {
		repo := newRecordingRepo()
		svc := newTestService(repo, 18, today)

		addr, phone := "Main St 1", "+380501234567"
		req := validRequest()
		req.Address = &addr
		req.Phone = &phone
		created, err := svc.CreateUser(context.Background(), req)
		require.NoError(t, err)

		// The new request omits address and phone, so they must be cleared.
		err = svc.UpdateUser(context.Background(), created.ID, validRequest())
		require.NoError(t, err)

		stored, err := repo.GetByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.Address)
		assert.Nil(t, stored.Phone)
		assert.Equal(t, created.ID, stored.ID)
	})

	t.Run("rejects underage update without touching the store", func(t *testing.T) {
		repo := newRecordingRepo()
		svc := newTestService(repo, 18, today)
		req := validRequest()
		req.BirthDate = NewDate(2009, time.October, 10)

		err := svc.UpdateUser(context.Background(), uuid.New(), req)

		var ageErr *AgeRestrictionError
		require.ErrorAs(t, err, &ageErr)
		assert.Equal(t, 0, repo.saves)
	})

	// The age check deliberately runs before the existence check, so an
	// underage request on a nonexistent id reports the age error.
	t.Run("age check precedes existence check", func(t *testing.T) {
		svc := newTestService(newRecordingRepo(), 18, today)
		req := validRequest()
		req.BirthDate = NewDate(2020, time.May, 5)

		err := svc.UpdateUser(context.Background(), uuid.New(), req)

		var ageErr *AgeRestrictionError
		assert.ErrorAs(t, err, &ageErr)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		svc := newTestService(newRecordingRepo(), 18, today)
		id := uuid.New()

		err := svc.UpdateUser(context.Background(), id, validRequest())

		var nfErr *NotFoundError
		require.ErrorAs(t, err, &nfErr)
		assert.Equal(t, id, nfErr.ID)
	})
}

func TestUpdateUserEmail(t *testing.T) {
	today := NewDate(2024, time.January, 1)

	t.Run("changes only the email field", func(t *testing.T) {
		repo := newRecordingRepo()
		svc := newTestService(repo, 18, today)

		addr := "Main St 1"
		req := validRequest()
		req.Address = &addr
		created, err := svc.CreateUser(context.Background(), req)
		require.NoError(t, err)

		err = svc.UpdateUserEmail(context.Background(), created.ID, "e@e.e")
		require.NoError(t, err)

		stored, err := repo.GetByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "e@e.e", stored.Email)
		assert.Equal(t, created.FirstName, stored.FirstName)
		assert.Equal(t, created.LastName, stored.LastName)
		assert.True(t, created.BirthDate.Equal(stored.BirthDate))
		require.NotNil(t, stored.Address)
		assert.Equal(t, addr, *stored.Address)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		svc := newTestService(newRecordingRepo(), 18, today)

		err := svc.UpdateUserEmail(context.Background(), uuid.New(), "e@e.e")

		var nfErr *NotFoundError
		assert.ErrorAs(t, err, &nfErr)
	})
}

func TestDeleteUserByID(t *testing.T) {
	today := NewDate(2024, time.January, 1)

	t.Run("deletes existing user once", func(t *testing.T) {
		repo := newRecordingRepo()
		svc := newTestService(repo, 18, today)
		created, err := svc.CreateUser(context.Background(), validRequest())
		require.NoError(t, err)

		require.NoError(t, svc.DeleteUserByID(context.Background(), created.ID))

		// The second delete fails because the record is gone.
		err = svc.DeleteUserByID(context.Background(), created.ID)
		var nfErr *NotFoundError
		assert.ErrorAs(t, err, &nfErr)
		assert.Equal(t, 1, repo.deletes)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		repo := newRecordingRepo()
		svc := newTestService(repo, 18, today)

		err := svc.DeleteUserByID(context.Background(), uuid.New())

		var nfErr *NotFoundError
		assert.ErrorAs(t, err, &nfErr)
		assert.Equal(t, 0, repo.deletes)
	})
}

func TestFindByBirthDateRange(t *testing.T) {
	today := NewDate(2024, time.January, 1)
	repo := newRecordingRepo()
	svc := newTestService(repo, 18, today)

	dates := []Date{
		NewDate(2003, time.July, 27),
		NewDate(2003, time.July, 28),
		NewDate(2003, time.July, 30),
		NewDate(2003, time.July, 31),
	}
	for _, d := range dates {
		req := validRequest()
		req.BirthDate = d
		_, err := svc.CreateUser(context.Background(), req)
		require.NoError(t, err)
	}

	// Both boundary dates are included.
	users, err := svc.FindByBirthDateRange(context.Background(),
		NewDate(2003, time.July, 28), NewDate(2003, time.July, 30))
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.False(t, u.BirthDate.Before(NewDate(2003, time.July, 28)))
		assert.False(t, u.BirthDate.After(NewDate(2003, time.July, 30)))
	}
}
