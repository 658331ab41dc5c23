package user

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is the repository-level sentinel for a missing record. The
// service translates it into a NotFoundError carrying the requested id.
var ErrNotFound = errors.New("user not found")

// AgeRestrictionError signals that a birth date does not satisfy the minimum
// age rule at the time of the call.
type AgeRestrictionError struct {
	MinAge int
}

func (e *AgeRestrictionError) Error() string {
	return fmt.Sprintf("user must be more than %d age", e.MinAge)
}

// NotFoundError signals that no record exists for the referenced id.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user with id %s is not found", e.ID)
}
