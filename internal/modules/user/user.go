package user

import (
	"github.com/google/uuid"
)

// User represents a person record in the system.
// @Description User information
// @Description with id, email, first_name, last_name, birth_date, address, and phone
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	BirthDate Date      `json:"birth_date"`
	Address   *string   `json:"address,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
}

// clone returns a deep copy so stored records never alias caller memory.
func (u *User) clone() *User {
	c := *u
	if u.Address != nil {
		addr := *u.Address
		c.Address = &addr
	}
	if u.Phone != nil {
		phone := *u.Phone
		c.Phone = &phone
	}
	return &c
}
