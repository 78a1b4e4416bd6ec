package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a person whose exercise is tracked. Usernames are unique across
// all users; the comparison is case-sensitive.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"-"`
}

// NewUser creates a User with a freshly generated ID.
// Returns a ValidationError if the username is empty.
func NewUser(username string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return NewValidationError("id", "is required", ErrInvalidID)
	}

	if u.Username == "" {
		return NewValidationError("username", "is required", ErrValidation)
	}

	return nil
}
