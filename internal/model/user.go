package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered customer. Users are created on first
// successful OTP verification and are keyed by their unique email.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	FirstName *string   `json:"firstName" db:"first_name"`
	LastName  *string   `json:"lastName" db:"last_name"`
	CreatedAt time.Time `json:"-" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}

// UserProjection is the minimal user shape returned to clients.
type UserProjection struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
}

// Projection returns the client-facing view of the user.
func (u *User) Projection() UserProjection {
	return UserProjection{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
