// internal/domain/user.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account in the bloglist system.
// PasswordHash never crosses the API boundary; it is excluded from JSON
// and all outbound projections use PublicUser instead.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"` // Unique username
	Name         string    `db:"name" json:"name"`         // Display name, optional
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// NewUser creates a new User instance with a fresh identifier.
func NewUser(username, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Username:     username,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// PublicUser is the outbound projection of a User: identity plus the
// derived list of owned blog ids, no credential material.
type PublicUser struct {
	ID       uuid.UUID   `json:"id"`
	Username string      `json:"username"`
	Name     string      `json:"name"`
	BlogIDs  []uuid.UUID `json:"blogs"`
}

// Principal is the authenticated identity resolved for the current request.
// It is derived from a verified token and never persisted.
type Principal struct {
	UserID   uuid.UUID
	Username string
}
