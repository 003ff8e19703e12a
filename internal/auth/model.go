package auth

import (
	"time"

	"github.com/google/uuid"
)

// User represents a row in the users table.
type User struct {
	ID           uuid.UUID
	Name         string
	ApiKeyPrefix string
	ApiKeyHash   string
	CreatedAt    time.Time
	RevokedAt    *time.Time
}

// Identity is stored in the request context after authentication. League
// roles (commissioner, team owner) are per-league facts checked by the
// services, not part of the identity.
type Identity struct {
	UserID   uuid.UUID
	UserName string
}
