package team

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a row in the teams table. OwnerID is nil until a user
// claims the team; this package only ever sets it, never clears it.
type Team struct {
	ID             uuid.UUID
	LeagueID       uuid.UUID
	OwnerID        *uuid.UUID
	Name           string
	Abbreviation   string // 3 characters
	City           *string
	PrimaryColor   string
	SecondaryColor string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
