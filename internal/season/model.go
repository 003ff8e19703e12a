package season

import (
	"time"

	"github.com/google/uuid"
)

// Season statuses. A league has at most one active season; a season moves
// to completed only when a successor is created.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Years accepted for a season, matching the range of available historical
// rating data.
const (
	MinYear = 1871
	MaxYear = 2100
)

// Season represents a row in the seasons table.
type Season struct {
	ID        uuid.UUID
	LeagueID  uuid.UUID
	Name      string
	Year      int
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
