package league

import (
	"time"

	"github.com/google/uuid"
)

// Settings holds the game-rule toggles a commissioner configures per league.
type Settings struct {
	DesignatedHitter bool `json:"designatedHitter"`
	InjuriesEnabled  bool `json:"injuriesEnabled"`
}

// League represents a row in the leagues table.
type League struct {
	ID             uuid.UUID
	CommissionerID uuid.UUID
	Name           string
	Settings       Settings
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
