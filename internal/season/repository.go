package season

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrSeasonNotFound is returned when a season record is not found.
var ErrSeasonNotFound = errors.New("season not found")

// Repository provides operations on the seasons table.
type Repository interface {
	// CreateExclusive completes every active season in the new season's
	// league and inserts the new season as active, in one transaction.
	// Exposing the transition as a single method keeps the atomicity
	// requirement visible at the boundary.
	CreateExclusive(ctx context.Context, s *Season) error

	GetActive(ctx context.Context, leagueID uuid.UUID) (*Season, error)
	ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]Season, error)
}
