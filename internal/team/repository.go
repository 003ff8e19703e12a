package team

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrTeamNotFound is returned when a team record is not found.
var ErrTeamNotFound = errors.New("team not found")

// ErrTeamUnavailable is returned when a conditional claim matches no row:
// the team does not exist, belongs to another league, or is already owned.
var ErrTeamUnavailable = errors.New("team is not available to claim")

// ErrAlreadyMember is returned when a user already owns a team in the league.
var ErrAlreadyMember = errors.New("user already owns a team in this league")

// Repository provides operations on the teams table.
type Repository interface {
	Create(ctx context.Context, t *Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*Team, error)
	ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]Team, error)

	// FindOwnedBy returns the team owned by ownerID within leagueID, or
	// ErrTeamNotFound when the user owns no team there.
	FindOwnedBy(ctx context.Context, leagueID, ownerID uuid.UUID) (*Team, error)

	// ClaimIfUnowned sets the owner on the team identified by (teamID,
	// leagueID) only if it currently has no owner, returning the updated
	// row. A no-match is ErrTeamUnavailable; a store-level ownership
	// uniqueness violation is ErrAlreadyMember.
	ClaimIfUnowned(ctx context.Context, teamID, leagueID, ownerID uuid.UUID) (*Team, error)
}
