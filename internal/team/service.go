package team

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ClaimService resolves a user's request to join a league by taking
// ownership of a specific unowned team.
type ClaimService struct {
	repo Repository
}

// NewClaimService creates a new ClaimService.
func NewClaimService(repo Repository) *ClaimService {
	return &ClaimService{repo: repo}
}

// Claim assigns the team to the user if the user owns no team in the league
// and the team is still unowned. The membership lookup is a fast-path
// rejection only; the single conditional update in ClaimIfUnowned is what
// guarantees at most one winner among concurrent claims of the same team,
// and the store's ownership uniqueness closes the same-user race across
// different teams.
func (s *ClaimService) Claim(ctx context.Context, leagueID, userID, teamID uuid.UUID) (*Team, error) {
	existing, err := s.repo.FindOwnedBy(ctx, leagueID, userID)
	if err != nil && !errors.Is(err, ErrTeamNotFound) {
		return nil, fmt.Errorf("checking league membership: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyMember
	}

	return s.repo.ClaimIfUnowned(ctx, teamID, leagueID, userID)
}
