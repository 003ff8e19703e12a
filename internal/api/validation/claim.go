package validation

import (
	"strings"

	"github.com/google/uuid"
)

// ClaimTeamRequest mirrors the fields needed for claim validation.
type ClaimTeamRequest struct {
	TeamID string
}

// ValidateClaimTeamRequest validates the fields of a team claim request.
func ValidateClaimTeamRequest(req ClaimTeamRequest) []FieldError {
	var errs []FieldError

	teamID := strings.TrimSpace(req.TeamID)
	if teamID == "" {
		errs = append(errs, FieldError{Field: "team_id", Message: "team_id is required"})
	} else if _, err := uuid.Parse(teamID); err != nil {
		errs = append(errs, FieldError{Field: "team_id", Message: "team_id must be a valid UUID"})
	}

	return errs
}
