package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pennantbox/pennant/internal/api/metrics"
	"github.com/pennantbox/pennant/internal/api/middleware"
	"github.com/pennantbox/pennant/internal/api/response"
	"github.com/pennantbox/pennant/internal/api/validation"
	"github.com/pennantbox/pennant/internal/team"
)

type claimTeamRequest struct {
	TeamID string `json:"team_id"`
}

type teamResponse struct {
	ID             string  `json:"id"`
	LeagueID       string  `json:"leagueId"`
	OwnerID        *string `json:"ownerId"`
	Name           string  `json:"name"`
	Abbreviation   string  `json:"abbreviation"`
	City           *string `json:"city"`
	PrimaryColor   string  `json:"primaryColor"`
	SecondaryColor string  `json:"secondaryColor"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

func toTeamResponse(t *team.Team) teamResponse {
	resp := teamResponse{
		ID:             t.ID.String(),
		LeagueID:       t.LeagueID.String(),
		Name:           t.Name,
		Abbreviation:   t.Abbreviation,
		City:           t.City,
		PrimaryColor:   t.PrimaryColor,
		SecondaryColor: t.SecondaryColor,
		CreatedAt:      t.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt:      t.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if t.OwnerID != nil {
		owner := t.OwnerID.String()
		resp.OwnerID = &owner
	}
	return resp
}

// TeamHandler handles team browse and claim endpoints.
type TeamHandler struct {
	repo   team.Repository
	claims *team.ClaimService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(repo team.Repository, claims *team.ClaimService) *TeamHandler {
	return &TeamHandler{repo: repo, claims: claims}
}

// List handles GET /leagues/{leagueId}/teams.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	leagueID, err := uuid.Parse(chi.URLParam(r, "leagueId"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "leagueId must be a valid UUID", requestID)
		return
	}

	teams, err := h.repo.ListByLeague(r.Context(), leagueID)
	if err != nil {
		slog.Error("failed to list teams", "error", err, "leagueId", leagueID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list teams", requestID)
		return
	}

	items := make([]teamResponse, 0, len(teams))
	for i := range teams {
		items = append(items, toTeamResponse(&teams[i]))
	}

	response.SuccessList(w, http.StatusOK, items, len(items), requestID)
}

// Claim handles POST /leagues/{leagueId}/claims.
func (h *TeamHandler) Claim(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication is required", requestID)
		return
	}

	leagueID, err := uuid.Parse(chi.URLParam(r, "leagueId"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "leagueId must be a valid UUID", requestID)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req claimTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateClaimTeamRequest(validation.ClaimTeamRequest{
		TeamID: req.TeamID,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}
	teamID := uuid.MustParse(req.TeamID)

	claimed, err := h.claims.Claim(r.Context(), leagueID, identity.UserID, teamID)
	if err != nil {
		switch {
		case errors.Is(err, team.ErrAlreadyMember):
			metrics.ObserveClaim("already_member")
			response.Err(w, http.StatusBadRequest, "ALREADY_MEMBER", "You already own a team in this league", requestID)
		case errors.Is(err, team.ErrTeamUnavailable):
			metrics.ObserveClaim("unavailable")
			response.Err(w, http.StatusConflict, "TEAM_UNAVAILABLE", "That team is no longer available", requestID)
		default:
			metrics.ObserveClaim("error")
			slog.Error("failed to claim team", "error", err, "leagueId", leagueID, "teamId", teamID)
			response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to claim team", requestID)
		}
		return
	}

	metrics.ObserveClaim("claimed")
	slog.Info("team claimed", "leagueId", leagueID, "teamId", teamID, "userId", identity.UserID)
	response.Success(w, http.StatusOK, toTeamResponse(claimed), requestID)
}
