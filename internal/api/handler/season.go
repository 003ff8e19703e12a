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
	"github.com/pennantbox/pennant/internal/league"
	"github.com/pennantbox/pennant/internal/season"
)

type createSeasonRequest struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

type seasonResponse struct {
	ID        string `json:"id"`
	LeagueID  string `json:"leagueId"`
	Name      string `json:"name"`
	Year      int    `json:"year"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toSeasonResponse(s *season.Season) seasonResponse {
	return seasonResponse{
		ID:        s.ID.String(),
		LeagueID:  s.LeagueID.String(),
		Name:      s.Name,
		Year:      s.Year,
		Status:    s.Status,
		CreatedAt: s.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt: s.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// SeasonHandler handles season lifecycle and browse endpoints.
type SeasonHandler struct {
	service *season.LifecycleService
	repo    season.Repository
}

// NewSeasonHandler creates a new SeasonHandler.
func NewSeasonHandler(service *season.LifecycleService, repo season.Repository) *SeasonHandler {
	return &SeasonHandler{service: service, repo: repo}
}

// Create handles POST /leagues/{leagueId}/seasons.
func (h *SeasonHandler) Create(w http.ResponseWriter, r *http.Request) {
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
	var req createSeasonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateCreateSeasonRequest(validation.CreateSeasonRequest{
		Name: req.Name,
		Year: req.Year,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	created, err := h.service.Create(r.Context(), leagueID, identity.UserID, req.Name, req.Year)
	if err != nil {
		var validationErr *season.ValidationError
		switch {
		case errors.Is(err, league.ErrLeagueNotFound):
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "League not found", requestID)
		case errors.Is(err, season.ErrNotCommissioner):
			metrics.ObserveSeasonCreation("forbidden")
			response.Err(w, http.StatusForbidden, "FORBIDDEN", "Only the league commissioner can create seasons", requestID)
		case errors.As(err, &validationErr):
			metrics.ObserveSeasonCreation("rejected")
			response.Err(w, http.StatusBadRequest, "VALIDATION_ERROR", validationErr.Error(), requestID)
		default:
			metrics.ObserveSeasonCreation("error")
			slog.Error("failed to create season", "error", err, "leagueId", leagueID)
			response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create season", requestID)
		}
		return
	}

	metrics.ObserveSeasonCreation("created")
	slog.Info("season created", "leagueId", leagueID, "seasonId", created.ID, "year", created.Year)
	response.Success(w, http.StatusOK, toSeasonResponse(created), requestID)
}

// List handles GET /leagues/{leagueId}/seasons.
func (h *SeasonHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	leagueID, err := uuid.Parse(chi.URLParam(r, "leagueId"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "leagueId must be a valid UUID", requestID)
		return
	}

	seasons, err := h.repo.ListByLeague(r.Context(), leagueID)
	if err != nil {
		slog.Error("failed to list seasons", "error", err, "leagueId", leagueID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list seasons", requestID)
		return
	}

	items := make([]seasonResponse, 0, len(seasons))
	for i := range seasons {
		items = append(items, toSeasonResponse(&seasons[i]))
	}

	response.SuccessList(w, http.StatusOK, items, len(items), requestID)
}
