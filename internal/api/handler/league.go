package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pennantbox/pennant/internal/api/middleware"
	"github.com/pennantbox/pennant/internal/api/response"
	"github.com/pennantbox/pennant/internal/api/validation"
	"github.com/pennantbox/pennant/internal/league"
)

type createLeagueRequest struct {
	Name     string          `json:"name"`
	Settings league.Settings `json:"settings"`
}

type leagueResponse struct {
	ID             string          `json:"id"`
	CommissionerID string          `json:"commissionerId"`
	Name           string          `json:"name"`
	Settings       league.Settings `json:"settings"`
	CreatedAt      string          `json:"createdAt"`
	UpdatedAt      string          `json:"updatedAt"`
}

func toLeagueResponse(l *league.League) leagueResponse {
	return leagueResponse{
		ID:             l.ID.String(),
		CommissionerID: l.CommissionerID.String(),
		Name:           l.Name,
		Settings:       l.Settings,
		CreatedAt:      l.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt:      l.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// LeagueHandler handles league endpoints. The creator becomes commissioner.
type LeagueHandler struct {
	repo league.Repository
}

// NewLeagueHandler creates a new LeagueHandler.
func NewLeagueHandler(repo league.Repository) *LeagueHandler {
	return &LeagueHandler{repo: repo}
}

// Create handles POST /leagues.
func (h *LeagueHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication is required", requestID)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req createLeagueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateCreateLeagueRequest(validation.CreateLeagueRequest{
		Name: req.Name,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	l := &league.League{
		CommissionerID: identity.UserID,
		Name:           req.Name,
		Settings:       req.Settings,
	}

	if err := h.repo.Create(r.Context(), l); err != nil {
		slog.Error("failed to create league", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create league", requestID)
		return
	}

	response.Success(w, http.StatusCreated, toLeagueResponse(l), requestID)
}

// List handles GET /leagues.
func (h *LeagueHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	leagues, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list leagues", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list leagues", requestID)
		return
	}

	items := make([]leagueResponse, 0, len(leagues))
	for i := range leagues {
		items = append(items, toLeagueResponse(&leagues[i]))
	}

	response.SuccessList(w, http.StatusOK, items, len(items), requestID)
}

// GetByID handles GET /leagues/{leagueId}.
func (h *LeagueHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "leagueId"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "leagueId must be a valid UUID", requestID)
		return
	}

	l, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, league.ErrLeagueNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "League not found", requestID)
			return
		}
		slog.Error("failed to get league", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get league", requestID)
		return
	}

	response.Success(w, http.StatusOK, toLeagueResponse(l), requestID)
}
