package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pennantbox/pennant/internal/api/handler"
	"github.com/pennantbox/pennant/internal/team"
)

// --- Mock Team Repository ---

type mockTeamRepo struct {
	listByLeagueFn   func(ctx context.Context, leagueID uuid.UUID) ([]team.Team, error)
	findOwnedByFn    func(ctx context.Context, leagueID, ownerID uuid.UUID) (*team.Team, error)
	claimIfUnownedFn func(ctx context.Context, teamID, leagueID, ownerID uuid.UUID) (*team.Team, error)
}

func (m *mockTeamRepo) Create(ctx context.Context, t *team.Team) error {
	t.ID = uuid.New()
	return nil
}

func (m *mockTeamRepo) GetByID(ctx context.Context, id uuid.UUID) (*team.Team, error) {
	return nil, team.ErrTeamNotFound
}

func (m *mockTeamRepo) ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]team.Team, error) {
	if m.listByLeagueFn != nil {
		return m.listByLeagueFn(ctx, leagueID)
	}
	return []team.Team{}, nil
}

func (m *mockTeamRepo) FindOwnedBy(ctx context.Context, leagueID, ownerID uuid.UUID) (*team.Team, error) {
	if m.findOwnedByFn != nil {
		return m.findOwnedByFn(ctx, leagueID, ownerID)
	}
	return nil, team.ErrTeamNotFound
}

func (m *mockTeamRepo) ClaimIfUnowned(ctx context.Context, teamID, leagueID, ownerID uuid.UUID) (*team.Team, error) {
	if m.claimIfUnownedFn != nil {
		return m.claimIfUnownedFn(ctx, teamID, leagueID, ownerID)
	}
	return nil, team.ErrTeamUnavailable
}

func newTeamHandler(repo team.Repository) *handler.TeamHandler {
	return handler.NewTeamHandler(repo, team.NewClaimService(repo))
}

func sampleTeam(id, leagueID uuid.UUID, owner *uuid.UUID) *team.Team {
	now := time.Now().UTC()
	return &team.Team{
		ID:             id,
		LeagueID:       leagueID,
		OwnerID:        owner,
		Name:           "Harbor Hawks",
		Abbreviation:   "HHK",
		PrimaryColor:   "#0c2340",
		SecondaryColor: "#c4ced4",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ===== POST /leagues/{leagueId}/claims =====

func TestClaim_Success(t *testing.T) {
	t.Parallel()

	leagueID := uuid.New()
	teamID := uuid.New()
	userID := uuid.New()

	repo := &mockTeamRepo{
		claimIfUnownedFn: func(ctx context.Context, tid, lid, oid uuid.UUID) (*team.Team, error) {
			return sampleTeam(tid, lid, &oid), nil
		},
	}
	h := newTeamHandler(repo)

	body, _ := json.Marshal(map[string]interface{}{"team_id": teamID.String()})
	req, w := makeChiRequest(http.MethodPost, "/leagues/"+leagueID.String()+"/claims", body,
		map[string]string{"leagueId": leagueID.String()})
	req = authenticate(req, userID)

	h.Claim(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := parseEnvelope(t, w)
	assert.Nil(t, env["error"])
	data := env["data"].(map[string]interface{})
	assert.Equal(t, teamID.String(), data["id"])
	assert.Equal(t, userID.String(), data["ownerId"])
}

func TestClaim_Unauthenticated(t *testing.T) {
	t.Parallel()

	h := newTeamHandler(&mockTeamRepo{})

	body, _ := json.Marshal(map[string]interface{}{"team_id": uuid.New().String()})
	req, w := makeChiRequest(http.MethodPost, "/leagues/"+uuid.New().String()+"/claims", body,
		map[string]string{"leagueId": uuid.New().String()})

	h.Claim(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "UNAUTHORIZED", errObj["code"])
}

func TestClaim_MissingTeamID(t *testing.T) {
	t.Parallel()

	h := newTeamHandler(&mockTeamRepo{})

	body, _ := json.Marshal(map[string]interface{}{})
	req, w := makeChiRequest(http.MethodPost, "/leagues/"+uuid.New().String()+"/claims", body,
		map[string]string{"leagueId": uuid.New().String()})
	req = authenticate(req, uuid.New())

	h.Claim(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
}

func TestClaim_InvalidJSON(t *testing.T) {
	t.Parallel()

	h := newTeamHandler(&mockTeamRepo{})

	req, w := makeChiRequest(http.MethodPost, "/leagues/"+uuid.New().String()+"/claims", []byte("{not json"),
		map[string]string{"leagueId": uuid.New().String()})
	req = authenticate(req, uuid.New())

	h.Claim(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_JSON", errObj["code"])
}

func TestClaim_AlreadyMember(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	repo := &mockTeamRepo{
		findOwnedByFn: func(ctx context.Context, lid, oid uuid.UUID) (*team.Team, error) {
			return sampleTeam(uuid.New(), lid, &oid), nil
		},
	}
	h := newTeamHandler(repo)

	body, _ := json.Marshal(map[string]interface{}{"team_id": uuid.New().String()})
	req, w := makeChiRequest(http.MethodPost, "/leagues/"+uuid.New().String()+"/claims", body,
		map[string]string{"leagueId": uuid.New().String()})
	req = authenticate(req, userID)

	h.Claim(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "ALREADY_MEMBER", errObj["code"])
}

func TestClaim_TeamUnavailable(t *testing.T) {
	t.Parallel()

	h := newTeamHandler(&mockTeamRepo{}) // default ClaimIfUnowned: unavailable

	body, _ := json.Marshal(map[string]interface{}{"team_id": uuid.New().String()})
	req, w := makeChiRequest(http.MethodPost, "/leagues/"+uuid.New().String()+"/claims", body,
		map[string]string{"leagueId": uuid.New().String()})
	req = authenticate(req, uuid.New())

	h.Claim(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "TEAM_UNAVAILABLE", errObj["code"])
}

func TestClaim_StoreError(t *testing.T) {
	t.Parallel()

	repo := &mockTeamRepo{
		claimIfUnownedFn: func(ctx context.Context, tid, lid, oid uuid.UUID) (*team.Team, error) {
			return nil, errors.New("connection refused")
		},
	}
	h := newTeamHandler(repo)

	body, _ := json.Marshal(map[string]interface{}{"team_id": uuid.New().String()})
	req, w := makeChiRequest(http.MethodPost, "/leagues/"+uuid.New().String()+"/claims", body,
		map[string]string{"leagueId": uuid.New().String()})
	req = authenticate(req, uuid.New())

	h.Claim(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "INTERNAL_ERROR", errObj["code"])
}

// ===== GET /leagues/{leagueId}/teams =====

func TestTeamList_Success(t *testing.T) {
	t.Parallel()

	leagueID := uuid.New()
	owner := uuid.New()
	repo := &mockTeamRepo{
		listByLeagueFn: func(ctx context.Context, lid uuid.UUID) ([]team.Team, error) {
			return []team.Team{
				*sampleTeam(uuid.New(), lid, &owner),
				*sampleTeam(uuid.New(), lid, nil),
			}, nil
		},
	}
	h := newTeamHandler(repo)

	req, w := makeChiRequest(http.MethodGet, "/leagues/"+leagueID.String()+"/teams", nil,
		map[string]string{"leagueId": leagueID.String()})

	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := parseEnvelope(t, w)
	items := env["data"].([]interface{})
	assert.Len(t, items, 2)
	first := items[0].(map[string]interface{})
	assert.Equal(t, owner.String(), first["ownerId"])
	second := items[1].(map[string]interface{})
	assert.Nil(t, second["ownerId"])
}

func TestTeamList_InvalidLeagueID(t *testing.T) {
	t.Parallel()

	h := newTeamHandler(&mockTeamRepo{})

	req, w := makeChiRequest(http.MethodGet, "/leagues/nope/teams", nil,
		map[string]string{"leagueId": "nope"})

	h.List(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_ID", errObj["code"])
}
