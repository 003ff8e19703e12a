package season

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pennantbox/pennant/internal/coverage"
	"github.com/pennantbox/pennant/internal/league"
	"github.com/pennantbox/pennant/internal/ratings"
)

// ErrNotCommissioner is returned when the caller does not commission the league.
var ErrNotCommissioner = errors.New("only the league commissioner can create seasons")

// ValidationError aggregates the reasons a season request was rejected,
// one per failed check.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Reasons, "; ")
}

// LifecycleService creates seasons and enforces that a league has at most
// one active season at a time.
type LifecycleService struct {
	leagues   league.Repository
	seasons   Repository
	ratings   ratings.Repository
	validator coverage.Validator
	sampleCap int
}

// NewLifecycleService creates a new LifecycleService. sampleCap bounds the
// rating-coverage count per rating type.
func NewLifecycleService(
	leagues league.Repository,
	seasons Repository,
	ratingsRepo ratings.Repository,
	validator coverage.Validator,
	sampleCap int,
) *LifecycleService {
	return &LifecycleService{
		leagues:   leagues,
		seasons:   seasons,
		ratings:   ratingsRepo,
		validator: validator,
		sampleCap: sampleCap,
	}
}

// Create starts a new active season for the league, completing any prior
// active season as part of the same store transaction. The year must have
// enough published batting and pitching ratings to simulate; no write
// happens when validation or the coverage gate fails.
func (s *LifecycleService) Create(ctx context.Context, leagueID, callerID uuid.UUID, name string, year int) (*Season, error) {
	lg, err := s.leagues.GetByID(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if lg.CommissionerID != callerID {
		return nil, ErrNotCommissioner
	}

	name = strings.TrimSpace(name)
	var reasons []string
	if name == "" {
		reasons = append(reasons, "name is required")
	}
	if year < MinYear || year > MaxYear {
		reasons = append(reasons, fmt.Sprintf("year must be between %d and %d", MinYear, MaxYear))
	}
	if len(reasons) > 0 {
		return nil, &ValidationError{Reasons: reasons}
	}

	battingCount, err := s.ratings.CountDistinctRated(ctx, year, ratings.TypeBatting, s.sampleCap)
	if err != nil {
		return nil, fmt.Errorf("fetching batting coverage: %w", err)
	}
	pitchingCount, err := s.ratings.CountDistinctRated(ctx, year, ratings.TypePitching, s.sampleCap)
	if err != nil {
		return nil, fmt.Errorf("fetching pitching coverage: %w", err)
	}

	if ok, covReasons := s.validator.Validate(battingCount, pitchingCount); !ok {
		return nil, &ValidationError{Reasons: covReasons}
	}

	created := &Season{
		LeagueID: leagueID,
		Name:     name,
		Year:     year,
		Status:   StatusActive,
	}
	if err := s.seasons.CreateExclusive(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}
