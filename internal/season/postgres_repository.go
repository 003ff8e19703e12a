package season

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// CreateExclusive performs the deactivate-and-insert transition atomically.
// The partial unique index on (league_id) WHERE status = 'active' makes a
// concurrent second transition fail rather than leave two active seasons.
func (r *PostgresRepository) CreateExclusive(ctx context.Context, s *Season) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning season transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	deactivate := `
		UPDATE seasons
		SET status = 'completed', updated_at = NOW()
		WHERE league_id = $1 AND status = 'active'`

	if _, err := tx.Exec(ctx, deactivate, s.LeagueID); err != nil {
		return fmt.Errorf("completing active seasons: %w", err)
	}

	insert := `
		INSERT INTO seasons (league_id, name, year, status)
		VALUES ($1, $2, $3, 'active')
		RETURNING id, created_at, updated_at`

	err = tx.QueryRow(ctx, insert, s.LeagueID, s.Name, s.Year).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting season: %w", err)
	}
	s.Status = StatusActive

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing season transaction: %w", err)
	}

	return nil
}

// GetActive retrieves the league's single active season.
func (r *PostgresRepository) GetActive(ctx context.Context, leagueID uuid.UUID) (*Season, error) {
	query := `
		SELECT id, league_id, name, year, status, created_at, updated_at
		FROM seasons
		WHERE league_id = $1 AND status = 'active'`

	var s Season
	err := r.pool.QueryRow(ctx, query, leagueID).Scan(
		&s.ID, &s.LeagueID, &s.Name, &s.Year, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSeasonNotFound
		}
		return nil, fmt.Errorf("querying active season: %w", err)
	}

	return &s, nil
}

// ListByLeague retrieves all seasons in a league, newest first.
func (r *PostgresRepository) ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]Season, error) {
	query := `
		SELECT id, league_id, name, year, status, created_at, updated_at
		FROM seasons
		WHERE league_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, leagueID)
	if err != nil {
		return nil, fmt.Errorf("listing seasons: %w", err)
	}
	defer rows.Close()

	var seasons []Season
	for rows.Next() {
		var s Season
		err := rows.Scan(&s.ID, &s.LeagueID, &s.Name, &s.Year, &s.Status, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning season row: %w", err)
		}
		seasons = append(seasons, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating season rows: %w", err)
	}

	if seasons == nil {
		seasons = []Season{}
	}

	return seasons, nil
}
