package team

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const teamColumns = `id, league_id, owner_id, name, abbreviation, city,
	primary_color, secondary_color, created_at, updated_at`

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

func scanTeam(row pgx.Row, t *Team) error {
	return row.Scan(
		&t.ID, &t.LeagueID, &t.OwnerID, &t.Name, &t.Abbreviation, &t.City,
		&t.PrimaryColor, &t.SecondaryColor, &t.CreatedAt, &t.UpdatedAt,
	)
}

// Create inserts a new team record. Team creation is administrative; rows
// start unowned.
func (r *PostgresRepository) Create(ctx context.Context, t *Team) error {
	query := `
		INSERT INTO teams (league_id, name, abbreviation, city, primary_color, secondary_color)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		t.LeagueID, t.Name, t.Abbreviation, t.City, t.PrimaryColor, t.SecondaryColor,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting team: %w", err)
	}

	return nil
}

// GetByID retrieves a single team by its UUID.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Team, error) {
	query := fmt.Sprintf(`SELECT %s FROM teams WHERE id = $1`, teamColumns)

	var t Team
	if err := scanTeam(r.pool.QueryRow(ctx, query, id), &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("querying team: %w", err)
	}

	return &t, nil
}

// ListByLeague retrieves all teams in a league ordered by name.
func (r *PostgresRepository) ListByLeague(ctx context.Context, leagueID uuid.UUID) ([]Team, error) {
	query := fmt.Sprintf(`SELECT %s FROM teams WHERE league_id = $1 ORDER BY name ASC`, teamColumns)

	rows, err := r.pool.Query(ctx, query, leagueID)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var t Team
		if err := scanTeam(rows, &t); err != nil {
			return nil, fmt.Errorf("scanning team row: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team rows: %w", err)
	}

	if teams == nil {
		teams = []Team{}
	}

	return teams, nil
}

// FindOwnedBy returns the team owned by ownerID within leagueID.
func (r *PostgresRepository) FindOwnedBy(ctx context.Context, leagueID, ownerID uuid.UUID) (*Team, error) {
	query := fmt.Sprintf(`SELECT %s FROM teams WHERE league_id = $1 AND owner_id = $2`, teamColumns)

	var t Team
	if err := scanTeam(r.pool.QueryRow(ctx, query, leagueID, ownerID), &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("querying owned team: %w", err)
	}

	return &t, nil
}

// ClaimIfUnowned performs the atomic conditional claim. The WHERE clause is
// the compare-and-swap: of any number of concurrent claims on the same team,
// exactly one update matches the unowned row. The partial unique index on
// (league_id, owner_id) additionally rejects a second team for the same user,
// which surfaces here as ErrAlreadyMember.
func (r *PostgresRepository) ClaimIfUnowned(ctx context.Context, teamID, leagueID, ownerID uuid.UUID) (*Team, error) {
	query := fmt.Sprintf(`
		UPDATE teams
		SET owner_id = $3, updated_at = NOW()
		WHERE id = $1 AND league_id = $2 AND owner_id IS NULL
		RETURNING %s`, teamColumns)

	var t Team
	if err := scanTeam(r.pool.QueryRow(ctx, query, teamID, leagueID, ownerID), &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamUnavailable
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrAlreadyMember
		}
		return nil, fmt.Errorf("claiming team: %w", err)
	}

	return &t, nil
}
