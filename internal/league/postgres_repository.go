package league

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

// Create inserts a new league record.
func (r *PostgresRepository) Create(ctx context.Context, l *League) error {
	query := `
		INSERT INTO leagues (commissioner_id, name, settings)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query, l.CommissionerID, l.Name, l.Settings).
		Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting league: %w", err)
	}

	return nil
}

// GetByID retrieves a single league by its UUID.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*League, error) {
	query := `
		SELECT id, commissioner_id, name, settings, created_at, updated_at
		FROM leagues
		WHERE id = $1`

	var l League
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.CommissionerID, &l.Name, &l.Settings, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("querying league: %w", err)
	}

	return &l, nil
}

// List retrieves all leagues ordered by creation time.
func (r *PostgresRepository) List(ctx context.Context) ([]League, error) {
	query := `
		SELECT id, commissioner_id, name, settings, created_at, updated_at
		FROM leagues
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing leagues: %w", err)
	}
	defer rows.Close()

	var leagues []League
	for rows.Next() {
		var l League
		err := rows.Scan(&l.ID, &l.CommissionerID, &l.Name, &l.Settings, &l.CreatedAt, &l.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning league row: %w", err)
		}
		leagues = append(leagues, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating league rows: %w", err)
	}

	if leagues == nil {
		leagues = []League{}
	}

	return leagues, nil
}
