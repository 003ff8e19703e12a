package ratings

import (
	"context"
	"fmt"

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

// CountDistinctRated counts distinct rated players for a year, bounded by
// sampleCap. The table name comes from a fixed switch, never from input.
func (r *PostgresRepository) CountDistinctRated(ctx context.Context, year int, ratingType RatingType, sampleCap int) (int, error) {
	var table string
	switch ratingType {
	case TypeBatting:
		table = "batting_ratings"
	case TypePitching:
		table = "pitching_ratings"
	default:
		return 0, fmt.Errorf("unknown rating type %q", ratingType)
	}

	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM (
			SELECT DISTINCT player_id
			FROM %s
			WHERE year = $1
			LIMIT $2
		) sample`, table)

	var count int
	if err := r.pool.QueryRow(ctx, query, year, sampleCap).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting %s-rated players: %w", ratingType, err)
	}

	return count, nil
}
