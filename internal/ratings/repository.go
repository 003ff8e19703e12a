package ratings

import "context"

// RatingType selects which rating table a coverage query counts.
type RatingType string

const (
	TypeBatting  RatingType = "batting"
	TypePitching RatingType = "pitching"
)

// Repository provides read access to the historical player-rating tables.
type Repository interface {
	// CountDistinctRated returns the number of distinct players holding a
	// rating of the given type for year. The count is taken over at most
	// sampleCap players so coverage checks never scan a full rating table.
	CountDistinctRated(ctx context.Context, year int, ratingType RatingType, sampleCap int) (int, error)
}
