package league

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrLeagueNotFound is returned when a league record is not found.
var ErrLeagueNotFound = errors.New("league not found")

// Repository provides operations on the leagues table.
type Repository interface {
	Create(ctx context.Context, l *League) error
	GetByID(ctx context.Context, id uuid.UUID) (*League, error)
	List(ctx context.Context) ([]League, error)
}
