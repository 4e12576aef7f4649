package match

import "context"

// Repository exposes match and matchday persistence operations.
type Repository interface {
	GetByID(ctx context.Context, id string) (Match, bool, error)
	List(ctx context.Context) ([]Match, error)
	ListFinished(ctx context.Context) ([]Match, error)
	Update(ctx context.Context, item Match) error
	Create(ctx context.Context, item Match) error
	ListMatchDays(ctx context.Context) ([]MatchDay, error)
	CreateMatchDay(ctx context.Context, item MatchDay) error
}
