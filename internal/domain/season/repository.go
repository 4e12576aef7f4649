package season

import "context"

// Repository exposes season state and draft order persistence. Get reads
// the singleton row, creating a pre-season default when none exists yet.
type Repository interface {
	Get(ctx context.Context) (Season, error)
	Update(ctx context.Context, item Season) error
	ListTurnOrder(ctx context.Context) ([]TurnOrder, error)
	ReplaceTurnOrder(ctx context.Context, items []TurnOrder) error
}
