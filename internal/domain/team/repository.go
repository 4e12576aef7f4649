package team

import "context"

// Repository exposes team persistence operations.
type Repository interface {
	GetByID(ctx context.Context, id string) (Team, bool, error)
	GetByOwner(ctx context.Context, ownerUserID string) (Team, bool, error)
	List(ctx context.Context) ([]Team, error)
	Update(ctx context.Context, item Team) error
	Create(ctx context.Context, item Team) error
}
