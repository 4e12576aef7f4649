package conference

import "context"

// Repository exposes conference persistence operations.
type Repository interface {
	GetByID(ctx context.Context, id string) (Conference, bool, error)
	List(ctx context.Context) ([]Conference, error)
	Create(ctx context.Context, item Conference) error
}
