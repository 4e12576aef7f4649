package player

import "context"

// Repository exposes player persistence operations.
type Repository interface {
	GetByID(ctx context.Context, id string) (Player, bool, error)
	List(ctx context.Context) ([]Player, error)
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	CountByTeam(ctx context.Context, teamID string) (int, error)
	CountAssigned(ctx context.Context) (int, error)
	UpdateTeam(ctx context.Context, playerID string, teamID *string) error
	ClearAllTeams(ctx context.Context) error
	Create(ctx context.Context, item Player) error
}
