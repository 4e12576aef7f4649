package lineup

import "context"

// Repository exposes lineup entry persistence operations. ReplaceForTeam
// swaps every entry belonging to the team's players wholesale; callers run
// it inside the same transaction as any dependent roster change.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Entry, error)
	GetByPlayer(ctx context.Context, playerID string) (Entry, bool, error)
	ReplaceForTeam(ctx context.Context, teamID string, entries []Entry) error
	// UpdateStarred upserts: a player with no entry yet gets a bench entry
	// carrying only the flag.
	UpdateStarred(ctx context.Context, playerID string, starred bool) error
	DeleteByPlayer(ctx context.Context, playerID string) error
	DeleteAll(ctx context.Context) error
}
