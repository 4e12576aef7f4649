package stats

import "context"

// Repository exposes per-match stat line persistence operations.
type Repository interface {
	List(ctx context.Context) ([]MatchPlayerStat, error)
	ListByMatch(ctx context.Context, matchID string) ([]MatchPlayerStat, error)
	Upsert(ctx context.Context, item MatchPlayerStat) error
}
