package memory

import (
	"context"
	"sort"

	"github.com/pennantrace/sandlot/internal/domain/stats"
)

type StatsRepository struct {
	s    *Store
	inTx bool
}

func statKey(matchID, playerID string) string {
	return matchID + "::" + playerID
}

func (r *StatsRepository) List(_ context.Context) ([]stats.MatchPlayerStat, error) {
	defer r.s.readLock(r.inTx)()
	out := make([]stats.MatchPlayerStat, 0, len(r.s.data.statLines))
	for _, line := range r.s.data.statLines {
		out = append(out, line)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchID != out[j].MatchID {
			return out[i].MatchID < out[j].MatchID
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out, nil
}

func (r *StatsRepository) ListByMatch(_ context.Context, matchID string) ([]stats.MatchPlayerStat, error) {
	defer r.s.readLock(r.inTx)()
	out := make([]stats.MatchPlayerStat, 0)
	for _, line := range r.s.data.statLines {
		if line.MatchID == matchID {
			out = append(out, line)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out, nil
}

func (r *StatsRepository) Upsert(_ context.Context, line stats.MatchPlayerStat) error {
	defer r.s.writeLock(r.inTx)()
	r.s.data.statLines[statKey(line.MatchID, line.PlayerID)] = line
	return nil
}
