package memory

import (
	"context"
	"sort"

	"github.com/pennantrace/sandlot/internal/domain/lineup"
)

type LineupRepository struct {
	s    *Store
	inTx bool
}

func (r *LineupRepository) ListByTeam(_ context.Context, teamID string) ([]lineup.Entry, error) {
	defer r.s.readLock(r.inTx)()
	out := make([]lineup.Entry, 0)
	for playerID, entry := range r.s.data.entries {
		p, ok := r.s.data.players[playerID]
		if !ok || p.TeamID == nil || *p.TeamID != teamID {
			continue
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out, nil
}

func (r *LineupRepository) GetByPlayer(_ context.Context, playerID string) (lineup.Entry, bool, error) {
	defer r.s.readLock(r.inTx)()
	entry, ok := r.s.data.entries[playerID]
	return entry, ok, nil
}

func (r *LineupRepository) ReplaceForTeam(_ context.Context, teamID string, entries []lineup.Entry) error {
	defer r.s.writeLock(r.inTx)()
	for playerID := range r.s.data.entries {
		p, ok := r.s.data.players[playerID]
		if ok && p.TeamID != nil && *p.TeamID == teamID {
			delete(r.s.data.entries, playerID)
		}
	}
	for _, entry := range entries {
		r.s.data.entries[entry.PlayerID] = entry
	}
	return nil
}

func (r *LineupRepository) UpdateStarred(_ context.Context, playerID string, starred bool) error {
	defer r.s.writeLock(r.inTx)()
	entry, ok := r.s.data.entries[playerID]
	if !ok {
		entry = lineup.Entry{PlayerID: playerID}
	}
	entry.IsStarred = starred
	r.s.data.entries[playerID] = entry
	return nil
}

func (r *LineupRepository) DeleteByPlayer(_ context.Context, playerID string) error {
	defer r.s.writeLock(r.inTx)()
	delete(r.s.data.entries, playerID)
	return nil
}

func (r *LineupRepository) DeleteAll(_ context.Context) error {
	defer r.s.writeLock(r.inTx)()
	r.s.data.entries = make(map[string]lineup.Entry)
	return nil
}
