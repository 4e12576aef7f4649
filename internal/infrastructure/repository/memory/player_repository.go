package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/pennantrace/sandlot/internal/domain/player"
)

type PlayerRepository struct {
	s    *Store
	inTx bool
}

func (r *PlayerRepository) GetByID(_ context.Context, id string) (player.Player, bool, error) {
	defer r.s.readLock(r.inTx)()
	item, ok := r.s.data.players[id]
	return item, ok, nil
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	defer r.s.readLock(r.inTx)()
	out := make([]player.Player, 0, len(r.s.data.players))
	for _, item := range r.s.data.players {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	defer r.s.readLock(r.inTx)()
	out := make([]player.Player, 0)
	for _, item := range r.s.data.players {
		if item.TeamID != nil && *item.TeamID == teamID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PlayerRepository) CountByTeam(_ context.Context, teamID string) (int, error) {
	defer r.s.readLock(r.inTx)()
	count := 0
	for _, item := range r.s.data.players {
		if item.TeamID != nil && *item.TeamID == teamID {
			count++
		}
	}
	return count, nil
}

func (r *PlayerRepository) CountAssigned(_ context.Context) (int, error) {
	defer r.s.readLock(r.inTx)()
	count := 0
	for _, item := range r.s.data.players {
		if item.TeamID != nil {
			count++
		}
	}
	return count, nil
}

func (r *PlayerRepository) UpdateTeam(_ context.Context, playerID string, teamID *string) error {
	defer r.s.writeLock(r.inTx)()
	item, ok := r.s.data.players[playerID]
	if !ok {
		return fmt.Errorf("player %s does not exist", playerID)
	}
	item.TeamID = teamID
	r.s.data.players[playerID] = item
	return nil
}

func (r *PlayerRepository) ClearAllTeams(_ context.Context) error {
	defer r.s.writeLock(r.inTx)()
	for id, item := range r.s.data.players {
		item.TeamID = nil
		r.s.data.players[id] = item
	}
	return nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) error {
	defer r.s.writeLock(r.inTx)()
	if _, ok := r.s.data.players[item.ID]; ok {
		return fmt.Errorf("player %s already exists", item.ID)
	}
	r.s.data.players[item.ID] = item
	return nil
}
