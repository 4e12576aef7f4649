package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/pennantrace/sandlot/internal/domain/team"
)

type TeamRepository struct {
	s    *Store
	inTx bool
}

func (r *TeamRepository) GetByID(_ context.Context, id string) (team.Team, bool, error) {
	defer r.s.readLock(r.inTx)()
	item, ok := r.s.data.teams[id]
	return item, ok, nil
}

func (r *TeamRepository) GetByOwner(_ context.Context, ownerUserID string) (team.Team, bool, error) {
	defer r.s.readLock(r.inTx)()
	for _, item := range r.s.data.teams {
		if item.OwnerUserID != nil && *item.OwnerUserID == ownerUserID {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	defer r.s.readLock(r.inTx)()
	out := make([]team.Team, 0, len(r.s.data.teams))
	for _, item := range r.s.data.teams {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	defer r.s.writeLock(r.inTx)()
	if _, ok := r.s.data.teams[item.ID]; !ok {
		return fmt.Errorf("team %s does not exist", item.ID)
	}
	r.s.data.teams[item.ID] = item
	return nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	defer r.s.writeLock(r.inTx)()
	if _, ok := r.s.data.teams[item.ID]; ok {
		return fmt.Errorf("team %s already exists", item.ID)
	}
	r.s.data.teams[item.ID] = item
	return nil
}
