package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/pennantrace/sandlot/internal/domain/conference"
)

type ConferenceRepo struct {
	s    *Store
	inTx bool
}

func (r *ConferenceRepo) GetByID(_ context.Context, id string) (conference.Conference, bool, error) {
	defer r.s.readLock(r.inTx)()
	c, ok := r.s.data.conferences[id]
	return c, ok, nil
}

func (r *ConferenceRepo) List(_ context.Context) ([]conference.Conference, error) {
	defer r.s.readLock(r.inTx)()
	out := make([]conference.Conference, 0, len(r.s.data.conferences))
	for _, c := range r.s.data.conferences {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ConferenceRepo) Create(_ context.Context, c conference.Conference) error {
	defer r.s.writeLock(r.inTx)()
	if _, ok := r.s.data.conferences[c.ID]; ok {
		return fmt.Errorf("conference %s already exists", c.ID)
	}
	r.s.data.conferences[c.ID] = c
	return nil
}
