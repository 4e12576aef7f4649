package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/pennantrace/sandlot/internal/domain/match"
)

type MatchRepository struct {
	s    *Store
	inTx bool
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	defer r.s.readLock(r.inTx)()
	m, ok := r.s.data.matches[id]
	return m, ok, nil
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	defer r.s.readLock(r.inTx)()
	out := make([]match.Match, 0, len(r.s.data.matches))
	for _, m := range r.s.data.matches {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MatchRepository) ListFinished(_ context.Context) ([]match.Match, error) {
	defer r.s.readLock(r.inTx)()
	out := make([]match.Match, 0)
	for _, m := range r.s.data.matches {
		if m.State == match.StateFinished {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) error {
	defer r.s.writeLock(r.inTx)()
	if _, ok := r.s.data.matches[item.ID]; !ok {
		return fmt.Errorf("match %s does not exist", item.ID)
	}
	r.s.data.matches[item.ID] = item
	return nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	defer r.s.writeLock(r.inTx)()
	if _, ok := r.s.data.matches[item.ID]; ok {
		return fmt.Errorf("match %s already exists", item.ID)
	}
	r.s.data.matches[item.ID] = item
	return nil
}

func (r *MatchRepository) ListMatchDays(_ context.Context) ([]match.MatchDay, error) {
	defer r.s.readLock(r.inTx)()
	out := make([]match.MatchDay, 0, len(r.s.data.matchDays))
	for _, d := range r.s.data.matchDays {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderInSeason < out[j].OrderInSeason })
	return out, nil
}

func (r *MatchRepository) CreateMatchDay(_ context.Context, day match.MatchDay) error {
	defer r.s.writeLock(r.inTx)()
	if _, ok := r.s.data.matchDays[day.ID]; ok {
		return fmt.Errorf("match day %s already exists", day.ID)
	}
	r.s.data.matchDays[day.ID] = day
	return nil
}
