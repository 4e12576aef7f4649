package memory

import (
	"context"

	"github.com/pennantrace/sandlot/internal/domain/season"
)

type SeasonRepository struct {
	s    *Store
	inTx bool
}

func (r *SeasonRepository) Get(_ context.Context) (season.Season, error) {
	defer r.s.readLock(r.inTx)()
	return r.s.data.seasonRow, nil
}

func (r *SeasonRepository) Update(_ context.Context, item season.Season) error {
	defer r.s.writeLock(r.inTx)()
	item.ID = season.SingletonID
	r.s.data.seasonRow = item
	return nil
}

func (r *SeasonRepository) ListTurnOrder(_ context.Context) ([]season.TurnOrder, error) {
	defer r.s.readLock(r.inTx)()
	return append([]season.TurnOrder(nil), r.s.data.turnOrder...), nil
}

func (r *SeasonRepository) ReplaceTurnOrder(_ context.Context, items []season.TurnOrder) error {
	defer r.s.writeLock(r.inTx)()
	r.s.data.turnOrder = append([]season.TurnOrder(nil), items...)
	return nil
}
