package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/pennantrace/sandlot/internal/domain/user"
)

type UserRepository struct {
	s    *Store
	inTx bool
}

func (r *UserRepository) GetByID(_ context.Context, id string) (user.User, bool, error) {
	defer r.s.readLock(r.inTx)()
	u, ok := r.s.data.users[id]
	return u, ok, nil
}

func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	defer r.s.readLock(r.inTx)()
	out := make([]user.User, 0, len(r.s.data.users))
	for _, u := range r.s.data.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRepository) Create(_ context.Context, u user.User) error {
	defer r.s.writeLock(r.inTx)()
	if _, ok := r.s.data.users[u.ID]; ok {
		return fmt.Errorf("user %s already exists", u.ID)
	}
	r.s.data.users[u.ID] = u
	return nil
}
