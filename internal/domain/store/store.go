package store

import (
	"context"

	"github.com/pennantrace/sandlot/internal/domain/lineup"
	"github.com/pennantrace/sandlot/internal/domain/player"
	"github.com/pennantrace/sandlot/internal/domain/season"
	"github.com/pennantrace/sandlot/internal/domain/team"
	"github.com/pennantrace/sandlot/internal/domain/user"
)

// Tx exposes repositories bound to one open transaction. Reads through a Tx
// observe the transaction's isolation, which is what lets services re-check
// their guards (current drafter, player assignment, roster size) right
// before mutating.
type Tx interface {
	Seasons() season.Repository
	Teams() team.Repository
	Players() player.Repository
	Lineups() lineup.Repository
	Users() user.Repository
}

// Atomic runs fn inside a single transaction. If fn returns an error the
// transaction rolls back and nothing fn did is visible; otherwise it
// commits. Every multi-row core mutation goes through RunAtomic.
type Atomic interface {
	RunAtomic(ctx context.Context, fn func(tx Tx) error) error
}
