package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pennantrace/sandlot/internal/domain/lineup"
	"github.com/pennantrace/sandlot/internal/domain/player"
	"github.com/pennantrace/sandlot/internal/domain/season"
	"github.com/pennantrace/sandlot/internal/domain/store"
	"github.com/pennantrace/sandlot/internal/domain/team"
	"github.com/pennantrace/sandlot/internal/domain/user"
)

// Store wires the repositories to one database handle and runs multi-step
// mutations in serializable transactions so every validation read sees the
// state the write will commit against.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Seasons() *SeasonRepository         { return &SeasonRepository{q: s.db} }
func (s *Store) Teams() *TeamRepository             { return &TeamRepository{q: s.db} }
func (s *Store) Players() *PlayerRepository         { return &PlayerRepository{q: s.db} }
func (s *Store) Lineups() *LineupRepository         { return &LineupRepository{q: s.db} }
func (s *Store) Users() *UserRepository             { return &UserRepository{q: s.db} }
func (s *Store) Matches() *MatchRepository          { return &MatchRepository{q: s.db} }
func (s *Store) Stats() *StatsRepository            { return &StatsRepository{q: s.db} }
func (s *Store) Conferences() *ConferenceRepository { return &ConferenceRepository{q: s.db} }

func (s *Store) RunAtomic(ctx context.Context, fn func(tx store.Tx) error) error {
	dbTx, err := s.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(&txView{tx: dbTx}); err != nil {
		if rbErr := dbTx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback after %w: %v", err, rbErr)
		}
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

type txView struct {
	tx *sqlx.Tx
}

func (t *txView) Seasons() season.Repository { return &SeasonRepository{q: t.tx} }
func (t *txView) Teams() team.Repository     { return &TeamRepository{q: t.tx} }
func (t *txView) Players() player.Repository { return &PlayerRepository{q: t.tx} }
func (t *txView) Lineups() lineup.Repository { return &LineupRepository{q: t.tx} }
func (t *txView) Users() user.Repository     { return &UserRepository{q: t.tx} }
