package memory

import (
	"context"
	"sync"

	"github.com/pennantrace/sandlot/internal/domain/conference"
	"github.com/pennantrace/sandlot/internal/domain/lineup"
	"github.com/pennantrace/sandlot/internal/domain/match"
	"github.com/pennantrace/sandlot/internal/domain/player"
	"github.com/pennantrace/sandlot/internal/domain/season"
	"github.com/pennantrace/sandlot/internal/domain/stats"
	"github.com/pennantrace/sandlot/internal/domain/store"
	"github.com/pennantrace/sandlot/internal/domain/team"
	"github.com/pennantrace/sandlot/internal/domain/user"
)

// Store keeps every entity in process memory behind one lock. RunAtomic
// serializes writers, which gives tests the same atomicity and
// re-validation guarantees the postgres store gets from transactions.
type Store struct {
	mu   sync.RWMutex
	data *data
}

type data struct {
	seasonRow   season.Season
	turnOrder   []season.TurnOrder
	users       map[string]user.User
	teams       map[string]team.Team
	players     map[string]player.Player
	entries     map[string]lineup.Entry
	matches     map[string]match.Match
	matchDays   map[string]match.MatchDay
	statLines   map[string]stats.MatchPlayerStat
	conferences map[string]conference.Conference
}

func NewStore() *Store {
	return &Store{
		data: &data{
			seasonRow:   season.Season{ID: season.SingletonID, State: season.StatePreSeason},
			users:       make(map[string]user.User),
			teams:       make(map[string]team.Team),
			players:     make(map[string]player.Player),
			entries:     make(map[string]lineup.Entry),
			matches:     make(map[string]match.Match),
			matchDays:   make(map[string]match.MatchDay),
			statLines:   make(map[string]stats.MatchPlayerStat),
			conferences: make(map[string]conference.Conference),
		},
	}
}

// RunAtomic takes the write lock for the whole callback and restores a
// snapshot if the callback fails, so a failed operation leaves no partial
// state behind.
func (s *Store) RunAtomic(_ context.Context, fn func(tx store.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(&txView{s: s}); err != nil {
		s.data = snapshot
		return err
	}

	return nil
}

func (s *Store) Seasons() *SeasonRepository   { return &SeasonRepository{s: s} }
func (s *Store) Teams() *TeamRepository       { return &TeamRepository{s: s} }
func (s *Store) Players() *PlayerRepository   { return &PlayerRepository{s: s} }
func (s *Store) Lineups() *LineupRepository   { return &LineupRepository{s: s} }
func (s *Store) Users() *UserRepository       { return &UserRepository{s: s} }
func (s *Store) Matches() *MatchRepository    { return &MatchRepository{s: s} }
func (s *Store) Stats() *StatsRepository      { return &StatsRepository{s: s} }
func (s *Store) Conferences() *ConferenceRepo { return &ConferenceRepo{s: s} }

// txView hands out repositories that skip locking: RunAtomic already holds
// the write lock.
type txView struct {
	s *Store
}

func (t *txView) Seasons() season.Repository { return &SeasonRepository{s: t.s, inTx: true} }
func (t *txView) Teams() team.Repository     { return &TeamRepository{s: t.s, inTx: true} }
func (t *txView) Players() player.Repository { return &PlayerRepository{s: t.s, inTx: true} }
func (t *txView) Lineups() lineup.Repository { return &LineupRepository{s: t.s, inTx: true} }
func (t *txView) Users() user.Repository     { return &UserRepository{s: t.s, inTx: true} }

func (s *Store) readLock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Store) writeLock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (d *data) clone() *data {
	copied := &data{
		seasonRow:   d.seasonRow,
		turnOrder:   append([]season.TurnOrder(nil), d.turnOrder...),
		users:       make(map[string]user.User, len(d.users)),
		teams:       make(map[string]team.Team, len(d.teams)),
		players:     make(map[string]player.Player, len(d.players)),
		entries:     make(map[string]lineup.Entry, len(d.entries)),
		matches:     make(map[string]match.Match, len(d.matches)),
		matchDays:   make(map[string]match.MatchDay, len(d.matchDays)),
		statLines:   make(map[string]stats.MatchPlayerStat, len(d.statLines)),
		conferences: make(map[string]conference.Conference, len(d.conferences)),
	}
	for k, v := range d.users {
		copied.users[k] = v
	}
	for k, v := range d.teams {
		copied.teams[k] = v
	}
	for k, v := range d.players {
		copied.players[k] = v
	}
	for k, v := range d.entries {
		copied.entries[k] = v
	}
	for k, v := range d.matches {
		copied.matches[k] = v
	}
	for k, v := range d.matchDays {
		copied.matchDays[k] = v
	}
	for k, v := range d.statLines {
		copied.statLines[k] = v
	}
	for k, v := range d.conferences {
		copied.conferences[k] = v
	}
	return copied
}
