package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pennantrace/sandlot/internal/domain/season"
	"github.com/pennantrace/sandlot/internal/domain/store"
	"github.com/pennantrace/sandlot/internal/domain/user"
)

// SeasonService orchestrates the global season phase and the one-time side
// effects of its transitions.
type SeasonService struct {
	store      store.Atomic
	seasonRepo season.Repository
	notifier   Notifier
	announcer  Announcer
	logger     *slog.Logger
	shuffle    func(n int, swap func(i, j int))
}

func NewSeasonService(
	st store.Atomic,
	seasonRepo season.Repository,
	notifier Notifier,
	announcer Announcer,
	logger *slog.Logger,
) *SeasonService {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if announcer == nil {
		announcer = NopAnnouncer{}
	}

	return &SeasonService{
		store:      st,
		seasonRepo: seasonRepo,
		notifier:   notifier,
		announcer:  announcer,
		logger:     logger,
		shuffle:    rand.Shuffle,
	}
}

// Get reads the singleton season row.
func (s *SeasonService) Get(ctx context.Context) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Get")
	defer span.End()

	current, err := s.seasonRepo.Get(ctx)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	return current, nil
}

// SetState moves the season to the target state. Only two edges carry side
// effects, both executed in the same transaction as the state write:
//
//	pre-season → drafting: wipe all lineup entries, release every player,
//	reseed the draft turn order, and point the turn at drafting turn 1.
//	drafting → playing: clear the current drafter.
//
// Any other transition, including admin overrides, just writes the state.
func (s *SeasonService) SetState(ctx context.Context, principal user.Principal, target season.State) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.SetState")
	defer span.End()

	if !principal.IsAdmin() {
		return season.Season{}, fmt.Errorf("%w: season transitions require admin role", ErrForbidden)
	}
	if _, ok := season.AllStates[target]; !ok {
		return season.Season{}, fmt.Errorf("%w: unknown season state %s", ErrInvalidInput, target)
	}

	var updated season.Season
	err := s.store.RunAtomic(ctx, func(tx store.Tx) error {
		current, err := tx.Seasons().Get(ctx)
		if err != nil {
			return fmt.Errorf("get season: %w", err)
		}

		switch {
		case current.State == season.StatePreSeason && target == season.StateDrafting:
			if err := s.startDrafting(ctx, tx, &current); err != nil {
				return err
			}
		case current.State == season.StateDrafting && target == season.StatePlaying:
			current.CurrentDraftingUserID = nil
		}

		current.State = target
		if err := tx.Seasons().Update(ctx, current); err != nil {
			return fmt.Errorf("update season: %w", err)
		}

		updated = current
		return nil
	})
	if err != nil {
		return season.Season{}, err
	}

	s.notifier.Publish(ctx, Event{Type: EventSeasonUpdate, Payload: map[string]any{"state": string(updated.State)}})
	s.announcer.Announce(ctx, fmt.Sprintf("The season moved to the %s phase", updated.State))

	return updated, nil
}

// startDrafting wipes rosters and seeds the draft inside the caller's
// transaction so a crash cannot leave the roster wiped with the state
// unchanged, or the reverse.
func (s *SeasonService) startDrafting(ctx context.Context, tx store.Tx, current *season.Season) error {
	if err := tx.Lineups().DeleteAll(ctx); err != nil {
		return fmt.Errorf("wipe lineup entries: %w", err)
	}
	if err := tx.Players().ClearAllTeams(ctx); err != nil {
		return fmt.Errorf("release players: %w", err)
	}

	participants, err := draftParticipants(ctx, tx.Teams())
	if err != nil {
		return err
	}
	if len(participants) == 0 {
		return fmt.Errorf("%w: no users own a team", ErrInvalidInput)
	}

	s.shuffle(len(participants), func(i, j int) {
		participants[i], participants[j] = participants[j], participants[i]
	})

	order := make([]season.TurnOrder, 0, len(participants))
	for i, userID := range participants {
		order = append(order, season.TurnOrder{UserID: userID, DraftingTurn: i + 1})
	}
	if err := tx.Seasons().ReplaceTurnOrder(ctx, order); err != nil {
		return fmt.Errorf("seed draft turn order: %w", err)
	}

	first := order[0].UserID
	current.CurrentDraftingUserID = &first
	return nil
}
