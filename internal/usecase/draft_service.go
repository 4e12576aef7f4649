package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/pennantrace/sandlot/internal/domain/draft"
	"github.com/pennantrace/sandlot/internal/domain/lineup"
	"github.com/pennantrace/sandlot/internal/domain/player"
	"github.com/pennantrace/sandlot/internal/domain/season"
	"github.com/pennantrace/sandlot/internal/domain/store"
	"github.com/pennantrace/sandlot/internal/domain/team"
	"github.com/pennantrace/sandlot/internal/domain/user"
)

// DraftService owns drafting turn progression: whose turn it is, pick
// validation, and atomic pick commit.
type DraftService struct {
	store      store.Atomic
	seasonRepo season.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	notifier   Notifier
	announcer  Announcer
	logger     *slog.Logger
	shuffle    func(n int, swap func(i, j int))
}

func NewDraftService(
	st store.Atomic,
	seasonRepo season.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	notifier Notifier,
	announcer Announcer,
	logger *slog.Logger,
) *DraftService {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if announcer == nil {
		announcer = NopAnnouncer{}
	}

	return &DraftService{
		store:      st,
		seasonRepo: seasonRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		notifier:   notifier,
		announcer:  announcer,
		logger:     logger,
		shuffle:    rand.Shuffle,
	}
}

// DraftUpdatePayload is the notification body emitted after each pick.
type DraftUpdatePayload struct {
	PlayerID      string
	PlayerName    string
	TeamID        string
	NextDrafterID *string
}

// ValidatePick checks whether userID may draft playerID right now. It
// performs no mutation; callers use it to pre-check before committing.
func (s *DraftService) ValidatePick(ctx context.Context, userID, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.ValidatePick")
	defer span.End()

	userID = strings.TrimSpace(userID)
	playerID = strings.TrimSpace(playerID)
	if userID == "" || playerID == "" {
		return fmt.Errorf("%w: user_id and player_id are required", ErrInvalidInput)
	}

	_, err := validateDraftPick(ctx, s.seasonRepo, s.teamRepo, s.playerRepo, userID, playerID)
	return err
}

// DraftPlayer re-validates under the commit transaction, assigns the player
// to the drafter's team, and advances the snake turn. A concurrent pick for
// the same turn or player loses with the same validation error a pre-check
// would have produced; the turn never advances on a failed pick.
func (s *DraftService) DraftPlayer(ctx context.Context, principal user.Principal, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.DraftPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}

	var picked player.Player
	var payload DraftUpdatePayload
	err := s.store.RunAtomic(ctx, func(tx store.Tx) error {
		destination, err := validateDraftPick(ctx, tx.Seasons(), tx.Teams(), tx.Players(), principal.UserID, playerID)
		if err != nil {
			return err
		}

		if err := tx.Players().UpdateTeam(ctx, playerID, &destination.ID); err != nil {
			return fmt.Errorf("assign player to team: %w", err)
		}

		totalPicks, err := tx.Players().CountAssigned(ctx)
		if err != nil {
			return fmt.Errorf("count assigned players: %w", err)
		}

		nextDrafterID, err := nextDrafter(ctx, tx.Seasons(), totalPicks)
		if err != nil {
			return err
		}

		current, err := tx.Seasons().Get(ctx)
		if err != nil {
			return fmt.Errorf("get season: %w", err)
		}
		current.CurrentDraftingUserID = &nextDrafterID
		if err := tx.Seasons().Update(ctx, current); err != nil {
			return fmt.Errorf("advance drafting turn: %w", err)
		}

		item, exists, err := tx.Players().GetByID(ctx, playerID)
		if err != nil {
			return fmt.Errorf("reload drafted player: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}

		picked = item
		payload = DraftUpdatePayload{
			PlayerID:      item.ID,
			PlayerName:    item.Name,
			TeamID:        destination.ID,
			NextDrafterID: &nextDrafterID,
		}
		return nil
	})
	if err != nil {
		return player.Player{}, err
	}

	s.notifier.Publish(ctx, Event{Type: EventDraftUpdate, Payload: payload})
	s.announcer.Announce(ctx, fmt.Sprintf("%s was drafted to team %s", picked.Name, payload.TeamID))

	return picked, nil
}

// ShuffleTurnOrder reseeds DraftTurnOrder 1..N over users that own a team.
// Admin only; allowed while the season has not reached the playing phase.
func (s *DraftService) ShuffleTurnOrder(ctx context.Context, principal user.Principal) ([]season.TurnOrder, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.ShuffleTurnOrder")
	defer span.End()

	if !principal.IsAdmin() {
		return nil, fmt.Errorf("%w: shuffling the draft order requires admin role", ErrForbidden)
	}

	var order []season.TurnOrder
	err := s.store.RunAtomic(ctx, func(tx store.Tx) error {
		current, err := tx.Seasons().Get(ctx)
		if err != nil {
			return fmt.Errorf("get season: %w", err)
		}
		if current.State != season.StatePreSeason && current.State != season.StateDrafting {
			return fmt.Errorf("%w: draft order is settled once the season is playing", ErrInvalidInput)
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

		order = make([]season.TurnOrder, 0, len(participants))
		for i, userID := range participants {
			order = append(order, season.TurnOrder{UserID: userID, DraftingTurn: i + 1})
		}
		if err := tx.Seasons().ReplaceTurnOrder(ctx, order); err != nil {
			return fmt.Errorf("replace draft turn order: %w", err)
		}

		if current.State == season.StateDrafting {
			totalPicks, err := tx.Players().CountAssigned(ctx)
			if err != nil {
				return fmt.Errorf("count assigned players: %w", err)
			}
			nextDrafterID, err := nextDrafter(ctx, tx.Seasons(), totalPicks)
			if err != nil {
				return err
			}
			current.CurrentDraftingUserID = &nextDrafterID
			if err := tx.Seasons().Update(ctx, current); err != nil {
				return fmt.Errorf("reset drafting turn: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// CurrentDrafter returns who picks next, nil outside the drafting phase.
func (s *DraftService) CurrentDrafter(ctx context.Context) (*string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.CurrentDrafter")
	defer span.End()

	current, err := s.seasonRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get season: %w", err)
	}

	return current.CurrentDraftingUserID, nil
}

// ListPlayers returns every player, drafted or not. The draft board reads
// this to show who is still available.
func (s *DraftService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.ListPlayers")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func validateDraftPick(
	ctx context.Context,
	seasons season.Repository,
	teams team.Repository,
	players player.Repository,
	userID, playerID string,
) (team.Team, error) {
	current, err := seasons.Get(ctx)
	if err != nil {
		return team.Team{}, fmt.Errorf("get season: %w", err)
	}
	if current.State != season.StateDrafting {
		return team.Team{}, fmt.Errorf("%w: season state is %s", draft.ErrSeasonNotDrafting, current.State)
	}
	if current.CurrentDraftingUserID == nil || *current.CurrentDraftingUserID != userID {
		return team.Team{}, fmt.Errorf("%w: user=%s", draft.ErrNotYourTurn, userID)
	}

	item, exists, err := players.GetByID(ctx, playerID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: player=%s", draft.ErrPlayerNotFound, playerID)
	}
	if item.TeamID != nil {
		return team.Team{}, fmt.Errorf("%w: player=%s team=%s", draft.ErrPlayerAlreadyAssigned, playerID, *item.TeamID)
	}

	destination, owned, err := teams.GetByOwner(ctx, userID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by owner: %w", err)
	}
	if !owned {
		return team.Team{}, fmt.Errorf("%w: user=%s", draft.ErrNoTeamForUser, userID)
	}

	rosterSize, err := players.CountByTeam(ctx, destination.ID)
	if err != nil {
		return team.Team{}, fmt.Errorf("count roster: %w", err)
	}
	if rosterSize >= lineup.MaxRosterSize {
		return team.Team{}, fmt.Errorf("%w: team=%s size=%d", draft.ErrRosterFull, destination.ID, rosterSize)
	}

	return destination, nil
}

func nextDrafter(ctx context.Context, seasons season.Repository, totalPicksMade int) (string, error) {
	order, err := seasons.ListTurnOrder(ctx)
	if err != nil {
		return "", fmt.Errorf("list draft turn order: %w", err)
	}

	turnByUser := make(map[string]int, len(order))
	for _, row := range order {
		turnByUser[row.UserID] = row.DraftingTurn
	}

	nextID, err := draft.NextDrafter(turnByUser, totalPicksMade)
	if err != nil {
		return "", fmt.Errorf("compute next drafter: %w", err)
	}
	return nextID, nil
}

func draftParticipants(ctx context.Context, teams team.Repository) ([]string, error) {
	items, err := teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	participants := make([]string, 0, len(items))
	for _, item := range items {
		if item.OwnerUserID != nil {
			participants = append(participants, *item.OwnerUserID)
		}
	}
	return participants, nil
}
