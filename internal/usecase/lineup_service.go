package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pennantrace/sandlot/internal/domain/lineup"
	"github.com/pennantrace/sandlot/internal/domain/player"
	"github.com/pennantrace/sandlot/internal/domain/store"
	"github.com/pennantrace/sandlot/internal/domain/team"
	"github.com/pennantrace/sandlot/internal/domain/user"
)

// LineupEntryInput is one proposed roster slot in a lineup save.
type LineupEntryInput struct {
	PlayerID         string
	FieldingPosition *player.FieldingPosition
	BattingOrder     *int
}

// LineupService validates and applies team lineups.
type LineupService struct {
	store      store.Atomic
	teamRepo   team.Repository
	lineupRepo lineup.Repository
	notifier   Notifier
	logger     *slog.Logger
}

func NewLineupService(
	st store.Atomic,
	teamRepo team.Repository,
	lineupRepo lineup.Repository,
	notifier Notifier,
	logger *slog.Logger,
) *LineupService {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}

	return &LineupService{
		store:      st,
		teamRepo:   teamRepo,
		lineupRepo: lineupRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// GetByTeam returns the stored lineup entries for a team.
func (s *LineupService) GetByTeam(ctx context.Context, teamID string) ([]lineup.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.GetByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	entries, err := s.lineupRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list lineup entries: %w", err)
	}

	return entries, nil
}

// Save validates the proposed lineup against the roster rules and replaces
// the team's lineup rows wholesale in one transaction. Each player's
// starred flag survives the replacement; star status is edited through
// SetStarred, never through a lineup save.
func (s *LineupService) Save(ctx context.Context, principal user.Principal, teamID string, entries []LineupEntryInput) ([]lineup.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Save")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	var saved []lineup.Entry
	err := s.store.RunAtomic(ctx, func(tx store.Tx) error {
		item, exists, err := tx.Teams().GetByID(ctx, teamID)
		if err != nil {
			return fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
		if err := requireTeamAccess(principal, item); err != nil {
			return err
		}

		roster, err := tx.Players().ListByTeam(ctx, teamID)
		if err != nil {
			return fmt.Errorf("list roster: %w", err)
		}
		rosterIDs := make(map[string]struct{}, len(roster))
		for _, p := range roster {
			rosterIDs[p.ID] = struct{}{}
		}

		captainID := ""
		if item.CaptainID != nil {
			captainID = *item.CaptainID
		}

		proposed := make([]lineup.Entry, 0, len(entries))
		for _, input := range entries {
			proposed = append(proposed, lineup.Entry{
				PlayerID:         strings.TrimSpace(input.PlayerID),
				FieldingPosition: input.FieldingPosition,
				BattingOrder:     input.BattingOrder,
			})
		}

		if err := lineup.Validate(proposed, rosterIDs, captainID); err != nil {
			return err
		}

		existing, err := tx.Lineups().ListByTeam(ctx, teamID)
		if err != nil {
			return fmt.Errorf("list existing lineup entries: %w", err)
		}
		starredByPlayer := make(map[string]bool, len(existing))
		for _, entry := range existing {
			starredByPlayer[entry.PlayerID] = entry.IsStarred
		}
		for i := range proposed {
			proposed[i].IsStarred = starredByPlayer[proposed[i].PlayerID]
		}

		if err := tx.Lineups().ReplaceForTeam(ctx, teamID, proposed); err != nil {
			return fmt.Errorf("replace lineup entries: %w", err)
		}

		saved = proposed
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(ctx, Event{Type: EventLineupUpdate, Payload: map[string]any{"teamId": teamID}})

	return saved, nil
}

// SetStarred marks one player on the team as starred, clearing any other
// starred player so a team never has more than one star.
func (s *LineupService) SetStarred(ctx context.Context, principal user.Principal, teamID, playerID string, starred bool) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.SetStarred")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	playerID = strings.TrimSpace(playerID)
	if teamID == "" || playerID == "" {
		return fmt.Errorf("%w: team_id and player_id are required", ErrInvalidInput)
	}

	return s.store.RunAtomic(ctx, func(tx store.Tx) error {
		item, exists, err := tx.Teams().GetByID(ctx, teamID)
		if err != nil {
			return fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
		if err := requireTeamAccess(principal, item); err != nil {
			return err
		}

		target, exists, err := tx.Players().GetByID(ctx, playerID)
		if err != nil {
			return fmt.Errorf("get player: %w", err)
		}
		if !exists || target.TeamID == nil || *target.TeamID != teamID {
			return fmt.Errorf("%w: player %s is not on team %s", ErrInvalidInput, playerID, teamID)
		}

		if starred {
			entries, err := tx.Lineups().ListByTeam(ctx, teamID)
			if err != nil {
				return fmt.Errorf("list lineup entries: %w", err)
			}
			for _, entry := range entries {
				if entry.IsStarred && entry.PlayerID != playerID {
					if err := tx.Lineups().UpdateStarred(ctx, entry.PlayerID, false); err != nil {
						return fmt.Errorf("clear starred player: %w", err)
					}
				}
			}
		}

		if err := tx.Lineups().UpdateStarred(ctx, playerID, starred); err != nil {
			return fmt.Errorf("update starred flag: %w", err)
		}

		return nil
	})
}

func requireTeamAccess(principal user.Principal, item team.Team) error {
	if principal.IsAdmin() {
		return nil
	}
	if item.OwnerUserID != nil && *item.OwnerUserID == principal.UserID {
		return nil
	}
	return fmt.Errorf("%w: user %s does not control team %s", ErrForbidden, principal.UserID, item.ID)
}
