package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/pennantrace/sandlot/internal/domain/conference"
	"github.com/pennantrace/sandlot/internal/domain/store"
	"github.com/pennantrace/sandlot/internal/domain/team"
	"github.com/pennantrace/sandlot/internal/domain/user"
)

// TeamService manages team ownership, identity, and roster housekeeping.
type TeamService struct {
	store          store.Atomic
	teamRepo       team.Repository
	conferenceRepo conference.Repository
	logger         *slog.Logger
	shuffle        func(n int, swap func(i, j int))
}

func NewTeamService(
	st store.Atomic,
	teamRepo team.Repository,
	conferenceRepo conference.Repository,
	logger *slog.Logger,
) *TeamService {
	if logger == nil {
		logger = slog.Default()
	}

	return &TeamService{
		store:          st,
		teamRepo:       teamRepo,
		conferenceRepo: conferenceRepo,
		logger:         logger,
		shuffle:        rand.Shuffle,
	}
}

// List returns every team.
func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

// Claim gives an unowned team to the calling user. A user may own at most
// one team.
func (s *TeamService) Claim(ctx context.Context, principal user.Principal, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Claim")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	var claimed team.Team
	err := s.store.RunAtomic(ctx, func(tx store.Tx) error {
		_, alreadyOwns, err := tx.Teams().GetByOwner(ctx, principal.UserID)
		if err != nil {
			return fmt.Errorf("get team by owner: %w", err)
		}
		if alreadyOwns {
			return fmt.Errorf("%w: user %s already owns a team", ErrInvalidInput, principal.UserID)
		}

		item, exists, err := tx.Teams().GetByID(ctx, teamID)
		if err != nil {
			return fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
		if item.OwnerUserID != nil {
			return fmt.Errorf("%w: team %s is already owned", ErrInvalidInput, teamID)
		}

		ownerID := principal.UserID
		item.OwnerUserID = &ownerID
		if err := tx.Teams().Update(ctx, item); err != nil {
			return fmt.Errorf("update team: %w", err)
		}

		claimed = item
		return nil
	})
	if err != nil {
		return team.Team{}, err
	}

	return claimed, nil
}

// AssignRandomTeams pairs every teamless user with an unowned team at
// random, all in one transaction. Admin only.
func (s *TeamService) AssignRandomTeams(ctx context.Context, principal user.Principal) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.AssignRandomTeams")
	defer span.End()

	if !principal.IsAdmin() {
		return 0, fmt.Errorf("%w: random team assignment requires admin role", ErrForbidden)
	}

	assigned := 0
	err := s.store.RunAtomic(ctx, func(tx store.Tx) error {
		users, err := tx.Users().List(ctx)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		teams, err := tx.Teams().List(ctx)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}

		ownedBy := make(map[string]struct{})
		open := make([]team.Team, 0, len(teams))
		for _, item := range teams {
			if item.OwnerUserID != nil {
				ownedBy[*item.OwnerUserID] = struct{}{}
			} else {
				open = append(open, item)
			}
		}

		waiting := make([]user.User, 0, len(users))
		for _, item := range users {
			if _, owns := ownedBy[item.ID]; !owns {
				waiting = append(waiting, item)
			}
		}

		s.shuffle(len(open), func(i, j int) {
			open[i], open[j] = open[j], open[i]
		})

		for i, item := range waiting {
			if i >= len(open) {
				break
			}
			ownerID := item.ID
			open[i].OwnerUserID = &ownerID
			if err := tx.Teams().Update(ctx, open[i]); err != nil {
				return fmt.Errorf("assign team %s: %w", open[i].ID, err)
			}
			assigned++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return assigned, nil
}

// Rename updates a team's name and abbreviation. Owner or admin.
func (s *TeamService) Rename(ctx context.Context, principal user.Principal, teamID, name, abbreviation string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Rename")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	name = strings.TrimSpace(name)
	abbreviation = strings.TrimSpace(abbreviation)
	if teamID == "" || name == "" || abbreviation == "" {
		return team.Team{}, fmt.Errorf("%w: team_id, name, and abbreviation are required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	if err := requireTeamAccess(principal, item); err != nil {
		return team.Team{}, err
	}

	item.Name = name
	item.Abbreviation = abbreviation
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}

	return item, nil
}

// SetCaptain assigns or clears the team captain. The captain must be a
// player currently on the team.
func (s *TeamService) SetCaptain(ctx context.Context, principal user.Principal, teamID string, captainID *string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.SetCaptain")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	var updated team.Team
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

		if captainID != nil {
			target, exists, err := tx.Players().GetByID(ctx, *captainID)
			if err != nil {
				return fmt.Errorf("get player: %w", err)
			}
			if !exists || target.TeamID == nil || *target.TeamID != teamID {
				return fmt.Errorf("%w: captain must be a player on team %s", ErrInvalidInput, teamID)
			}
		}

		item.CaptainID = captainID
		if err := tx.Teams().Update(ctx, item); err != nil {
			return fmt.Errorf("update team: %w", err)
		}

		updated = item
		return nil
	})
	if err != nil {
		return team.Team{}, err
	}

	return updated, nil
}

// RemovePlayer releases a player from the team back to free agency and
// prunes the player's lineup entry in the same transaction.
func (s *TeamService) RemovePlayer(ctx context.Context, principal user.Principal, teamID, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.RemovePlayer")
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

		if err := tx.Players().UpdateTeam(ctx, playerID, nil); err != nil {
			return fmt.Errorf("release player: %w", err)
		}
		if err := tx.Lineups().DeleteByPlayer(ctx, playerID); err != nil {
			return fmt.Errorf("prune lineup entry: %w", err)
		}

		if item.CaptainID != nil && *item.CaptainID == playerID {
			item.CaptainID = nil
			if err := tx.Teams().Update(ctx, item); err != nil {
				return fmt.Errorf("clear captain: %w", err)
			}
		}

		return nil
	})
}

// SetConference places a team into a conference. Admin only.
func (s *TeamService) SetConference(ctx context.Context, principal user.Principal, teamID string, conferenceID *string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.SetConference")
	defer span.End()

	if !principal.IsAdmin() {
		return team.Team{}, fmt.Errorf("%w: conference management requires admin role", ErrForbidden)
	}

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	if conferenceID != nil {
		_, exists, err := s.conferenceRepo.GetByID(ctx, *conferenceID)
		if err != nil {
			return team.Team{}, fmt.Errorf("get conference: %w", err)
		}
		if !exists {
			return team.Team{}, fmt.Errorf("%w: conference=%s", ErrNotFound, *conferenceID)
		}
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	item.ConferenceID = conferenceID
	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}

	return item, nil
}

// ListConferences returns every conference.
func (s *TeamService) ListConferences(ctx context.Context) ([]conference.Conference, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListConferences")
	defer span.End()

	items, err := s.conferenceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conferences: %w", err)
	}
	return items, nil
}

// CreateConference registers a new conference. Admin only.
func (s *TeamService) CreateConference(ctx context.Context, principal user.Principal, item conference.Conference) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateConference")
	defer span.End()

	if !principal.IsAdmin() {
		return fmt.Errorf("%w: conference management requires admin role", ErrForbidden)
	}
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.conferenceRepo.Create(ctx, item); err != nil {
		return fmt.Errorf("create conference: %w", err)
	}

	return nil
}
