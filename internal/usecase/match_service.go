package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/pennantrace/sandlot/internal/domain/match"
	"github.com/pennantrace/sandlot/internal/domain/player"
	"github.com/pennantrace/sandlot/internal/domain/stats"
	"github.com/pennantrace/sandlot/internal/domain/user"
)

// ScheduleDay is one matchday with its matches in play order.
type ScheduleDay struct {
	Day     match.MatchDay
	Matches []match.Match
}

// MatchService exposes the schedule and records results and stat lines.
type MatchService struct {
	matchRepo  match.Repository
	playerRepo player.Repository
	statsRepo  stats.Repository
	notifier   Notifier
	logger     *slog.Logger
}

func NewMatchService(
	matchRepo match.Repository,
	playerRepo player.Repository,
	statsRepo stats.Repository,
	notifier Notifier,
	logger *slog.Logger,
) *MatchService {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}

	return &MatchService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		statsRepo:  statsRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// Schedule lists matchdays in season order, each with its matches in day
// order. Matches without a matchday are not surfaced.
func (s *MatchService) Schedule(ctx context.Context) ([]ScheduleDay, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Schedule")
	defer span.End()

	days, err := s.matchRepo.ListMatchDays(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matchdays: %w", err)
	}
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	byDay := make(map[string][]match.Match)
	for _, m := range matches {
		if m.MatchDayID == nil {
			continue
		}
		byDay[*m.MatchDayID] = append(byDay[*m.MatchDayID], m)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].OrderInSeason < days[j].OrderInSeason })

	schedule := make([]ScheduleDay, 0, len(days))
	for _, day := range days {
		dayMatches := byDay[day.ID]
		sort.Slice(dayMatches, func(i, j int) bool { return dayMatches[i].OrderInDay < dayMatches[j].OrderInDay })
		schedule = append(schedule, ScheduleDay{Day: day, Matches: dayMatches})
	}

	return schedule, nil
}

// SetResult finishes a match with its final score. Admin only.
func (s *MatchService) SetResult(ctx context.Context, principal user.Principal, matchID string, teamAScore, teamBScore int) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.SetResult")
	defer span.End()

	if !principal.IsAdmin() {
		return match.Match{}, fmt.Errorf("%w: recording results requires admin role", ErrForbidden)
	}

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}
	if teamAScore < 0 || teamBScore < 0 {
		return match.Match{}, fmt.Errorf("%w: scores cannot be negative", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	item.State = match.StateFinished
	item.TeamAScore = &teamAScore
	item.TeamBScore = &teamBScore
	if err := s.matchRepo.Update(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}

	s.notifier.Publish(ctx, Event{Type: EventMatchUpdate, Payload: map[string]any{"matchId": item.ID}})

	return item, nil
}

// RecordStatLine upserts one player's stat line for one match. Admin only.
func (s *MatchService) RecordStatLine(ctx context.Context, principal user.Principal, line stats.MatchPlayerStat) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordStatLine")
	defer span.End()

	if !principal.IsAdmin() {
		return fmt.Errorf("%w: recording stat lines requires admin role", ErrForbidden)
	}
	if err := line.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, line.MatchID)
	if err != nil {
		return fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, line.MatchID)
	}

	ply, exists, err := s.playerRepo.GetByID(ctx, line.PlayerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%s", ErrNotFound, line.PlayerID)
	}
	if ply.TeamID == nil || (*ply.TeamID != item.TeamAID && *ply.TeamID != item.TeamBID) {
		return fmt.Errorf("%w: player %s is not on either team of match %s", ErrInvalidInput, line.PlayerID, line.MatchID)
	}

	if err := s.statsRepo.Upsert(ctx, line); err != nil {
		return fmt.Errorf("upsert stat line: %w", err)
	}

	return nil
}
