package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/pennantrace/sandlot/internal/domain/match"
	"github.com/pennantrace/sandlot/internal/domain/standings"
	"github.com/pennantrace/sandlot/internal/domain/team"
	"github.com/pennantrace/sandlot/internal/platform/resilience"
)

// StandingsService recomputes the standings table from finished matches on
// every read. Nothing is cached, so there is no second consistency problem
// to manage alongside match writes.
type StandingsService struct {
	matchRepo   match.Repository
	teamRepo    team.Repository
	tableFlight resilience.SingleFlight
}

func NewStandingsService(matchRepo match.Repository, teamRepo team.Repository) *StandingsService {
	return &StandingsService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
	}
}

// Table derives win/loss records, run differentials, and per-matchday
// result cells for every team owner. Concurrent readers share one
// computation in flight.
func (s *StandingsService) Table(ctx context.Context) (standings.Table, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Table")
	defer span.End()

	value, err, _ := s.tableFlight.Do("standings", func() (any, error) {
		return s.computeTable(ctx)
	})
	if err != nil {
		return standings.Table{}, err
	}

	return value.(standings.Table), nil
}

func (s *StandingsService) computeTable(ctx context.Context) (standings.Table, error) {
	finished, err := s.matchRepo.ListFinished(ctx)
	if err != nil {
		return standings.Table{}, fmt.Errorf("list finished matches: %w", err)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return standings.Table{}, fmt.Errorf("list teams: %w", err)
	}
	ownerByTeam := make(map[string]string, len(teams))
	nameByTeam := make(map[string]string, len(teams))
	for _, item := range teams {
		nameByTeam[item.ID] = item.Name
		if item.OwnerUserID != nil {
			ownerByTeam[item.ID] = *item.OwnerUserID
		}
	}

	days, err := s.matchRepo.ListMatchDays(ctx)
	if err != nil {
		return standings.Table{}, fmt.Errorf("list matchdays: %w", err)
	}

	rowByUser := make(map[string]*standings.Row)
	playedDays := make(map[string]struct{})

	for _, m := range finished {
		if !m.IsScored() {
			continue
		}
		if m.MatchDayID != nil {
			playedDays[*m.MatchDayID] = struct{}{}
		}
		recordSide(rowByUser, ownerByTeam, m.TeamAID, *m.TeamAScore, *m.TeamBScore, m.MatchDayID)
		recordSide(rowByUser, ownerByTeam, m.TeamBID, *m.TeamBScore, *m.TeamAScore, m.MatchDayID)
	}

	rows := make([]standings.Row, 0, len(rowByUser))
	for _, row := range rowByUser {
		rows = append(rows, *row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		recordI := rows[i].Wins - rows[i].Losses
		recordJ := rows[j].Wins - rows[j].Losses
		if recordI != recordJ {
			return recordI > recordJ
		}
		if rows[i].RunDifferential != rows[j].RunDifferential {
			return rows[i].RunDifferential > rows[j].RunDifferential
		}
		// Full ties keep a stable table across calls.
		return nameByTeam[rows[i].TeamID] < nameByTeam[rows[j].TeamID]
	})

	sort.Slice(days, func(i, j int) bool { return days[i].OrderInSeason < days[j].OrderInSeason })
	dayIDs := make([]string, 0, len(playedDays))
	for _, day := range days {
		if _, ok := playedDays[day.ID]; ok {
			dayIDs = append(dayIDs, day.ID)
		}
	}

	return standings.Table{Rows: rows, Days: dayIDs}, nil
}

// recordSide attributes one finished match side to its owning user. Sides
// with no owner are skipped. A second finished match for the same user on
// the same matchday overwrites the recorded cell; the schedule assumes at
// most one match per user per matchday.
func recordSide(rowByUser map[string]*standings.Row, ownerByTeam map[string]string, teamID string, ownScore, opponentScore int, matchDayID *string) {
	userID, owned := ownerByTeam[teamID]
	if !owned {
		return
	}

	row, ok := rowByUser[userID]
	if !ok {
		row = &standings.Row{
			UserID:       userID,
			TeamID:       teamID,
			ResultsByDay: make(map[string]standings.DayResult),
		}
		rowByUser[userID] = row
	}

	won := ownScore > opponentScore
	if won {
		row.Wins++
	} else {
		row.Losses++
	}
	row.RunDifferential += ownScore - opponentScore

	if matchDayID != nil {
		row.ResultsByDay[*matchDayID] = standings.DayResult{
			OwnScore:      ownScore,
			OpponentScore: opponentScore,
			Won:           won,
		}
	}
}
