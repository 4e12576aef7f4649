package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/pennantrace/sandlot/internal/domain/player"
	"github.com/pennantrace/sandlot/internal/domain/stats"
)

// LeaderboardRow is one player's aggregated line on the leaderboard.
type LeaderboardRow struct {
	PlayerID       string
	PlayerName     string
	Totals         stats.Totals
	HitRatePct     *float64
	InningsPitched string
}

// LeaderboardService derives per-player cumulative and rate statistics from
// persisted per-match stat lines. Pure recomputation on every read.
type LeaderboardService struct {
	statsRepo  stats.Repository
	playerRepo player.Repository
}

func NewLeaderboardService(statsRepo stats.Repository, playerRepo player.Repository) *LeaderboardService {
	return &LeaderboardService{
		statsRepo:  statsRepo,
		playerRepo: playerRepo,
	}
}

// Leaderboard sums every counting stat across all stat lines per player and
// orders by hit rate descending. Players with no plate appearances carry a
// nil rate and sort after every player with a defined one.
func (s *LeaderboardService) Leaderboard(ctx context.Context) ([]LeaderboardRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Leaderboard")
	defer span.End()

	lines, err := s.statsRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stat lines: %w", err)
	}

	totalsByPlayer := make(map[string]*stats.Totals)
	for _, line := range lines {
		totals, ok := totalsByPlayer[line.PlayerID]
		if !ok {
			totals = &stats.Totals{PlayerID: line.PlayerID}
			totalsByPlayer[line.PlayerID] = totals
		}
		totals.Add(line)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	nameByID := make(map[string]string, len(players))
	for _, p := range players {
		nameByID[p.ID] = p.Name
	}

	rows := make([]LeaderboardRow, 0, len(totalsByPlayer))
	for _, totals := range totalsByPlayer {
		rows = append(rows, LeaderboardRow{
			PlayerID:       totals.PlayerID,
			PlayerName:     nameByID[totals.PlayerID],
			Totals:         *totals,
			HitRatePct:     totals.HitRatePct(),
			InningsPitched: totals.InningsPitchedDisplay(),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		left, right := rows[i].HitRatePct, rows[j].HitRatePct
		switch {
		case left == nil && right == nil:
			return false
		case left == nil:
			return false
		case right == nil:
			return true
		default:
			return *left > *right
		}
	})

	return rows, nil
}

// Columns exposes the stat column descriptors in display order.
func (s *LeaderboardService) Columns() []stats.Column {
	return stats.Columns()
}
