package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pennantrace/sandlot/internal/domain/stats"
	qb "github.com/pennantrace/sandlot/internal/platform/querybuilder"
)

type statLineTableModel struct {
	MatchID              string `db:"match_id"`
	PlayerID             string `db:"player_id"`
	PlateAppearances     int    `db:"plate_appearances"`
	Hits                 int    `db:"hits"`
	HomeRuns             int    `db:"home_runs"`
	Outs                 int    `db:"outs"`
	RunsBattedIn         int    `db:"runs_batted_in"`
	InningsPitched       int    `db:"innings_pitched"`
	InningsPitchedThirds int    `db:"innings_pitched_thirds"`
	Strikeouts           int    `db:"strikeouts"`
	EarnedRuns           int    `db:"earned_runs"`
	Putouts              int    `db:"putouts"`
	Assists              int    `db:"assists"`
	DoublePlays          int    `db:"double_plays"`
	TriplePlays          int    `db:"triple_plays"`
	FieldingErrors       int    `db:"fielding_errors"`
}

func (m statLineTableModel) toDomain() stats.MatchPlayerStat {
	return stats.MatchPlayerStat{
		MatchID:              m.MatchID,
		PlayerID:             m.PlayerID,
		PlateAppearances:     m.PlateAppearances,
		Hits:                 m.Hits,
		HomeRuns:             m.HomeRuns,
		Outs:                 m.Outs,
		RunsBattedIn:         m.RunsBattedIn,
		InningsPitched:       m.InningsPitched,
		InningsPitchedThirds: m.InningsPitchedThirds,
		Strikeouts:           m.Strikeouts,
		EarnedRuns:           m.EarnedRuns,
		Putouts:              m.Putouts,
		Assists:              m.Assists,
		DoublePlays:          m.DoublePlays,
		TriplePlays:          m.TriplePlays,
		FieldingErrors:       m.FieldingErrors,
	}
}

type StatsRepository struct {
	q queryer
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{q: db}
}

func (r *StatsRepository) List(ctx context.Context) ([]stats.MatchPlayerStat, error) {
	query, args, err := qb.Select("*").From("match_player_stats").
		OrderBy("match_id", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list stat lines query: %w", err)
	}
	return r.selectLines(ctx, query, args)
}

func (r *StatsRepository) ListByMatch(ctx context.Context, matchID string) ([]stats.MatchPlayerStat, error) {
	query, args, err := qb.Select("*").From("match_player_stats").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list stat lines by match query: %w", err)
	}
	return r.selectLines(ctx, query, args)
}

func (r *StatsRepository) Upsert(ctx context.Context, line stats.MatchPlayerStat) error {
	query, args, err := qb.InsertInto("match_player_stats").
		Columns(
			"match_id", "player_id", "plate_appearances", "hits", "home_runs",
			"outs", "runs_batted_in", "innings_pitched", "innings_pitched_thirds",
			"strikeouts", "earned_runs", "putouts", "assists", "double_plays",
			"triple_plays", "fielding_errors",
		).
		Values(
			line.MatchID, line.PlayerID, line.PlateAppearances, line.Hits, line.HomeRuns,
			line.Outs, line.RunsBattedIn, line.InningsPitched, line.InningsPitchedThirds,
			line.Strikeouts, line.EarnedRuns, line.Putouts, line.Assists, line.DoublePlays,
			line.TriplePlays, line.FieldingErrors,
		).
		Suffix(`ON CONFLICT (match_id, player_id) DO UPDATE SET
			plate_appearances = EXCLUDED.plate_appearances,
			hits = EXCLUDED.hits,
			home_runs = EXCLUDED.home_runs,
			outs = EXCLUDED.outs,
			runs_batted_in = EXCLUDED.runs_batted_in,
			innings_pitched = EXCLUDED.innings_pitched,
			innings_pitched_thirds = EXCLUDED.innings_pitched_thirds,
			strikeouts = EXCLUDED.strikeouts,
			earned_runs = EXCLUDED.earned_runs,
			putouts = EXCLUDED.putouts,
			assists = EXCLUDED.assists,
			double_plays = EXCLUDED.double_plays,
			triple_plays = EXCLUDED.triple_plays,
			fielding_errors = EXCLUDED.fielding_errors`).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert stat line query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert stat line: %w", err)
	}
	return nil
}

func (r *StatsRepository) selectLines(ctx context.Context, query string, args []any) ([]stats.MatchPlayerStat, error) {
	var rows []statLineTableModel
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select stat lines: %w", err)
	}

	out := make([]stats.MatchPlayerStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
