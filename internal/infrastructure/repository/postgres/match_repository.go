package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pennantrace/sandlot/internal/domain/match"
	qb "github.com/pennantrace/sandlot/internal/platform/querybuilder"
)

type MatchRepository struct {
	q queryer
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{q: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}
	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) ListFinished(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("state", string(match.StateFinished))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list finished matches query: %w", err)
	}
	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	query, args, err := qb.Update("matches").
		Set("team_a_id", item.TeamAID).
		Set("team_b_id", item.TeamBID).
		Set("match_day_id", ptrToNullString(item.MatchDayID)).
		Set("state", string(item.State)).
		Set("team_a_score", ptrToNullInt64(item.TeamAScore)).
		Set("team_b_score", ptrToNullInt64(item.TeamBScore)).
		Set("order_in_day", item.OrderInDay).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	return nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	query, args, err := qb.InsertInto("matches").
		Columns("id", "team_a_id", "team_b_id", "match_day_id", "state", "team_a_score", "team_b_score", "order_in_day").
		Values(
			item.ID,
			item.TeamAID,
			item.TeamBID,
			ptrToNullString(item.MatchDayID),
			string(item.State),
			ptrToNullInt64(item.TeamAScore),
			ptrToNullInt64(item.TeamBScore),
			item.OrderInDay,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

func (r *MatchRepository) ListMatchDays(ctx context.Context) ([]match.MatchDay, error) {
	query, args, err := qb.Select("*").From("match_days").
		OrderBy("order_in_season").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list match days query: %w", err)
	}

	var rows []matchDayTableModel
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match days: %w", err)
	}

	out := make([]match.MatchDay, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) CreateMatchDay(ctx context.Context, item match.MatchDay) error {
	query, args, err := qb.InsertInto("match_days").
		Columns("id", "name", "date", "order_in_season").
		Values(item.ID, ptrToNullString(item.Name), item.Date, item.OrderInSeason).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert match day query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match day: %w", err)
	}
	return nil
}

func (r *MatchRepository) selectMatches(ctx context.Context, query string, args []any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
