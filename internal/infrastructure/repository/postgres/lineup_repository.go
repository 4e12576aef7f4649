package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pennantrace/sandlot/internal/domain/lineup"
	qb "github.com/pennantrace/sandlot/internal/platform/querybuilder"
)

// LineupRepository stores lineup entries keyed by player. Team membership
// is derived through players.team_id, so releasing a player and pruning the
// entry keeps the lineup table consistent by construction.
type LineupRepository struct {
	q queryer
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{q: db}
}

func (r *LineupRepository) ListByTeam(ctx context.Context, teamID string) ([]lineup.Entry, error) {
	query, args, err := qb.Select("e.player_id", "e.fielding_position", "e.batting_order", "e.is_starred").
		From("lineup_entries e").
		Join("players p ON p.id = e.player_id").
		Where(qb.Eq("p.team_id", teamID)).
		OrderBy("e.player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list lineup entries query: %w", err)
	}

	var rows []lineupEntryTableModel
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select lineup entries: %w", err)
	}

	out := make([]lineup.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *LineupRepository) GetByPlayer(ctx context.Context, playerID string) (lineup.Entry, bool, error) {
	query, args, err := qb.Select("*").From("lineup_entries").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return lineup.Entry{}, false, fmt.Errorf("build get lineup entry query: %w", err)
	}

	var row lineupEntryTableModel
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return lineup.Entry{}, false, nil
		}
		return lineup.Entry{}, false, fmt.Errorf("get lineup entry: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *LineupRepository) ReplaceForTeam(ctx context.Context, teamID string, entries []lineup.Entry) error {
	deleteQuery, deleteArgs, err := qb.DeleteFrom("lineup_entries").
		Using("players").
		Where(
			qb.Expr("players.id = lineup_entries.player_id"),
			qb.Eq("players.team_id", teamID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete team lineup query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("delete team lineup entries: %w", err)
	}

	if len(entries) == 0 {
		return nil
	}

	insert := qb.InsertInto("lineup_entries").
		Columns("player_id", "fielding_position", "batting_order", "is_starred")
	for _, entry := range entries {
		insert = insert.Values(
			entry.PlayerID,
			positionToNullString(entry.FieldingPosition),
			ptrToNullInt64(entry.BattingOrder),
			entry.IsStarred,
		)
	}
	insertQuery, insertArgs, err := insert.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert lineup entries query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("insert lineup entries: %w", err)
	}
	return nil
}

// UpdateStarred upserts: a player with no lineup entry yet gets a bench row
// carrying only the flag.
func (r *LineupRepository) UpdateStarred(ctx context.Context, playerID string, starred bool) error {
	query, args, err := qb.InsertInto("lineup_entries").
		Columns("player_id", "fielding_position", "batting_order", "is_starred").
		Values(playerID, nil, nil, starred).
		Suffix("ON CONFLICT (player_id) DO UPDATE SET is_starred = EXCLUDED.is_starred").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update starred query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update starred flag: %w", err)
	}
	return nil
}

func (r *LineupRepository) DeleteByPlayer(ctx context.Context, playerID string) error {
	query, args, err := qb.DeleteFrom("lineup_entries").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete lineup entry query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete lineup entry: %w", err)
	}
	return nil
}

func (r *LineupRepository) DeleteAll(ctx context.Context) error {
	query, args, err := qb.DeleteFrom("lineup_entries").ToSQL()
	if err != nil {
		return fmt.Errorf("build delete all lineup entries query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete all lineup entries: %w", err)
	}
	return nil
}
