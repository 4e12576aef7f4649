package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pennantrace/sandlot/internal/domain/season"
	qb "github.com/pennantrace/sandlot/internal/platform/querybuilder"
)

type SeasonRepository struct {
	q queryer
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{q: db}
}

// Get reads the singleton season row, seeding the pre-season default when
// the table is still empty.
func (r *SeasonRepository) Get(ctx context.Context) (season.Season, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(qb.Eq("id", season.SingletonID)).
		ToSQL()
	if err != nil {
		return season.Season{}, fmt.Errorf("build get season query: %w", err)
	}

	var row seasonTableModel
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return r.seedDefault(ctx)
		}
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}

	return season.Season{
		ID:                    row.ID,
		State:                 season.State(row.State),
		CurrentDraftingUserID: nullStringToPtr(row.CurrentDraftingUserID),
	}, nil
}

func (r *SeasonRepository) seedDefault(ctx context.Context) (season.Season, error) {
	item := season.Season{ID: season.SingletonID, State: season.StatePreSeason}

	query, args, err := qb.InsertInto("seasons").
		Columns("id", "state", "current_drafting_user_id").
		Values(item.ID, string(item.State), nil).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSQL()
	if err != nil {
		return season.Season{}, fmt.Errorf("build seed season query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return season.Season{}, fmt.Errorf("seed season: %w", err)
	}

	return item, nil
}

func (r *SeasonRepository) Update(ctx context.Context, item season.Season) error {
	query, args, err := qb.Update("seasons").
		Set("state", string(item.State)).
		Set("current_drafting_user_id", ptrToNullString(item.CurrentDraftingUserID)).
		Where(qb.Eq("id", season.SingletonID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update season query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update season: %w", err)
	}
	return nil
}

func (r *SeasonRepository) ListTurnOrder(ctx context.Context) ([]season.TurnOrder, error) {
	query, args, err := qb.Select("*").From("draft_turn_order").
		OrderBy("drafting_turn").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list turn order query: %w", err)
	}

	var rows []turnOrderTableModel
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select turn order: %w", err)
	}

	out := make([]season.TurnOrder, 0, len(rows))
	for _, row := range rows {
		out = append(out, season.TurnOrder{UserID: row.UserID, DraftingTurn: row.DraftingTurn})
	}
	return out, nil
}

func (r *SeasonRepository) ReplaceTurnOrder(ctx context.Context, items []season.TurnOrder) error {
	deleteQuery, deleteArgs, err := qb.DeleteFrom("draft_turn_order").ToSQL()
	if err != nil {
		return fmt.Errorf("build clear turn order query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("clear turn order: %w", err)
	}

	if len(items) == 0 {
		return nil
	}

	insert := qb.InsertInto("draft_turn_order").Columns("user_id", "drafting_turn")
	for _, item := range items {
		insert = insert.Values(item.UserID, item.DraftingTurn)
	}
	insertQuery, insertArgs, err := insert.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert turn order query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("insert turn order: %w", err)
	}
	return nil
}
