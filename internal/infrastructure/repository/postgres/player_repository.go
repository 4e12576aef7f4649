package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pennantrace/sandlot/internal/domain/player"
	qb "github.com/pennantrace/sandlot/internal/platform/querybuilder"
)

type PlayerRepository struct {
	q queryer
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{q: db}
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}
	return r.selectPlayers(ctx, query, args)
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players by team query: %w", err)
	}
	return r.selectPlayers(ctx, query, args)
}

func (r *PlayerRepository) CountByTeam(ctx context.Context, teamID string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("players").
		Where(qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count players by team query: %w", err)
	}

	var count int
	if err := sqlx.GetContext(ctx, r.q, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count players by team: %w", err)
	}
	return count, nil
}

func (r *PlayerRepository) CountAssigned(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("players").
		Where(qb.IsNotNull("team_id")).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count assigned players query: %w", err)
	}

	var count int
	if err := sqlx.GetContext(ctx, r.q, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count assigned players: %w", err)
	}
	return count, nil
}

func (r *PlayerRepository) UpdateTeam(ctx context.Context, playerID string, teamID *string) error {
	query, args, err := qb.Update("players").
		Set("team_id", ptrToNullString(teamID)).
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player team query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player team: %w", err)
	}
	return nil
}

func (r *PlayerRepository) ClearAllTeams(ctx context.Context) error {
	query, args, err := qb.Update("players").
		Set("team_id", nil).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear player teams query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear player teams: %w", err)
	}
	return nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	query, args, err := qb.InsertInto("players").
		Columns("id", "name", "team_id", "character", "batting", "pitching", "fielding", "speed").
		Values(
			item.ID,
			item.Name,
			ptrToNullString(item.TeamID),
			item.Attributes.Character,
			item.Attributes.Batting,
			item.Attributes.Pitching,
			item.Attributes.Fielding,
			item.Attributes.Speed,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, query string, args []any) ([]player.Player, error) {
	var rows []playerTableModel
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
