package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pennantrace/sandlot/internal/domain/user"
	qb "github.com/pennantrace/sandlot/internal/platform/querybuilder"
)

type userTableModel struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	Role       string `db:"role"`
	ExternalID string `db:"external_id"`
}

func (m userTableModel) toDomain() user.User {
	return user.User{
		ID:         m.ID,
		Name:       m.Name,
		Role:       user.Role(m.Role),
		ExternalID: m.ExternalID,
	}
}

type UserRepository struct {
	q queryer
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{q: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, bool, error) {
	query, args, err := qb.Select("*").From("users").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user query: %w", err)
	}

	var row userTableModel
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	query, args, err := qb.Select("*").From("users").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list users query: %w", err)
	}

	var rows []userTableModel
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *UserRepository) Create(ctx context.Context, item user.User) error {
	query, args, err := qb.InsertInto("users").
		Columns("id", "name", "role", "external_id").
		Values(item.ID, item.Name, string(item.Role), item.ExternalID).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert user query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}
