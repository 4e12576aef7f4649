package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pennantrace/sandlot/internal/domain/conference"
	qb "github.com/pennantrace/sandlot/internal/platform/querybuilder"
)

type conferenceTableModel struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

type ConferenceRepository struct {
	q queryer
}

func NewConferenceRepository(db *sqlx.DB) *ConferenceRepository {
	return &ConferenceRepository{q: db}
}

func (r *ConferenceRepository) GetByID(ctx context.Context, id string) (conference.Conference, bool, error) {
	query, args, err := qb.Select("*").From("conferences").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return conference.Conference{}, false, fmt.Errorf("build get conference query: %w", err)
	}

	var row conferenceTableModel
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return conference.Conference{}, false, nil
		}
		return conference.Conference{}, false, fmt.Errorf("get conference: %w", err)
	}
	return conference.Conference{ID: row.ID, Name: row.Name}, true, nil
}

func (r *ConferenceRepository) List(ctx context.Context) ([]conference.Conference, error) {
	query, args, err := qb.Select("*").From("conferences").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list conferences query: %w", err)
	}

	var rows []conferenceTableModel
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select conferences: %w", err)
	}

	out := make([]conference.Conference, 0, len(rows))
	for _, row := range rows {
		out = append(out, conference.Conference{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

func (r *ConferenceRepository) Create(ctx context.Context, item conference.Conference) error {
	query, args, err := qb.InsertInto("conferences").
		Columns("id", "name").
		Values(item.ID, item.Name).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert conference query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert conference: %w", err)
	}
	return nil
}
