package postgres

import (
	"database/sql"
	"time"

	"github.com/pennantrace/sandlot/internal/domain/match"
)

type matchTableModel struct {
	ID         string         `db:"id"`
	TeamAID    string         `db:"team_a_id"`
	TeamBID    string         `db:"team_b_id"`
	MatchDayID sql.NullString `db:"match_day_id"`
	State      string         `db:"state"`
	TeamAScore sql.NullInt64  `db:"team_a_score"`
	TeamBScore sql.NullInt64  `db:"team_b_score"`
	OrderInDay int            `db:"order_in_day"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:         m.ID,
		TeamAID:    m.TeamAID,
		TeamBID:    m.TeamBID,
		MatchDayID: nullStringToPtr(m.MatchDayID),
		State:      match.State(m.State),
		TeamAScore: nullInt64ToPtr(m.TeamAScore),
		TeamBScore: nullInt64ToPtr(m.TeamBScore),
		OrderInDay: m.OrderInDay,
	}
}

type matchDayTableModel struct {
	ID            string         `db:"id"`
	Name          sql.NullString `db:"name"`
	Date          time.Time      `db:"date"`
	OrderInSeason int            `db:"order_in_season"`
}

func (m matchDayTableModel) toDomain() match.MatchDay {
	return match.MatchDay{
		ID:            m.ID,
		Name:          nullStringToPtr(m.Name),
		Date:          m.Date,
		OrderInSeason: m.OrderInSeason,
	}
}
