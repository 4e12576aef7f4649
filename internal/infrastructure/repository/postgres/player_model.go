package postgres

import (
	"database/sql"

	"github.com/pennantrace/sandlot/internal/domain/player"
)

type playerTableModel struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	TeamID    sql.NullString `db:"team_id"`
	Character string         `db:"character"`
	Batting   int            `db:"batting"`
	Pitching  int            `db:"pitching"`
	Fielding  int            `db:"fielding"`
	Speed     int            `db:"speed"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:     m.ID,
		Name:   m.Name,
		TeamID: nullStringToPtr(m.TeamID),
		Attributes: player.Attributes{
			Character: m.Character,
			Batting:   m.Batting,
			Pitching:  m.Pitching,
			Fielding:  m.Fielding,
			Speed:     m.Speed,
		},
	}
}
