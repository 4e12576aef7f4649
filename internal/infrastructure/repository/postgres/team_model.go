package postgres

import (
	"database/sql"

	"github.com/pennantrace/sandlot/internal/domain/team"
)

type teamTableModel struct {
	ID           string         `db:"id"`
	OwnerUserID  sql.NullString `db:"owner_user_id"`
	Name         string         `db:"name"`
	Abbreviation string         `db:"abbreviation"`
	CaptainID    sql.NullString `db:"captain_id"`
	ConferenceID sql.NullString `db:"conference_id"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:           m.ID,
		OwnerUserID:  nullStringToPtr(m.OwnerUserID),
		Name:         m.Name,
		Abbreviation: m.Abbreviation,
		CaptainID:    nullStringToPtr(m.CaptainID),
		ConferenceID: nullStringToPtr(m.ConferenceID),
	}
}
