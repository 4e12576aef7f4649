package postgres

import (
	"database/sql"

	"github.com/pennantrace/sandlot/internal/domain/lineup"
	"github.com/pennantrace/sandlot/internal/domain/player"
)

type lineupEntryTableModel struct {
	PlayerID         string         `db:"player_id"`
	FieldingPosition sql.NullString `db:"fielding_position"`
	BattingOrder     sql.NullInt64  `db:"batting_order"`
	IsStarred        bool           `db:"is_starred"`
}

func (m lineupEntryTableModel) toDomain() lineup.Entry {
	entry := lineup.Entry{
		PlayerID:     m.PlayerID,
		BattingOrder: nullInt64ToPtr(m.BattingOrder),
		IsStarred:    m.IsStarred,
	}
	if m.FieldingPosition.Valid {
		pos := player.FieldingPosition(m.FieldingPosition.String)
		entry.FieldingPosition = &pos
	}
	return entry
}

func positionToNullString(pos *player.FieldingPosition) sql.NullString {
	if pos == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*pos), Valid: true}
}
