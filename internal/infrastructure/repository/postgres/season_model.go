package postgres

import "database/sql"

type seasonTableModel struct {
	ID                    string         `db:"id"`
	State                 string         `db:"state"`
	CurrentDraftingUserID sql.NullString `db:"current_drafting_user_id"`
}

type turnOrderTableModel struct {
	UserID       string `db:"user_id"`
	DraftingTurn int    `db:"drafting_turn"`
}
