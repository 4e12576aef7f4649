package lineup

import "github.com/pennantrace/sandlot/internal/domain/player"

// LineupSize is the number of players active on the field at once.
const LineupSize = 9

// MaxRosterSize caps how many players a single team may hold.
const MaxRosterSize = 12

// Entry is one roster slot for a player on a team. A nil FieldingPosition
// means the player sits on the bench; bench players carry no batting order.
type Entry struct {
	PlayerID         string
	FieldingPosition *player.FieldingPosition
	BattingOrder     *int
	IsStarred        bool
}

// IsPlaying reports whether the entry occupies a fielding position.
func (e Entry) IsPlaying() bool {
	return e.FieldingPosition != nil
}
