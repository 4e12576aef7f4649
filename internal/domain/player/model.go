package player

import "fmt"

// FieldingPosition is one of the nine defensive positions a player
// occupies when active in a lineup.
type FieldingPosition string

const (
	PositionCatcher     FieldingPosition = "C"
	PositionFirstBase   FieldingPosition = "1B"
	PositionSecondBase  FieldingPosition = "2B"
	PositionThirdBase   FieldingPosition = "3B"
	PositionShortstop   FieldingPosition = "SS"
	PositionLeftField   FieldingPosition = "LF"
	PositionCenterField FieldingPosition = "CF"
	PositionRightField  FieldingPosition = "RF"
	PositionPitcher     FieldingPosition = "P"
)

var AllFieldingPositions = map[FieldingPosition]struct{}{
	PositionCatcher:     {},
	PositionFirstBase:   {},
	PositionSecondBase:  {},
	PositionThirdBase:   {},
	PositionShortstop:   {},
	PositionLeftField:   {},
	PositionCenterField: {},
	PositionRightField:  {},
	PositionPitcher:     {},
}

// Attributes is the character sheet a player carries into matches.
type Attributes struct {
	Character string
	Batting   int
	Pitching  int
	Fielding  int
	Speed     int
}

// Player is a draftable athlete. A nil TeamID means free agent.
type Player struct {
	ID         string
	Name       string
	TeamID     *string
	Attributes Attributes
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}
