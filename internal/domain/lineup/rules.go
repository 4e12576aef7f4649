package lineup

import (
	"errors"
	"fmt"

	"github.com/pennantrace/sandlot/internal/domain/player"
)

var (
	ErrPlayerNotOnTeam      = errors.New("player is not on the team")
	ErrCaptainMustPlay      = errors.New("team captain must occupy a fielding position")
	ErrWrongPlayingCount    = errors.New("wrong number of playing entries")
	ErrDuplicatePosition    = errors.New("fielding positions must be distinct")
	ErrInvalidBattingOrder  = errors.New("batting orders must cover 1..9 exactly once")
	ErrBenchHasBattingOrder = errors.New("bench players cannot have a batting order")
)

// Validate checks a proposed lineup against the roster composition rules.
// rosterPlayerIDs is the set of players currently on the team; captainID is
// the team's captain, empty when none is assigned. Checks run in order and
// fail fast with the first violated rule.
func Validate(entries []Entry, rosterPlayerIDs map[string]struct{}, captainID string) error {
	for _, entry := range entries {
		if _, ok := rosterPlayerIDs[entry.PlayerID]; !ok {
			return fmt.Errorf("%w: %s", ErrPlayerNotOnTeam, entry.PlayerID)
		}
	}

	if captainID != "" {
		captainPlays := false
		for _, entry := range entries {
			if entry.PlayerID == captainID && entry.IsPlaying() {
				captainPlays = true
				break
			}
		}
		if !captainPlays {
			return fmt.Errorf("%w: %s", ErrCaptainMustPlay, captainID)
		}
	}

	playing := make([]Entry, 0, LineupSize)
	for _, entry := range entries {
		if entry.IsPlaying() {
			playing = append(playing, entry)
		}
	}
	if len(playing) != LineupSize {
		return fmt.Errorf("%w: expected %d, got %d", ErrWrongPlayingCount, LineupSize, len(playing))
	}

	positionSet := make(map[player.FieldingPosition]struct{}, LineupSize)
	for _, entry := range playing {
		pos := *entry.FieldingPosition
		if _, ok := player.AllFieldingPositions[pos]; !ok {
			return fmt.Errorf("%w: unknown position %s", ErrDuplicatePosition, pos)
		}
		if _, exists := positionSet[pos]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicatePosition, pos)
		}
		positionSet[pos] = struct{}{}
	}

	orderSeen := make(map[int]struct{}, LineupSize)
	for _, entry := range playing {
		if entry.BattingOrder == nil {
			return fmt.Errorf("%w: player %s has no batting order", ErrInvalidBattingOrder, entry.PlayerID)
		}
		order := *entry.BattingOrder
		if order < 1 || order > LineupSize {
			return fmt.Errorf("%w: order %d out of range", ErrInvalidBattingOrder, order)
		}
		if _, exists := orderSeen[order]; exists {
			return fmt.Errorf("%w: duplicate order %d", ErrInvalidBattingOrder, order)
		}
		orderSeen[order] = struct{}{}
	}

	for _, entry := range entries {
		if !entry.IsPlaying() && entry.BattingOrder != nil {
			return fmt.Errorf("%w: player %s", ErrBenchHasBattingOrder, entry.PlayerID)
		}
	}

	return nil
}
