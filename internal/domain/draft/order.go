package draft

import "errors"

var (
	ErrSeasonNotDrafting     = errors.New("season is not in the drafting phase")
	ErrNotYourTurn           = errors.New("it is not this user's drafting turn")
	ErrPlayerNotFound        = errors.New("player does not exist")
	ErrPlayerAlreadyAssigned = errors.New("player is already on a team")
	ErrNoTeamForUser         = errors.New("user owns no team")
	ErrRosterFull            = errors.New("team roster is at capacity")
	ErrNoParticipants        = errors.New("no drafting participants")
)

// NextTurnIndex computes the zero-based index into the forward draft order
// of whoever picks next, given how many picks have been made overall. Even
// rounds walk the order forward, odd rounds walk it in reverse, so the turn
// snakes: A,B,C,C,B,A,A,B,C for three participants.
func NextTurnIndex(totalPicksMade, participants int) int {
	round := totalPicksMade / participants
	positionInRound := totalPicksMade % participants
	if round%2 == 0 {
		return positionInRound
	}
	return participants - 1 - positionInRound
}

// NextDrafter resolves the user whose draftingTurn matches the snake index
// for the given pick count. turnByUser maps userID to draftingTurn 1..N.
func NextDrafter(turnByUser map[string]int, totalPicksMade int) (string, error) {
	if len(turnByUser) == 0 {
		return "", ErrNoParticipants
	}

	wantTurn := NextTurnIndex(totalPicksMade, len(turnByUser)) + 1
	for userID, turn := range turnByUser {
		if turn == wantTurn {
			return userID, nil
		}
	}

	return "", ErrNoParticipants
}
