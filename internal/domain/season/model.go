package season

import "fmt"

// State is the global season phase. Transitions move forward in normal
// operation; admins may force any state, but only the pre-season→drafting
// and drafting→playing edges carry side effects.
type State string

const (
	StatePreSeason State = "pre-season"
	StateDrafting  State = "drafting"
	StatePlaying   State = "playing"
	StateFinished  State = "finished"
)

// SingletonID is the fixed id of the one season row.
const SingletonID = "season"

var AllStates = map[State]struct{}{
	StatePreSeason: {},
	StateDrafting:  {},
	StatePlaying:   {},
	StateFinished:  {},
}

// Season is the singleton league-wide state row.
type Season struct {
	ID                    string
	State                 State
	CurrentDraftingUserID *string
}

// TurnOrder assigns one participating user a unique drafting turn 1..N.
type TurnOrder struct {
	UserID       string
	DraftingTurn int
}

func ParseState(value string) (State, error) {
	state := State(value)
	if _, ok := AllStates[state]; !ok {
		return "", fmt.Errorf("unknown season state: %s", value)
	}
	return state, nil
}
