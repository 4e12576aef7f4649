package match

import (
	"fmt"
	"time"
)

// State describes how far along a match is.
type State string

const (
	StateUpcoming State = "upcoming"
	StateLive     State = "live"
	StateFinished State = "finished"
)

var AllStates = map[State]struct{}{
	StateUpcoming: {},
	StateLive:     {},
	StateFinished: {},
}

// Match is one scheduled game between two teams. Scores are nil until the
// match finishes.
type Match struct {
	ID         string
	TeamAID    string
	TeamBID    string
	MatchDayID *string
	State      State
	TeamAScore *int
	TeamBScore *int
	OrderInDay int
}

// MatchDay groups matches scheduled together.
type MatchDay struct {
	ID            string
	Name          *string
	Date          time.Time
	OrderInSeason int
}

// IsScored reports whether the match carries a complete final score.
func (m Match) IsScored() bool {
	return m.State == StateFinished && m.TeamAScore != nil && m.TeamBScore != nil
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.TeamAID == "" || m.TeamBID == "" {
		return fmt.Errorf("match requires two teams")
	}
	if m.TeamAID == m.TeamBID {
		return fmt.Errorf("match teams must differ")
	}
	if _, ok := AllStates[m.State]; !ok {
		return fmt.Errorf("unknown match state: %s", m.State)
	}

	return nil
}
