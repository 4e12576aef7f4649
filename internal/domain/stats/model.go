package stats

import (
	"fmt"
	"math"
)

// MatchPlayerStat is one player's counting line for one match. Partial
// innings pitched is a thirds counter in [0,2]; three thirds roll into one
// whole inning when totals are normalized.
type MatchPlayerStat struct {
	MatchID              string
	PlayerID             string
	PlateAppearances     int
	Hits                 int
	HomeRuns             int
	Outs                 int
	RunsBattedIn         int
	InningsPitched       int
	InningsPitchedThirds int
	Strikeouts           int
	EarnedRuns           int
	Putouts              int
	Assists              int
	DoublePlays          int
	TriplePlays          int
	FieldingErrors       int
}

func (s MatchPlayerStat) Validate() error {
	if s.MatchID == "" {
		return fmt.Errorf("stat match id is required")
	}
	if s.PlayerID == "" {
		return fmt.Errorf("stat player id is required")
	}
	if s.InningsPitchedThirds < 0 || s.InningsPitchedThirds > 2 {
		return fmt.Errorf("innings pitched thirds must be in [0,2], got %d", s.InningsPitchedThirds)
	}

	return nil
}

// Totals is one player's cumulative line across every recorded match.
type Totals struct {
	PlayerID             string
	MatchCount           int
	PlateAppearances     int
	Hits                 int
	HomeRuns             int
	Outs                 int
	RunsBattedIn         int
	InningsPitched       int
	InningsPitchedThirds int
	Strikeouts           int
	EarnedRuns           int
	Putouts              int
	Assists              int
	DoublePlays          int
	TriplePlays          int
	FieldingErrors       int
}

// Add accumulates one match line into the totals, normalizing accumulated
// thirds into whole innings.
func (t *Totals) Add(line MatchPlayerStat) {
	t.MatchCount++
	t.PlateAppearances += line.PlateAppearances
	t.Hits += line.Hits
	t.HomeRuns += line.HomeRuns
	t.Outs += line.Outs
	t.RunsBattedIn += line.RunsBattedIn
	t.InningsPitched += line.InningsPitched
	t.InningsPitchedThirds += line.InningsPitchedThirds
	t.InningsPitched += t.InningsPitchedThirds / 3
	t.InningsPitchedThirds %= 3
	t.Strikeouts += line.Strikeouts
	t.EarnedRuns += line.EarnedRuns
	t.Putouts += line.Putouts
	t.Assists += line.Assists
	t.DoublePlays += line.DoublePlays
	t.TriplePlays += line.TriplePlays
	t.FieldingErrors += line.FieldingErrors
}

// HitRatePct is the hit percentage rounded to one decimal, nil when the
// player has no plate appearances.
func (t Totals) HitRatePct() *float64 {
	if t.PlateAppearances == 0 {
		return nil
	}
	rate := math.Round(1000*float64(t.Hits)/float64(t.PlateAppearances)) / 10
	return &rate
}

// InningsPitchedDisplay renders whole innings plus remainder thirds in the
// conventional "12.2" form.
func (t Totals) InningsPitchedDisplay() string {
	return fmt.Sprintf("%d.%d", t.InningsPitched, t.InningsPitchedThirds)
}

// Column describes one leaderboard stat column without resorting to dynamic
// field lookup.
type Column struct {
	Key      string
	Label    string
	Accessor func(Totals) int
}

// Columns enumerates every counting stat column in display order.
func Columns() []Column {
	return []Column{
		{Key: "pa", Label: "Plate Appearances", Accessor: func(t Totals) int { return t.PlateAppearances }},
		{Key: "h", Label: "Hits", Accessor: func(t Totals) int { return t.Hits }},
		{Key: "hr", Label: "Home Runs", Accessor: func(t Totals) int { return t.HomeRuns }},
		{Key: "out", Label: "Outs", Accessor: func(t Totals) int { return t.Outs }},
		{Key: "rbi", Label: "Runs Batted In", Accessor: func(t Totals) int { return t.RunsBattedIn }},
		{Key: "so", Label: "Strikeouts", Accessor: func(t Totals) int { return t.Strikeouts }},
		{Key: "er", Label: "Earned Runs", Accessor: func(t Totals) int { return t.EarnedRuns }},
		{Key: "po", Label: "Putouts", Accessor: func(t Totals) int { return t.Putouts }},
		{Key: "a", Label: "Assists", Accessor: func(t Totals) int { return t.Assists }},
		{Key: "dp", Label: "Double Plays", Accessor: func(t Totals) int { return t.DoublePlays }},
		{Key: "tp", Label: "Triple Plays", Accessor: func(t Totals) int { return t.TriplePlays }},
		{Key: "e", Label: "Errors", Accessor: func(t Totals) int { return t.FieldingErrors }},
	}
}
