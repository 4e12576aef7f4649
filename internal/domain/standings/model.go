package standings

// DayResult is one user's recorded score cell for one matchday.
type DayResult struct {
	OwnScore      int
	OpponentScore int
	Won           bool
}

// Row is one user's aggregate standing across all finished matches.
type Row struct {
	UserID          string
	TeamID          string
	Wins            int
	Losses          int
	RunDifferential int
	ResultsByDay    map[string]DayResult
}

// Table is the computed standings read model. Days lists the matchday ids
// that have at least one finished match, in order of play.
type Table struct {
	Rows []Row
	Days []string
}
