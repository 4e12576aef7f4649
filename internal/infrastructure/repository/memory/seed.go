package memory

import (
	"time"

	"github.com/pennantrace/sandlot/internal/domain/match"
	"github.com/pennantrace/sandlot/internal/domain/player"
	"github.com/pennantrace/sandlot/internal/domain/team"
	"github.com/pennantrace/sandlot/internal/domain/user"
)

func SeedUsers() []user.User {
	return []user.User{
		{ID: "usr-admin", Name: "Commissioner", Role: user.RoleAdmin, ExternalID: "ext-admin"},
		{ID: "usr-ivy", Name: "Ivy Okafor", Role: user.RoleUser, ExternalID: "ext-ivy"},
		{ID: "usr-marco", Name: "Marco Reyes", Role: user.RoleUser, ExternalID: "ext-marco"},
		{ID: "usr-sana", Name: "Sana Kimura", Role: user.RoleUser, ExternalID: "ext-sana"},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "team-otters", Name: "Riverside Otters", Abbreviation: "OTT"},
		{ID: "team-comets", Name: "Dockyard Comets", Abbreviation: "COM"},
		{ID: "team-herons", Name: "Bayview Herons", Abbreviation: "HER"},
		{ID: "team-mules", Name: "Ironworks Mules", Abbreviation: "MUL"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "ply-001", Name: "Dutch Alvarez", Attributes: player.Attributes{Character: "steady", Batting: 74, Pitching: 22, Fielding: 81, Speed: 60}},
		{ID: "ply-002", Name: "Betts Okonkwo", Attributes: player.Attributes{Character: "fiery", Batting: 88, Pitching: 10, Fielding: 70, Speed: 77}},
		{ID: "ply-003", Name: "Lefty Kowalski", Attributes: player.Attributes{Character: "quiet", Batting: 41, Pitching: 90, Fielding: 55, Speed: 48}},
		{ID: "ply-004", Name: "Juno Castillo", Attributes: player.Attributes{Character: "steady", Batting: 69, Pitching: 15, Fielding: 86, Speed: 71}},
		{ID: "ply-005", Name: "Moss Tanaka", Attributes: player.Attributes{Character: "showboat", Batting: 82, Pitching: 8, Fielding: 64, Speed: 90}},
		{ID: "ply-006", Name: "Reed Fontaine", Attributes: player.Attributes{Character: "quiet", Batting: 55, Pitching: 78, Fielding: 62, Speed: 52}},
		{ID: "ply-007", Name: "Ace Dubois", Attributes: player.Attributes{Character: "fiery", Batting: 38, Pitching: 94, Fielding: 50, Speed: 45}},
		{ID: "ply-008", Name: "Birdie Nilsen", Attributes: player.Attributes{Character: "steady", Batting: 77, Pitching: 12, Fielding: 79, Speed: 83}},
		{ID: "ply-009", Name: "Hack Moreau", Attributes: player.Attributes{Character: "showboat", Batting: 91, Pitching: 5, Fielding: 58, Speed: 66}},
		{ID: "ply-010", Name: "Specs Adeyemi", Attributes: player.Attributes{Character: "quiet", Batting: 63, Pitching: 30, Fielding: 88, Speed: 57}},
		{ID: "ply-011", Name: "Tiller Vance", Attributes: player.Attributes{Character: "steady", Batting: 58, Pitching: 84, Fielding: 60, Speed: 50}},
		{ID: "ply-012", Name: "Coco Beaumont", Attributes: player.Attributes{Character: "fiery", Batting: 80, Pitching: 18, Fielding: 72, Speed: 85}},
	}
}

func SeedMatchDays() []match.MatchDay {
	opening := "Opening Day"
	return []match.MatchDay{
		{ID: "day-01", Name: &opening, Date: time.Date(2026, 4, 4, 0, 0, 0, 0, time.UTC), OrderInSeason: 1},
		{ID: "day-02", Date: time.Date(2026, 4, 11, 0, 0, 0, 0, time.UTC), OrderInSeason: 2},
		{ID: "day-03", Date: time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC), OrderInSeason: 3},
	}
}

func SeedMatches() []match.Match {
	day01, day02, day03 := "day-01", "day-02", "day-03"
	return []match.Match{
		{ID: "m-001", TeamAID: "team-otters", TeamBID: "team-comets", MatchDayID: &day01, State: match.StateUpcoming, OrderInDay: 1},
		{ID: "m-002", TeamAID: "team-herons", TeamBID: "team-mules", MatchDayID: &day01, State: match.StateUpcoming, OrderInDay: 2},
		{ID: "m-003", TeamAID: "team-otters", TeamBID: "team-herons", MatchDayID: &day02, State: match.StateUpcoming, OrderInDay: 1},
		{ID: "m-004", TeamAID: "team-comets", TeamBID: "team-mules", MatchDayID: &day02, State: match.StateUpcoming, OrderInDay: 2},
		{ID: "m-005", TeamAID: "team-otters", TeamBID: "team-mules", MatchDayID: &day03, State: match.StateUpcoming, OrderInDay: 1},
		{ID: "m-006", TeamAID: "team-comets", TeamBID: "team-herons", MatchDayID: &day03, State: match.StateUpcoming, OrderInDay: 2},
	}
}
