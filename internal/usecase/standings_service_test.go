package usecase

import (
	"testing"

	"github.com/pennantrace/sandlot/internal/infrastructure/repository/memory"
)

func finishMatch(t *testing.T, st *memory.Store, matchID string, scoreA, scoreB int) {
	t.Helper()
	service := NewMatchService(st.Matches(), st.Players(), st.Stats(), nil, discardLogger())
	if _, err := service.SetResult(t.Context(), adminPrincipal(), matchID, scoreA, scoreB); err != nil {
		t.Fatalf("finish match %s: %v", matchID, err)
	}
}

func TestStandingsService_Table_EmptyWithoutResults(t *testing.T) {
	st := newDraftingStore(t)
	service := NewStandingsService(st.Matches(), st.Teams())

	table, err := service.Table(t.Context())
	if err != nil {
		t.Fatalf("table failed: %v", err)
	}
	if len(table.Rows) != 0 {
		t.Fatalf("expected no rows without finished matches, got %d", len(table.Rows))
	}
	if len(table.Days) != 0 {
		t.Fatalf("expected no days without finished matches, got %v", table.Days)
	}
}

func TestStandingsService_Table_RanksByRecordThenRunDiff(t *testing.T) {
	st := newDraftingStore(t)
	ctx := t.Context()

	// Day 1: otters (ivy) beat comets (marco) 7-2, herons (sana) beat the
	// unowned mules 3-1. Day 2: otters beat herons 4-3.
	finishMatch(t, st, "m-001", 7, 2)
	finishMatch(t, st, "m-002", 3, 1)
	finishMatch(t, st, "m-003", 4, 3)

	service := NewStandingsService(st.Matches(), st.Teams())
	table, err := service.Table(ctx)
	if err != nil {
		t.Fatalf("table failed: %v", err)
	}

	if len(table.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(table.Rows))
	}
	if table.Rows[0].UserID != "usr-ivy" {
		t.Fatalf("expected usr-ivy first at 2-0, got %s", table.Rows[0].UserID)
	}
	if table.Rows[0].Wins != 2 || table.Rows[0].Losses != 0 {
		t.Fatalf("expected ivy at 2-0, got %d-%d", table.Rows[0].Wins, table.Rows[0].Losses)
	}
	if table.Rows[0].RunDifferential != 6 {
		t.Fatalf("expected ivy run differential +6, got %d", table.Rows[0].RunDifferential)
	}
	// sana (1-1, diff +1) edges marco (0-1, diff -5) on record.
	if table.Rows[1].UserID != "usr-sana" || table.Rows[2].UserID != "usr-marco" {
		t.Fatalf("expected sana then marco, got %s then %s", table.Rows[1].UserID, table.Rows[2].UserID)
	}

	if len(table.Days) != 2 || table.Days[0] != "day-01" || table.Days[1] != "day-02" {
		t.Fatalf("expected days [day-01 day-02], got %v", table.Days)
	}

	cell, ok := table.Rows[0].ResultsByDay["day-02"]
	if !ok {
		t.Fatal("expected a day-02 cell for ivy")
	}
	if cell.OwnScore != 4 || cell.OpponentScore != 3 || !cell.Won {
		t.Fatalf("unexpected day-02 cell: %+v", cell)
	}
}

func TestStandingsService_Table_RunDiffBreaksTies(t *testing.T) {
	st := newDraftingStore(t)

	// ivy and sana both finish 1-0; ivy wins by more runs.
	finishMatch(t, st, "m-001", 9, 1) // otters over comets, diff +8
	finishMatch(t, st, "m-002", 2, 1) // herons over mules, diff +1

	service := NewStandingsService(st.Matches(), st.Teams())
	table, err := service.Table(t.Context())
	if err != nil {
		t.Fatalf("table failed: %v", err)
	}

	if table.Rows[0].UserID != "usr-ivy" || table.Rows[1].UserID != "usr-sana" {
		t.Fatalf("expected ivy before sana on run differential, got %s then %s",
			table.Rows[0].UserID, table.Rows[1].UserID)
	}
}

func TestStandingsService_Table_FullTiesOrderByTeamName(t *testing.T) {
	st := newDraftingStore(t)

	// marco and sana both finish 1-0 with diff +2 against the unowned
	// mules, so the table falls back to team name: Bayview Herons (sana)
	// sorts ahead of Dockyard Comets (marco).
	finishMatch(t, st, "m-002", 2, 0) // herons over mules
	finishMatch(t, st, "m-004", 2, 0) // comets over mules

	service := NewStandingsService(st.Matches(), st.Teams())
	table, err := service.Table(t.Context())
	if err != nil {
		t.Fatalf("table failed: %v", err)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0].UserID != "usr-sana" || table.Rows[1].UserID != "usr-marco" {
		t.Fatalf("expected sana before marco on team name, got %s then %s",
			table.Rows[0].UserID, table.Rows[1].UserID)
	}
}

func TestStandingsService_Table_SkipsUnownedTeams(t *testing.T) {
	st := newDraftingStore(t)

	// team-mules has no owner, so only sana gets a row from this match.
	finishMatch(t, st, "m-002", 3, 1)

	service := NewStandingsService(st.Matches(), st.Teams())
	table, err := service.Table(t.Context())
	if err != nil {
		t.Fatalf("table failed: %v", err)
	}

	if len(table.Rows) != 1 || table.Rows[0].UserID != "usr-sana" {
		t.Fatalf("expected a single row for usr-sana, got %+v", table.Rows)
	}
}

func TestStandingsService_Table_CorrectedResultOverwritesCell(t *testing.T) {
	st := newDraftingStore(t)

	finishMatch(t, st, "m-001", 2, 5)
	// Scorekeeper correction: same match re-finished with a new score.
	finishMatch(t, st, "m-001", 6, 5)

	service := NewStandingsService(st.Matches(), st.Teams())
	table, err := service.Table(t.Context())
	if err != nil {
		t.Fatalf("table failed: %v", err)
	}

	var ivyCell bool
	for _, row := range table.Rows {
		if row.UserID != "usr-ivy" {
			continue
		}
		if row.Wins != 1 || row.Losses != 0 {
			t.Fatalf("corrected match must count once, got %d-%d", row.Wins, row.Losses)
		}
		cell := row.ResultsByDay["day-01"]
		if cell.OwnScore != 6 || !cell.Won {
			t.Fatalf("expected corrected cell 6-5 won, got %+v", cell)
		}
		ivyCell = true
	}
	if !ivyCell {
		t.Fatal("expected a standings row for usr-ivy")
	}
}
