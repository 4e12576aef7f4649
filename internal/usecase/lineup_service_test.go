package usecase

import (
	"errors"
	"testing"

	"github.com/pennantrace/sandlot/internal/domain/lineup"
	"github.com/pennantrace/sandlot/internal/domain/player"
	"github.com/pennantrace/sandlot/internal/infrastructure/repository/memory"
)

var ninePositions = []player.FieldingPosition{
	player.PositionCatcher,
	player.PositionFirstBase,
	player.PositionSecondBase,
	player.PositionThirdBase,
	player.PositionShortstop,
	player.PositionLeftField,
	player.PositionCenterField,
	player.PositionRightField,
	player.PositionPitcher,
}

// newRosteredStore puts the first ten seed players on team-otters so a
// nine-player lineup plus one bench slot can be built.
func newRosteredStore(t *testing.T) (*memory.Store, []string) {
	t.Helper()
	st := newDraftingStore(t)
	ctx := t.Context()

	roster := make([]string, 0, 10)
	for i, p := range memory.SeedPlayers() {
		if i == 10 {
			break
		}
		if err := st.Players().UpdateTeam(ctx, p.ID, strPtr("team-otters")); err != nil {
			t.Fatalf("roster player %s: %v", p.ID, err)
		}
		roster = append(roster, p.ID)
	}
	return st, roster
}

func fullLineup(roster []string) []LineupEntryInput {
	entries := make([]LineupEntryInput, 0, len(roster))
	for i, playerID := range roster {
		if i < lineup.LineupSize {
			pos := ninePositions[i]
			entries = append(entries, LineupEntryInput{
				PlayerID:         playerID,
				FieldingPosition: &pos,
				BattingOrder:     intPtr(i + 1),
			})
			continue
		}
		entries = append(entries, LineupEntryInput{PlayerID: playerID})
	}
	return entries
}

func newLineupService(st *memory.Store) *LineupService {
	return NewLineupService(st, st.Teams(), st.Lineups(), nil, discardLogger())
}

func TestLineupService_Save_AcceptsValidLineup(t *testing.T) {
	st, roster := newRosteredStore(t)
	service := newLineupService(st)

	saved, err := service.Save(t.Context(), memberPrincipal("usr-ivy"), "team-otters", fullLineup(roster))
	if err != nil {
		t.Fatalf("save lineup failed: %v", err)
	}
	if len(saved) != 10 {
		t.Fatalf("expected 10 saved entries, got %d", len(saved))
	}

	stored, err := service.GetByTeam(t.Context(), "team-otters")
	if err != nil {
		t.Fatalf("get lineup: %v", err)
	}
	playing := 0
	for _, entry := range stored {
		if entry.IsPlaying() {
			playing++
		}
	}
	if playing != lineup.LineupSize {
		t.Fatalf("expected %d playing entries, got %d", lineup.LineupSize, playing)
	}
}

func TestLineupService_Save_RejectsDuplicatePosition(t *testing.T) {
	st, roster := newRosteredStore(t)
	service := newLineupService(st)

	if _, err := service.Save(t.Context(), memberPrincipal("usr-ivy"), "team-otters", fullLineup(roster)); err != nil {
		t.Fatalf("initial save failed: %v", err)
	}

	broken := fullLineup(roster)
	dup := player.PositionCatcher
	broken[1].FieldingPosition = &dup

	_, err := service.Save(t.Context(), memberPrincipal("usr-ivy"), "team-otters", broken)
	if !errors.Is(err, lineup.ErrDuplicatePosition) {
		t.Fatalf("expected ErrDuplicatePosition, got %v", err)
	}

	// The rejected save must leave the stored lineup untouched.
	stored, getErr := service.GetByTeam(t.Context(), "team-otters")
	if getErr != nil {
		t.Fatalf("get lineup: %v", getErr)
	}
	if len(stored) != 10 {
		t.Fatalf("expected the previous 10 entries to survive, got %d", len(stored))
	}
	for _, entry := range stored {
		if entry.PlayerID == roster[1] && *entry.FieldingPosition != player.PositionFirstBase {
			t.Fatalf("entry for %s changed to %s", roster[1], *entry.FieldingPosition)
		}
	}
}

func TestLineupService_Save_RejectsPlayerOffRoster(t *testing.T) {
	st, roster := newRosteredStore(t)
	service := newLineupService(st)

	entries := fullLineup(roster)
	entries[9].PlayerID = "ply-011" // still unassigned

	_, err := service.Save(t.Context(), memberPrincipal("usr-ivy"), "team-otters", entries)
	if !errors.Is(err, lineup.ErrPlayerNotOnTeam) {
		t.Fatalf("expected ErrPlayerNotOnTeam, got %v", err)
	}
}

func TestLineupService_Save_RequiresCaptainPlaying(t *testing.T) {
	st, roster := newRosteredStore(t)
	service := newLineupService(st)
	ctx := t.Context()

	tm, ok, err := st.Teams().GetByID(ctx, "team-otters")
	if err != nil || !ok {
		t.Fatalf("load team: ok=%v err=%v", ok, err)
	}
	tm.CaptainID = strPtr(roster[9]) // the bench player
	if err := st.Teams().Update(ctx, tm); err != nil {
		t.Fatalf("set captain: %v", err)
	}

	_, saveErr := service.Save(ctx, memberPrincipal("usr-ivy"), "team-otters", fullLineup(roster))
	if !errors.Is(saveErr, lineup.ErrCaptainMustPlay) {
		t.Fatalf("expected ErrCaptainMustPlay, got %v", saveErr)
	}
}

func TestLineupService_Save_ForbiddenForOtherUser(t *testing.T) {
	st, roster := newRosteredStore(t)
	service := newLineupService(st)

	_, err := service.Save(t.Context(), memberPrincipal("usr-marco"), "team-otters", fullLineup(roster))
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestLineupService_Save_PreservesStarredFlag(t *testing.T) {
	st, roster := newRosteredStore(t)
	service := newLineupService(st)
	ctx := t.Context()

	if _, err := service.Save(ctx, memberPrincipal("usr-ivy"), "team-otters", fullLineup(roster)); err != nil {
		t.Fatalf("initial save failed: %v", err)
	}
	if err := service.SetStarred(ctx, memberPrincipal("usr-ivy"), "team-otters", roster[0], true); err != nil {
		t.Fatalf("set starred failed: %v", err)
	}

	// Re-save with the batting order rotated; the star must survive.
	rotated := fullLineup(roster)
	for i := 0; i < lineup.LineupSize; i++ {
		rotated[i].BattingOrder = intPtr((i+1)%lineup.LineupSize + 1)
	}
	if _, err := service.Save(ctx, memberPrincipal("usr-ivy"), "team-otters", rotated); err != nil {
		t.Fatalf("re-save failed: %v", err)
	}

	entry, ok, err := st.Lineups().GetByPlayer(ctx, roster[0])
	if err != nil || !ok {
		t.Fatalf("load entry: ok=%v err=%v", ok, err)
	}
	if !entry.IsStarred {
		t.Fatal("starred flag lost across lineup re-save")
	}
}

func TestLineupService_SetStarred_SingleStarPerTeam(t *testing.T) {
	st, roster := newRosteredStore(t)
	service := newLineupService(st)
	ctx := t.Context()

	if _, err := service.Save(ctx, memberPrincipal("usr-ivy"), "team-otters", fullLineup(roster)); err != nil {
		t.Fatalf("save lineup failed: %v", err)
	}
	if err := service.SetStarred(ctx, memberPrincipal("usr-ivy"), "team-otters", roster[0], true); err != nil {
		t.Fatalf("star first player: %v", err)
	}
	if err := service.SetStarred(ctx, memberPrincipal("usr-ivy"), "team-otters", roster[1], true); err != nil {
		t.Fatalf("star second player: %v", err)
	}

	entries, err := st.Lineups().ListByTeam(ctx, "team-otters")
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	starred := make([]string, 0, 1)
	for _, entry := range entries {
		if entry.IsStarred {
			starred = append(starred, entry.PlayerID)
		}
	}
	if len(starred) != 1 || starred[0] != roster[1] {
		t.Fatalf("expected exactly %s starred, got %v", roster[1], starred)
	}
}

func TestLineupService_SetStarred_RejectsPlayerOffTeam(t *testing.T) {
	st, _ := newRosteredStore(t)
	service := newLineupService(st)

	err := service.SetStarred(t.Context(), memberPrincipal("usr-ivy"), "team-otters", "ply-011", true)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLineupService_Save_RejectsBattingOrderGap(t *testing.T) {
	st, roster := newRosteredStore(t)
	service := newLineupService(st)

	entries := fullLineup(roster)
	entries[3].BattingOrder = intPtr(9) // duplicate of slot 9, leaving 4 uncovered

	_, err := service.Save(t.Context(), memberPrincipal("usr-ivy"), "team-otters", entries)
	if !errors.Is(err, lineup.ErrInvalidBattingOrder) {
		t.Fatalf("expected ErrInvalidBattingOrder, got %v", err)
	}
}

func TestLineupService_Save_RejectsBenchWithBattingOrder(t *testing.T) {
	st, roster := newRosteredStore(t)
	service := newLineupService(st)

	entries := fullLineup(roster)
	entries[9].BattingOrder = intPtr(1)

	_, err := service.Save(t.Context(), memberPrincipal("usr-ivy"), "team-otters", entries)
	if !errors.Is(err, lineup.ErrBenchHasBattingOrder) {
		t.Fatalf("expected ErrBenchHasBattingOrder, got %v", err)
	}
}

func TestLineupService_GetByTeam_UnknownTeam(t *testing.T) {
	st, _ := newRosteredStore(t)
	service := newLineupService(st)

	_, err := service.GetByTeam(t.Context(), "team-ghosts")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
