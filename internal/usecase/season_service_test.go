package usecase

import (
	"errors"
	"testing"

	"github.com/pennantrace/sandlot/internal/domain/season"
)

func TestSeasonService_SetState_RequiresAdmin(t *testing.T) {
	st := newSeededStore(t)
	service := NewSeasonService(st, st.Seasons(), nil, nil, discardLogger())

	_, err := service.SetState(t.Context(), memberPrincipal("usr-ivy"), season.StateDrafting)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestSeasonService_SetState_RejectsUnknownState(t *testing.T) {
	st := newSeededStore(t)
	service := NewSeasonService(st, st.Seasons(), nil, nil, discardLogger())

	_, err := service.SetState(t.Context(), adminPrincipal(), season.State("rain-delay"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSeasonService_SetState_StartDraftingWipesRostersAndLineups(t *testing.T) {
	st := newDraftingStore(t)
	ctx := t.Context()

	// Rewind to pre-season with leftover state from a previous run.
	current, err := st.Seasons().Get(ctx)
	if err != nil {
		t.Fatalf("get season: %v", err)
	}
	current.State = season.StatePreSeason
	current.CurrentDraftingUserID = nil
	if err := st.Seasons().Update(ctx, current); err != nil {
		t.Fatalf("rewind season: %v", err)
	}
	if err := st.Players().UpdateTeam(ctx, "ply-001", strPtr("team-otters")); err != nil {
		t.Fatalf("leave stale roster: %v", err)
	}
	if err := st.Lineups().UpdateStarred(ctx, "ply-001", true); err != nil {
		t.Fatalf("leave stale lineup entry: %v", err)
	}

	service := NewSeasonService(st, st.Seasons(), nil, nil, discardLogger())
	service.shuffle = func(n int, swap func(i, j int)) {} // keep seeded order

	updated, err := service.SetState(ctx, adminPrincipal(), season.StateDrafting)
	if err != nil {
		t.Fatalf("start drafting failed: %v", err)
	}
	if updated.State != season.StateDrafting {
		t.Fatalf("expected drafting state, got %s", updated.State)
	}
	if updated.CurrentDraftingUserID == nil {
		t.Fatal("expected a current drafter after entering the drafting phase")
	}

	item, ok, err := st.Players().GetByID(ctx, "ply-001")
	if err != nil || !ok {
		t.Fatalf("reload player: ok=%v err=%v", ok, err)
	}
	if item.TeamID != nil {
		t.Fatalf("expected rosters wiped, player still on %s", *item.TeamID)
	}
	if _, ok, err := st.Lineups().GetByPlayer(ctx, "ply-001"); err != nil || ok {
		t.Fatalf("expected lineup entries wiped, ok=%v err=%v", ok, err)
	}

	order, err := st.Seasons().ListTurnOrder(ctx)
	if err != nil {
		t.Fatalf("list turn order: %v", err)
	}
	if len(order) != 3 {
		t.Fatalf("expected 3 turn order rows, got %d", len(order))
	}
	for i, row := range order {
		if row.DraftingTurn != i+1 {
			t.Fatalf("expected contiguous turns, got %d at index %d", row.DraftingTurn, i)
		}
	}
	if *updated.CurrentDraftingUserID != order[0].UserID {
		t.Fatalf("expected drafter %s, got %s", order[0].UserID, *updated.CurrentDraftingUserID)
	}
}

func TestSeasonService_SetState_StartDraftingNeedsOwners(t *testing.T) {
	st := newSeededStore(t)
	service := NewSeasonService(st, st.Seasons(), nil, nil, discardLogger())

	_, err := service.SetState(t.Context(), adminPrincipal(), season.StateDrafting)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput when no team is owned, got %v", err)
	}

	current, getErr := st.Seasons().Get(t.Context())
	if getErr != nil {
		t.Fatalf("get season: %v", getErr)
	}
	if current.State != season.StatePreSeason {
		t.Fatalf("failed transition must not change state, got %s", current.State)
	}
}

func TestSeasonService_SetState_PlayingClearsCurrentDrafter(t *testing.T) {
	st := newDraftingStore(t)
	service := NewSeasonService(st, st.Seasons(), nil, nil, discardLogger())

	updated, err := service.SetState(t.Context(), adminPrincipal(), season.StatePlaying)
	if err != nil {
		t.Fatalf("move to playing failed: %v", err)
	}
	if updated.State != season.StatePlaying {
		t.Fatalf("expected playing state, got %s", updated.State)
	}
	if updated.CurrentDraftingUserID != nil {
		t.Fatalf("expected drafter cleared, got %s", *updated.CurrentDraftingUserID)
	}
}

func TestSeasonService_SetState_AdminOverrideSkipsSideEffects(t *testing.T) {
	st := newDraftingStore(t)
	ctx := t.Context()
	if err := st.Players().UpdateTeam(ctx, "ply-001", strPtr("team-otters")); err != nil {
		t.Fatalf("assign player: %v", err)
	}

	service := NewSeasonService(st, st.Seasons(), nil, nil, discardLogger())

	// drafting → finished is an override edge: just the state write.
	updated, err := service.SetState(ctx, adminPrincipal(), season.StateFinished)
	if err != nil {
		t.Fatalf("override transition failed: %v", err)
	}
	if updated.State != season.StateFinished {
		t.Fatalf("expected finished state, got %s", updated.State)
	}

	item, ok, err := st.Players().GetByID(ctx, "ply-001")
	if err != nil || !ok {
		t.Fatalf("reload player: ok=%v err=%v", ok, err)
	}
	if item.TeamID == nil || *item.TeamID != "team-otters" {
		t.Fatalf("override transition must not touch rosters, got %v", item.TeamID)
	}
}
