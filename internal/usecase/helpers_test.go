package usecase

import (
	"io"
	"log/slog"
	"testing"

	"github.com/pennantrace/sandlot/internal/domain/season"
	"github.com/pennantrace/sandlot/internal/domain/user"
	"github.com/pennantrace/sandlot/internal/infrastructure/repository/memory"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func adminPrincipal() user.Principal {
	return user.Principal{UserID: "usr-admin", Role: user.RoleAdmin}
}

func memberPrincipal(userID string) user.Principal {
	return user.Principal{UserID: userID, Role: user.RoleUser}
}

// newSeededStore loads the seed users, teams, players, match days, and
// matches into a fresh store. Teams start unowned and the season starts in
// the pre-season phase.
func newSeededStore(t *testing.T) *memory.Store {
	t.Helper()
	st := memory.NewStore()
	ctx := t.Context()

	for _, u := range memory.SeedUsers() {
		if err := st.Users().Create(ctx, u); err != nil {
			t.Fatalf("seed user %s: %v", u.ID, err)
		}
	}
	for _, tm := range memory.SeedTeams() {
		if err := st.Teams().Create(ctx, tm); err != nil {
			t.Fatalf("seed team %s: %v", tm.ID, err)
		}
	}
	for _, p := range memory.SeedPlayers() {
		if err := st.Players().Create(ctx, p); err != nil {
			t.Fatalf("seed player %s: %v", p.ID, err)
		}
	}
	for _, d := range memory.SeedMatchDays() {
		if err := st.Matches().CreateMatchDay(ctx, d); err != nil {
			t.Fatalf("seed match day %s: %v", d.ID, err)
		}
	}
	for _, m := range memory.SeedMatches() {
		if err := st.Matches().Create(ctx, m); err != nil {
			t.Fatalf("seed match %s: %v", m.ID, err)
		}
	}

	return st
}

// newDraftingStore builds on newSeededStore: three teams claimed, the
// season mid-draft with a fixed ivy, marco, sana turn order, and ivy on
// the clock.
func newDraftingStore(t *testing.T) *memory.Store {
	t.Helper()
	st := newSeededStore(t)
	ctx := t.Context()

	owners := map[string]string{
		"team-otters": "usr-ivy",
		"team-comets": "usr-marco",
		"team-herons": "usr-sana",
	}
	for teamID, userID := range owners {
		tm, ok, err := st.Teams().GetByID(ctx, teamID)
		if err != nil || !ok {
			t.Fatalf("load team %s: ok=%v err=%v", teamID, ok, err)
		}
		tm.OwnerUserID = strPtr(userID)
		if err := st.Teams().Update(ctx, tm); err != nil {
			t.Fatalf("assign owner to %s: %v", teamID, err)
		}
	}

	order := []season.TurnOrder{
		{UserID: "usr-ivy", DraftingTurn: 1},
		{UserID: "usr-marco", DraftingTurn: 2},
		{UserID: "usr-sana", DraftingTurn: 3},
	}
	if err := st.Seasons().ReplaceTurnOrder(ctx, order); err != nil {
		t.Fatalf("seed turn order: %v", err)
	}

	current, err := st.Seasons().Get(ctx)
	if err != nil {
		t.Fatalf("get season: %v", err)
	}
	current.State = season.StateDrafting
	current.CurrentDraftingUserID = strPtr("usr-ivy")
	if err := st.Seasons().Update(ctx, current); err != nil {
		t.Fatalf("start drafting: %v", err)
	}

	return st
}
