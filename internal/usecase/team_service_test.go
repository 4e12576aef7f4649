package usecase

import (
	"errors"
	"testing"

	"github.com/pennantrace/sandlot/internal/domain/conference"
	"github.com/pennantrace/sandlot/internal/infrastructure/repository/memory"
)

func newTeamService(st *memory.Store) *TeamService {
	return NewTeamService(st, st.Teams(), st.Conferences(), discardLogger())
}

func TestTeamService_Claim_AssignsOwnership(t *testing.T) {
	st := newSeededStore(t)
	service := newTeamService(st)

	claimed, err := service.Claim(t.Context(), memberPrincipal("usr-ivy"), "team-otters")
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if claimed.OwnerUserID == nil || *claimed.OwnerUserID != "usr-ivy" {
		t.Fatalf("expected owner usr-ivy, got %v", claimed.OwnerUserID)
	}
}

func TestTeamService_Claim_RejectsSecondTeam(t *testing.T) {
	st := newSeededStore(t)
	service := newTeamService(st)
	ctx := t.Context()

	if _, err := service.Claim(ctx, memberPrincipal("usr-ivy"), "team-otters"); err != nil {
		t.Fatalf("first claim failed: %v", err)
	}
	_, err := service.Claim(ctx, memberPrincipal("usr-ivy"), "team-comets")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput on second claim, got %v", err)
	}
}

func TestTeamService_Claim_RejectsOwnedTeam(t *testing.T) {
	st := newSeededStore(t)
	service := newTeamService(st)
	ctx := t.Context()

	if _, err := service.Claim(ctx, memberPrincipal("usr-ivy"), "team-otters"); err != nil {
		t.Fatalf("first claim failed: %v", err)
	}
	_, err := service.Claim(ctx, memberPrincipal("usr-marco"), "team-otters")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput on claiming an owned team, got %v", err)
	}
}

func TestTeamService_AssignRandomTeams_PairsTeamlessUsers(t *testing.T) {
	st := newSeededStore(t)
	service := newTeamService(st)
	service.shuffle = func(n int, swap func(i, j int)) {}
	ctx := t.Context()

	if _, err := service.Claim(ctx, memberPrincipal("usr-ivy"), "team-otters"); err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	// Seed has 4 users and 4 teams; ivy holds one, leaving 3 of each.
	assigned, err := service.AssignRandomTeams(ctx, adminPrincipal())
	if err != nil {
		t.Fatalf("assign random teams failed: %v", err)
	}
	if assigned != 3 {
		t.Fatalf("expected 3 assignments, got %d", assigned)
	}

	teams, err := st.Teams().List(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	for _, tm := range teams {
		if tm.OwnerUserID == nil {
			t.Fatalf("team %s left unowned", tm.ID)
		}
	}
}

func TestTeamService_AssignRandomTeams_RequiresAdmin(t *testing.T) {
	st := newSeededStore(t)
	service := newTeamService(st)

	if _, err := service.AssignRandomTeams(t.Context(), memberPrincipal("usr-ivy")); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestTeamService_Rename_OwnerOnly(t *testing.T) {
	st := newDraftingStore(t)
	service := newTeamService(st)
	ctx := t.Context()

	renamed, err := service.Rename(ctx, memberPrincipal("usr-ivy"), "team-otters", "Riverbend Otters", "RVO")
	if err != nil {
		t.Fatalf("rename by owner failed: %v", err)
	}
	if renamed.Name != "Riverbend Otters" || renamed.Abbreviation != "RVO" {
		t.Fatalf("unexpected rename result: %+v", renamed)
	}

	if _, err := service.Rename(ctx, memberPrincipal("usr-marco"), "team-otters", "Stolen Otters", "STL"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
}

func TestTeamService_SetCaptain_RequiresRosterMembership(t *testing.T) {
	st := newDraftingStore(t)
	service := newTeamService(st)
	ctx := t.Context()

	_, err := service.SetCaptain(ctx, memberPrincipal("usr-ivy"), "team-otters", strPtr("ply-001"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for off-roster captain, got %v", err)
	}

	if err := st.Players().UpdateTeam(ctx, "ply-001", strPtr("team-otters")); err != nil {
		t.Fatalf("roster player: %v", err)
	}
	updated, err := service.SetCaptain(ctx, memberPrincipal("usr-ivy"), "team-otters", strPtr("ply-001"))
	if err != nil {
		t.Fatalf("set captain failed: %v", err)
	}
	if updated.CaptainID == nil || *updated.CaptainID != "ply-001" {
		t.Fatalf("expected captain ply-001, got %v", updated.CaptainID)
	}

	cleared, err := service.SetCaptain(ctx, memberPrincipal("usr-ivy"), "team-otters", nil)
	if err != nil {
		t.Fatalf("clear captain failed: %v", err)
	}
	if cleared.CaptainID != nil {
		t.Fatalf("expected captain cleared, got %v", *cleared.CaptainID)
	}
}

func TestTeamService_RemovePlayer_ReleasesAndPrunes(t *testing.T) {
	st := newDraftingStore(t)
	service := newTeamService(st)
	ctx := t.Context()

	if err := st.Players().UpdateTeam(ctx, "ply-001", strPtr("team-otters")); err != nil {
		t.Fatalf("roster player: %v", err)
	}
	if err := st.Lineups().UpdateStarred(ctx, "ply-001", true); err != nil {
		t.Fatalf("create lineup entry: %v", err)
	}
	if _, err := service.SetCaptain(ctx, memberPrincipal("usr-ivy"), "team-otters", strPtr("ply-001")); err != nil {
		t.Fatalf("set captain: %v", err)
	}

	if err := service.RemovePlayer(ctx, memberPrincipal("usr-ivy"), "team-otters", "ply-001"); err != nil {
		t.Fatalf("remove player failed: %v", err)
	}

	item, ok, err := st.Players().GetByID(ctx, "ply-001")
	if err != nil || !ok {
		t.Fatalf("reload player: ok=%v err=%v", ok, err)
	}
	if item.TeamID != nil {
		t.Fatalf("expected free agent, still on %s", *item.TeamID)
	}
	if _, ok, err := st.Lineups().GetByPlayer(ctx, "ply-001"); err != nil || ok {
		t.Fatalf("expected lineup entry pruned, ok=%v err=%v", ok, err)
	}
	tm, ok, err := st.Teams().GetByID(ctx, "team-otters")
	if err != nil || !ok {
		t.Fatalf("reload team: ok=%v err=%v", ok, err)
	}
	if tm.CaptainID != nil {
		t.Fatalf("expected captain cleared with removal, got %v", *tm.CaptainID)
	}
}

func TestTeamService_Conferences(t *testing.T) {
	st := newDraftingStore(t)
	service := newTeamService(st)
	ctx := t.Context()

	if err := service.CreateConference(ctx, memberPrincipal("usr-ivy"), conference.Conference{ID: "conf-east", Name: "East"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}
	if err := service.CreateConference(ctx, adminPrincipal(), conference.Conference{ID: "conf-east", Name: "East"}); err != nil {
		t.Fatalf("create conference failed: %v", err)
	}

	if _, err := service.SetConference(ctx, adminPrincipal(), "team-otters", strPtr("conf-west")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown conference, got %v", err)
	}

	updated, err := service.SetConference(ctx, adminPrincipal(), "team-otters", strPtr("conf-east"))
	if err != nil {
		t.Fatalf("set conference failed: %v", err)
	}
	if updated.ConferenceID == nil || *updated.ConferenceID != "conf-east" {
		t.Fatalf("expected conference conf-east, got %v", updated.ConferenceID)
	}
}
