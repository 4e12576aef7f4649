package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/pennantrace/sandlot/internal/domain/match"
	"github.com/pennantrace/sandlot/internal/domain/team"
	matchmock "github.com/pennantrace/sandlot/internal/mocks/domain/match"
	teammock "github.com/pennantrace/sandlot/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func TestStandingsService_Table_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewStandingsService(matchRepo, teamRepo)

	ivy, marco := "usr-ivy", "usr-marco"
	day := "day-01"
	scoreA, scoreB := 5, 2
	finished := []match.Match{
		{ID: "m-001", TeamAID: "team-otters", TeamBID: "team-comets", MatchDayID: &day,
			State: match.StateFinished, TeamAScore: &scoreA, TeamBScore: &scoreB},
	}

	matchRepo.
		On("ListFinished", mock.Anything).
		Return(finished, nil).
		Once()
	teamRepo.
		On("List", mock.Anything).
		Return([]team.Team{
			{ID: "team-otters", OwnerUserID: &ivy, Name: "Riverside Otters", Abbreviation: "OTT"},
			{ID: "team-comets", OwnerUserID: &marco, Name: "Dockyard Comets", Abbreviation: "COM"},
		}, nil).
		Once()
	matchRepo.
		On("ListMatchDays", mock.Anything).
		Return([]match.MatchDay{{ID: day, OrderInSeason: 1}}, nil).
		Once()

	table, err := service.Table(ctx)
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("unexpected row count: got=%d want=2", len(table.Rows))
	}
	if table.Rows[0].UserID != ivy {
		t.Fatalf("unexpected leader: got=%s want=%s", table.Rows[0].UserID, ivy)
	}
	if table.Rows[0].RunDifferential != 3 {
		t.Fatalf("unexpected run differential: got=%d want=3", table.Rows[0].RunDifferential)
	}
}

func TestStandingsService_Table_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewStandingsService(matchRepo, teamRepo)

	repoErr := errors.New("connection reset")
	matchRepo.
		On("ListFinished", mock.Anything).
		Return(nil, repoErr).
		Once()

	if _, err := service.Table(ctx); !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error to surface, got %v", err)
	}
}
