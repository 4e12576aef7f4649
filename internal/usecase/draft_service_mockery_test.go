package usecase

import (
	"context"
	"testing"

	"github.com/pennantrace/sandlot/internal/domain/season"
	seasonmock "github.com/pennantrace/sandlot/internal/mocks/domain/season"
	"github.com/stretchr/testify/mock"
)

func TestDraftService_CurrentDrafter_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seasonRepo := seasonmock.NewRepository(t)

	service := NewDraftService(nil, seasonRepo, nil, nil, nil, nil, discardLogger())

	drafter := "usr-ivy"
	seasonRepo.
		On("Get", mock.Anything).
		Return(season.Season{
			ID:                    season.SingletonID,
			State:                 season.StateDrafting,
			CurrentDraftingUserID: &drafter,
		}, nil).
		Once()

	got, err := service.CurrentDrafter(ctx)
	if err != nil {
		t.Fatalf("current drafter: %v", err)
	}
	if got == nil || *got != drafter {
		t.Fatalf("unexpected drafter: got=%v want=%s", got, drafter)
	}
}
