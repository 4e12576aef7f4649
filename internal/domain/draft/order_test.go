package draft

import (
	"errors"
	"testing"
)

func TestNextTurnIndex_SnakesThroughRounds(t *testing.T) {
	turnByUser := map[string]int{"alice": 1, "bob": 2, "cara": 3}
	want := []string{"alice", "bob", "cara", "cara", "bob", "alice", "alice", "bob", "cara"}

	for picks, expected := range want {
		got, err := NextDrafter(turnByUser, picks)
		if err != nil {
			t.Fatalf("pick %d: %v", picks, err)
		}
		if got != expected {
			t.Fatalf("pick %d: expected %s, got %s", picks, expected, got)
		}
	}
}

func TestNextTurnIndex_SingleParticipant(t *testing.T) {
	for picks := 0; picks < 5; picks++ {
		if got := NextTurnIndex(picks, 1); got != 0 {
			t.Fatalf("pick %d: expected index 0, got %d", picks, got)
		}
	}
}

func TestNextTurnIndex_TwoParticipants(t *testing.T) {
	want := []int{0, 1, 1, 0, 0, 1, 1, 0}
	for picks, expected := range want {
		if got := NextTurnIndex(picks, 2); got != expected {
			t.Fatalf("pick %d: expected index %d, got %d", picks, expected, got)
		}
	}
}

func TestNextDrafter_NoParticipants(t *testing.T) {
	if _, err := NextDrafter(nil, 0); !errors.Is(err, ErrNoParticipants) {
		t.Fatalf("expected ErrNoParticipants, got %v", err)
	}
}
