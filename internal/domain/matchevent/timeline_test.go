package matchevent

import (
	"testing"
	"time"
)

func TestDeriveScore_CountsGoalEventsOnly(t *testing.T) {
	events := []Event{
		{Type: TypeGoal, ScorerID: "p-9"},
		{Type: TypeGoal, ScorerID: "p-10"},
		{Type: TypeGoal, IsOpponentGoal: true},
		{Type: TypeCard, PlayerID: "p-4", CardType: CardYellow},
		{Type: TypeSubstitution, PlayerOutID: "p-9", PlayerInID: "p-14"},
	}

	score := DeriveScore(events)

	if score.Ours != 2 || score.Opponent != 1 {
		t.Fatalf("expected 2-1, got %d-%d", score.Ours, score.Opponent)
	}
}

func TestDeriveScore_EmptyLedgerIsNilNil(t *testing.T) {
	score := DeriveScore(nil)
	if score.Ours != 0 || score.Opponent != 0 {
		t.Fatalf("expected 0-0, got %d-%d", score.Ours, score.Opponent)
	}
}

func TestSortTimeline_MinuteThenTypeThenCreation(t *testing.T) {
	base := time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC)
	events := []Event{
		{ID: "sub-60", Type: TypeSubstitution, Minute: 60, CreatedAt: base.Add(3 * time.Minute)},
		{ID: "goal-60-late", Type: TypeGoal, Minute: 60, CreatedAt: base.Add(5 * time.Minute)},
		{ID: "card-60", Type: TypeCard, Minute: 60, CreatedAt: base.Add(time.Minute)},
		{ID: "goal-12", Type: TypeGoal, Minute: 12, CreatedAt: base.Add(10 * time.Minute)},
		{ID: "goal-60-early", Type: TypeGoal, Minute: 60, CreatedAt: base},
	}

	sorted := SortTimeline(events)

	want := []string{"goal-12", "goal-60-early", "goal-60-late", "card-60", "sub-60"}
	if len(sorted) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(sorted))
	}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, sorted[i].ID)
		}
	}

	if events[0].ID != "sub-60" {
		t.Fatal("expected the input slice to stay untouched")
	}
}
