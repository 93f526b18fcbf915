package matchevent

import "testing"

func TestDerivePlayerAggregates_StarterFullMatch(t *testing.T) {
	starters := map[string]struct{}{"p-9": {}}
	events := []Event{
		{Type: TypeGoal, Minute: 23, ScorerID: "p-9"},
		{Type: TypeGoal, Minute: 70, ScorerID: "p-10", AssistedByID: "p-9"},
		{Type: TypeGoal, Minute: 80, IsOpponentGoal: true, ScorerID: "p-9"},
	}

	agg := DerivePlayerAggregates("p-9", starters, events, 90)

	if agg.MinutesPlayed != 90 {
		t.Fatalf("expected 90 minutes, got %d", agg.MinutesPlayed)
	}
	if agg.Goals != 1 {
		t.Fatalf("expected opponent goals ignored, got %d goals", agg.Goals)
	}
	if agg.Assists != 1 {
		t.Fatalf("expected 1 assist, got %d", agg.Assists)
	}
}

func TestDerivePlayerAggregates_SubstitutionWindow(t *testing.T) {
	starters := map[string]struct{}{"p-9": {}}
	events := []Event{
		{Type: TypeSubstitution, Minute: 60, PlayerOutID: "p-9", PlayerInID: "p-14"},
		{Type: TypeGoal, Minute: 75, ScorerID: "p-14"},
	}

	out := DerivePlayerAggregates("p-9", starters, events, 90)
	if out.MinutesPlayed != 60 {
		t.Fatalf("expected the substituted starter to log 60 minutes, got %d", out.MinutesPlayed)
	}

	in := DerivePlayerAggregates("p-14", starters, events, 90)
	if in.MinutesPlayed != 30 {
		t.Fatalf("expected the substitute to log 30 minutes, got %d", in.MinutesPlayed)
	}
	if in.Goals != 1 {
		t.Fatalf("expected the substitute's goal counted, got %d", in.Goals)
	}
}

func TestDerivePlayerAggregates_RedCardEndsParticipation(t *testing.T) {
	starters := map[string]struct{}{"p-4": {}}
	events := []Event{
		{Type: TypeCard, Minute: 30, PlayerID: "p-4", CardType: CardYellow},
		{Type: TypeCard, Minute: 55, PlayerID: "p-4", CardType: CardRed},
	}

	agg := DerivePlayerAggregates("p-4", starters, events, 90)
	if agg.MinutesPlayed != 55 {
		t.Fatalf("expected a red card to cap minutes at 55, got %d", agg.MinutesPlayed)
	}
}

func TestDerivePlayerAggregates_NeverEnteredHasNoMinutes(t *testing.T) {
	agg := DerivePlayerAggregates("p-20", map[string]struct{}{"p-9": {}}, nil, 90)
	if agg.MinutesPlayed != 0 || agg.Goals != 0 || agg.Assists != 0 {
		t.Fatalf("expected zero aggregates for an unused player, got %+v", agg)
	}
}

func TestDerivePlayerAggregates_ExtraTimeExtendsWindow(t *testing.T) {
	starters := map[string]struct{}{"p-9": {}}

	agg := DerivePlayerAggregates("p-9", starters, nil, 96)
	if agg.MinutesPlayed != 96 {
		t.Fatalf("expected minutes bounded by total match length, got %d", agg.MinutesPlayed)
	}
}
