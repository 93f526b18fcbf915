package usecase

import (
	"errors"
	"testing"

	"github.com/coachmate/matchday/internal/domain/matchevent"
)

func startedFixture(t *testing.T) *fixture {
	t.Helper()

	f := newFixture()
	if _, err := f.gameSvc.StartGame(t.Context(), StartGameInput{
		GameID: "gm-u17-001",
		Lineup: validU17Draft(),
	}); err != nil {
		t.Fatalf("start game failed: %v", err)
	}
	return f
}

func TestEventService_CreateRequiresPlayedGame(t *testing.T) {
	f := newFixture()

	_, err := f.eventSvc.CreateGoal(t.Context(), GoalInput{
		GameID:   "gm-u17-001",
		Minute:   10,
		ScorerID: "u17-fwd-01",
		GoalType: matchevent.GoalOpenPlay,
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for a scheduled game, got %v", err)
	}
}

func TestEventService_CreateValidatesUnionFields(t *testing.T) {
	f := startedFixture(t)

	_, err := f.eventSvc.CreateGoal(t.Context(), GoalInput{
		GameID:   "gm-u17-001",
		Minute:   200,
		ScorerID: "u17-fwd-01",
		GoalType: matchevent.GoalOpenPlay,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for a minute past full time, got %v", err)
	}

	_, err = f.eventSvc.CreateGoal(t.Context(), GoalInput{
		GameID:       "gm-u17-001",
		Minute:       10,
		ScorerID:     "u17-fwd-01",
		AssistedByID: "u17-fwd-01",
		GoalType:     matchevent.GoalOpenPlay,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for scorer assisting himself, got %v", err)
	}

	_, err = f.eventSvc.CreateSubstitution(t.Context(), SubstitutionInput{
		GameID:      "gm-u17-001",
		Minute:      60,
		PlayerOutID: "u17-mid-01",
		PlayerInID:  "u17-mid-01",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for a self-substitution, got %v", err)
	}
}

func TestEventService_CreateRejectsUnrosteredPlayers(t *testing.T) {
	f := startedFixture(t)

	// u17-fwd-04 exists on the team but was left out of the matchday squad.
	_, err := f.eventSvc.CreateGoal(t.Context(), GoalInput{
		GameID:   "gm-u17-001",
		Minute:   10,
		ScorerID: "u17-fwd-04",
		GoalType: matchevent.GoalOpenPlay,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for an unrostered scorer, got %v", err)
	}
}

func TestEventService_UpdateAndDeleteAreTypeChecked(t *testing.T) {
	f := startedFixture(t)

	goal, err := f.eventSvc.CreateGoal(t.Context(), GoalInput{
		GameID:   "gm-u17-001",
		Minute:   30,
		ScorerID: "u17-fwd-01",
		GoalType: matchevent.GoalOpenPlay,
	})
	if err != nil {
		t.Fatalf("create goal failed: %v", err)
	}

	// A goal cannot be rewritten through the card surface.
	_, err = f.eventSvc.UpdateCard(t.Context(), goal.ID, CardInput{
		GameID:   "gm-u17-001",
		Minute:   30,
		PlayerID: "u17-fwd-01",
		CardType: matchevent.CardYellow,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a cross-type update, got %v", err)
	}

	err = f.eventSvc.Delete(t.Context(), "gm-u17-001", goal.ID, matchevent.TypeCard)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a cross-type delete, got %v", err)
	}

	updated, err := f.eventSvc.UpdateGoal(t.Context(), goal.ID, GoalInput{
		GameID:       "gm-u17-001",
		Minute:       31,
		ScorerID:     "u17-fwd-01",
		AssistedByID: "u17-mid-01",
		GoalType:     matchevent.GoalFreeKick,
	})
	if err != nil {
		t.Fatalf("update goal failed: %v", err)
	}
	if updated.Minute != 31 || updated.GoalType != matchevent.GoalFreeKick {
		t.Fatalf("expected the update applied, got %+v", updated)
	}
	if !updated.CreatedAt.Equal(goal.CreatedAt) {
		t.Fatal("expected created_at preserved across updates")
	}

	if err := f.eventSvc.Delete(t.Context(), "gm-u17-001", goal.ID, matchevent.TypeGoal); err != nil {
		t.Fatalf("delete goal failed: %v", err)
	}

	events, err := f.eventSvc.ListByGame(t.Context(), "gm-u17-001")
	if err != nil {
		t.Fatalf("list events failed: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected an empty ledger after delete, got %d events", len(events))
	}
}

func TestEventService_TimelineAndScore(t *testing.T) {
	f := startedFixture(t)

	if _, err := f.eventSvc.CreateSubstitution(t.Context(), SubstitutionInput{
		GameID:      "gm-u17-001",
		Minute:      60,
		PlayerOutID: "u17-mid-01",
		PlayerInID:  "u17-mid-05",
	}); err != nil {
		t.Fatalf("create substitution failed: %v", err)
	}
	if _, err := f.eventSvc.CreateGoal(t.Context(), GoalInput{
		GameID:   "gm-u17-001",
		Minute:   12,
		ScorerID: "u17-fwd-01",
		GoalType: matchevent.GoalPenalty,
	}); err != nil {
		t.Fatalf("create goal failed: %v", err)
	}
	if _, err := f.eventSvc.CreateGoal(t.Context(), GoalInput{
		GameID:         "gm-u17-001",
		Minute:         80,
		GoalType:       matchevent.GoalOpenPlay,
		IsOpponentGoal: true,
	}); err != nil {
		t.Fatalf("create opponent goal failed: %v", err)
	}

	timeline, err := f.eventSvc.Timeline(t.Context(), "gm-u17-001")
	if err != nil {
		t.Fatalf("timeline failed: %v", err)
	}
	if len(timeline) != 3 {
		t.Fatalf("expected 3 events, got %d", len(timeline))
	}
	if timeline[0].Minute != 12 || timeline[1].Minute != 60 || timeline[2].Minute != 80 {
		t.Fatalf("expected minute order 12,60,80; got %d,%d,%d",
			timeline[0].Minute, timeline[1].Minute, timeline[2].Minute)
	}

	score, err := f.eventSvc.Score(t.Context(), "gm-u17-001")
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if score.Ours != 1 || score.Opponent != 1 {
		t.Fatalf("expected 1-1, got %d-%d", score.Ours, score.Opponent)
	}
}

func TestEventService_ListByTypeFiltersTheLedger(t *testing.T) {
	f := startedFixture(t)

	if _, err := f.eventSvc.CreateGoal(t.Context(), GoalInput{
		GameID:   "gm-u17-001",
		Minute:   25,
		ScorerID: "u17-fwd-02",
		GoalType: matchevent.GoalOpenPlay,
	}); err != nil {
		t.Fatalf("create goal failed: %v", err)
	}
	if _, err := f.eventSvc.CreateCard(t.Context(), CardInput{
		GameID:   "gm-u17-001",
		Minute:   40,
		PlayerID: "u17-def-01",
		CardType: matchevent.CardYellow,
	}); err != nil {
		t.Fatalf("create card failed: %v", err)
	}

	goals, err := f.eventSvc.ListByType(t.Context(), "gm-u17-001", matchevent.TypeGoal)
	if err != nil {
		t.Fatalf("list goals failed: %v", err)
	}
	if len(goals) != 1 || goals[0].ScorerID != "u17-fwd-02" {
		t.Fatalf("expected the single goal event, got %+v", goals)
	}

	cards, err := f.eventSvc.ListByType(t.Context(), "gm-u17-001", matchevent.TypeCard)
	if err != nil {
		t.Fatalf("list cards failed: %v", err)
	}
	if len(cards) != 1 || cards[0].PlayerID != "u17-def-01" {
		t.Fatalf("expected the single card event, got %+v", cards)
	}

	subs, err := f.eventSvc.ListByType(t.Context(), "gm-u17-001", matchevent.TypeSubstitution)
	if err != nil {
		t.Fatalf("list substitutions failed: %v", err)
	}
	if len(subs) != 0 {
		t.Fatalf("expected no substitutions, got %d", len(subs))
	}
}
