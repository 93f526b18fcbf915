package usecase

import (
	"errors"
	"testing"

	"github.com/coachmate/matchday/internal/domain/matchevent"
	"github.com/coachmate/matchday/internal/domain/report"
)

func TestReportService_UpsertCreateThenUpdate(t *testing.T) {
	f := startedFixture(t)

	ratings := report.Ratings{Physical: 4, Technical: 3, Tactical: 5, Mental: 4}
	created, err := f.reportSvc.Upsert(t.Context(), UpsertReportInput{
		GameID:   "gm-u17-001",
		PlayerID: "u17-fwd-01",
		Ratings:  ratings,
		Notes:    "led the line well",
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if created.Ratings != ratings {
		t.Fatalf("expected ratings stored, got %+v", created.Ratings)
	}
	if created.AutoFilled {
		t.Fatal("expected a hand-written report not marked auto-filled")
	}

	updated, err := f.reportSvc.Upsert(t.Context(), UpsertReportInput{
		GameID:   "gm-u17-001",
		PlayerID: "u17-fwd-01",
		Ratings:  report.Ratings{Physical: 2, Technical: 2, Tactical: 2, Mental: 2},
	})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("expected created_at preserved across upserts")
	}

	reports, err := f.reportSvc.ListByGame(t.Context(), "gm-u17-001")
	if err != nil {
		t.Fatalf("list reports failed: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected a single report, got %d", len(reports))
	}
}

func TestReportService_UpsertRejectsInvalidInput(t *testing.T) {
	f := startedFixture(t)

	_, err := f.reportSvc.Upsert(t.Context(), UpsertReportInput{
		GameID:   "gm-u17-001",
		PlayerID: "u17-fwd-04", // on the team but not in the matchday squad
		Ratings:  report.DefaultRatings(),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for an unrostered player, got %v", err)
	}

	_, err = f.reportSvc.Upsert(t.Context(), UpsertReportInput{
		GameID:   "gm-u17-001",
		PlayerID: "u17-fwd-01",
		Ratings:  report.Ratings{Physical: 6, Technical: 3, Tactical: 3, Mental: 3},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for an out-of-range rating, got %v", err)
	}

	scheduled := newFixture()
	_, err = scheduled.reportSvc.Upsert(t.Context(), UpsertReportInput{
		GameID:   "gm-u17-001",
		PlayerID: "u17-fwd-01",
		Ratings:  report.DefaultRatings(),
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict before kickoff, got %v", err)
	}
}

func TestReportService_AutofillSkipsExistingReports(t *testing.T) {
	f := startedFixture(t)

	if _, err := f.reportSvc.Upsert(t.Context(), UpsertReportInput{
		GameID:   "gm-u17-001",
		PlayerID: "u17-fwd-01",
		Ratings:  report.Ratings{Physical: 5, Technical: 5, Tactical: 5, Mental: 5},
	}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	filled, err := f.reportSvc.AutofillMissing(t.Context(), "gm-u17-001")
	if err != nil {
		t.Fatalf("autofill failed: %v", err)
	}
	if len(filled) != 13 {
		t.Fatalf("expected 13 players filled around the existing report, got %d", len(filled))
	}
	for _, playerID := range filled {
		if playerID == "u17-fwd-01" {
			t.Fatal("expected the hand-written report left untouched")
		}
	}

	item, err := f.reportSvc.GetByGameAndPlayer(t.Context(), "gm-u17-001", "u17-gk-02")
	if err != nil {
		t.Fatalf("get report failed: %v", err)
	}
	if !item.AutoFilled {
		t.Fatal("expected the generated report marked auto-filled")
	}
	if item.Ratings != report.DefaultRatings() {
		t.Fatalf("expected default ratings, got %+v", item.Ratings)
	}

	again, err := f.reportSvc.AutofillMissing(t.Context(), "gm-u17-001")
	if err != nil {
		t.Fatalf("second autofill failed: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("expected nothing left to fill, got %v", again)
	}
}

func TestReportService_DerivedFiguresFollowTheLedger(t *testing.T) {
	f := startedFixture(t)

	if _, err := f.reportSvc.AutofillMissing(t.Context(), "gm-u17-001"); err != nil {
		t.Fatalf("autofill failed: %v", err)
	}

	// Event writes refresh the derived figures through the wired refresher.
	if _, err := f.eventSvc.CreateGoal(t.Context(), GoalInput{
		GameID:       "gm-u17-001",
		Minute:       40,
		ScorerID:     "u17-fwd-01",
		AssistedByID: "u17-mid-01",
		GoalType:     matchevent.GoalOpenPlay,
	}); err != nil {
		t.Fatalf("create goal failed: %v", err)
	}
	if _, err := f.eventSvc.CreateSubstitution(t.Context(), SubstitutionInput{
		GameID:      "gm-u17-001",
		Minute:      70,
		PlayerOutID: "u17-fwd-01",
		PlayerInID:  "u17-mid-05",
	}); err != nil {
		t.Fatalf("create substitution failed: %v", err)
	}

	scorer, err := f.reportSvc.GetByGameAndPlayer(t.Context(), "gm-u17-001", "u17-fwd-01")
	if err != nil {
		t.Fatalf("get scorer report failed: %v", err)
	}
	if scorer.Derived.Goals != 1 || scorer.Derived.MinutesPlayed != 70 {
		t.Fatalf("expected 1 goal over 70 minutes, got %+v", scorer.Derived)
	}

	assister, err := f.reportSvc.GetByGameAndPlayer(t.Context(), "gm-u17-001", "u17-mid-01")
	if err != nil {
		t.Fatalf("get assister report failed: %v", err)
	}
	if assister.Derived.Assists != 1 {
		t.Fatalf("expected 1 assist, got %+v", assister.Derived)
	}

	sub, err := f.reportSvc.GetByGameAndPlayer(t.Context(), "gm-u17-001", "u17-mid-05")
	if err != nil {
		t.Fatalf("get substitute report failed: %v", err)
	}
	if sub.Derived.MinutesPlayed != 20 {
		t.Fatalf("expected the substitute to log 20 minutes, got %+v", sub.Derived)
	}

	aggregates, err := f.reportSvc.Aggregates(t.Context(), "gm-u17-001")
	if err != nil {
		t.Fatalf("aggregates failed: %v", err)
	}
	if aggregates["u17-fwd-01"].Goals != 1 {
		t.Fatalf("expected the ledger aggregate to match, got %+v", aggregates["u17-fwd-01"])
	}
}
