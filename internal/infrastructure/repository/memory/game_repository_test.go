package memory

import (
	"testing"

	"github.com/coachmate/matchday/internal/domain/game"
	"github.com/coachmate/matchday/internal/domain/squad"
)

func benchDraft() squad.Draft {
	draft := squad.NewDraft(squad.DefaultLayoutKey)
	draft.Rosters["u17-mid-01"] = squad.StatusBench
	return draft
}

func TestGameRepository_LifecycleGuards(t *testing.T) {
	repo := NewGameRepository(SeedGames())

	saved, err := repo.SaveDraft(t.Context(), "gm-u17-001", benchDraft())
	if err != nil || !saved {
		t.Fatalf("expected draft saved while scheduled, got saved=%v err=%v", saved, err)
	}

	committed, err := repo.CommitLineup(t.Context(), "gm-u17-001", benchDraft())
	if err != nil || !committed {
		t.Fatalf("expected lineup committed, got committed=%v err=%v", committed, err)
	}

	item, exists, err := repo.GetByID(t.Context(), "gm-u17-001")
	if err != nil || !exists {
		t.Fatalf("get game failed: exists=%v err=%v", exists, err)
	}
	if item.Status != game.StatusPlayed {
		t.Fatalf("expected PLAYED, got %s", item.Status)
	}
	if item.LineupDraft != nil {
		t.Fatal("expected the working draft cleared at commit")
	}

	// A stale autosave racing the transition loses silently.
	saved, err = repo.SaveDraft(t.Context(), "gm-u17-001", benchDraft())
	if err != nil {
		t.Fatalf("save draft errored: %v", err)
	}
	if saved {
		t.Fatal("expected a draft write against a played game to be refused")
	}

	committed, err = repo.CommitLineup(t.Context(), "gm-u17-001", benchDraft())
	if err != nil || committed {
		t.Fatalf("expected a second commit refused, got committed=%v err=%v", committed, err)
	}

	finalized, err := repo.Finalize(t.Context(), "gm-u17-001", game.Score{Ours: 2, Opponent: 1}, game.TeamSummaries{General: "done"})
	if err != nil || !finalized {
		t.Fatalf("expected finalize from played, got finalized=%v err=%v", finalized, err)
	}

	finalized, err = repo.Finalize(t.Context(), "gm-u17-001", game.Score{}, game.TeamSummaries{})
	if err != nil || finalized {
		t.Fatalf("expected a second finalize refused, got finalized=%v err=%v", finalized, err)
	}

	item, _, _ = repo.GetByID(t.Context(), "gm-u17-001")
	if item.Status != game.StatusDone {
		t.Fatalf("expected DONE, got %s", item.Status)
	}
	if item.FinalScore == nil || item.FinalScore.Ours != 2 {
		t.Fatalf("expected the first final score kept, got %+v", item.FinalScore)
	}
}

func TestGameRepository_ClonesAreIsolated(t *testing.T) {
	repo := NewGameRepository(SeedGames())

	if _, err := repo.SaveDraft(t.Context(), "gm-u17-001", benchDraft()); err != nil {
		t.Fatalf("save draft failed: %v", err)
	}

	first, _, err := repo.GetByID(t.Context(), "gm-u17-001")
	if err != nil {
		t.Fatalf("get game failed: %v", err)
	}
	first.LineupDraft.Rosters["u17-mid-01"] = squad.StatusUnavailable

	second, _, err := repo.GetByID(t.Context(), "gm-u17-001")
	if err != nil {
		t.Fatalf("get game failed: %v", err)
	}
	if second.LineupDraft.Rosters["u17-mid-01"] != squad.StatusBench {
		t.Fatal("expected repository state isolated from caller mutations")
	}
}
