package squad

import (
	"testing"

	"github.com/coachmate/matchday/internal/domain/player"
)

func testPool() []player.Player {
	return []player.Player{
		{ID: "gk-1", Position: player.PositionGoalkeeper},
		{ID: "def-1", Position: player.PositionDefender},
		{ID: "def-2", Position: player.PositionDefender},
		{ID: "def-3", Position: player.PositionDefender},
		{ID: "def-4", Position: player.PositionDefender},
		{ID: "mid-1", Position: player.PositionMidfielder},
		{ID: "mid-2", Position: player.PositionMidfielder},
		{ID: "mid-3", Position: player.PositionMidfielder},
		{ID: "mid-4", Position: player.PositionMidfielder},
		{ID: "fwd-1", Position: player.PositionForward},
		{ID: "fwd-2", Position: player.PositionForward},
	}
}

func poolIDs(pool []player.Player) []string {
	ids := make([]string, 0, len(pool))
	for _, p := range pool {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestBoard_SetStatusAwayFromStartingEmptiesSlot(t *testing.T) {
	board := NewBoard(MustLayout("1-4-4-2"), poolIDs(testPool()))

	if err := board.Assign("def-1", "lb"); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if occupant, ok := board.SlotOccupant("lb"); !ok || occupant != "def-1" {
		t.Fatalf("expected def-1 in lb, got %q (ok=%v)", occupant, ok)
	}

	if err := board.SetStatus("def-1", StatusBench); err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if _, ok := board.SlotOccupant("lb"); ok {
		t.Fatal("expected lb to be emptied when its occupant moved to the bench")
	}
	if got := board.Status("def-1"); got != StatusBench {
		t.Fatalf("expected BENCH, got %s", got)
	}
}

func TestBoard_AssignMovesPlayerBetweenSlots(t *testing.T) {
	board := NewBoard(MustLayout("1-4-4-2"), poolIDs(testPool()))

	if err := board.Assign("def-1", "lb"); err != nil {
		t.Fatalf("first assign failed: %v", err)
	}
	if err := board.Assign("def-1", "rb"); err != nil {
		t.Fatalf("second assign failed: %v", err)
	}

	if _, ok := board.SlotOccupant("lb"); ok {
		t.Fatal("expected lb emptied after the player moved to rb")
	}
	if occupant, _ := board.SlotOccupant("rb"); occupant != "def-1" {
		t.Fatalf("expected def-1 in rb, got %q", occupant)
	}
	if !board.ManualMode() {
		t.Fatal("expected manual mode after a hand placement")
	}
}

func TestBoard_AssignRejectsUnavailablePlayer(t *testing.T) {
	board := NewBoard(MustLayout("1-4-4-2"), poolIDs(testPool()))

	if err := board.SetStatus("def-1", StatusUnavailable); err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if err := board.Assign("def-1", "lb"); err == nil {
		t.Fatal("expected assigning an unavailable player to fail")
	}
}

func TestBoard_ClearSlotDropsOccupantFromSquad(t *testing.T) {
	board := NewBoard(MustLayout("1-4-4-2"), poolIDs(testPool()))

	if err := board.Assign("fwd-1", "ls"); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if err := board.ClearSlot("ls"); err != nil {
		t.Fatalf("clear slot failed: %v", err)
	}

	if _, ok := board.SlotOccupant("ls"); ok {
		t.Fatal("expected ls empty after clear")
	}
	if got := board.Status("fwd-1"); got != StatusNotInSquad {
		t.Fatalf("expected NOT_IN_SQUAD after clear, got %s", got)
	}
}

func TestBoard_SwitchLayoutDiscardsAssignments(t *testing.T) {
	board := NewBoard(MustLayout("1-4-4-2"), poolIDs(testPool()))

	if err := board.Assign("gk-1", "gk"); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if err := board.Assign("fwd-1", "ls"); err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	board.SwitchLayout(MustLayout("1-4-3-3"))

	if board.Layout().Key != "1-4-3-3" {
		t.Fatalf("expected layout 1-4-3-3, got %s", board.Layout().Key)
	}
	if _, ok := board.SlotOccupant("gk"); ok {
		t.Fatal("expected every assignment discarded by the layout switch")
	}
	if got := board.Status("fwd-1"); got != StatusNotInSquad {
		t.Fatalf("expected removed occupant back to NOT_IN_SQUAD, got %s", got)
	}
	if board.ManualMode() {
		t.Fatal("expected manual mode reset by the layout switch")
	}
}

func TestBoard_AutoBuildFillsByPosition(t *testing.T) {
	pool := testPool()
	board := NewBoard(MustLayout("1-4-4-2"), poolIDs(pool))

	for _, p := range pool {
		if err := board.SetStatus(p.ID, StatusStarting); err != nil {
			t.Fatalf("set status failed: %v", err)
		}
	}

	board.AutoBuild(pool)

	occupant, ok := board.SlotOccupant("gk")
	if !ok || occupant != "gk-1" {
		t.Fatalf("expected gk-1 in goal, got %q (ok=%v)", occupant, ok)
	}
	for _, slot := range board.Layout().Slots {
		playerID, filled := board.SlotOccupant(slot.ID)
		if !filled {
			t.Fatalf("expected slot %s filled by auto-build", slot.ID)
		}
		for _, p := range pool {
			if p.ID == playerID && p.Position != slot.Position {
				t.Fatalf("player %s (%s) placed in %s slot %s", p.ID, p.Position, slot.Position, slot.ID)
			}
		}
	}
}

func TestBoard_AutoBuildIsNoOpInManualMode(t *testing.T) {
	pool := testPool()
	board := NewBoard(MustLayout("1-4-4-2"), poolIDs(pool))

	if err := board.Assign("gk-1", "gk"); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	for _, p := range pool {
		if p.ID == "gk-1" {
			continue
		}
		if err := board.SetStatus(p.ID, StatusStarting); err != nil {
			t.Fatalf("set status failed: %v", err)
		}
	}

	board.AutoBuild(pool)

	if _, ok := board.SlotOccupant("lb"); ok {
		t.Fatal("expected auto-build to stay a no-op once the board is manual")
	}
}

func TestBoard_SnapshotHydrateRoundTrip(t *testing.T) {
	board := NewBoard(MustLayout("1-4-4-2"), poolIDs(testPool()))

	if err := board.Assign("gk-1", "gk"); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if err := board.SetStatus("mid-1", StatusBench); err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if err := board.SetStatus("fwd-2", StatusUnavailable); err != nil {
		t.Fatalf("set status failed: %v", err)
	}

	snapshot := board.Snapshot()

	restored := NewBoard(MustLayout("1-4-4-2"), poolIDs(testPool()))
	if err := restored.Hydrate(snapshot); err != nil {
		t.Fatalf("hydrate failed: %v", err)
	}

	if !restored.Snapshot().Equal(snapshot) {
		t.Fatal("expected hydrated board to reproduce the snapshot")
	}
	if got := restored.Status("fwd-2"); got != StatusUnavailable {
		t.Fatalf("expected UNAVAILABLE restored, got %s", got)
	}
}

func TestBoard_HydrateRejectsLayoutMismatch(t *testing.T) {
	board := NewBoard(MustLayout("1-4-4-2"), poolIDs(testPool()))

	if err := board.Hydrate(NewDraft("1-4-3-3")); err == nil {
		t.Fatal("expected hydrate with a different formation to fail")
	}
}

func TestBoard_HydrateDoesNotFireOnChange(t *testing.T) {
	board := NewBoard(MustLayout("1-4-4-2"), poolIDs(testPool()))

	fired := 0
	board.OnChange(func() { fired++ })

	draft := NewDraft("1-4-4-2")
	draft.Rosters["mid-1"] = StatusBench
	if err := board.Hydrate(draft); err != nil {
		t.Fatalf("hydrate failed: %v", err)
	}
	if fired != 0 {
		t.Fatalf("expected no change callback from hydration, got %d", fired)
	}

	if err := board.SetStatus("mid-2", StatusBench); err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if fired != 1 {
		t.Fatalf("expected one change callback after a mutation, got %d", fired)
	}
}
