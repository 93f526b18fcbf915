package squad

import (
	"testing"

	"github.com/bytedance/sonic"
)

func TestDraft_ValidateRejectsInconsistentState(t *testing.T) {
	draft := NewDraft("1-4-4-2")
	draft.Rosters["p-1"] = StatusBench
	draft.Formation["gk"] = "p-1"

	if err := draft.Validate(); err == nil {
		t.Fatal("expected a placed player without starting status to be rejected")
	}

	draft = NewDraft("1-4-4-2")
	draft.Rosters["p-1"] = StatusStarting
	draft.Formation["gk"] = "p-1"
	draft.Formation["lb"] = "p-1"

	if err := draft.Validate(); err == nil {
		t.Fatal("expected a player in two slots to be rejected")
	}

	draft = NewDraft("1-9-9-9")
	if err := draft.Validate(); err == nil {
		t.Fatal("expected an unknown formation type to be rejected")
	}

	draft = NewDraft("1-4-4-2")
	draft.Rosters["p-1"] = StatusStarting
	draft.Formation["no-such-slot"] = "p-1"
	if err := draft.Validate(); err == nil {
		t.Fatal("expected an unknown slot id to be rejected")
	}
}

func TestDraft_EqualTreatsAbsentAsNotInSquad(t *testing.T) {
	a := NewDraft("1-4-4-2")
	a.Rosters["p-1"] = StatusNotInSquad

	b := NewDraft("1-4-4-2")

	if !a.Equal(b) {
		t.Fatal("expected explicit NOT_IN_SQUAD to equal an absent entry")
	}

	b.Rosters["p-1"] = StatusBench
	if a.Equal(b) {
		t.Fatal("expected differing statuses to compare unequal")
	}
}

func TestDraft_JSONRoundTrip(t *testing.T) {
	draft := NewDraft("1-4-3-3")
	draft.Rosters["p-1"] = StatusStarting
	draft.Rosters["p-2"] = StatusBench
	draft.Formation["gk"] = "p-1"

	encoded, err := sonic.Marshal(draft)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded Draft
	if err := sonic.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !decoded.Equal(draft) {
		t.Fatalf("expected round-tripped draft to equal the original, got %+v", decoded)
	}
	if decoded.FormationType != "1-4-3-3" {
		t.Fatalf("expected formation type preserved, got %s", decoded.FormationType)
	}
}

func TestDraft_CloneIsIndependent(t *testing.T) {
	draft := NewDraft("1-4-4-2")
	draft.Rosters["p-1"] = StatusStarting
	draft.Formation["gk"] = "p-1"

	copied := draft.Clone()
	copied.Rosters["p-2"] = StatusBench
	copied.Formation["lb"] = "p-2"

	if _, ok := draft.Rosters["p-2"]; ok {
		t.Fatal("expected clone mutation not to leak into the original rosters")
	}
	if _, ok := draft.Formation["lb"]; ok {
		t.Fatal("expected clone mutation not to leak into the original formation")
	}
}
