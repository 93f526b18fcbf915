package squad

import (
	"fmt"

	"github.com/coachmate/matchday/internal/domain/player"
)

// Board owns the mutable roster and formation state for one editing session.
// It is the single mutation surface for both stores so the cross-store
// cascades (slot occupancy vs roster status) cannot be bypassed.
//
// Board is not safe for concurrent use; one game has one active session.
type Board struct {
	layout   Layout
	statuses map[string]RosterStatus
	slots    map[string]string
	manual   bool
	onChange func()
}

func NewBoard(layout Layout, teamPlayerIDs []string) *Board {
	statuses := make(map[string]RosterStatus, len(teamPlayerIDs))
	for _, playerID := range teamPlayerIDs {
		statuses[playerID] = StatusNotInSquad
	}

	return &Board{
		layout:   layout,
		statuses: statuses,
		slots:    make(map[string]string, len(layout.Slots)),
	}
}

// OnChange registers a callback invoked after every semantic mutation.
// Hydration does not fire it.
func (b *Board) OnChange(fn func()) {
	b.onChange = fn
}

func (b *Board) Layout() Layout {
	return b.layout
}

// ManualMode reports whether the user has placed players by hand, which
// permanently disables auto-build until the formation changes or the game
// reloads.
func (b *Board) ManualMode() bool {
	return b.manual
}

func (b *Board) Status(playerID string) RosterStatus {
	return normalizeStatus(b.statuses[playerID])
}

func (b *Board) SlotOccupant(slotID string) (string, bool) {
	playerID, ok := b.slots[slotID]
	if !ok || playerID == "" {
		return "", false
	}
	return playerID, true
}

// SetStatus records a roster status for one player. Moving a placed player
// away from the starting lineup empties the slot holding them.
func (b *Board) SetStatus(playerID string, status RosterStatus) error {
	if playerID == "" {
		return fmt.Errorf("player id is required")
	}
	if _, ok := AllStatuses[status]; !ok {
		return fmt.Errorf("unknown roster status: %s", status)
	}

	b.statuses[playerID] = status
	if status != StatusStarting {
		if slotID, ok := b.slotOf(playerID); ok {
			delete(b.slots, slotID)
		}
	}

	b.notify()
	return nil
}

// Assign places a player into a slot. The player leaves any slot they
// already occupy and their roster status becomes starting lineup. Any manual
// assignment makes the board sticky-manual.
func (b *Board) Assign(playerID, slotID string) error {
	if playerID == "" {
		return fmt.Errorf("player id is required")
	}
	if _, ok := b.layout.SlotByID(slotID); !ok {
		return fmt.Errorf("slot %s does not exist in formation %s", slotID, b.layout.Key)
	}
	if b.Status(playerID) == StatusUnavailable {
		return fmt.Errorf("player %s is unavailable and cannot be placed", playerID)
	}

	if current, ok := b.slotOf(playerID); ok && current != slotID {
		delete(b.slots, current)
	}
	b.slots[slotID] = playerID
	b.statuses[playerID] = StatusStarting
	b.manual = true

	b.notify()
	return nil
}

// ClearSlot empties a slot; the removed occupant drops out of the squad.
func (b *Board) ClearSlot(slotID string) error {
	if _, ok := b.layout.SlotByID(slotID); !ok {
		return fmt.Errorf("slot %s does not exist in formation %s", slotID, b.layout.Key)
	}

	playerID, occupied := b.slots[slotID]
	delete(b.slots, slotID)
	if occupied && playerID != "" {
		b.statuses[playerID] = StatusNotInSquad
	}

	b.notify()
	return nil
}

// SwitchLayout replaces the formation layout. The slot identifier set changes
// with the layout, so every assignment is discarded; callers must obtain
// explicit user confirmation before invoking this. Manual mode resets.
func (b *Board) SwitchLayout(layout Layout) {
	for slotID, playerID := range b.slots {
		delete(b.slots, slotID)
		if playerID != "" {
			b.statuses[playerID] = StatusNotInSquad
		}
	}
	b.layout = layout
	b.manual = false

	b.notify()
}

// AutoBuild fills empty slots with unplaced starting-lineup players whose
// recorded position matches the slot. It is a no-op once the board is in
// manual mode. Unmatched slots stay empty.
func (b *Board) AutoBuild(pool []player.Player) {
	if b.manual {
		return
	}

	placed := make(map[string]struct{}, len(b.slots))
	for _, playerID := range b.slots {
		placed[playerID] = struct{}{}
	}

	changed := false
	for _, slot := range b.layout.Slots {
		if occupant, ok := b.slots[slot.ID]; ok && occupant != "" {
			continue
		}
		for _, p := range pool {
			if _, done := placed[p.ID]; done {
				continue
			}
			if b.Status(p.ID) != StatusStarting {
				continue
			}
			if p.Position != slot.Position {
				continue
			}
			b.slots[slot.ID] = p.ID
			placed[p.ID] = struct{}{}
			changed = true
			break
		}
	}

	if changed {
		b.notify()
	}
}

// Starting lists players currently flagged for the starting lineup.
func (b *Board) Starting() []string {
	return b.byStatus(StatusStarting)
}

// Bench lists players currently flagged as substitutes.
func (b *Board) Bench() []string {
	return b.byStatus(StatusBench)
}

// Snapshot serializes the composite state for persistence or validation.
func (b *Board) Snapshot() Draft {
	draft := NewDraft(b.layout.Key)
	for playerID, status := range b.statuses {
		if normalizeStatus(status) == StatusNotInSquad {
			continue
		}
		draft.Rosters[playerID] = status
	}
	for slotID, playerID := range b.slots {
		if playerID == "" {
			continue
		}
		draft.Formation[slotID] = playerID
	}
	return draft
}

// Hydrate loads a previously saved draft into the board without firing the
// change callback. The draft's formation type must match the board's layout.
func (b *Board) Hydrate(draft Draft) error {
	if draft.FormationType != b.layout.Key {
		return fmt.Errorf("draft formation %s does not match board layout %s", draft.FormationType, b.layout.Key)
	}
	if err := draft.Validate(); err != nil {
		return fmt.Errorf("invalid draft: %w", err)
	}

	for playerID := range b.statuses {
		b.statuses[playerID] = StatusNotInSquad
	}
	for playerID, status := range draft.Rosters {
		b.statuses[playerID] = status
	}
	b.slots = make(map[string]string, len(draft.Formation))
	for slotID, playerID := range draft.Formation {
		if playerID == "" {
			continue
		}
		b.slots[slotID] = playerID
	}

	return nil
}

func (b *Board) slotOf(playerID string) (string, bool) {
	for slotID, occupant := range b.slots {
		if occupant == playerID {
			return slotID, true
		}
	}
	return "", false
}

func (b *Board) byStatus(status RosterStatus) []string {
	out := make([]string, 0, len(b.statuses))
	for playerID, s := range b.statuses {
		if normalizeStatus(s) == status {
			out = append(out, playerID)
		}
	}
	return out
}

func (b *Board) notify() {
	if b.onChange != nil {
		b.onChange()
	}
}
