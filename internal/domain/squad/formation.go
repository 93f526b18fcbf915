package squad

import (
	"fmt"

	"github.com/coachmate/matchday/internal/domain/player"
)

// Slot is one named tactical position inside a formation layout.
type Slot struct {
	ID       string
	Label    string
	Position player.Position
}

// Layout is a named slot arrangement, e.g. 1-4-4-2 with eleven slots.
type Layout struct {
	Key   string
	Slots []Slot
}

func (l Layout) SlotByID(slotID string) (Slot, bool) {
	for _, slot := range l.Slots {
		if slot.ID == slotID {
			return slot, true
		}
	}
	return Slot{}, false
}

func (l Layout) GoalkeeperSlotID() string {
	for _, slot := range l.Slots {
		if slot.Position == player.PositionGoalkeeper {
			return slot.ID
		}
	}
	return ""
}

var layouts = map[string]Layout{
	"1-4-4-2": {
		Key: "1-4-4-2",
		Slots: []Slot{
			{ID: "gk", Label: "Goalkeeper", Position: player.PositionGoalkeeper},
			{ID: "lb", Label: "Left Back", Position: player.PositionDefender},
			{ID: "lcb", Label: "Left Centre Back", Position: player.PositionDefender},
			{ID: "rcb", Label: "Right Centre Back", Position: player.PositionDefender},
			{ID: "rb", Label: "Right Back", Position: player.PositionDefender},
			{ID: "lm", Label: "Left Midfield", Position: player.PositionMidfielder},
			{ID: "lcm", Label: "Left Centre Midfield", Position: player.PositionMidfielder},
			{ID: "rcm", Label: "Right Centre Midfield", Position: player.PositionMidfielder},
			{ID: "rm", Label: "Right Midfield", Position: player.PositionMidfielder},
			{ID: "ls", Label: "Left Striker", Position: player.PositionForward},
			{ID: "rs", Label: "Right Striker", Position: player.PositionForward},
		},
	},
	"1-4-3-3": {
		Key: "1-4-3-3",
		Slots: []Slot{
			{ID: "gk", Label: "Goalkeeper", Position: player.PositionGoalkeeper},
			{ID: "lb", Label: "Left Back", Position: player.PositionDefender},
			{ID: "lcb", Label: "Left Centre Back", Position: player.PositionDefender},
			{ID: "rcb", Label: "Right Centre Back", Position: player.PositionDefender},
			{ID: "rb", Label: "Right Back", Position: player.PositionDefender},
			{ID: "lcm", Label: "Left Centre Midfield", Position: player.PositionMidfielder},
			{ID: "cm", Label: "Centre Midfield", Position: player.PositionMidfielder},
			{ID: "rcm", Label: "Right Centre Midfield", Position: player.PositionMidfielder},
			{ID: "lw", Label: "Left Wing", Position: player.PositionForward},
			{ID: "st", Label: "Striker", Position: player.PositionForward},
			{ID: "rw", Label: "Right Wing", Position: player.PositionForward},
		},
	},
	"1-3-5-2": {
		Key: "1-3-5-2",
		Slots: []Slot{
			{ID: "gk", Label: "Goalkeeper", Position: player.PositionGoalkeeper},
			{ID: "lcb", Label: "Left Centre Back", Position: player.PositionDefender},
			{ID: "cb", Label: "Centre Back", Position: player.PositionDefender},
			{ID: "rcb", Label: "Right Centre Back", Position: player.PositionDefender},
			{ID: "lwb", Label: "Left Wing Back", Position: player.PositionMidfielder},
			{ID: "lcm", Label: "Left Centre Midfield", Position: player.PositionMidfielder},
			{ID: "cm", Label: "Centre Midfield", Position: player.PositionMidfielder},
			{ID: "rcm", Label: "Right Centre Midfield", Position: player.PositionMidfielder},
			{ID: "rwb", Label: "Right Wing Back", Position: player.PositionMidfielder},
			{ID: "ls", Label: "Left Striker", Position: player.PositionForward},
			{ID: "rs", Label: "Right Striker", Position: player.PositionForward},
		},
	},
}

// DefaultLayoutKey is used when a game has no saved formation yet.
const DefaultLayoutKey = "1-4-4-2"

func LayoutByKey(key string) (Layout, bool) {
	layout, ok := layouts[key]
	return layout, ok
}

func LayoutKeys() []string {
	keys := make([]string, 0, len(layouts))
	for key := range layouts {
		keys = append(keys, key)
	}
	return keys
}

func MustLayout(key string) Layout {
	layout, ok := layouts[key]
	if !ok {
		panic(fmt.Sprintf("unknown formation layout: %s", key))
	}
	return layout
}
