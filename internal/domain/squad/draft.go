package squad

import "fmt"

// Draft is the serialized roster+formation composite persisted against a
// scheduled game. Statuses listing only players away from the default keeps
// the payload small; absent players read as NOT_IN_SQUAD.
type Draft struct {
	Rosters       map[string]RosterStatus `json:"rosters"`
	Formation     map[string]string       `json:"formation"`
	FormationType string                  `json:"formationType"`
}

func NewDraft(formationType string) Draft {
	return Draft{
		Rosters:       make(map[string]RosterStatus),
		Formation:     make(map[string]string),
		FormationType: formationType,
	}
}

func (d Draft) Validate() error {
	layout, ok := LayoutByKey(d.FormationType)
	if !ok {
		return fmt.Errorf("unknown formation type: %s", d.FormationType)
	}

	for playerID, status := range d.Rosters {
		if playerID == "" {
			return fmt.Errorf("roster entry with empty player id")
		}
		if _, ok := AllStatuses[status]; !ok {
			return fmt.Errorf("player %s has unknown roster status %s", playerID, status)
		}
	}

	seen := make(map[string]string, len(d.Formation))
	for slotID, playerID := range d.Formation {
		if _, ok := layout.SlotByID(slotID); !ok {
			return fmt.Errorf("slot %s does not exist in formation %s", slotID, d.FormationType)
		}
		if playerID == "" {
			continue
		}
		if prior, dup := seen[playerID]; dup {
			return fmt.Errorf("player %s assigned to both %s and %s", playerID, prior, slotID)
		}
		seen[playerID] = slotID
		if d.Rosters[playerID] != StatusStarting {
			return fmt.Errorf("player %s occupies slot %s without starting-lineup status", playerID, slotID)
		}
	}

	return nil
}

// Equal reports whether two drafts describe the same composite state.
func (d Draft) Equal(other Draft) bool {
	if d.FormationType != other.FormationType {
		return false
	}
	if !equalStatuses(d.Rosters, other.Rosters) {
		return false
	}
	return equalAssignments(d.Formation, other.Formation)
}

func equalStatuses(a, b map[string]RosterStatus) bool {
	for playerID, status := range a {
		if normalizeStatus(b[playerID]) != normalizeStatus(status) {
			return false
		}
	}
	for playerID, status := range b {
		if normalizeStatus(a[playerID]) != normalizeStatus(status) {
			return false
		}
	}
	return true
}

func equalAssignments(a, b map[string]string) bool {
	for slotID, playerID := range a {
		if b[slotID] != playerID {
			return false
		}
	}
	for slotID, playerID := range b {
		if a[slotID] != playerID {
			return false
		}
	}
	return true
}

func normalizeStatus(status RosterStatus) RosterStatus {
	if status == "" {
		return StatusNotInSquad
	}
	return status
}

// Clone returns a deep copy safe to hand across goroutines.
func (d Draft) Clone() Draft {
	copied := NewDraft(d.FormationType)
	for playerID, status := range d.Rosters {
		copied.Rosters[playerID] = status
	}
	for slotID, playerID := range d.Formation {
		copied.Formation[slotID] = playerID
	}
	return copied
}
