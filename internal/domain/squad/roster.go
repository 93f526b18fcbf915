package squad

import "fmt"

// RosterStatus categorizes one player's matchday availability.
type RosterStatus string

const (
	StatusNotInSquad  RosterStatus = "NOT_IN_SQUAD"
	StatusBench       RosterStatus = "BENCH"
	StatusStarting    RosterStatus = "STARTING_LINEUP"
	StatusUnavailable RosterStatus = "UNAVAILABLE"
)

var AllStatuses = map[RosterStatus]struct{}{
	StatusNotInSquad:  {},
	StatusBench:       {},
	StatusStarting:    {},
	StatusUnavailable: {},
}

func ParseStatus(v string) (RosterStatus, error) {
	status := RosterStatus(v)
	if _, ok := AllStatuses[status]; !ok {
		return "", fmt.Errorf("unknown roster status: %s", v)
	}
	return status, nil
}
