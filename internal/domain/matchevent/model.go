package matchevent

import (
	"fmt"
	"time"
)

// Type discriminates the match event union.
type Type string

const (
	TypeGoal         Type = "GOAL"
	TypeCard         Type = "CARD"
	TypeSubstitution Type = "SUBSTITUTION"
)

type GoalType string

const (
	GoalOpenPlay GoalType = "OPEN_PLAY"
	GoalPenalty  GoalType = "PENALTY"
	GoalFreeKick GoalType = "FREE_KICK"
	GoalOwnGoal  GoalType = "OWN_GOAL"
)

var AllGoalTypes = map[GoalType]struct{}{
	GoalOpenPlay: {},
	GoalPenalty:  {},
	GoalFreeKick: {},
	GoalOwnGoal:  {},
}

type CardType string

const (
	CardYellow CardType = "YELLOW"
	CardRed    CardType = "RED"
)

// Event is one minute-stamped occurrence recorded against a played game.
// The struct is a flat union; Type decides which field group is meaningful.
type Event struct {
	ID     string
	GameID string
	Type   Type
	Minute int

	// Goal fields. ScorerID and AssistedByID may be empty for opponent goals.
	ScorerID       string
	AssistedByID   string
	GoalType       GoalType
	IsOpponentGoal bool

	// Card fields.
	PlayerID string
	CardType CardType

	// Substitution fields.
	PlayerOutID string
	PlayerInID  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the union fields for the event's type. totalMinutes bounds
// the minute stamp; it is the game's regular time plus extras.
func (e Event) Validate(totalMinutes int) error {
	if e.GameID == "" {
		return fmt.Errorf("event game id is required")
	}
	if e.Minute < 1 || e.Minute > totalMinutes {
		return fmt.Errorf("event minute must be between 1 and %d, got %d", totalMinutes, e.Minute)
	}

	switch e.Type {
	case TypeGoal:
		if _, ok := AllGoalTypes[e.GoalType]; !ok {
			return fmt.Errorf("unknown goal type: %s", e.GoalType)
		}
		if !e.IsOpponentGoal && e.ScorerID == "" {
			return fmt.Errorf("a goal for our team requires a scorer")
		}
		if e.ScorerID != "" && e.ScorerID == e.AssistedByID {
			return fmt.Errorf("scorer and assister must be different players")
		}
	case TypeCard:
		if e.PlayerID == "" {
			return fmt.Errorf("a card requires a player")
		}
		if e.CardType != CardYellow && e.CardType != CardRed {
			return fmt.Errorf("unknown card type: %s", e.CardType)
		}
	case TypeSubstitution:
		if e.PlayerOutID == "" || e.PlayerInID == "" {
			return fmt.Errorf("a substitution requires both players")
		}
		if e.PlayerOutID == e.PlayerInID {
			return fmt.Errorf("a player cannot be substituted for themselves")
		}
	default:
		return fmt.Errorf("unknown event type: %s", e.Type)
	}

	return nil
}
