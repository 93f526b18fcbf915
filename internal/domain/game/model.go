package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/coachmate/matchday/internal/domain/squad"
)

// Status tracks the one-way matchday lifecycle.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusPlayed    Status = "PLAYED"
	StatusDone      Status = "DONE"
)

func ParseStatus(v string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(v)))
	switch status {
	case StatusScheduled, StatusPlayed, StatusDone:
		return status, nil
	default:
		return "", fmt.Errorf("unknown game status: %s", v)
	}
}

// MatchDuration defines the minute space events are recorded against.
type MatchDuration struct {
	RegularTime         int `json:"regularTime"`
	FirstHalfExtraTime  int `json:"firstHalfExtraTime"`
	SecondHalfExtraTime int `json:"secondHalfExtraTime"`
}

func DefaultDuration() MatchDuration {
	return MatchDuration{RegularTime: 90}
}

func (d MatchDuration) TotalMinutes() int {
	return d.RegularTime + d.FirstHalfExtraTime + d.SecondHalfExtraTime
}

func (d MatchDuration) Validate() error {
	if d.RegularTime <= 0 {
		return fmt.Errorf("regular time must be greater than zero")
	}
	if d.FirstHalfExtraTime < 0 || d.SecondHalfExtraTime < 0 {
		return fmt.Errorf("extra time cannot be negative")
	}
	return nil
}

// Score is the final result recorded when a game is closed. While a game is
// played the displayed score is derived from goal events, never stored.
type Score struct {
	Ours     int `json:"ourScore"`
	Opponent int `json:"opponentScore"`
}

// TeamSummaries holds the coach's written match assessment per unit.
type TeamSummaries struct {
	Defense  string `json:"defense"`
	Midfield string `json:"midfield"`
	Attack   string `json:"attack"`
	General  string `json:"general"`
}

// Game is the engine's working copy of one scheduled match.
//
// LineupDraft is only meaningful while the game is scheduled; it is the
// recovery point if the session is interrupted before kickoff. Lineup is the
// committed roster written at the scheduled-to-played transition, after which
// the draft is no longer authoritative.
type Game struct {
	ID         string
	TeamID     string
	Opponent   string
	KickoffAt  time.Time
	Status     Status
	Duration   MatchDuration
	Summaries  TeamSummaries
	FinalScore *Score

	LineupDraft *squad.Draft
	Lineup      *squad.Draft

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g Game) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("game id is required")
	}
	if g.TeamID == "" {
		return fmt.Errorf("game team id is required")
	}
	if strings.TrimSpace(g.Opponent) == "" {
		return fmt.Errorf("game opponent is required")
	}
	if _, err := ParseStatus(string(g.Status)); err != nil {
		return err
	}
	return g.Duration.Validate()
}
