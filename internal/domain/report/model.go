package report

import (
	"fmt"
	"time"

	"github.com/coachmate/matchday/internal/domain/matchevent"
)

const (
	RatingMin = 1
	RatingMax = 5
)

// Ratings are the four hand-entered 1-5 assessments per player per game.
type Ratings struct {
	Physical  int `json:"physical"`
	Technical int `json:"technical"`
	Tactical  int `json:"tactical"`
	Mental    int `json:"mental"`
}

// DefaultRatings is the neutral grade used when reports are auto-filled to
// satisfy the game-closing gate.
func DefaultRatings() Ratings {
	return Ratings{Physical: 3, Technical: 3, Tactical: 3, Mental: 3}
}

func (r Ratings) Validate() error {
	for _, rating := range []struct {
		name  string
		value int
	}{
		{"physical", r.Physical},
		{"technical", r.Technical},
		{"tactical", r.Tactical},
		{"mental", r.Mental},
	} {
		if rating.value < RatingMin || rating.value > RatingMax {
			return fmt.Errorf("%s rating must be between %d and %d", rating.name, RatingMin, RatingMax)
		}
	}
	return nil
}

// Report is one player's performance record for one game. The aggregate
// fields are derived from the match event ledger and refreshed after every
// committed event change.
type Report struct {
	GameID   string
	PlayerID string
	Ratings  Ratings
	Notes    string

	// AutoFilled marks reports created with default ratings to unblock the
	// played-to-done transition.
	AutoFilled bool

	Derived matchevent.PlayerAggregates

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r Report) Validate() error {
	if r.GameID == "" {
		return fmt.Errorf("report game id is required")
	}
	if r.PlayerID == "" {
		return fmt.Errorf("report player id is required")
	}
	return r.Ratings.Validate()
}
