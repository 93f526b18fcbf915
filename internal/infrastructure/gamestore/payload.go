package gamestore

import (
	"time"

	"github.com/coachmate/matchday/internal/domain/game"
	"github.com/coachmate/matchday/internal/domain/player"
	"github.com/coachmate/matchday/internal/domain/squad"
)

type gamePayload struct {
	ID         string             `json:"id"`
	TeamID     string             `json:"teamId"`
	Opponent   string             `json:"opponent"`
	KickoffAt  time.Time          `json:"kickoffAt"`
	Status     string             `json:"status"`
	Duration   game.MatchDuration `json:"duration"`
	Summaries  game.TeamSummaries `json:"summaries"`
	FinalScore *game.Score        `json:"finalScore,omitempty"`
	Draft      *squad.Draft       `json:"lineupDraft,omitempty"`
	Lineup     *squad.Draft       `json:"lineup,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

type playerPayload struct {
	ID          string `json:"id"`
	TeamID      string `json:"teamId"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	ShirtNumber int    `json:"shirtNumber"`
}

func (p playerPayload) toDomain() player.Player {
	return player.Player{
		ID:          p.ID,
		TeamID:      p.TeamID,
		Name:        p.Name,
		Position:    player.Position(p.Position),
		ShirtNumber: p.ShirtNumber,
	}
}

func (p gamePayload) toDomain() game.Game {
	return game.Game{
		ID:          p.ID,
		TeamID:      p.TeamID,
		Opponent:    p.Opponent,
		KickoffAt:   p.KickoffAt,
		Status:      game.Status(p.Status),
		Duration:    p.Duration,
		Summaries:   p.Summaries,
		FinalScore:  p.FinalScore,
		LineupDraft: p.Draft,
		Lineup:      p.Lineup,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
