package httpapi

import (
	"time"

	"github.com/coachmate/matchday/internal/domain/game"
	"github.com/coachmate/matchday/internal/domain/matchevent"
	"github.com/coachmate/matchday/internal/domain/player"
	"github.com/coachmate/matchday/internal/domain/report"
	"github.com/coachmate/matchday/internal/domain/squad"
	"github.com/coachmate/matchday/internal/domain/team"
)

type teamDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Short string `json:"short"`
}

func teamToDTO(item team.Team) teamDTO {
	return teamDTO{ID: item.ID, Name: item.Name, Short: item.Short}
}

type playerDTO struct {
	ID          string `json:"id"`
	TeamID      string `json:"teamId"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	ShirtNumber int    `json:"shirtNumber"`
}

func playerToDTO(item player.Player) playerDTO {
	return playerDTO{
		ID:          item.ID,
		TeamID:      item.TeamID,
		Name:        item.Name,
		Position:    string(item.Position),
		ShirtNumber: item.ShirtNumber,
	}
}

type gameDTO struct {
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

func gameToDTO(item game.Game) gameDTO {
	return gameDTO{
		ID:         item.ID,
		TeamID:     item.TeamID,
		Opponent:   item.Opponent,
		KickoffAt:  item.KickoffAt,
		Status:     string(item.Status),
		Duration:   item.Duration,
		Summaries:  item.Summaries,
		FinalScore: item.FinalScore,
		Draft:      item.LineupDraft,
		Lineup:     item.Lineup,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}

type eventDTO struct {
	ID             string    `json:"id"`
	GameID         string    `json:"gameId"`
	Type           string    `json:"type"`
	Minute         int       `json:"minute"`
	ScorerID       string    `json:"scorerId,omitempty"`
	AssistedByID   string    `json:"assistedById,omitempty"`
	GoalType       string    `json:"goalType,omitempty"`
	IsOpponentGoal bool      `json:"isOpponentGoal,omitempty"`
	PlayerID       string    `json:"playerId,omitempty"`
	CardType       string    `json:"cardType,omitempty"`
	PlayerOutID    string    `json:"playerOutId,omitempty"`
	PlayerInID     string    `json:"playerInId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func eventToDTO(item matchevent.Event) eventDTO {
	return eventDTO{
		ID:             item.ID,
		GameID:         item.GameID,
		Type:           string(item.Type),
		Minute:         item.Minute,
		ScorerID:       item.ScorerID,
		AssistedByID:   item.AssistedByID,
		GoalType:       string(item.GoalType),
		IsOpponentGoal: item.IsOpponentGoal,
		PlayerID:       item.PlayerID,
		CardType:       string(item.CardType),
		PlayerOutID:    item.PlayerOutID,
		PlayerInID:     item.PlayerInID,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}

func eventsToDTO(items []matchevent.Event) []eventDTO {
	out := make([]eventDTO, 0, len(items))
	for _, item := range items {
		out = append(out, eventToDTO(item))
	}
	return out
}

type timelineDTO struct {
	Events []eventDTO       `json:"events"`
	Score  matchevent.Score `json:"score"`
}

type ratingsDTO struct {
	Physical  int `json:"physical" validate:"required,min=1,max=5"`
	Technical int `json:"technical" validate:"required,min=1,max=5"`
	Tactical  int `json:"tactical" validate:"required,min=1,max=5"`
	Mental    int `json:"mental" validate:"required,min=1,max=5"`
}

type reportDTO struct {
	GameID     string                      `json:"gameId"`
	PlayerID   string                      `json:"playerId"`
	Ratings    ratingsDTO                  `json:"ratings"`
	Notes      string                      `json:"notes,omitempty"`
	AutoFilled bool                        `json:"autoFilled"`
	Derived    matchevent.PlayerAggregates `json:"derived"`
	CreatedAt  time.Time                   `json:"createdAt"`
	UpdatedAt  time.Time                   `json:"updatedAt"`
}

func reportToDTO(item report.Report) reportDTO {
	return reportDTO{
		GameID:   item.GameID,
		PlayerID: item.PlayerID,
		Ratings: ratingsDTO{
			Physical:  item.Ratings.Physical,
			Technical: item.Ratings.Technical,
			Tactical:  item.Ratings.Tactical,
			Mental:    item.Ratings.Mental,
		},
		Notes:      item.Notes,
		AutoFilled: item.AutoFilled,
		Derived:    item.Derived,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}

func reportsToDTO(items []report.Report) []reportDTO {
	out := make([]reportDTO, 0, len(items))
	for _, item := range items {
		out = append(out, reportToDTO(item))
	}
	return out
}
