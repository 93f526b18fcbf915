package memory

import (
	"time"

	"github.com/coachmate/matchday/internal/domain/game"
	"github.com/coachmate/matchday/internal/domain/player"
	"github.com/coachmate/matchday/internal/domain/team"
)

const (
	TeamIDU17 = "cm-u17-blue"
	TeamIDU19 = "cm-u19-red"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDU17, Name: "Coachmate U17 Blue", Short: "U17"},
		{ID: TeamIDU19, Name: "Coachmate U19 Red", Short: "U19"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "u17-gk-01", TeamID: TeamIDU17, Name: "Jonas Brandt", Position: player.PositionGoalkeeper, ShirtNumber: 1},
		{ID: "u17-gk-02", TeamID: TeamIDU17, Name: "Milo Verhoeven", Position: player.PositionGoalkeeper, ShirtNumber: 12},
		{ID: "u17-def-01", TeamID: TeamIDU17, Name: "Aksel Moen", Position: player.PositionDefender, ShirtNumber: 2},
		{ID: "u17-def-02", TeamID: TeamIDU17, Name: "Tomas Silva", Position: player.PositionDefender, ShirtNumber: 3},
		{ID: "u17-def-03", TeamID: TeamIDU17, Name: "Ibrahim Diallo", Position: player.PositionDefender, ShirtNumber: 4},
		{ID: "u17-def-04", TeamID: TeamIDU17, Name: "Leon Fischer", Position: player.PositionDefender, ShirtNumber: 5},
		{ID: "u17-def-05", TeamID: TeamIDU17, Name: "Oscar Lindqvist", Position: player.PositionDefender, ShirtNumber: 15},
		{ID: "u17-mid-01", TeamID: TeamIDU17, Name: "Mateo Ruiz", Position: player.PositionMidfielder, ShirtNumber: 6},
		{ID: "u17-mid-02", TeamID: TeamIDU17, Name: "Noah Petit", Position: player.PositionMidfielder, ShirtNumber: 8},
		{ID: "u17-mid-03", TeamID: TeamIDU17, Name: "Emil Hansen", Position: player.PositionMidfielder, ShirtNumber: 10},
		{ID: "u17-mid-04", TeamID: TeamIDU17, Name: "Kofi Mensah", Position: player.PositionMidfielder, ShirtNumber: 7},
		{ID: "u17-mid-05", TeamID: TeamIDU17, Name: "Ruben Costa", Position: player.PositionMidfielder, ShirtNumber: 16},
		{ID: "u17-fwd-01", TeamID: TeamIDU17, Name: "Dani Kovacs", Position: player.PositionForward, ShirtNumber: 9},
		{ID: "u17-fwd-02", TeamID: TeamIDU17, Name: "Sami Laine", Position: player.PositionForward, ShirtNumber: 11},
		{ID: "u17-fwd-03", TeamID: TeamIDU17, Name: "Viktor Novak", Position: player.PositionForward, ShirtNumber: 14},
		{ID: "u17-fwd-04", TeamID: TeamIDU17, Name: "Arthur Blanc", Position: player.PositionForward, ShirtNumber: 17},
		{ID: "u19-gk-01", TeamID: TeamIDU19, Name: "Pavel Horak", Position: player.PositionGoalkeeper, ShirtNumber: 1},
		{ID: "u19-def-01", TeamID: TeamIDU19, Name: "Jan Willems", Position: player.PositionDefender, ShirtNumber: 4},
		{ID: "u19-mid-01", TeamID: TeamIDU19, Name: "Luka Babic", Position: player.PositionMidfielder, ShirtNumber: 8},
		{ID: "u19-fwd-01", TeamID: TeamIDU19, Name: "Erik Sand", Position: player.PositionForward, ShirtNumber: 9},
	}
}

func SeedGames() []game.Game {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return []game.Game{
		{
			ID:        "gm-u17-001",
			TeamID:    TeamIDU17,
			Opponent:  "Northside Academy",
			KickoffAt: time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC),
			Status:    game.StatusScheduled,
			Duration:  game.DefaultDuration(),
			CreatedAt: created,
			UpdatedAt: created,
		},
		{
			ID:        "gm-u17-002",
			TeamID:    TeamIDU17,
			Opponent:  "Riverside FC",
			KickoffAt: time.Date(2026, 3, 21, 13, 0, 0, 0, time.UTC),
			Status:    game.StatusScheduled,
			Duration:  game.DefaultDuration(),
			CreatedAt: created,
			UpdatedAt: created,
		},
		{
			ID:        "gm-u19-001",
			TeamID:    TeamIDU19,
			Opponent:  "Harbor United",
			KickoffAt: time.Date(2026, 3, 15, 15, 0, 0, 0, time.UTC),
			Status:    game.StatusScheduled,
			Duration:  game.DefaultDuration(),
			CreatedAt: created,
			UpdatedAt: created,
		},
	}
}
