package postgres

import (
	"database/sql"
	"time"

	"github.com/coachmate/matchday/internal/domain/matchevent"
)

type matchEventTableModel struct {
	ID             string       `db:"public_id"`
	GameID         string       `db:"game_public_id"`
	EventType      string       `db:"event_type"`
	Minute         int          `db:"minute"`
	ScorerID       string       `db:"scorer_player_id"`
	AssistedByID   string       `db:"assisted_by_player_id"`
	GoalType       string       `db:"goal_type"`
	IsOpponentGoal bool         `db:"is_opponent_goal"`
	PlayerID       string       `db:"player_id"`
	CardType       string       `db:"card_type"`
	PlayerOutID    string       `db:"player_out_id"`
	PlayerInID     string       `db:"player_in_id"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at"`
	DeletedAt      sql.NullTime `db:"deleted_at"`
}

func matchEventFromRow(row matchEventTableModel) matchevent.Event {
	return matchevent.Event{
		ID:             row.ID,
		GameID:         row.GameID,
		Type:           matchevent.Type(row.EventType),
		Minute:         row.Minute,
		ScorerID:       row.ScorerID,
		AssistedByID:   row.AssistedByID,
		GoalType:       matchevent.GoalType(row.GoalType),
		IsOpponentGoal: row.IsOpponentGoal,
		PlayerID:       row.PlayerID,
		CardType:       matchevent.CardType(row.CardType),
		PlayerOutID:    row.PlayerOutID,
		PlayerInID:     row.PlayerInID,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
