package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coachmate/matchday/internal/domain/matchevent"
)

const matchEventSelectColumns = `
public_id, game_public_id, event_type, minute,
scorer_player_id, assisted_by_player_id, goal_type, is_opponent_goal,
player_id, card_type, player_out_id, player_in_id,
created_at, updated_at, deleted_at`

type MatchEventRepository struct {
	db *sqlx.DB
}

func NewMatchEventRepository(db *sqlx.DB) *MatchEventRepository {
	return &MatchEventRepository{db: db}
}

func (r *MatchEventRepository) ListByGame(ctx context.Context, gameID string) ([]matchevent.Event, error) {
	const query = `
SELECT ` + matchEventSelectColumns + `
FROM match_events
WHERE game_public_id = $1
  AND deleted_at IS NULL
ORDER BY created_at, public_id`

	var rows []matchEventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, gameID); err != nil {
		return nil, fmt.Errorf("list match events by game: %w", err)
	}

	out := make([]matchevent.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchEventFromRow(row))
	}
	return out, nil
}

func (r *MatchEventRepository) GetByID(ctx context.Context, gameID, eventID string) (matchevent.Event, bool, error) {
	const query = `
SELECT ` + matchEventSelectColumns + `
FROM match_events
WHERE game_public_id = $1
  AND public_id = $2
  AND deleted_at IS NULL`

	var row matchEventTableModel
	if err := r.db.GetContext(ctx, &row, query, gameID, eventID); err != nil {
		if isNotFound(err) {
			return matchevent.Event{}, false, nil
		}
		return matchevent.Event{}, false, fmt.Errorf("get match event: %w", err)
	}

	return matchEventFromRow(row), true, nil
}

func (r *MatchEventRepository) Create(ctx context.Context, item matchevent.Event) error {
	const query = `
INSERT INTO match_events (
    public_id, game_public_id, event_type, minute,
    scorer_player_id, assisted_by_player_id, goal_type, is_opponent_goal,
    player_id, card_type, player_out_id, player_in_id
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.GameID, string(item.Type), item.Minute,
		item.ScorerID, item.AssistedByID, string(item.GoalType), item.IsOpponentGoal,
		item.PlayerID, string(item.CardType), item.PlayerOutID, item.PlayerInID,
	)
	if err != nil {
		return fmt.Errorf("insert match event: %w", err)
	}
	return nil
}

func (r *MatchEventRepository) Update(ctx context.Context, item matchevent.Event) (bool, error) {
	const query = `
UPDATE match_events
SET minute = $3,
    scorer_player_id = $4,
    assisted_by_player_id = $5,
    goal_type = $6,
    is_opponent_goal = $7,
    player_id = $8,
    card_type = $9,
    player_out_id = $10,
    player_in_id = $11,
    updated_at = NOW()
WHERE game_public_id = $1
  AND public_id = $2
  AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query,
		item.GameID, item.ID, item.Minute,
		item.ScorerID, item.AssistedByID, string(item.GoalType), item.IsOpponentGoal,
		item.PlayerID, string(item.CardType), item.PlayerOutID, item.PlayerInID,
	)
	if err != nil {
		return false, fmt.Errorf("update match event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update match event rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *MatchEventRepository) Delete(ctx context.Context, gameID, eventID string) (bool, error) {
	const query = `
UPDATE match_events
SET deleted_at = NOW()
WHERE game_public_id = $1
  AND public_id = $2
  AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, gameID, eventID)
	if err != nil {
		return false, fmt.Errorf("delete match event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete match event rows affected: %w", err)
	}
	return affected > 0, nil
}
