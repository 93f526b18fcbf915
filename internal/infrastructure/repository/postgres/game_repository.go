package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coachmate/matchday/internal/domain/game"
	"github.com/coachmate/matchday/internal/domain/squad"
)

const gameSelectColumns = `
public_id, team_public_id, opponent, kickoff_at, status,
regular_time, first_half_extra_time, second_half_extra_time,
defense_summary, midfield_summary, attack_summary, general_summary,
our_score, opponent_score, lineup_draft, lineup,
created_at, updated_at, deleted_at`

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) GetByID(ctx context.Context, gameID string) (game.Game, bool, error) {
	const query = `
SELECT ` + gameSelectColumns + `
FROM games
WHERE public_id = $1
  AND deleted_at IS NULL`

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, gameID); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("get game: %w", err)
	}

	item, err := gameFromRow(row)
	if err != nil {
		return game.Game{}, false, err
	}
	return item, true, nil
}

func (r *GameRepository) ListByTeam(ctx context.Context, teamID string) ([]game.Game, error) {
	const query = `
SELECT ` + gameSelectColumns + `
FROM games
WHERE team_public_id = $1
  AND deleted_at IS NULL
ORDER BY kickoff_at, public_id`

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, teamID); err != nil {
		return nil, fmt.Errorf("list games by team: %w", err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		item, err := gameFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *GameRepository) Create(ctx context.Context, item game.Game) error {
	const query = `
INSERT INTO games (
    public_id, team_public_id, opponent, kickoff_at, status,
    regular_time, first_half_extra_time, second_half_extra_time,
    defense_summary, midfield_summary, attack_summary, general_summary
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.TeamID, item.Opponent, item.KickoffAt, string(item.Status),
		item.Duration.RegularTime, item.Duration.FirstHalfExtraTime, item.Duration.SecondHalfExtraTime,
		item.Summaries.Defense, item.Summaries.Midfield, item.Summaries.Attack, item.Summaries.General,
	)
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	return nil
}

// SaveDraft overwrites the draft only while the game is still scheduled. The
// status guard lives in the WHERE clause so a stale autosave racing a
// transition silently loses.
func (r *GameRepository) SaveDraft(ctx context.Context, gameID string, draft squad.Draft) (bool, error) {
	raw, err := draftToJSON(draft)
	if err != nil {
		return false, fmt.Errorf("encode lineup draft: %w", err)
	}

	const query = `
UPDATE games
SET lineup_draft = $2,
    updated_at = NOW()
WHERE public_id = $1
  AND status = 'SCHEDULED'
  AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, gameID, raw)
	if err != nil {
		return false, fmt.Errorf("save lineup draft: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("save lineup draft rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *GameRepository) CommitLineup(ctx context.Context, gameID string, lineup squad.Draft) (bool, error) {
	raw, err := draftToJSON(lineup)
	if err != nil {
		return false, fmt.Errorf("encode lineup: %w", err)
	}

	const query = `
UPDATE games
SET lineup = $2,
    lineup_draft = NULL,
    status = 'PLAYED',
    updated_at = NOW()
WHERE public_id = $1
  AND status = 'SCHEDULED'
  AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, gameID, raw)
	if err != nil {
		return false, fmt.Errorf("commit lineup: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("commit lineup rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *GameRepository) Finalize(ctx context.Context, gameID string, score game.Score, summaries game.TeamSummaries) (bool, error) {
	const query = `
UPDATE games
SET our_score = $2,
    opponent_score = $3,
    defense_summary = $4,
    midfield_summary = $5,
    attack_summary = $6,
    general_summary = $7,
    status = 'DONE',
    updated_at = NOW()
WHERE public_id = $1
  AND status = 'PLAYED'
  AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, gameID,
		score.Ours, score.Opponent,
		summaries.Defense, summaries.Midfield, summaries.Attack, summaries.General,
	)
	if err != nil {
		return false, fmt.Errorf("finalize game: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("finalize game rows affected: %w", err)
	}
	return affected > 0, nil
}
