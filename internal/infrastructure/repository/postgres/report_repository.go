package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coachmate/matchday/internal/domain/report"
)

const reportSelectColumns = `
game_public_id, player_public_id,
physical_rating, technical_rating, tactical_rating, mental_rating,
notes, auto_filled, minutes_played, goals, assists,
created_at, updated_at, deleted_at`

type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) GetByGameAndPlayer(ctx context.Context, gameID, playerID string) (report.Report, bool, error) {
	const query = `
SELECT ` + reportSelectColumns + `
FROM player_reports
WHERE game_public_id = $1
  AND player_public_id = $2
  AND deleted_at IS NULL`

	var row reportTableModel
	if err := r.db.GetContext(ctx, &row, query, gameID, playerID); err != nil {
		if isNotFound(err) {
			return report.Report{}, false, nil
		}
		return report.Report{}, false, fmt.Errorf("get player report: %w", err)
	}

	return reportFromRow(row), true, nil
}

func (r *ReportRepository) ListByGame(ctx context.Context, gameID string) ([]report.Report, error) {
	const query = `
SELECT ` + reportSelectColumns + `
FROM player_reports
WHERE game_public_id = $1
  AND deleted_at IS NULL
ORDER BY player_public_id`

	var rows []reportTableModel
	if err := r.db.SelectContext(ctx, &rows, query, gameID); err != nil {
		return nil, fmt.Errorf("list player reports by game: %w", err)
	}

	out := make([]report.Report, 0, len(rows))
	for _, row := range rows {
		out = append(out, reportFromRow(row))
	}
	return out, nil
}

func (r *ReportRepository) Upsert(ctx context.Context, item report.Report) error {
	const query = `
INSERT INTO player_reports (
    game_public_id, player_public_id,
    physical_rating, technical_rating, tactical_rating, mental_rating,
    notes, auto_filled, minutes_played, goals, assists
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (game_public_id, player_public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    physical_rating = EXCLUDED.physical_rating,
    technical_rating = EXCLUDED.technical_rating,
    tactical_rating = EXCLUDED.tactical_rating,
    mental_rating = EXCLUDED.mental_rating,
    notes = EXCLUDED.notes,
    auto_filled = EXCLUDED.auto_filled,
    minutes_played = EXCLUDED.minutes_played,
    goals = EXCLUDED.goals,
    assists = EXCLUDED.assists,
    updated_at = NOW()`

	_, err := r.db.ExecContext(ctx, query,
		item.GameID, item.PlayerID,
		item.Ratings.Physical, item.Ratings.Technical, item.Ratings.Tactical, item.Ratings.Mental,
		item.Notes, item.AutoFilled,
		item.Derived.MinutesPlayed, item.Derived.Goals, item.Derived.Assists,
	)
	if err != nil {
		return fmt.Errorf("upsert player report: %w", err)
	}
	return nil
}
