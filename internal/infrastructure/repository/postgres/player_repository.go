package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/coachmate/matchday/internal/domain/player"
)

type playerTableModel struct {
	ID          string `db:"public_id"`
	TeamID      string `db:"team_public_id"`
	Name        string `db:"name"`
	Position    string `db:"position"`
	ShirtNumber int    `db:"shirt_number"`
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	const query = `
SELECT public_id, team_public_id, name, position, shirt_number
FROM players
WHERE team_public_id = $1
  AND deleted_at IS NULL
ORDER BY shirt_number, public_id`

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, teamID); err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	return playersFromRows(rows), nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, teamID string, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}

	const query = `
SELECT public_id, team_public_id, name, position, shirt_number
FROM players
WHERE team_public_id = $1
  AND public_id = ANY($2)
  AND deleted_at IS NULL
ORDER BY shirt_number, public_id`

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, teamID, pq.Array(playerIDs)); err != nil {
		return nil, fmt.Errorf("get players by ids: %w", err)
	}

	return playersFromRows(rows), nil
}

func playersFromRows(rows []playerTableModel) []player.Player {
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			ID:          row.ID,
			TeamID:      row.TeamID,
			Name:        row.Name,
			Position:    player.Position(row.Position),
			ShirtNumber: row.ShirtNumber,
		})
	}
	return out
}
