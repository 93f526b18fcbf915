package postgres

import (
	"database/sql"
	"time"

	"github.com/coachmate/matchday/internal/domain/matchevent"
	"github.com/coachmate/matchday/internal/domain/report"
)

type reportTableModel struct {
	GameID        string       `db:"game_public_id"`
	PlayerID      string       `db:"player_public_id"`
	Physical      int          `db:"physical_rating"`
	Technical     int          `db:"technical_rating"`
	Tactical      int          `db:"tactical_rating"`
	Mental        int          `db:"mental_rating"`
	Notes         string       `db:"notes"`
	AutoFilled    bool         `db:"auto_filled"`
	MinutesPlayed int          `db:"minutes_played"`
	Goals         int          `db:"goals"`
	Assists       int          `db:"assists"`
	CreatedAt     time.Time    `db:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at"`
	DeletedAt     sql.NullTime `db:"deleted_at"`
}

func reportFromRow(row reportTableModel) report.Report {
	return report.Report{
		GameID:   row.GameID,
		PlayerID: row.PlayerID,
		Ratings: report.Ratings{
			Physical:  row.Physical,
			Technical: row.Technical,
			Tactical:  row.Tactical,
			Mental:    row.Mental,
		},
		Notes:      row.Notes,
		AutoFilled: row.AutoFilled,
		Derived: matchevent.PlayerAggregates{
			MinutesPlayed: row.MinutesPlayed,
			Goals:         row.Goals,
			Assists:       row.Assists,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
