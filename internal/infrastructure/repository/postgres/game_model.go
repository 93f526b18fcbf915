package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/coachmate/matchday/internal/domain/game"
	"github.com/coachmate/matchday/internal/domain/squad"
)

type gameTableModel struct {
	ID                  string        `db:"public_id"`
	TeamID              string        `db:"team_public_id"`
	Opponent            string        `db:"opponent"`
	KickoffAt           time.Time     `db:"kickoff_at"`
	Status              string        `db:"status"`
	RegularTime         int           `db:"regular_time"`
	FirstHalfExtraTime  int           `db:"first_half_extra_time"`
	SecondHalfExtraTime int           `db:"second_half_extra_time"`
	DefenseSummary      string        `db:"defense_summary"`
	MidfieldSummary     string        `db:"midfield_summary"`
	AttackSummary       string        `db:"attack_summary"`
	GeneralSummary      string        `db:"general_summary"`
	OurScore            sql.NullInt64 `db:"our_score"`
	OpponentScore       sql.NullInt64 `db:"opponent_score"`
	LineupDraft         []byte        `db:"lineup_draft"`
	Lineup              []byte        `db:"lineup"`
	CreatedAt           time.Time     `db:"created_at"`
	UpdatedAt           time.Time     `db:"updated_at"`
	DeletedAt           sql.NullTime  `db:"deleted_at"`
}

func gameFromRow(row gameTableModel) (game.Game, error) {
	item := game.Game{
		ID:        row.ID,
		TeamID:    row.TeamID,
		Opponent:  row.Opponent,
		KickoffAt: row.KickoffAt,
		Status:    game.Status(row.Status),
		Duration: game.MatchDuration{
			RegularTime:         row.RegularTime,
			FirstHalfExtraTime:  row.FirstHalfExtraTime,
			SecondHalfExtraTime: row.SecondHalfExtraTime,
		},
		Summaries: game.TeamSummaries{
			Defense:  row.DefenseSummary,
			Midfield: row.MidfieldSummary,
			Attack:   row.AttackSummary,
			General:  row.GeneralSummary,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.OurScore.Valid && row.OpponentScore.Valid {
		item.FinalScore = &game.Score{
			Ours:     int(row.OurScore.Int64),
			Opponent: int(row.OpponentScore.Int64),
		}
	}

	draft, err := draftFromJSON(row.LineupDraft)
	if err != nil {
		return game.Game{}, fmt.Errorf("decode lineup draft: %w", err)
	}
	item.LineupDraft = draft

	lineup, err := draftFromJSON(row.Lineup)
	if err != nil {
		return game.Game{}, fmt.Errorf("decode lineup: %w", err)
	}
	item.Lineup = lineup

	return item, nil
}

func draftFromJSON(raw []byte) (*squad.Draft, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var draft squad.Draft
	if err := sonic.Unmarshal(raw, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func draftToJSON(draft squad.Draft) ([]byte, error) {
	return sonic.Marshal(draft)
}
